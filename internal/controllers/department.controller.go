package controllers

import (
	"errors"
	"log"
	"net/http"

	"mediplus/internal/models"
	"mediplus/internal/repository"
	"mediplus/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DepartmentController struct {
	repo repository.DepartmentRepository
}

func NewDepartmentController(repo repository.DepartmentRepository) *DepartmentController {
	return &DepartmentController{repo: repo}
}

// GetDepartments godoc
// @Summary Get all departments
// @Description Retrieve all active departments
// @Tags department
// @Produce json
// @Success 200 {object} map[string]interface{} "Departments retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/departments [get]
func (dc *DepartmentController) GetDepartments(c *gin.Context) {
	departments, err := dc.repo.FindAll()
	if err != nil {
		log.Printf("Error fetching departments: %v", err)
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Departments data retrieved successfully.",
		"data":    gin.H{"departments": departments},
	})
}

// GetDepartmentByID godoc
// @Summary Get a department by ID
// @Description Retrieve department information by ID (includes removed departments)
// @Tags department
// @Produce json
// @Param department_id path int true "Department ID"
// @Success 200 {object} map[string]interface{} "Department retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid department ID"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Router /api/departments/{department_id} [get]
func (dc *DepartmentController) GetDepartmentByID(c *gin.Context) {
	id := c.GetUint("department_id")

	department, err := dc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "The department you are looking for was not found.")
			return
		}
		log.Printf("Error fetching department %d: %v", id, err)
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Department data retrieved successfully.",
		"data":    gin.H{"department": department},
	})
}

// CreateDepartment godoc
// @Summary Create a department
// @Description Create a new department with a unique name
// @Tags department
// @Accept json
// @Produce json
// @Param department body validation.CreateDepartmentRequest true "Department data"
// @Success 201 {object} map[string]interface{} "Department created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 409 {object} map[string]interface{} "Department name already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/departments [post]
func (dc *DepartmentController) CreateDepartment(c *gin.Context) {
	payload := c.MustGet(validation.PayloadKey).(*validation.CreateDepartmentRequest)

	existing, err := dc.repo.FindByName(payload.DepartmentName)
	if err != nil {
		respondInternalError(c)
		return
	}
	if existing != nil {
		respondConflict(c, "Department name already exists.")
		return
	}

	department := models.Department{
		DepartmentName:        payload.DepartmentName,
		DepartmentDescription: payload.DepartmentDescription,
	}
	if err := dc.repo.Create(&department); err != nil {
		// The partial unique index backstops the check above under
		// concurrent duplicate creation.
		if isUniqueViolation(err) {
			respondConflict(c, "Department name already exists.")
			return
		}
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Department created successfully.",
		"data":    gin.H{"department": department},
	})
}

// UpdateDepartment godoc
// @Summary Update a department
// @Description Partially update a department; omitted fields keep their stored values
// @Tags department
// @Accept json
// @Produce json
// @Param department_id path int true "Department ID"
// @Param department body validation.UpdateDepartmentRequest true "Department data"
// @Success 200 {object} map[string]interface{} "Department updated successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 409 {object} map[string]interface{} "Department name already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/departments/{department_id} [patch]
func (dc *DepartmentController) UpdateDepartment(c *gin.Context) {
	id := c.GetUint("department_id")
	payload := c.MustGet(validation.PayloadKey).(*validation.UpdateDepartmentRequest)

	if _, err := dc.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "The department you are looking for was not found.")
			return
		}
		log.Printf("Error fetching department %d: %v", id, err)
		respondInternalError(c)
		return
	}

	if payload.DepartmentName != nil {
		duplicate, err := dc.repo.FindByName(*payload.DepartmentName)
		if err != nil {
			respondInternalError(c)
			return
		}
		if duplicate != nil && duplicate.ID != id {
			respondConflict(c, "Department name already exists.")
			return
		}
	}

	updated, err := dc.repo.Update(id, payload.DepartmentName, payload.DepartmentDescription)
	if err != nil {
		if isUniqueViolation(err) {
			respondConflict(c, "Department name already exists.")
			return
		}
		respondInternalError(c)
		return
	}
	if updated == nil {
		respondNotFound(c, "The department you are looking for was not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Department updated successfully.",
		"data":    gin.H{"department": updated},
	})
}

// DeleteDepartment godoc
// @Summary Delete a department
// @Description Soft-delete a department by ID
// @Tags department
// @Produce json
// @Param department_id path int true "Department ID"
// @Success 200 {object} map[string]interface{} "Department deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid department ID"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/departments/{department_id} [delete]
func (dc *DepartmentController) DeleteDepartment(c *gin.Context) {
	id := c.GetUint("department_id")

	deleted, err := dc.repo.Delete(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if !deleted {
		respondNotFound(c, "The department you are trying to delete was not found or is already deleted.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Department deleted successfully.",
	})
}
