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

type ServiceController struct {
	repo repository.ServiceRepository
}

func NewServiceController(repo repository.ServiceRepository) *ServiceController {
	return &ServiceController{repo: repo}
}

// GetAllServices godoc
// @Summary Get all services
// @Description Retrieve all active services, newest first
// @Tags service
// @Produce json
// @Success 200 {object} map[string]interface{} "Services retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/services [get]
func (sc *ServiceController) GetAllServices(c *gin.Context) {
	services, err := sc.repo.FindAll()
	if err != nil {
		log.Printf("Error fetching services: %v", err)
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Services retrieved successfully.",
		"data":    gin.H{"services": services},
	})
}

// GetServiceByID godoc
// @Summary Get a service by ID
// @Tags service
// @Produce json
// @Param service_id path int true "Service ID"
// @Success 200 {object} map[string]interface{} "Service retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid service ID"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Router /api/services/{service_id} [get]
func (sc *ServiceController) GetServiceByID(c *gin.Context) {
	id := c.GetUint("service_id")

	service, err := sc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "The service you are looking for was not found.")
			return
		}
		log.Printf("Error fetching service %d: %v", id, err)
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service retrieved successfully.",
		"data":    gin.H{"service": service},
	})
}

// CreateService godoc
// @Summary Create a service
// @Tags service
// @Accept json
// @Produce json
// @Param service body validation.CreateServiceRequest true "Service data"
// @Success 201 {object} map[string]interface{} "Service created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 409 {object} map[string]interface{} "Duplicate service"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/services [post]
func (sc *ServiceController) CreateService(c *gin.Context) {
	payload := c.MustGet(validation.PayloadKey).(*validation.CreateServiceRequest)

	service := models.Service{
		IconClassName:      payload.IconClassName,
		ServiceTitle:       payload.ServiceTitle,
		ServiceSubtitle:    payload.ServiceSubtitle,
		ServiceDescription: payload.ServiceDescription,
	}
	if err := sc.repo.Create(&service); err != nil {
		if isUniqueViolation(err) {
			respondConflict(c, "The provided data conflicts with an existing service (e.g., duplicate title).")
			return
		}
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Service created successfully.",
		"data":    gin.H{"service": service},
	})
}

// UpdateService godoc
// @Summary Update a service
// @Description Partially update a service; only supplied fields are written
// @Tags service
// @Accept json
// @Produce json
// @Param service_id path int true "Service ID"
// @Param service body validation.UpdateServiceRequest true "Service data"
// @Success 200 {object} map[string]interface{} "Service updated successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Failure 409 {object} map[string]interface{} "Duplicate service"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/services/{service_id} [patch]
func (sc *ServiceController) UpdateService(c *gin.Context) {
	id := c.GetUint("service_id")
	payload := c.MustGet(validation.PayloadKey).(*validation.UpdateServiceRequest)

	patch := repository.ServicePatch{
		IconClassName:      payload.IconClassName,
		ServiceTitle:       payload.ServiceTitle,
		ServiceSubtitle:    payload.ServiceSubtitle,
		ServiceDescription: payload.ServiceDescription,
	}

	updated, err := sc.repo.Update(id, patch)
	if err != nil {
		if isUniqueViolation(err) {
			respondConflict(c, "The provided data conflicts with an existing service (e.g., duplicate title).")
			return
		}
		respondInternalError(c)
		return
	}
	if updated == nil {
		respondNotFound(c, "The service you are trying to update was not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service updated successfully.",
		"data":    gin.H{"service": updated},
	})
}

// DeleteService godoc
// @Summary Delete a service
// @Description Soft-delete a service by ID
// @Tags service
// @Produce json
// @Param service_id path int true "Service ID"
// @Success 200 {object} map[string]interface{} "Service deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid service ID"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/services/{service_id} [delete]
func (sc *ServiceController) DeleteService(c *gin.Context) {
	id := c.GetUint("service_id")

	deleted, err := sc.repo.Delete(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if !deleted {
		respondNotFound(c, "The service you are trying to delete was not found or is already deleted.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service deleted successfully.",
	})
}
