package controllers

import (
	"errors"
	"log"
	"net/http"

	"mediplus/internal/models"
	"mediplus/internal/repository"
	"mediplus/internal/utils"
	"mediplus/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TestimonialController struct {
	repo repository.TestimonialRepository
}

func NewTestimonialController(repo repository.TestimonialRepository) *TestimonialController {
	return &TestimonialController{repo: repo}
}

// GetTestimonials godoc
// @Summary Get all testimonials
// @Description Retrieve all active testimonials, newest first
// @Tags testimonial
// @Produce json
// @Success 200 {object} map[string]interface{} "Testimonials retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/testimonials [get]
func (tc *TestimonialController) GetTestimonials(c *gin.Context) {
	testimonials, err := tc.repo.FindAll()
	if err != nil {
		log.Printf("Error fetching testimonials: %v", err)
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Testimonials retrieved successfully.",
		"data":    gin.H{"testimonials": testimonials},
	})
}

// GetTestimonialByID godoc
// @Summary Get a testimonial by ID
// @Tags testimonial
// @Produce json
// @Param testimonial_id path int true "Testimonial ID"
// @Success 200 {object} map[string]interface{} "Testimonial retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid testimonial ID"
// @Failure 404 {object} map[string]interface{} "Testimonial not found"
// @Router /api/testimonials/{testimonial_id} [get]
func (tc *TestimonialController) GetTestimonialByID(c *gin.Context) {
	id := c.GetUint("testimonial_id")

	testimonial, err := tc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "The testimonial you are looking for was not found.")
			return
		}
		log.Printf("Error fetching testimonial %d: %v", id, err)
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Testimonial retrieved successfully.",
		"data":    gin.H{"testimonial": testimonial},
	})
}

// CreateTestimonial godoc
// @Summary Create a testimonial
// @Description Create a testimonial with an optional multipart avatar upload
// @Tags testimonial
// @Accept mpfd
// @Produce json
// @Param testimonial_text formData string true "Testimonial text"
// @Param full_name formData string true "Testifier full name"
// @Param job_title formData string true "Testifier job title"
// @Param testifier_avatar formData file false "Avatar image"
// @Success 201 {object} map[string]interface{} "Testimonial created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/testimonials [post]
func (tc *TestimonialController) CreateTestimonial(c *gin.Context) {
	payload := c.MustGet(validation.PayloadKey).(*validation.TestimonialRequest)

	var avatarPath *string
	if file, err := c.FormFile("testifier_avatar"); err == nil {
		path, err := utils.SaveTestifierAvatar(c, file)
		if err != nil {
			log.Printf("Error saving testimonial avatar: %v", err)
			respondInternalError(c)
			return
		}
		avatarPath = &path
	}

	testimonial := models.Testimonial{
		TestimonialText: payload.TestimonialText,
		FullName:        payload.FullName,
		JobTitle:        payload.JobTitle,
		TestifierAvatar: avatarPath,
		BgColor:         utils.GenerateRandomHexColor(),
	}
	if err := tc.repo.Create(&testimonial); err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Testimonial created successfully.",
		"data":    gin.H{"testimonial": testimonial},
	})
}

// UpdateTestimonial godoc
// @Summary Update a testimonial
// @Description Update a testimonial; a new upload replaces the stored avatar file, no upload removes it
// @Tags testimonial
// @Accept mpfd
// @Produce json
// @Param testimonial_id path int true "Testimonial ID"
// @Param testimonial_text formData string true "Testimonial text"
// @Param full_name formData string true "Testifier full name"
// @Param job_title formData string true "Testifier job title"
// @Param testifier_avatar formData file false "Avatar image"
// @Success 200 {object} map[string]interface{} "Testimonial updated successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 404 {object} map[string]interface{} "Testimonial not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/testimonials/{testimonial_id} [patch]
func (tc *TestimonialController) UpdateTestimonial(c *gin.Context) {
	id := c.GetUint("testimonial_id")
	payload := c.MustGet(validation.PayloadKey).(*validation.TestimonialRequest)

	existing, err := tc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "The testimonial you are looking for was not found.")
			return
		}
		log.Printf("Error fetching testimonial %d: %v", id, err)
		respondInternalError(c)
		return
	}

	var avatarPath *string
	if file, fileErr := c.FormFile("testifier_avatar"); fileErr == nil {
		path, err := utils.SaveTestifierAvatar(c, file)
		if err != nil {
			log.Printf("Error saving testimonial avatar: %v", err)
			respondInternalError(c)
			return
		}
		avatarPath = &path
	}

	// The stored file is owned by the record: replaced uploads and
	// removed avatars both release the previous file exactly once.
	if existing.TestifierAvatar != nil {
		utils.RemoveFile(*existing.TestifierAvatar)
	}

	updated, err := tc.repo.Update(id, payload.TestimonialText, payload.FullName, payload.JobTitle, avatarPath)
	if err != nil {
		respondInternalError(c)
		return
	}
	if updated == nil {
		respondNotFound(c, "The testimonial you are looking for was not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Testimonial updated successfully.",
		"data":    gin.H{"testimonial": updated},
	})
}

// DeleteTestimonial godoc
// @Summary Delete a testimonial
// @Description Soft-delete a testimonial and remove its avatar file
// @Tags testimonial
// @Produce json
// @Param testimonial_id path int true "Testimonial ID"
// @Success 200 {object} map[string]interface{} "Testimonial deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid testimonial ID"
// @Failure 404 {object} map[string]interface{} "Testimonial not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/testimonials/{testimonial_id} [delete]
func (tc *TestimonialController) DeleteTestimonial(c *gin.Context) {
	id := c.GetUint("testimonial_id")

	existing, err := tc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "The testimonial you are looking for was not found.")
			return
		}
		log.Printf("Error fetching testimonial %d: %v", id, err)
		respondInternalError(c)
		return
	}

	deleted, err := tc.repo.Delete(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if !deleted {
		respondNotFound(c, "The testimonial you are looking for was not found.")
		return
	}

	if existing.TestifierAvatar != nil {
		utils.RemoveFile(*existing.TestifierAvatar)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Testimonial deleted successfully.",
	})
}
