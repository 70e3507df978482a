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

type FAQController struct {
	repo repository.FAQRepository
}

func NewFAQController(repo repository.FAQRepository) *FAQController {
	return &FAQController{repo: repo}
}

// GetFaqs godoc
// @Summary Get all FAQs
// @Description Retrieve all active FAQs, newest first
// @Tags faq
// @Produce json
// @Success 200 {object} map[string]interface{} "FAQs retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/faqs [get]
func (fc *FAQController) GetFaqs(c *gin.Context) {
	faqs, err := fc.repo.FindAll()
	if err != nil {
		log.Printf("Error fetching FAQs: %v", err)
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "FAQs retrieved successfully.",
		"data":    gin.H{"faqs": faqs},
	})
}

// GetFaqByID godoc
// @Summary Get an FAQ by ID
// @Tags faq
// @Produce json
// @Param faq_id path int true "FAQ ID"
// @Success 200 {object} map[string]interface{} "FAQ retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid FAQ ID"
// @Failure 404 {object} map[string]interface{} "FAQ not found"
// @Router /api/faqs/{faq_id} [get]
func (fc *FAQController) GetFaqByID(c *gin.Context) {
	id := c.GetUint("faq_id")

	faq, err := fc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "The FAQ you are looking for was not found.")
			return
		}
		log.Printf("Error fetching FAQ %d: %v", id, err)
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "FAQ retrieved successfully.",
		"data":    gin.H{"faq": faq},
	})
}

// CreateFaq godoc
// @Summary Create an FAQ
// @Tags faq
// @Accept json
// @Produce json
// @Param faq body validation.FAQRequest true "FAQ data"
// @Success 201 {object} map[string]interface{} "FAQ created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/faqs [post]
func (fc *FAQController) CreateFaq(c *gin.Context) {
	payload := c.MustGet(validation.PayloadKey).(*validation.FAQRequest)

	faq := models.FAQ{
		FaqQuestion: payload.FaqQuestion,
		FaqAnswer:   payload.FaqAnswer,
	}
	if err := fc.repo.Create(&faq); err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "FAQ created successfully.",
		"data":    gin.H{"faq": faq},
	})
}

// UpdateFaq godoc
// @Summary Update an FAQ
// @Tags faq
// @Accept json
// @Produce json
// @Param faq_id path int true "FAQ ID"
// @Param faq body validation.FAQRequest true "FAQ data"
// @Success 200 {object} map[string]interface{} "FAQ updated successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 404 {object} map[string]interface{} "FAQ not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/faqs/{faq_id} [patch]
func (fc *FAQController) UpdateFaq(c *gin.Context) {
	id := c.GetUint("faq_id")
	payload := c.MustGet(validation.PayloadKey).(*validation.FAQRequest)

	updated, err := fc.repo.Update(id, &payload.FaqQuestion, &payload.FaqAnswer)
	if err != nil {
		respondInternalError(c)
		return
	}
	if updated == nil {
		respondNotFound(c, "The FAQ you are looking for was not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "FAQ updated successfully.",
		"data":    gin.H{"faq": updated},
	})
}

// DeleteFaq godoc
// @Summary Delete an FAQ
// @Description Soft-delete an FAQ by ID
// @Tags faq
// @Produce json
// @Param faq_id path int true "FAQ ID"
// @Success 200 {object} map[string]interface{} "FAQ deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid FAQ ID"
// @Failure 404 {object} map[string]interface{} "FAQ not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/faqs/{faq_id} [delete]
func (fc *FAQController) DeleteFaq(c *gin.Context) {
	id := c.GetUint("faq_id")

	deleted, err := fc.repo.Delete(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if !deleted {
		respondNotFound(c, "The FAQ you are trying to delete was not found or is already deleted.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "FAQ deleted successfully.",
	})
}
