package controllers

import (
	"net/http"
	"strings"

	"mediplus/internal/repository"

	"github.com/gin-gonic/gin"
)

type TagController struct {
	repo repository.TagRepository
}

func NewTagController(repo repository.TagRepository) *TagController {
	return &TagController{repo: repo}
}

// GetAllTags godoc
// @Summary Get blog tags
// @Description Retrieve up to fifty active tags, optionally filtered by name
// @Tags tag
// @Produce json
// @Param q query string false "Name search keyword"
// @Success 200 {object} map[string]interface{} "Tags retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/blog-tags [get]
func (tc *TagController) GetAllTags(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	tags, err := tc.repo.FindAll(q)
	if err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tags retrieved successfully.",
		"data":    gin.H{"tags": tags},
	})
}
