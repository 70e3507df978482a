package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"mediplus/internal/models"
	"mediplus/internal/repository"
	"mediplus/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BlogController struct {
	repo repository.BlogRepository
}

func NewBlogController(repo repository.BlogRepository) *BlogController {
	return &BlogController{repo: repo}
}

// GetAllBlogs godoc
// @Summary Get the latest blogs
// @Description Retrieve the nine most recent blogs with author, image and detail data
// @Tags blog
// @Produce json
// @Success 200 {object} map[string]interface{} "Blogs retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/blogs [get]
func (bc *BlogController) GetAllBlogs(c *gin.Context) {
	blogs, err := bc.repo.FindAll()
	if err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blogs retrieved successfully.",
		"data":    gin.H{"blogs": blogs},
	})
}

// GetBlogByID godoc
// @Summary Get a blog by ID
// @Tags blog
// @Produce json
// @Param blog_id path int true "Blog ID"
// @Success 200 {object} map[string]interface{} "Blog retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid blog ID"
// @Failure 404 {object} map[string]interface{} "Blog not found"
// @Router /api/blogs/{blog_id} [get]
func (bc *BlogController) GetBlogByID(c *gin.Context) {
	id := c.GetUint("blog_id")

	blog, err := bc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "The blog you are looking for was not found.")
			return
		}
		log.Printf("Error fetching blog %d: %v", id, err)
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog retrieved successfully.",
		"data":    gin.H{"blog": blog},
	})
}

// GetBlogsByUserID godoc
// @Summary Get a user's recent blog titles
// @Description Retrieve up to twenty recent blogs for a user, optionally filtered by title keyword
// @Tags blog
// @Produce json
// @Param user_id path int true "User ID"
// @Param q query string false "Title search keyword"
// @Success 200 {object} map[string]interface{} "Blogs retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/blogs/users/{user_id} [get]
func (bc *BlogController) GetBlogsByUserID(c *gin.Context) {
	userID := c.GetUint("user_id")
	q := strings.TrimSpace(c.Query("q"))

	blogs, err := bc.repo.FindByUserID(userID, q)
	if err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blogs retrieved successfully.",
		"data":    gin.H{"blogs": blogs},
	})
}

// CreateBlog godoc
// @Summary Create a blog
// @Tags blog
// @Accept json
// @Produce json
// @Param blog body validation.CreateBlogRequest true "Blog data"
// @Success 201 {object} map[string]interface{} "Blog created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/blogs [post]
func (bc *BlogController) CreateBlog(c *gin.Context) {
	payload := c.MustGet(validation.PayloadKey).(*validation.CreateBlogRequest)
	userID := c.GetUint("user_id")

	blog := models.Blog{
		UserID:          userID,
		ImageGalleryID:  &payload.ImageGalleryID,
		BlogTitle:       payload.BlogTitle,
		BlogDescription: payload.BlogDescription,
	}
	if err := bc.repo.Create(&blog); err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Blog created successfully.",
		"data":    gin.H{"blog": blog},
	})
}

// UpdateBlog godoc
// @Summary Update a blog
// @Description Update a blog; an omitted image reference keeps the stored one
// @Tags blog
// @Accept json
// @Produce json
// @Param blog_id path int true "Blog ID"
// @Param blog body validation.UpdateBlogRequest true "Blog data"
// @Success 200 {object} map[string]interface{} "Blog updated successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 404 {object} map[string]interface{} "Blog not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/blogs/{blog_id} [patch]
func (bc *BlogController) UpdateBlog(c *gin.Context) {
	id := c.GetUint("blog_id")
	payload := c.MustGet(validation.PayloadKey).(*validation.UpdateBlogRequest)

	patch := repository.BlogPatch{
		ImageGalleryID:  payload.ImageGalleryID,
		BlogTitle:       &payload.BlogTitle,
		BlogDescription: &payload.BlogDescription,
	}

	updated, err := bc.repo.Update(id, patch)
	if err != nil {
		respondInternalError(c)
		return
	}
	if updated == nil {
		respondNotFound(c, "The blog you are looking for was not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog updated successfully.",
		"data":    gin.H{"blog": updated},
	})
}

// DeleteBlog godoc
// @Summary Delete a blog
// @Description Soft-delete a blog together with its detail, tag links, image links and related-post links in one transaction
// @Tags blog
// @Produce json
// @Param blog_id path int true "Blog ID"
// @Success 200 {object} map[string]interface{} "Blog deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid blog ID"
// @Failure 404 {object} map[string]interface{} "Blog not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/blogs/{blog_id} [delete]
func (bc *BlogController) DeleteBlog(c *gin.Context) {
	id := c.GetUint("blog_id")

	summary, err := bc.repo.Delete(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "The blog you are looking for was not found.")
			return
		}
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog deleted successfully.",
		"data":    gin.H{"deleted": summary},
	})
}
