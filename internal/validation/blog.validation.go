package validation

import "github.com/gin-gonic/gin"

type CreateBlogRequest struct {
	ImageGalleryID  uint   `json:"image_gallery_id" validate:"required,min=1"`
	BlogTitle       string `json:"blog_title" validate:"required,max=255"`
	BlogDescription string `json:"blog_description" validate:"required"`
}

// UpdateBlogRequest mirrors the original API: title and description are
// still required on update, only the image reference may be omitted.
type UpdateBlogRequest struct {
	ImageGalleryID  *uint  `json:"image_gallery_id" validate:"omitempty,min=1"`
	BlogTitle       string `json:"blog_title" validate:"required,max=255"`
	BlogDescription string `json:"blog_description" validate:"required"`
}

var blogMessages = map[string]string{
	"ImageGalleryID.required":  "Image Gallery ID is required",
	"ImageGalleryID.min":       "Image Gallery ID must be a positive integer",
	"BlogTitle.required":       "Blog title is required",
	"BlogTitle.max":            "Blog title must not exceed 255 characters",
	"BlogDescription.required": "Blog description is required",
}

func CreateBlogValidator() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, "Invalid request body.")
			return
		}
		if !checkStruct(c, &req, blogMessages) {
			return
		}
		c.Set(PayloadKey, &req)
		c.Next()
	}
}

func UpdateBlogValidator() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, "Invalid request body.")
			return
		}
		if !checkStruct(c, &req, blogMessages) {
			return
		}
		c.Set(PayloadKey, &req)
		c.Next()
	}
}
