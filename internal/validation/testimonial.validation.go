package validation

import "github.com/gin-gonic/gin"

// TestimonialRequest binds the multipart form fields; the avatar file
// itself is read by the controller from the request.
type TestimonialRequest struct {
	TestimonialText string `form:"testimonial_text" validate:"required"`
	FullName        string `form:"full_name" validate:"required,max=255"`
	JobTitle        string `form:"job_title" validate:"required,max=255"`
}

var testimonialMessages = map[string]string{
	"TestimonialText.required": "Testimonial text is required",
	"FullName.required":        "Full name is required",
	"FullName.max":             "Full name must not exceed 255 characters",
	"JobTitle.required":        "Job title is required",
	"JobTitle.max":             "Job title must not exceed 255 characters",
}

// TestimonialValidator serves both create and update: every text field
// is required on either call.
func TestimonialValidator() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TestimonialRequest
		if err := c.ShouldBind(&req); err != nil {
			abortBadRequest(c, "Invalid request body.")
			return
		}
		if !checkStruct(c, &req, testimonialMessages) {
			return
		}
		c.Set(PayloadKey, &req)
		c.Next()
	}
}
