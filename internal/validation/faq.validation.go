package validation

import "github.com/gin-gonic/gin"

type FAQRequest struct {
	FaqQuestion string `json:"faq_question" validate:"required"`
	FaqAnswer   string `json:"faq_answer" validate:"required"`
}

var faqMessages = map[string]string{
	"FaqQuestion.required": "FAQ question is required",
	"FaqAnswer.required":   "FAQ answer is required",
}

// FAQValidator serves both create and update: the original API requires
// question and answer on either call.
func FAQValidator() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FAQRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, "Invalid request body.")
			return
		}
		if !checkStruct(c, &req, faqMessages) {
			return
		}
		c.Set(PayloadKey, &req)
		c.Next()
	}
}
