package validation

import (
	"strings"

	"github.com/gin-gonic/gin"
)

type CreateServiceRequest struct {
	IconClassName      string `json:"icon_class_name" validate:"required"`
	ServiceTitle       string `json:"service_title" validate:"required,max=255"`
	ServiceSubtitle    string `json:"service_subtitle" validate:"required,max=255"`
	ServiceDescription string `json:"service_description" validate:"required"`
}

type UpdateServiceRequest struct {
	IconClassName      *string `json:"icon_class_name" validate:"omitempty,min=1"`
	ServiceTitle       *string `json:"service_title" validate:"omitempty,min=1,max=255"`
	ServiceSubtitle    *string `json:"service_subtitle" validate:"omitempty,max=255"`
	ServiceDescription *string `json:"service_description" validate:"omitempty,min=1"`
}

var serviceMessages = map[string]string{
	"IconClassName.required":      "Service icon is required",
	"IconClassName.min":           "Service icon cannot be empty",
	"ServiceTitle.required":       "Service title is required",
	"ServiceTitle.min":            "Service title cannot be empty",
	"ServiceTitle.max":            "Service title must not exceed 255 characters",
	"ServiceSubtitle.required":    "Service subtitle is required",
	"ServiceSubtitle.max":         "Subtitle cannot exceed 255 characters",
	"ServiceDescription.required": "Service description is required",
	"ServiceDescription.min":      "Service description cannot be empty",
}

func CreateServiceValidator() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, "Invalid request body.")
			return
		}
		req.ServiceSubtitle = strings.TrimSpace(req.ServiceSubtitle)
		if !checkStruct(c, &req, serviceMessages) {
			return
		}
		c.Set(PayloadKey, &req)
		c.Next()
	}
}

func UpdateServiceValidator() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, "Invalid request body.")
			return
		}
		req.ServiceSubtitle = trimmed(req.ServiceSubtitle)
		if !checkStruct(c, &req, serviceMessages) {
			return
		}
		c.Set(PayloadKey, &req)
		c.Next()
	}
}
