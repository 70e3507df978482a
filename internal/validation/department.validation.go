package validation

import (
	"strings"

	"github.com/gin-gonic/gin"
)

type CreateDepartmentRequest struct {
	DepartmentName        string `json:"department_name" validate:"required,max=255"`
	DepartmentDescription string `json:"department_description" validate:"required,max=255"`
}

type UpdateDepartmentRequest struct {
	DepartmentName        *string `json:"department_name" validate:"omitempty,min=1,max=255"`
	DepartmentDescription *string `json:"department_description" validate:"omitempty,min=1"`
}

var departmentMessages = map[string]string{
	"DepartmentName.required":        "Department name is required",
	"DepartmentName.min":             "Department name cannot be empty",
	"DepartmentName.max":             "Department name must not exceed 255 characters",
	"DepartmentDescription.required": "Department description is required",
	"DepartmentDescription.min":      "Department description cannot be empty",
	"DepartmentDescription.max":      "Description must not exceed 255 characters",
}

func CreateDepartmentValidator() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateDepartmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, "Invalid request body.")
			return
		}
		req.DepartmentName = strings.TrimSpace(req.DepartmentName)
		req.DepartmentDescription = strings.TrimSpace(req.DepartmentDescription)
		if !checkStruct(c, &req, departmentMessages) {
			return
		}
		c.Set(PayloadKey, &req)
		c.Next()
	}
}

func UpdateDepartmentValidator() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateDepartmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, "Invalid request body.")
			return
		}
		req.DepartmentName = trimmed(req.DepartmentName)
		req.DepartmentDescription = trimmed(req.DepartmentDescription)
		if !checkStruct(c, &req, departmentMessages) {
			return
		}
		c.Set(PayloadKey, &req)
		c.Next()
	}
}
