package models

import (
	"time"

	"gorm.io/gorm"
)

type Department struct {
	ID                    uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt             time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt             time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	DepartmentName        string         `gorm:"uniqueIndex:idx_departments_name,where:deleted_at IS NULL" json:"department_name" example:"Cardiology"`
	DepartmentDescription string         `json:"department_description" example:"Heart care"`
}
