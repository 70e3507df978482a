package models

import (
	"time"

	"gorm.io/gorm"
)

type Service struct {
	ID                 uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt          time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt          time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	IconClassName      string         `json:"icon_class_name" example:"icofont-heart-beat"`
	ServiceTitle       string         `gorm:"uniqueIndex:idx_services_title,where:deleted_at IS NULL" json:"service_title" example:"General Treatment"`
	ServiceSubtitle    string         `json:"service_subtitle" example:"Everyday care"`
	ServiceDescription string         `json:"service_description" example:"Routine checkups and treatment for common conditions."`
}
