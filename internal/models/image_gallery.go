package models

import (
	"time"

	"gorm.io/gorm"
)

type ImageGallery struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	ImageName string         `json:"image_name" example:"clinic-entrance.webp"`
	ImageURL  string         `json:"image_url" example:"uploads/images/gallery/clinic-entrance.webp"`
	ImageType string         `json:"image_type" example:"image/webp"`
}
