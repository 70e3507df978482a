package models

import (
	"time"

	"gorm.io/gorm"
)

type Blog struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID          uint           `json:"user_id" example:"1"`
	User            *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ImageGalleryID  *uint          `json:"image_gallery_id" example:"1"`
	BlogImg         *ImageGallery  `gorm:"foreignKey:ImageGalleryID" json:"blog_img"`
	BlogTitle       string         `json:"blog_title" example:"Five Habits for a Healthy Heart"`
	BlogDescription string         `json:"blog_description" example:"Small daily habits that keep your heart in shape."`
	BlogDetail      *BlogDetail    `gorm:"foreignKey:BlogID" json:"blog_detail"`
}
