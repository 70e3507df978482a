package models

import (
	"time"

	"gorm.io/gorm"
)

type Testimonial struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TestimonialText string         `json:"testimonial_text" example:"The staff took care of my mother like family."`
	FullName        string         `json:"full_name" example:"Amanda Putri"`
	JobTitle        string         `json:"job_title" example:"Teacher"`
	TestifierAvatar *string        `json:"testifier_avatar" example:"uploads/images/testifier_avatar/testifier-avatar-1a2b3c.webp"`
	BgColor         string         `json:"bg_color" example:"#7c3aed"`
}
