package models

import (
	"time"

	"gorm.io/gorm"
)

type UserProfile struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID         uint           `gorm:"unique" json:"user_id" example:"1"`
	FirstName      *string        `json:"first_name" example:"Jane"`
	LastName       *string        `json:"last_name" example:"Doe"`
	UserName       *string        `json:"user_name" example:"janedoe"`
	UserColor      *string        `json:"user_color" example:"#3fa2c4"`
	PhoneNumber    *string        `json:"phone_number" example:"+628123456789"`
	ProfilePicture *string        `json:"profile_picture" example:"uploads/images/profile/jane.webp"`
}
