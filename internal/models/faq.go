package models

import (
	"time"

	"gorm.io/gorm"
)

type FAQ struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	FaqQuestion string         `json:"faq_question" example:"Do you accept walk-in patients?"`
	FaqAnswer   string         `json:"faq_answer" example:"Yes, our outpatient clinic accepts walk-ins every weekday."`
}

func (FAQ) TableName() string {
	return "faqs"
}
