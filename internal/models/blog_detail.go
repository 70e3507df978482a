package models

import (
	"time"

	"gorm.io/gorm"
)

type BlogDetail struct {
	ID                uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt         time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt         time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	BlogID            uint           `gorm:"index" json:"blog_id" example:"1"`
	Hash              string         `json:"hash" example:"five-habits-for-a-healthy-heart"`
	DetailDescription string         `json:"detail_description" example:"The full body of the post."`
	BlogMainHighlight string         `json:"blog_main_highlight" example:"Thirty minutes of walking a day is enough."`
	BlogPostWrapUp    string         `json:"blog_post_wrap_up" example:"Start small, stay consistent."`
}
