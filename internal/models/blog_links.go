package models

import (
	"time"

	"gorm.io/gorm"
)

// Join rows between a blog detail and its tags, gallery images and
// related posts. They soft-delete alongside the detail, so each carries
// its own deleted_at instead of being a plain many2many table.

type BlogDetailTag struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	BlogDetailID uint           `gorm:"index" json:"blog_detail_id"`
	TagID        uint           `json:"tag_id"`
}

type BlogDetailImage struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	BlogDetailID   uint           `gorm:"index" json:"blog_detail_id"`
	ImageGalleryID uint           `json:"image_gallery_id"`
}

type RelatedBlogPost struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	BlogDetailID  uint           `gorm:"index" json:"blog_detail_id"`
	BlogID        uint           `gorm:"index" json:"blog_id"`
	RelatedBlogID uint           `json:"related_blog_id"`
}
