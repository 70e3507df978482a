package repository

import (
	"log"

	"mediplus/internal/models"

	"gorm.io/gorm"
)

// tagListLimit caps the tag picker used by the admin blog editor.
const tagListLimit = 50

type TagRepository interface {
	FindAll(q string) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) FindAll(q string) ([]models.Tag, error) {
	query := r.db.Model(&models.Tag{})
	if q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}

	var tags []models.Tag
	err := query.Order("name ASC").Limit(tagListLimit).Find(&tags).Error
	if err != nil {
		log.Printf("Error retrieving tags: %v", err)
		return nil, err
	}
	return tags, nil
}
