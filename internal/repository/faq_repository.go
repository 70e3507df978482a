package repository

import (
	"errors"
	"log"
	"time"

	"mediplus/internal/models"

	"gorm.io/gorm"
)

type FAQRepository interface {
	FindAll() ([]models.FAQ, error)
	FindByID(id uint) (*models.FAQ, error)
	Create(faq *models.FAQ) error
	Update(id uint, question, answer *string) (*models.FAQ, error)
	Delete(id uint) (bool, error)
}

type faqRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) FindAll() ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := r.db.Order("created_at DESC").Find(&faqs).Error
	return faqs, err
}

func (r *faqRepository) FindByID(id uint) (*models.FAQ, error) {
	var faq models.FAQ
	if err := r.db.First(&faq, id).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepository) Create(faq *models.FAQ) error {
	if err := r.db.Create(faq).Error; err != nil {
		log.Printf("Error creating FAQ: %v", err)
		return err
	}
	return nil
}

func (r *faqRepository) Update(id uint, question, answer *string) (*models.FAQ, error) {
	current, err := r.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	newQuestion := current.FaqQuestion
	if question != nil {
		newQuestion = *question
	}
	newAnswer := current.FaqAnswer
	if answer != nil {
		newAnswer = *answer
	}

	result := r.db.Model(&models.FAQ{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"faq_question": newQuestion,
			"faq_answer":   newAnswer,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		log.Printf("Error updating FAQ %d: %v", id, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(id)
}

func (r *faqRepository) Delete(id uint) (bool, error) {
	now := time.Now()
	result := r.db.Model(&models.FAQ{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": now, "updated_at": now})
	if result.Error != nil {
		log.Printf("Error deleting FAQ %d: %v", id, result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
