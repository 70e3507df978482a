package repository

import (
	"log"
	"time"

	"mediplus/internal/models"

	"gorm.io/gorm"
)

type TestimonialRepository interface {
	FindAll() ([]models.Testimonial, error)
	FindByID(id uint) (*models.Testimonial, error)
	Create(testimonial *models.Testimonial) error
	Update(id uint, text, fullName, jobTitle string, avatarPath *string) (*models.Testimonial, error)
	Delete(id uint) (bool, error)
}

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) FindAll() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Order("created_at DESC").Find(&testimonials).Error
	return testimonials, err
}

func (r *testimonialRepository) FindByID(id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := r.db.First(&testimonial, id).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) Create(testimonial *models.Testimonial) error {
	if err := r.db.Create(testimonial).Error; err != nil {
		log.Printf("Error creating testimonial: %v", err)
		return err
	}
	return nil
}

// Update rewrites all testimonial columns; the avatar column always takes
// the supplied path, a nil path clears it. The caller owns the avatar
// file lifecycle. Returns nil when the id does not exist among
// non-deleted rows.
func (r *testimonialRepository) Update(id uint, text, fullName, jobTitle string, avatarPath *string) (*models.Testimonial, error) {
	result := r.db.Model(&models.Testimonial{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"testimonial_text": text,
			"full_name":        fullName,
			"job_title":        jobTitle,
			"testifier_avatar": avatarPath,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		log.Printf("Error updating testimonial %d: %v", id, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(id)
}

func (r *testimonialRepository) Delete(id uint) (bool, error) {
	now := time.Now()
	result := r.db.Model(&models.Testimonial{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": now, "updated_at": now})
	if result.Error != nil {
		log.Printf("Error deleting testimonial %d: %v", id, result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
