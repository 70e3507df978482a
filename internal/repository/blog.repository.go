package repository

import (
	"errors"
	"fmt"
	"log"
	"time"

	"mediplus/internal/models"

	"gorm.io/gorm"
)

const (
	// The public landing page renders at most nine cards; the per-user
	// admin lookup is capped likewise. Fixed constants, not pagination.
	blogListLimit     = 9
	userBlogListLimit = 20
)

// BlogPatch carries the updatable blog columns; nil fields keep their
// stored values.
type BlogPatch struct {
	ImageGalleryID  *uint
	BlogTitle       *string
	BlogDescription *string
}

// BlogDeletionSummary reports what a cascade delete touched.
type BlogDeletionSummary struct {
	BlogID       uint      `json:"blog_id"`
	BlogDetailID *uint     `json:"blog_detail_id"`
	Deleted      bool      `json:"deleted"`
	Timestamp    time.Time `json:"timestamp"`
}

type BlogRepository interface {
	FindAll() ([]models.Blog, error)
	FindByID(id uint) (*models.Blog, error)
	FindByUserID(userID uint, q string) ([]models.Blog, error)
	Create(blog *models.Blog) error
	Update(id uint, patch BlogPatch) (*models.Blog, error)
	Delete(id uint) (*BlogDeletionSummary, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) FindAll() ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.
		Preload("User.Profile").
		Preload("BlogImg").
		Preload("BlogDetail").
		Order("created_at DESC").
		Limit(blogListLimit).
		Find(&blogs).Error
	if err != nil {
		log.Printf("Error retrieving blogs: %v", err)
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) FindByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.
		Preload("User.Profile").
		Preload("BlogImg").
		First(&blog, id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindByUserID lists up to twenty of the user's most recent blogs,
// optionally filtered by a title keyword. Only id and title are selected.
func (r *blogRepository) FindByUserID(userID uint, q string) ([]models.Blog, error) {
	query := r.db.
		Select("id", "blog_title", "created_at").
		Where("user_id = ?", userID)
	if q != "" {
		query = query.Where("blog_title LIKE ?", "%"+q+"%")
	}

	var blogs []models.Blog
	err := query.Order("created_at DESC").Limit(userBlogListLimit).Find(&blogs).Error
	if err != nil {
		log.Printf("Error retrieving blogs for user %d: %v", userID, err)
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) Create(blog *models.Blog) error {
	if err := r.db.Create(blog).Error; err != nil {
		log.Printf("Error creating blog: %v", err)
		return err
	}
	// Re-read so the response carries the hydrated author and image rows.
	return r.db.
		Preload("User.Profile").
		Preload("BlogImg").
		First(blog, blog.ID).Error
}

func (r *blogRepository) Update(id uint, patch BlogPatch) (*models.Blog, error) {
	var current models.Blog
	if err := r.db.First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	imageGalleryID := current.ImageGalleryID
	if patch.ImageGalleryID != nil {
		imageGalleryID = patch.ImageGalleryID
	}
	title := current.BlogTitle
	if patch.BlogTitle != nil {
		title = *patch.BlogTitle
	}
	description := current.BlogDescription
	if patch.BlogDescription != nil {
		description = *patch.BlogDescription
	}

	result := r.db.Model(&models.Blog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"image_gallery_id": imageGalleryID,
			"blog_title":       title,
			"blog_description": description,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		log.Printf("Error updating blog %d: %v", id, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var updated models.Blog
	if err := r.db.Preload("BlogImg").First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete soft-deletes the blog and everything hanging off it inside one
// transaction: tag links, image links, related-post links, then the
// detail, then the blog row itself. Each child update rides the
// soft-delete scope, so a retried cascade skips rows already stamped.
// Returns gorm.ErrRecordNotFound when the blog is absent or already
// deleted.
func (r *blogRepository) Delete(id uint) (*BlogDeletionSummary, error) {
	var summary *BlogDeletionSummary

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var blog models.Blog
		if err := tx.Select("id").First(&blog, id).Error; err != nil {
			return err
		}

		var detailID *uint
		var detail models.BlogDetail
		detailErr := tx.Select("id").Where("blog_id = ?", id).First(&detail).Error
		if detailErr != nil && !errors.Is(detailErr, gorm.ErrRecordNotFound) {
			return detailErr
		}

		now := time.Now()
		stamp := map[string]interface{}{"deleted_at": now, "updated_at": now}

		if detailErr == nil {
			detailID = &detail.ID

			if err := tx.Model(&models.BlogDetailTag{}).
				Where("blog_detail_id = ?", detail.ID).
				Updates(stamp).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.BlogDetailImage{}).
				Where("blog_detail_id = ?", detail.ID).
				Updates(stamp).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.RelatedBlogPost{}).
				Where("blog_detail_id = ? OR blog_id = ?", detail.ID, id).
				Updates(stamp).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.BlogDetail{}).
				Where("id = ?", detail.ID).
				Updates(stamp).Error; err != nil {
				return err
			}
		}

		result := tx.Model(&models.Blog{}).
			Where("id = ?", id).
			Updates(stamp)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != 1 {
			// Forces a rollback of the child soft-deletes above.
			return fmt.Errorf("blog %d soft delete affected %d rows", id, result.RowsAffected)
		}

		summary = &BlogDeletionSummary{
			BlogID:       id,
			BlogDetailID: detailID,
			Deleted:      true,
			Timestamp:    now,
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error deleting blog %d: %v", id, err)
		}
		return nil, err
	}
	return summary, nil
}
