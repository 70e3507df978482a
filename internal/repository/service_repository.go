package repository

import (
	"errors"
	"log"
	"time"

	"mediplus/internal/models"

	"gorm.io/gorm"
)

// ServicePatch is the allowlist of columns a PATCH may touch. A nil
// field is left out of the generated SET clause entirely.
type ServicePatch struct {
	IconClassName      *string
	ServiceTitle       *string
	ServiceSubtitle    *string
	ServiceDescription *string
}

func (p ServicePatch) columns() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.IconClassName != nil {
		updates["icon_class_name"] = *p.IconClassName
	}
	if p.ServiceTitle != nil {
		updates["service_title"] = *p.ServiceTitle
	}
	if p.ServiceSubtitle != nil {
		updates["service_subtitle"] = *p.ServiceSubtitle
	}
	if p.ServiceDescription != nil {
		updates["service_description"] = *p.ServiceDescription
	}
	return updates
}

type ServiceRepository interface {
	FindAll() ([]models.Service, error)
	FindByID(id uint) (*models.Service, error)
	Create(service *models.Service) error
	Update(id uint, patch ServicePatch) (*models.Service, error)
	Delete(id uint) (bool, error)
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) FindAll() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("created_at DESC").Find(&services).Error
	return services, err
}

func (r *serviceRepository) FindByID(id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Create(service *models.Service) error {
	if err := r.db.Create(service).Error; err != nil {
		log.Printf("Error creating service: %v", err)
		return err
	}
	return nil
}

// Update applies only the supplied patch columns plus a refreshed
// updated_at. Returns nil when the patch is empty or the id does not
// exist among non-deleted rows.
func (r *serviceRepository) Update(id uint, patch ServicePatch) (*models.Service, error) {
	updates := patch.columns()
	if len(updates) == 0 {
		return nil, nil
	}
	updates["updated_at"] = time.Now()

	result := r.db.Model(&models.Service{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		log.Printf("Error updating service %d: %v", id, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	service, err := r.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return service, nil
}

func (r *serviceRepository) Delete(id uint) (bool, error) {
	now := time.Now()
	result := r.db.Model(&models.Service{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": now, "updated_at": now})
	if result.Error != nil {
		log.Printf("Error deleting service %d: %v", id, result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
