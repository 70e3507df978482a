package repository

import (
	"errors"
	"log"
	"time"

	"mediplus/internal/models"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	FindAll() ([]models.Department, error)
	FindByID(id uint) (*models.Department, error)
	FindByName(name string) (*models.Department, error)
	Create(department *models.Department) error
	Update(id uint, name, description *string) (*models.Department, error)
	Delete(id uint) (bool, error)
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) FindAll() ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Find(&departments).Error
	return departments, err
}

// FindByID deliberately skips the soft-delete scope: the admin dashboard
// has always been able to fetch a removed department by id, and the
// update path depends on that. Flagged pending product clarification.
func (r *departmentRepository) FindByID(id uint) (*models.Department, error) {
	var department models.Department
	if err := r.db.Unscoped().First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// FindByName returns (nil, nil) when no active department carries the name.
func (r *departmentRepository) FindByName(name string) (*models.Department, error) {
	var department models.Department
	err := r.db.Where("department_name = ?", name).First(&department).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("Error checking department name %q: %v", name, err)
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) Create(department *models.Department) error {
	if err := r.db.Create(department).Error; err != nil {
		log.Printf("Error creating department: %v", err)
		return err
	}
	return r.db.First(department, department.ID).Error
}

// Update falls back to the stored value for every omitted field and only
// touches rows that are still active. Returns nil when the id does not
// exist among non-deleted rows.
func (r *departmentRepository) Update(id uint, name, description *string) (*models.Department, error) {
	current, err := r.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	newName := current.DepartmentName
	if name != nil {
		newName = *name
	}
	newDescription := current.DepartmentDescription
	if description != nil {
		newDescription = *description
	}

	result := r.db.Model(&models.Department{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"department_name":        newName,
			"department_description": newDescription,
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		log.Printf("Error updating department %d: %v", id, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(id)
}

func (r *departmentRepository) Delete(id uint) (bool, error) {
	now := time.Now()
	result := r.db.Model(&models.Department{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": now, "updated_at": now})
	if result.Error != nil {
		log.Printf("Error deleting department %d: %v", id, result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
