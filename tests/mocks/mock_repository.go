package mocks

import (
	"mediplus/internal/models"
	"mediplus/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Shared MockBlogRepository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) FindAll() ([]models.Blog, error) {
	args := m.Called()
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) FindByID(id uint) (*models.Blog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) FindByUserID(userID uint, q string) ([]models.Blog, error) {
	args := m.Called(userID, q)
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) Create(blog *models.Blog) error {
	args := m.Called(blog)
	return args.Error(0)
}

func (m *MockBlogRepository) Update(id uint, patch repository.BlogPatch) (*models.Blog, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) Delete(id uint) (*repository.BlogDeletionSummary, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BlogDeletionSummary), args.Error(1)
}

// Shared MockTagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) FindAll(q string) ([]models.Tag, error) {
	args := m.Called(q)
	return args.Get(0).([]models.Tag), args.Error(1)
}

// Shared MockDepartmentRepository
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindAll() ([]models.Department, error) {
	args := m.Called()
	return args.Get(0).([]models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByID(id uint) (*models.Department, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByName(name string) (*models.Department, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Create(department *models.Department) error {
	args := m.Called(department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Update(id uint, name, description *string) (*models.Department, error) {
	args := m.Called(id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Delete(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// Shared MockFAQRepository
type MockFAQRepository struct {
	mock.Mock
}

func (m *MockFAQRepository) FindAll() ([]models.FAQ, error) {
	args := m.Called()
	return args.Get(0).([]models.FAQ), args.Error(1)
}

func (m *MockFAQRepository) FindByID(id uint) (*models.FAQ, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FAQ), args.Error(1)
}

func (m *MockFAQRepository) Create(faq *models.FAQ) error {
	args := m.Called(faq)
	return args.Error(0)
}

func (m *MockFAQRepository) Update(id uint, question, answer *string) (*models.FAQ, error) {
	args := m.Called(id, question, answer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FAQ), args.Error(1)
}

func (m *MockFAQRepository) Delete(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// Shared MockServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindAll() ([]models.Service, error) {
	args := m.Called()
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByID(id uint) (*models.Service, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) Create(service *models.Service) error {
	args := m.Called(service)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(id uint, patch repository.ServicePatch) (*models.Service, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) Delete(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// Shared MockTestimonialRepository
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) FindAll() ([]models.Testimonial, error) {
	args := m.Called()
	return args.Get(0).([]models.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) FindByID(id uint) (*models.Testimonial, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) Create(testimonial *models.Testimonial) error {
	args := m.Called(testimonial)
	return args.Error(0)
}

func (m *MockTestimonialRepository) Update(id uint, text, fullName, jobTitle string, avatarPath *string) (*models.Testimonial, error) {
	args := m.Called(id, text, fullName, jobTitle, avatarPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) Delete(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}
