package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediplus/internal/controllers"
	"mediplus/internal/models"
	"mediplus/internal/validation"
	"mediplus/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Test helper functions
func setupDepartmentTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func setupDepartmentControllerWithMock() (*controllers.DepartmentController, *mocks.MockDepartmentRepository) {
	mockRepo := new(mocks.MockDepartmentRepository)
	controller := controllers.NewDepartmentController(mockRepo)
	return controller, mockRepo
}

func strPtr(s string) *string {
	return &s
}

func TestNewDepartmentController(t *testing.T) {
	mockRepo := new(mocks.MockDepartmentRepository)
	controller := controllers.NewDepartmentController(mockRepo)

	assert.NotNil(t, controller)
}

func TestGetDepartments(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockDepartmentRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful retrieval",
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("FindAll").Return([]models.Department{
					{DepartmentName: "Cardiology", DepartmentDescription: "Heart care"},
					{DepartmentName: "Neurology", DepartmentDescription: "Brain care"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Departments data retrieved successfully.",
		},
		{
			name: "repository error",
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("FindAll").Return([]models.Department{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Something went wrong! Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupDepartmentControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupDepartmentTestRouter()
			router.GET("/api/departments", controller.GetDepartments)

			req := httptest.NewRequest("GET", "/api/departments", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, true, response["success"])
			} else {
				assert.Equal(t, false, response["success"])
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetDepartmentByID(t *testing.T) {
	tests := []struct {
		name           string
		departmentID   string
		setupMock      func(*mocks.MockDepartmentRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:         "successful retrieval",
			departmentID: "1",
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("FindByID", uint(1)).Return(&models.Department{
					DepartmentName:        "Cardiology",
					DepartmentDescription: "Heart care",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Department data retrieved successfully.",
		},
		{
			name:         "department not found",
			departmentID: "42",
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("FindByID", uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "The department you are looking for was not found.",
		},
		{
			name:           "invalid id",
			departmentID:   "abc",
			setupMock:      func(m *mocks.MockDepartmentRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Department ID must be a positive integer.",
		},
		{
			name:           "zero id",
			departmentID:   "0",
			setupMock:      func(m *mocks.MockDepartmentRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Department ID must be a positive integer.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupDepartmentControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupDepartmentTestRouter()
			router.GET("/api/departments/:department_id",
				validation.IDParam("department_id", "Department ID"),
				controller.GetDepartmentByID)

			req := httptest.NewRequest("GET", "/api/departments/"+tt.departmentID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateDepartment(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockDepartmentRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful creation",
			requestBody: map[string]interface{}{
				"department_name":        "Cardiology",
				"department_description": "Heart and vascular care",
			},
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("FindByName", "Cardiology").Return(nil, nil)
				m.On("Create", mock.AnythingOfType("*models.Department")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Department created successfully.",
		},
		{
			name: "duplicate name",
			requestBody: map[string]interface{}{
				"department_name":        "Cardiology",
				"department_description": "Heart and vascular care",
			},
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("FindByName", "Cardiology").Return(&models.Department{
					DepartmentName: "Cardiology",
				}, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Department name already exists.",
		},
		{
			name: "missing name",
			requestBody: map[string]interface{}{
				"department_description": "Heart and vascular care",
			},
			setupMock:      func(m *mocks.MockDepartmentRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Department name is required",
		},
		{
			name: "missing description",
			requestBody: map[string]interface{}{
				"department_name": "Cardiology",
			},
			setupMock:      func(m *mocks.MockDepartmentRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Department description is required",
		},
		{
			name:           "invalid JSON",
			requestBody:    nil,
			setupMock:      func(m *mocks.MockDepartmentRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request body.",
		},
		{
			name: "repository error",
			requestBody: map[string]interface{}{
				"department_name":        "Cardiology",
				"department_description": "Heart and vascular care",
			},
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("FindByName", "Cardiology").Return(nil, nil)
				m.On("Create", mock.AnythingOfType("*models.Department")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Something went wrong! Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupDepartmentControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupDepartmentTestRouter()
			router.POST("/api/departments",
				validation.CreateDepartmentValidator(),
				controller.CreateDepartment)

			var body []byte
			if tt.requestBody != nil {
				body, _ = json.Marshal(tt.requestBody)
			} else {
				body = []byte("invalid json")
			}

			req := httptest.NewRequest("POST", "/api/departments", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateDepartment(t *testing.T) {
	tests := []struct {
		name           string
		departmentID   string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockDepartmentRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:         "successful partial update",
			departmentID: "1",
			requestBody: map[string]interface{}{
				"department_name": "Cardiology & Vascular",
			},
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("FindByID", uint(1)).Return(&models.Department{
					DepartmentName:        "Cardiology",
					DepartmentDescription: "Heart care",
				}, nil)
				m.On("FindByName", "Cardiology & Vascular").Return(nil, nil)
				m.On("Update", uint(1), strPtr("Cardiology & Vascular"), (*string)(nil)).Return(&models.Department{
					DepartmentName:        "Cardiology & Vascular",
					DepartmentDescription: "Heart care",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Department updated successfully.",
		},
		{
			name:         "department not found",
			departmentID: "42",
			requestBody: map[string]interface{}{
				"department_name": "Oncology",
			},
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("FindByID", uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "The department you are looking for was not found.",
		},
		{
			name:         "name taken by another department",
			departmentID: "1",
			requestBody: map[string]interface{}{
				"department_name": "Neurology",
			},
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("FindByID", uint(1)).Return(&models.Department{
					DepartmentName: "Cardiology",
				}, nil)
				other := &models.Department{DepartmentName: "Neurology"}
				other.ID = 2
				m.On("FindByName", "Neurology").Return(other, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Department name already exists.",
		},
		{
			name:         "soft-deleted row updates zero rows",
			departmentID: "7",
			requestBody: map[string]interface{}{
				"department_description": "Updated description",
			},
			setupMock: func(m *mocks.MockDepartmentRepository) {
				// FindByID reads past the soft-delete scope, so a removed
				// department still resolves here; the guarded UPDATE then
				// touches nothing and the repository reports nil.
				m.On("FindByID", uint(7)).Return(&models.Department{
					DepartmentName: "Radiology",
				}, nil)
				m.On("Update", uint(7), (*string)(nil), strPtr("Updated description")).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "The department you are looking for was not found.",
		},
		{
			name:           "blank name rejected",
			departmentID:   "1",
			requestBody:    map[string]interface{}{"department_name": "   "},
			setupMock:      func(m *mocks.MockDepartmentRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Department name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupDepartmentControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupDepartmentTestRouter()
			router.PATCH("/api/departments/:department_id",
				validation.IDParam("department_id", "Department ID"),
				validation.UpdateDepartmentValidator(),
				controller.UpdateDepartment)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("PATCH", "/api/departments/"+tt.departmentID, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteDepartment(t *testing.T) {
	tests := []struct {
		name           string
		departmentID   string
		setupMock      func(*mocks.MockDepartmentRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:         "successful soft delete",
			departmentID: "1",
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("Delete", uint(1)).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Department deleted successfully.",
		},
		{
			name:         "already deleted",
			departmentID: "1",
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("Delete", uint(1)).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "The department you are trying to delete was not found or is already deleted.",
		},
		{
			name:         "repository error",
			departmentID: "1",
			setupMock: func(m *mocks.MockDepartmentRepository) {
				m.On("Delete", uint(1)).Return(false, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Something went wrong! Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupDepartmentControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupDepartmentTestRouter()
			router.DELETE("/api/departments/:department_id",
				validation.IDParam("department_id", "Department ID"),
				controller.DeleteDepartment)

			req := httptest.NewRequest("DELETE", "/api/departments/"+tt.departmentID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}
