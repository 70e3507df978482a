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
	"mediplus/internal/repository"
	"mediplus/internal/validation"
	"mediplus/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupServiceTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func setupServiceControllerWithMock() (*controllers.ServiceController, *mocks.MockServiceRepository) {
	mockRepo := new(mocks.MockServiceRepository)
	controller := controllers.NewServiceController(mockRepo)
	return controller, mockRepo
}

func TestGetAllServices(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockServiceRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful retrieval",
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("FindAll").Return([]models.Service{
					{IconClassName: "icofont-heart-beat", ServiceTitle: "General Treatment"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Services retrieved successfully.",
		},
		{
			name: "repository error",
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("FindAll").Return([]models.Service{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Something went wrong! Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupServiceControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupServiceTestRouter()
			router.GET("/api/services", controller.GetAllServices)

			req := httptest.NewRequest("GET", "/api/services", nil)
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

func TestGetServiceByID(t *testing.T) {
	tests := []struct {
		name           string
		serviceID      string
		setupMock      func(*mocks.MockServiceRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:      "successful retrieval",
			serviceID: "1",
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("FindByID", uint(1)).Return(&models.Service{
					IconClassName: "icofont-tooth",
					ServiceTitle:  "Dental Care",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Service retrieved successfully.",
		},
		{
			name:      "service not found",
			serviceID: "42",
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("FindByID", uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "The service you are looking for was not found.",
		},
		{
			name:           "invalid id",
			serviceID:      "-1",
			setupMock:      func(m *mocks.MockServiceRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Service ID must be a positive integer.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupServiceControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupServiceTestRouter()
			router.GET("/api/services/:service_id",
				validation.IDParam("service_id", "Service ID"),
				controller.GetServiceByID)

			req := httptest.NewRequest("GET", "/api/services/"+tt.serviceID, nil)
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

func TestCreateService(t *testing.T) {
	validBody := map[string]interface{}{
		"icon_class_name":     "icofont-heart-beat",
		"service_title":       "General Treatment",
		"service_subtitle":    "Everyday care",
		"service_description": "Routine checkups and treatment.",
	}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockServiceRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful creation",
			requestBody: validBody,
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("Create", mock.AnythingOfType("*models.Service")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Service created successfully.",
		},
		{
			name: "missing title",
			requestBody: map[string]interface{}{
				"icon_class_name":     "icofont-heart-beat",
				"service_subtitle":    "Everyday care",
				"service_description": "Routine checkups and treatment.",
			},
			setupMock:      func(m *mocks.MockServiceRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Service title is required",
		},
		{
			name:        "repository error",
			requestBody: validBody,
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("Create", mock.AnythingOfType("*models.Service")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Something went wrong! Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupServiceControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupServiceTestRouter()
			router.POST("/api/services",
				validation.CreateServiceValidator(),
				controller.CreateService)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/services", bytes.NewBuffer(body))
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

func TestUpdateService(t *testing.T) {
	tests := []struct {
		name           string
		serviceID      string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockServiceRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:      "partial update of title only",
			serviceID: "1",
			requestBody: map[string]interface{}{
				"service_title": "Advanced Treatment",
			},
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("Update", uint(1), repository.ServicePatch{
					ServiceTitle: strPtr("Advanced Treatment"),
				}).Return(&models.Service{
					IconClassName: "icofont-heart-beat",
					ServiceTitle:  "Advanced Treatment",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Service updated successfully.",
		},
		{
			name:      "service not found",
			serviceID: "42",
			requestBody: map[string]interface{}{
				"service_title": "Advanced Treatment",
			},
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("Update", uint(42), repository.ServicePatch{
					ServiceTitle: strPtr("Advanced Treatment"),
				}).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "The service you are trying to update was not found.",
		},
		{
			name:        "empty body updates nothing",
			serviceID:   "1",
			requestBody: map[string]interface{}{},
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("Update", uint(1), repository.ServicePatch{}).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "The service you are trying to update was not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupServiceControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupServiceTestRouter()
			router.PATCH("/api/services/:service_id",
				validation.IDParam("service_id", "Service ID"),
				validation.UpdateServiceValidator(),
				controller.UpdateService)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("PATCH", "/api/services/"+tt.serviceID, bytes.NewBuffer(body))
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

func TestDeleteService(t *testing.T) {
	tests := []struct {
		name           string
		serviceID      string
		setupMock      func(*mocks.MockServiceRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:      "successful soft delete",
			serviceID: "1",
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("Delete", uint(1)).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Service deleted successfully.",
		},
		{
			name:      "already deleted",
			serviceID: "1",
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("Delete", uint(1)).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "The service you are trying to delete was not found or is already deleted.",
		},
		{
			name:      "repository error",
			serviceID: "1",
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("Delete", uint(1)).Return(false, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Something went wrong! Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupServiceControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupServiceTestRouter()
			router.DELETE("/api/services/:service_id",
				validation.IDParam("service_id", "Service ID"),
				controller.DeleteService)

			req := httptest.NewRequest("DELETE", "/api/services/"+tt.serviceID, nil)
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
