package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charile1/golf-reservation/internal/handler"
	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/service/mocks"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCustomerTestRouter(mockService *mocks.MockCustomerService) *gin.Engine {
	router, api := newTestRouter()
	handler.NewCustomerHandler(mockService).RegisterRoutes(api)
	return router
}

func TestListCustomers(t *testing.T) {
	mockService := mocks.NewMockCustomerService(t)
	router := setupCustomerTestRouter(mockService)

	mockService.On("List", mock.Anything, "park").
		Return([]*model.Customer{{ID: uuid.New(), Name: "Park"}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/v1/customers?search=park", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Park")
}

func TestCreateCustomer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockCustomerService(t)
		router := setupCustomerTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
			return c.Name == "Choi" && c.GroupType == model.CustomerGroupCouple
		})).Return(&model.Customer{ID: uuid.New(), Name: "Choi"}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/customers", handler.CustomerRequest{
			Name:      "Choi",
			Phone:     "010-1111-2222",
			GroupType: model.CustomerGroupCouple,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - name is required", func(t *testing.T) {
		mockService := mocks.NewMockCustomerService(t)
		router := setupCustomerTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/customers", handler.CustomerRequest{Phone: "010"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetCustomer(t *testing.T) {
	t.Run("Not found", func(t *testing.T) {
		mockService := mocks.NewMockCustomerService(t)
		router := setupCustomerTestRouter(mockService)
		id := uuid.New()

		mockService.On("GetByID", mock.Anything, id).Return(nil, apperrors.ErrCustomerNotFound).Once()

		req := httptest.NewRequest("GET", "/api/v1/customers/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		mockService := mocks.NewMockCustomerService(t)
		router := setupCustomerTestRouter(mockService)

		req := httptest.NewRequest("GET", "/api/v1/customers/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteCustomer(t *testing.T) {
	mockService := mocks.NewMockCustomerService(t)
	router := setupCustomerTestRouter(mockService)
	id := uuid.New()

	mockService.On("Delete", mock.Anything, id).Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/api/v1/customers/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
