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

func setupTransactionTestRouter(mockService *mocks.MockTransactionService) *gin.Engine {
	router, api := newTestRouter()
	handler.NewTransactionHandler(mockService).RegisterRoutes(api)
	return router
}

func TestTransactionSummary(t *testing.T) {
	mockService := mocks.NewMockTransactionService(t)
	router := setupTransactionTestRouter(mockService)

	mockService.On("Summary", mock.Anything, model.TransactionFilter{Status: model.TransactionStatusSettled, Month: "2025-06"}).
		Return(model.TransactionSummary{TotalPrepayment: 200000, TotalOnsitePayment: 80000, TotalCommission: 120000, Count: 2}, nil).Once()

	req, _ := http.NewRequest("GET", "/api/v1/transactions/summary?status=SETTLED&month=2025-06", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(w.Body)
	assert.EqualValues(t, 120000, body["total_commission"])
	assert.EqualValues(t, 2, body["count"])
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("Success - settle", func(t *testing.T) {
		mockService := mocks.NewMockTransactionService(t)
		router := setupTransactionTestRouter(mockService)
		id := uuid.New()
		settled := model.TransactionStatusSettled

		mockService.On("Update", mock.Anything, id, model.UpdateTransactionParams{Status: &settled}).
			Return(&model.Transaction{ID: id, Status: settled}, nil).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/transactions/"+id.String(), map[string]string{"status": "settled"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		mockService := mocks.NewMockTransactionService(t)
		router := setupTransactionTestRouter(mockService)
		id := uuid.New()

		mockService.On("Update", mock.Anything, id, mock.Anything).Return(nil, apperrors.ErrTransactionNotFound).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/transactions/"+id.String(), map[string]string{"memo": "paid onsite"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
