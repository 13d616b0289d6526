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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSMSTestRouter(mockService *mocks.MockSMSService) *gin.Engine {
	router, api := newTestRouter()
	handler.NewSMSHandler(mockService).RegisterRoutes(api)
	return router
}

func TestSendSMS(t *testing.T) {
	recipients := []model.SMSRecipient{{Name: "Kim", Phone: "01011112222"}}

	t.Run("Success - per recipient result", func(t *testing.T) {
		mockService := mocks.NewMockSMSService(t)
		router := setupSMSTestRouter(mockService)

		mockService.On("SendBulk", mock.Anything, recipients, "see you at 7am").Return(&model.SMSSendResult{
			Success:     true,
			SentCount:   1,
			SuccessList: recipients,
			FailList:    []model.SMSFailure{},
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/sms/send", model.SendSMSRequest{Recipients: recipients, Message: "see you at 7am"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, decodeBody(w.Body)["sentCount"])
	})

	t.Run("Failed - gateway not configured", func(t *testing.T) {
		mockService := mocks.NewMockSMSService(t)
		router := setupSMSTestRouter(mockService)

		mockService.On("SendBulk", mock.Anything, recipients, "hello").Return(nil, apperrors.ErrSMSNotConfigured).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/sms/send", model.SendSMSRequest{Recipients: recipients, Message: "hello"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "SMS gateway is not configured", decodeBody(w.Body)["error"])
	})

	t.Run("Failed - recipient without phone", func(t *testing.T) {
		mockService := mocks.NewMockSMSService(t)
		router := setupSMSTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/sms/send", map[string]interface{}{
			"recipients": []map[string]string{{"name": "Kim"}},
			"message":    "hello",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "SendBulk", mock.Anything, mock.Anything, mock.Anything)
	})
}
