package handler

import (
	"errors"
	"net/http"

	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"
	"github.com/charile1/golf-reservation/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// BindID 解析路徑上的 :id
func BindID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid id",
		})
		return uuid.Nil, false
	}
	return id, true
}

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input",
		})
	case errors.Is(err, apperrors.ErrTeeTimeNotFound):
		log.Warn("Tee time not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Tee time not found",
		})
	case errors.Is(err, apperrors.ErrBookingNotFound):
		log.Warn("Booking not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, apperrors.ErrCustomerNotFound):
		log.Warn("Customer not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Customer not found",
		})
	case errors.Is(err, apperrors.ErrTransactionNotFound):
		log.Warn("Transaction not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Transaction not found",
		})
	case errors.Is(err, apperrors.ErrTransactionExists):
		log.Warn("Transaction already exists")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Transaction already exists",
		})
	case errors.Is(err, apperrors.ErrSMSNotConfigured):
		log.Error("SMS gateway not configured")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "SMS gateway is not configured",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func handleSuccess(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}
