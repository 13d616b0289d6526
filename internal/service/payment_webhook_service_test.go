package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/charile1/golf-reservation/config"
	cacheMocks "github.com/charile1/golf-reservation/internal/cache/mocks"
	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/service"
	serviceMocks "github.com/charile1/golf-reservation/internal/service/mocks"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupWebhookServiceMocks(t *testing.T, secret string) (
	*serviceMocks.MockBookingService,
	*cacheMocks.MockWebhookDeduplicator,
	service.PaymentWebhookService,
) {
	bookings := serviceMocks.NewMockBookingService(t)
	dedup := cacheMocks.NewMockWebhookDeduplicator(t)
	svc := service.NewPaymentWebhookService(bookings, dedup, config.TossConfig{WebhookSecret: secret})
	return bookings, dedup, svc
}

func TestPaymentWebhookService_VerifySignature(t *testing.T) {
	t.Run("No secret configured accepts anything", func(t *testing.T) {
		_, _, svc := setupWebhookServiceMocks(t, "")
		assert.NoError(t, svc.VerifySignature(""))
	})

	t.Run("Matching signature", func(t *testing.T) {
		_, _, svc := setupWebhookServiceMocks(t, "s3cret")
		assert.NoError(t, svc.VerifySignature("s3cret"))
	})

	t.Run("Wrong signature", func(t *testing.T) {
		_, _, svc := setupWebhookServiceMocks(t, "s3cret")
		assert.ErrorIs(t, svc.VerifySignature("guess"), apperrors.ErrInvalidSignature)
		assert.ErrorIs(t, svc.VerifySignature(""), apperrors.ErrInvalidSignature)
	})
}

func TestPaymentWebhookService_HandleEvent(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	confirmEvent := model.PaymentEvent{
		EventType: model.PaymentEventConfirmed,
		Data:      model.PaymentEventData{OrderID: bookingID.String(), Amount: 100000, PaymentKey: "pk_1"},
	}

	t.Run("Success - payment confirmed", func(t *testing.T) {
		bookings, dedup, svc := setupWebhookServiceMocks(t, "")

		dedup.On("Acquire", ctx, "PAYMENT_CONFIRMED:pk_1").Return(true, nil).Once()
		bookings.On("ConfirmPayment", ctx, bookingID, "pk_1").
			Return(&model.Booking{ID: bookingID, PaymentAmount: 100000, Status: model.BookingStatusConfirmed}, nil).Once()

		result, err := svc.HandleEvent(ctx, confirmEvent)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, result.Duplicate)
		assert.Equal(t, "Payment confirmed", result.Message)
	})

	t.Run("Success - amount mismatch still confirms", func(t *testing.T) {
		bookings, dedup, svc := setupWebhookServiceMocks(t, "")

		dedup.On("Acquire", ctx, mock.Anything).Return(true, nil).Once()
		bookings.On("ConfirmPayment", ctx, bookingID, "pk_1").
			Return(&model.Booking{ID: bookingID, PaymentAmount: 90000}, nil).Once()

		result, err := svc.HandleEvent(ctx, confirmEvent)

		require.NoError(t, err)
		assert.Equal(t, "Payment confirmed", result.Message)
	})

	t.Run("Success - redelivery is ignored", func(t *testing.T) {
		bookings, dedup, svc := setupWebhookServiceMocks(t, "")

		dedup.On("Acquire", ctx, "PAYMENT_CONFIRMED:pk_1").Return(false, nil).Once()

		result, err := svc.HandleEvent(ctx, confirmEvent)

		require.NoError(t, err)
		assert.True(t, result.Duplicate)
		bookings.AssertNotCalled(t, "ConfirmPayment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - redis outage falls back to processing", func(t *testing.T) {
		bookings, dedup, svc := setupWebhookServiceMocks(t, "")

		dedup.On("Acquire", ctx, mock.Anything).Return(false, errors.New("connection refused")).Once()
		bookings.On("ConfirmPayment", ctx, bookingID, "pk_1").Return(&model.Booking{ID: bookingID, PaymentAmount: 100000}, nil).Once()

		_, err := svc.HandleEvent(ctx, confirmEvent)

		require.NoError(t, err)
		dedup.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})

	t.Run("Success - payment canceled goes through the shared cancel", func(t *testing.T) {
		bookings, dedup, svc := setupWebhookServiceMocks(t, "")
		event := model.PaymentEvent{
			EventType: model.PaymentEventCanceled,
			Data:      model.PaymentEventData{OrderID: bookingID.String()},
		}

		dedup.On("Acquire", ctx, "PAYMENT_CANCELED:"+bookingID.String()).Return(true, nil).Once()
		bookings.On("Cancel", ctx, bookingID).Return(&model.Booking{ID: bookingID, Status: model.BookingStatusCanceled}, nil).Once()

		result, err := svc.HandleEvent(ctx, event)

		require.NoError(t, err)
		assert.Equal(t, "Payment canceled", result.Message)
	})

	t.Run("Success - unknown event type", func(t *testing.T) {
		bookings, dedup, svc := setupWebhookServiceMocks(t, "")

		result, err := svc.HandleEvent(ctx, model.PaymentEvent{EventType: "DEPOSIT_CALLBACK"})

		require.NoError(t, err)
		assert.Equal(t, "Event type not handled", result.Message)
		dedup.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything)
		bookings.AssertNotCalled(t, "ConfirmPayment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - invalid order id is not found", func(t *testing.T) {
		_, _, svc := setupWebhookServiceMocks(t, "")
		event := confirmEvent
		event.Data.OrderID = "order-123"

		_, err := svc.HandleEvent(ctx, event)

		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	})

	t.Run("Failed - processing error releases the dedup key", func(t *testing.T) {
		bookings, dedup, svc := setupWebhookServiceMocks(t, "")

		dedup.On("Acquire", ctx, "PAYMENT_CONFIRMED:pk_1").Return(true, nil).Once()
		bookings.On("ConfirmPayment", ctx, bookingID, "pk_1").Return(nil, apperrors.ErrBookingNotFound).Once()
		dedup.On("Release", mock.Anything, "PAYMENT_CONFIRMED:pk_1").Return(nil).Once()

		_, err := svc.HandleEvent(ctx, confirmEvent)

		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	})
}
