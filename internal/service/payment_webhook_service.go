package service

import (
	"context"
	"crypto/subtle"

	"github.com/charile1/golf-reservation/config"
	"github.com/charile1/golf-reservation/internal/cache"
	"github.com/charile1/golf-reservation/internal/model"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"
	"github.com/charile1/golf-reservation/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentWebhookService interface {
	VerifySignature(signature string) error
	HandleEvent(ctx context.Context, event model.PaymentEvent) (*model.WebhookResult, error)
}

type PaymentWebhookServiceImpl struct {
	bookings BookingService
	dedup    cache.WebhookDeduplicator
	secret   string
}

func NewPaymentWebhookService(bookings BookingService, dedup cache.WebhookDeduplicator, cfg config.TossConfig) PaymentWebhookService {
	return &PaymentWebhookServiceImpl{
		bookings: bookings,
		dedup:    dedup,
		secret:   cfg.WebhookSecret,
	}
}

// VerifySignature 未設定 secret 時不檢查
func (s *PaymentWebhookServiceImpl) VerifySignature(signature string) error {
	if s.secret == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(signature), []byte(s.secret)) != 1 {
		return apperrors.ErrInvalidSignature
	}
	return nil
}

func (s *PaymentWebhookServiceImpl) HandleEvent(ctx context.Context, event model.PaymentEvent) (*model.WebhookResult, error) {
	log := logger.WithComponent("webhook").With(
		zap.String("event_type", event.EventType),
		zap.String("order_id", event.Data.OrderID),
	)

	if event.EventType != model.PaymentEventConfirmed && event.EventType != model.PaymentEventCanceled {
		log.Info("Event type not handled")
		return &model.WebhookResult{Success: true, Message: "Event type not handled"}, nil
	}

	bookingID, err := uuid.Parse(event.Data.OrderID)
	if err != nil {
		return nil, apperrors.ErrBookingNotFound
	}

	// 1. 以 Redis SET NX 擋掉重送的事件；Redis 失效時仍繼續處理，靠帳目存在檢查防止重複
	marked := false
	if s.dedup != nil {
		acquired, err := s.dedup.Acquire(ctx, event.DedupKey())
		switch {
		case err != nil:
			log.Warn("Webhook dedup unavailable", zap.Error(err))
		case !acquired:
			log.Info("Duplicate webhook ignored")
			return &model.WebhookResult{Success: true, Duplicate: true, Message: "Duplicate event ignored"}, nil
		default:
			marked = true
		}
	}

	// 2. 處理事件
	result, err := s.dispatch(ctx, bookingID, event)
	if err != nil {
		// 3. 失敗時釋放 key，讓重送可以再次處理：使用context.Background()確保一定會執行
		if marked {
			if releaseErr := s.dedup.Release(context.Background(), event.DedupKey()); releaseErr != nil {
				log.Warn("Failed to release webhook dedup key", zap.Error(releaseErr))
			}
		}
		return nil, err
	}

	return result, nil
}

func (s *PaymentWebhookServiceImpl) dispatch(ctx context.Context, bookingID uuid.UUID, event model.PaymentEvent) (*model.WebhookResult, error) {
	switch event.EventType {
	case model.PaymentEventConfirmed:
		booking, err := s.bookings.ConfirmPayment(ctx, bookingID, event.Data.PaymentKey)
		if err != nil {
			return nil, err
		}
		if event.Data.Amount != 0 && event.Data.Amount != booking.PaymentAmount {
			logger.WithComponent("webhook").Warn("Payment amount does not match booking",
				zap.String("booking_id", bookingID.String()),
				zap.Int64("paid_amount", event.Data.Amount),
				zap.Int64("booking_amount", booking.PaymentAmount),
			)
		}
		return &model.WebhookResult{Success: true, Message: "Payment confirmed"}, nil
	default:
		if _, err := s.bookings.Cancel(ctx, bookingID); err != nil {
			return nil, err
		}
		return &model.WebhookResult{Success: true, Message: "Payment canceled"}, nil
	}
}
