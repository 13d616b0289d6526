package service

import (
	"context"
	"errors"
	"time"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/queue"
	"github.com/charile1/golf-reservation/internal/repository"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"
	"github.com/charile1/golf-reservation/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, input model.BookingInput) (*model.Booking, error)
	// 編輯預約：狀態變化會連動帳目
	Update(ctx context.Context, id uuid.UUID, input model.BookingInput) (*model.Booking, error)
	// 確認付款：重複確認不會產生第二筆帳目
	ConfirmPayment(ctx context.Context, id uuid.UUID, paymentKey string) (*model.Booking, error)
	// 取消預約：人工與付款 webhook 共用
	Cancel(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.BookingWithTeeTime, error)
	List(ctx context.Context, filter model.BookingFilter) ([]*model.BookingWithTeeTime, error)
}

type BookingServiceImpl struct {
	repo        repository.BookingRepository
	teeTimeRepo repository.TeeTimeRepository
	ledger      TransactionService
	retries     queue.LedgerQueue
	now         func() time.Time
}

func NewBookingService(
	repo repository.BookingRepository,
	teeTimeRepo repository.TeeTimeRepository,
	ledger TransactionService,
	retries queue.LedgerQueue,
) BookingService {
	return &BookingServiceImpl{
		repo:        repo,
		teeTimeRepo: teeTimeRepo,
		ledger:      ledger,
		retries:     retries,
		now:         time.Now,
	}
}

func (s *BookingServiceImpl) Create(ctx context.Context, input model.BookingInput) (*model.Booking, error) {
	booking := &model.Booking{}
	input.ApplyTo(booking)

	status := input.Status
	if status == "" {
		status = model.BookingStatusPending
	}
	booking.SetStatus(status, s.now())

	if err := booking.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.teeTimeRepo.FindByID(ctx, booking.TeeTimeID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	if created.Status == model.BookingStatusConfirmed {
		s.ensureTransaction(ctx, created.ID)
	}

	return created, nil
}

func (s *BookingServiceImpl) Update(ctx context.Context, id uuid.UUID, input model.BookingInput) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prevStatus := booking.Status
	prevTeeTimeID := booking.TeeTimeID
	prevAmount := booking.PaymentAmount

	input.ApplyTo(booking)
	status := input.Status
	if status == "" {
		status = prevStatus
	}
	booking.SetStatus(status, s.now())

	if err := booking.Validate(); err != nil {
		return nil, err
	}
	if booking.TeeTimeID != prevTeeTimeID {
		if _, err := s.teeTimeRepo.FindByID(ctx, booking.TeeTimeID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, booking)
	if err != nil {
		return nil, err
	}

	switch {
	case updated.Status == model.BookingStatusConfirmed && prevStatus != model.BookingStatusConfirmed:
		s.ensureTransaction(ctx, updated.ID)
	case updated.Status != model.BookingStatusConfirmed && prevStatus == model.BookingStatusConfirmed:
		// 離開 CONFIRMED（取消或退回待付款）時帳目一併取消
		s.cancelTransaction(ctx, updated.ID)
	// 只同步預付款；換 tee time 或人數不改動已入帳的快照（play_date、現場付款），需由人工調整帳目
	case updated.Status == model.BookingStatusConfirmed && updated.PaymentAmount != prevAmount:
		if err := s.ledger.SyncPrepayment(ctx, updated.ID, updated.PaymentAmount); err != nil {
			logger.WithComponent("booking").Warn("Failed to sync transaction prepayment",
				zap.String("booking_id", updated.ID.String()),
				zap.Error(err),
			)
			s.scheduleRetry(ctx, updated.ID, model.LedgerJobReasonSync)
		}
	}

	return updated, nil
}

func (s *BookingServiceImpl) ConfirmPayment(ctx context.Context, id uuid.UUID, paymentKey string) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status != model.BookingStatusConfirmed {
		booking.SetStatus(model.BookingStatusConfirmed, s.now())
		if paymentKey != "" {
			booking.AppendMemo("payment key: " + paymentKey)
		}
		booking, err = s.repo.Update(ctx, booking)
		if err != nil {
			return nil, err
		}
	}

	// 已確認的預約也要補建遺失的帳目
	s.ensureTransaction(ctx, booking.ID)

	return booking, nil
}

func (s *BookingServiceImpl) Cancel(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status != model.BookingStatusCanceled {
		booking.SetStatus(model.BookingStatusCanceled, s.now())
		booking, err = s.repo.Update(ctx, booking)
		if err != nil {
			return nil, err
		}
	}

	s.cancelTransaction(ctx, booking.ID)

	return booking, nil
}

func (s *BookingServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	s.cancelTransaction(ctx, id)

	return s.repo.Delete(ctx, id)
}

func (s *BookingServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*model.BookingWithTeeTime, error) {
	return s.repo.FindWithTeeTime(ctx, id)
}

func (s *BookingServiceImpl) List(ctx context.Context, filter model.BookingFilter) ([]*model.BookingWithTeeTime, error) {
	return s.repo.List(ctx, filter)
}

// ensureTransaction 帳目不存在時建立；失敗只記錄警告，不影響預約本身
func (s *BookingServiceImpl) ensureTransaction(ctx context.Context, bookingID uuid.UUID) {
	log := logger.WithComponent("booking").With(zap.String("booking_id", bookingID.String()))

	exists, err := s.ledger.Exists(ctx, bookingID)
	if err != nil {
		log.Warn("Failed to check transaction existence", zap.Error(err))
		s.scheduleRetry(ctx, bookingID, model.LedgerJobReasonEnsure)
		return
	}
	if exists {
		return
	}

	if _, err := s.ledger.Create(ctx, bookingID); err != nil {
		if errors.Is(err, apperrors.ErrTransactionExists) {
			return
		}
		log.Warn("Failed to create transaction", zap.Error(err))
		s.scheduleRetry(ctx, bookingID, model.LedgerJobReasonEnsure)
	}
}

func (s *BookingServiceImpl) cancelTransaction(ctx context.Context, bookingID uuid.UUID) {
	if err := s.ledger.Cancel(ctx, bookingID); err != nil {
		logger.WithComponent("booking").Warn("Failed to cancel transaction",
			zap.String("booking_id", bookingID.String()),
			zap.Error(err),
		)
		s.scheduleRetry(ctx, bookingID, model.LedgerJobReasonCancel)
	}
}

// scheduleRetry 交給背景 worker 重試；未設定佇列時只留下警告
func (s *BookingServiceImpl) scheduleRetry(ctx context.Context, bookingID uuid.UUID, reason string) {
	if s.retries == nil {
		return
	}
	job := &model.LedgerSyncJob{
		BookingID:   bookingID,
		Reason:      reason,
		RequestedAt: s.now().UTC(),
	}
	if err := s.retries.Publish(ctx, job); err != nil {
		logger.WithComponent("booking").Error("Failed to schedule ledger retry",
			zap.String("booking_id", bookingID.String()),
			zap.String("reason", reason),
			zap.Error(err),
		)
	}
}
