package service

import (
	"context"
	"errors"
	"time"

	"github.com/charile1/golf-reservation/config"
	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/repository"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"
	"github.com/charile1/golf-reservation/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionService interface {
	// 建立帳目：同一預約只允許一筆未取消帳目
	Create(ctx context.Context, bookingID uuid.UUID) (*model.Transaction, error)
	// 取消帳目：沒有帳目不算錯誤
	Cancel(ctx context.Context, bookingID uuid.UUID) error
	Exists(ctx context.Context, bookingID uuid.UUID) (bool, error)
	// 預約金額異動時同步預付款
	SyncPrepayment(ctx context.Context, bookingID uuid.UUID, prepayment int64) error
	Update(ctx context.Context, id uuid.UUID, params model.UpdateTransactionParams) (*model.Transaction, error)
	List(ctx context.Context, filter model.TransactionFilter) ([]*model.TransactionWithBooking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	Summary(ctx context.Context, filter model.TransactionFilter) (model.TransactionSummary, error)
	// Reconcile 依預約目前狀態補建、同步或取消帳目；reason 為重試工作的來源
	Reconcile(ctx context.Context, bookingID uuid.UUID, reason string) error
}

type TransactionServiceImpl struct {
	repo        repository.TransactionRepository
	bookingRepo repository.BookingRepository
	trackMargin bool
	now         func() time.Time
}

func NewTransactionService(
	repo repository.TransactionRepository,
	bookingRepo repository.BookingRepository,
	ledger config.LedgerConfig,
) TransactionService {
	return &TransactionServiceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		trackMargin: ledger.TrackMargin,
		now:         time.Now,
	}
}

func (s *TransactionServiceImpl) Create(ctx context.Context, bookingID uuid.UUID) (*model.Transaction, error) {
	booking, err := s.bookingRepo.FindWithTeeTime(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.TeeTime == nil {
		return nil, apperrors.ErrTeeTimeNotFound
	}

	exists, err := s.repo.ExistsByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrTransactionExists
	}

	tx := model.NewTransaction(&booking.Booking, booking.TeeTime, s.now())
	if !s.trackMargin {
		tx.ClearCommission()
	}

	created, err := s.repo.Create(ctx, tx)
	if err != nil {
		return nil, err
	}

	logger.WithComponent("ledger").Info("Transaction created",
		zap.String("booking_id", bookingID.String()),
		zap.String("transaction_id", created.ID.String()),
		zap.Int64("total_price", created.TotalPrice),
		zap.Int64("commission", created.Commission),
	)
	return created, nil
}

func (s *TransactionServiceImpl) Cancel(ctx context.Context, bookingID uuid.UUID) error {
	affected, err := s.repo.CancelByBookingID(ctx, bookingID)
	if err != nil {
		return err
	}
	if affected == 0 {
		logger.WithComponent("ledger").Debug("No transaction to cancel", zap.String("booking_id", bookingID.String()))
	}
	return nil
}

func (s *TransactionServiceImpl) Exists(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	return s.repo.ExistsByBookingID(ctx, bookingID)
}

func (s *TransactionServiceImpl) SyncPrepayment(ctx context.Context, bookingID uuid.UUID, prepayment int64) error {
	tx, err := s.repo.FindActiveByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			return nil
		}
		return err
	}
	if tx.Prepayment == prepayment {
		return nil
	}

	tx.SetPrepayment(prepayment)
	if !s.trackMargin {
		tx.ClearCommission()
	}

	_, err = s.repo.Update(ctx, tx)
	return err
}

func (s *TransactionServiceImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateTransactionParams) (*model.Transaction, error) {
	if params.Status == nil && params.Memo == nil {
		return nil, apperrors.ErrInvalidInput
	}
	if params.Status != nil && !params.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "status must be one of pending, confirmed, canceled, settled")
	}

	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Status != nil {
		tx.SetStatus(*params.Status, s.now())
	}
	if params.Memo != nil {
		tx.Memo = params.Memo
	}

	return s.repo.Update(ctx, tx)
}

func (s *TransactionServiceImpl) List(ctx context.Context, filter model.TransactionFilter) ([]*model.TransactionWithBooking, error) {
	return s.repo.List(ctx, filter)
}

func (s *TransactionServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TransactionServiceImpl) Summary(ctx context.Context, filter model.TransactionFilter) (model.TransactionSummary, error) {
	transactions, err := s.repo.List(ctx, filter)
	if err != nil {
		return model.TransactionSummary{}, err
	}
	return model.Summarize(transactions), nil
}

func (s *TransactionServiceImpl) Reconcile(ctx context.Context, bookingID uuid.UUID, reason string) error {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			// 預約已刪除，留下的帳目只能取消
			return s.Cancel(ctx, bookingID)
		}
		return err
	}

	if booking.Status != model.BookingStatusConfirmed {
		return s.Cancel(ctx, bookingID)
	}

	exists, err := s.repo.ExistsByBookingID(ctx, bookingID)
	if err != nil {
		return err
	}
	if exists {
		return s.SyncPrepayment(ctx, bookingID, booking.PaymentAmount)
	}

	// 只有確認付款失敗的工作會補建；其他來源遇到已取消的紀錄（可能是人工取消）時不重建
	if reason != model.LedgerJobReasonEnsure {
		hasAny, err := s.repo.HasAnyByBookingID(ctx, bookingID)
		if err != nil {
			return err
		}
		if hasAny {
			logger.WithComponent("ledger").Info("Skip re-creating canceled transaction",
				zap.String("booking_id", bookingID.String()),
				zap.String("reason", reason),
			)
			return nil
		}
	}

	if _, err := s.Create(ctx, bookingID); err != nil && !errors.Is(err, apperrors.ErrTransactionExists) {
		return err
	}
	return nil
}
