package service

import (
	"context"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/repository"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"
	"github.com/charile1/golf-reservation/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TeeTimeService interface {
	List(ctx context.Context, filter model.TeeTimeFilter) ([]*model.TeeTimeWithSlots, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.TeeTimeWithSlots, error)
	// Create 由操作人員建立，staffID 寫入 created_by
	Create(ctx context.Context, staffID string, teeTime *model.TeeTime) (*model.TeeTimeWithSlots, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateTeeTimeParams) (*model.TeeTimeWithSlots, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Bookings(ctx context.Context, id uuid.UUID) ([]*model.Booking, error)
}

type TeeTimeServiceImpl struct {
	repo        repository.TeeTimeRepository
	bookingRepo repository.BookingRepository
	ledger      TransactionService
}

func NewTeeTimeService(repo repository.TeeTimeRepository, bookingRepo repository.BookingRepository, ledger TransactionService) TeeTimeService {
	return &TeeTimeServiceImpl{repo: repo, bookingRepo: bookingRepo, ledger: ledger}
}

func (s *TeeTimeServiceImpl) List(ctx context.Context, filter model.TeeTimeFilter) ([]*model.TeeTimeWithSlots, error) {
	teeTimes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(teeTimes))
	for _, t := range teeTimes {
		ids = append(ids, t.ID)
	}
	bookings, err := s.bookingRepo.ListByTeeTimeIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	counts := model.AggregateSlotsByTeeTime(bookings)

	result := make([]*model.TeeTimeWithSlots, 0, len(teeTimes))
	for _, t := range teeTimes {
		result = append(result, model.WithSlots(t, counts[t.ID]))
	}
	return result, nil
}

func (s *TeeTimeServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*model.TeeTimeWithSlots, error) {
	teeTime, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withSlots(ctx, teeTime)
}

func (s *TeeTimeServiceImpl) Create(ctx context.Context, staffID string, teeTime *model.TeeTime) (*model.TeeTimeWithSlots, error) {
	if teeTime.RevenueType == "" {
		teeTime.RevenueType = model.RevenueTypeStandard
	}
	if teeTime.Status == "" {
		teeTime.Status = model.TeeTimeStatusAvailable
	}
	if err := teeTime.Validate(); err != nil {
		return nil, err
	}
	if staffID != "" {
		teeTime.CreatedBy = &staffID
	}

	created, err := s.repo.Create(ctx, teeTime)
	if err != nil {
		return nil, err
	}
	return model.WithSlots(created, model.SlotCounts{}), nil
}

func (s *TeeTimeServiceImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateTeeTimeParams) (*model.TeeTimeWithSlots, error) {
	if params.IsEmpty() {
		return nil, apperrors.ErrInvalidInput
	}

	teeTime, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	params.Apply(teeTime)
	if err := teeTime.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	return s.withSlots(ctx, updated)
}

// Delete 刪除時段前先取消其預約底下的帳目，預約本身由資料庫 cascade 刪除
func (s *TeeTimeServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	bookings, err := s.bookingRepo.ListByTeeTimeIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return err
	}
	for _, b := range bookings {
		if err := s.ledger.Cancel(ctx, b.ID); err != nil {
			logger.WithComponent("tee_time").Warn("Failed to cancel transaction",
				zap.String("tee_time_id", id.String()),
				zap.String("booking_id", b.ID.String()),
				zap.Error(err),
			)
		}
	}
	return s.repo.Delete(ctx, id)
}

func (s *TeeTimeServiceImpl) Bookings(ctx context.Context, id uuid.UUID) ([]*model.Booking, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByTeeTimeIDs(ctx, []uuid.UUID{id})
}

func (s *TeeTimeServiceImpl) withSlots(ctx context.Context, teeTime *model.TeeTime) (*model.TeeTimeWithSlots, error) {
	bookings, err := s.bookingRepo.ListByTeeTimeIDs(ctx, []uuid.UUID{teeTime.ID})
	if err != nil {
		return nil, err
	}
	return model.WithSlots(teeTime, model.AggregateSlots(bookings)), nil
}
