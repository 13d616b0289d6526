package mocks

import (
	"context"

	"github.com/charile1/golf-reservation/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTeeTimeService struct {
	mock.Mock
}

func NewMockTeeTimeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTeeTimeService {
	m := &MockTeeTimeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTeeTimeService) List(ctx context.Context, filter model.TeeTimeFilter) ([]*model.TeeTimeWithSlots, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TeeTimeWithSlots), args.Error(1)
}

func (m *MockTeeTimeService) GetByID(ctx context.Context, id uuid.UUID) (*model.TeeTimeWithSlots, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeeTimeWithSlots), args.Error(1)
}

func (m *MockTeeTimeService) Create(ctx context.Context, staffID string, teeTime *model.TeeTime) (*model.TeeTimeWithSlots, error) {
	args := m.Called(ctx, staffID, teeTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeeTimeWithSlots), args.Error(1)
}

func (m *MockTeeTimeService) Update(ctx context.Context, id uuid.UUID, params model.UpdateTeeTimeParams) (*model.TeeTimeWithSlots, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeeTimeWithSlots), args.Error(1)
}

func (m *MockTeeTimeService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeeTimeService) Bookings(ctx context.Context, id uuid.UUID) ([]*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}
