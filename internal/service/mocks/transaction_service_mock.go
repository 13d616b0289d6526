package mocks

import (
	"context"

	"github.com/charile1/golf-reservation/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTransactionService struct {
	mock.Mock
}

func NewMockTransactionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionService {
	m := &MockTransactionService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionService) Create(ctx context.Context, bookingID uuid.UUID) (*model.Transaction, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockTransactionService) Cancel(ctx context.Context, bookingID uuid.UUID) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockTransactionService) Exists(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionService) SyncPrepayment(ctx context.Context, bookingID uuid.UUID, prepayment int64) error {
	args := m.Called(ctx, bookingID, prepayment)
	return args.Error(0)
}

func (m *MockTransactionService) Update(ctx context.Context, id uuid.UUID, params model.UpdateTransactionParams) (*model.Transaction, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockTransactionService) List(ctx context.Context, filter model.TransactionFilter) ([]*model.TransactionWithBooking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TransactionWithBooking), args.Error(1)
}

func (m *MockTransactionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockTransactionService) Summary(ctx context.Context, filter model.TransactionFilter) (model.TransactionSummary, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(model.TransactionSummary), args.Error(1)
}

func (m *MockTransactionService) Reconcile(ctx context.Context, bookingID uuid.UUID, reason string) error {
	args := m.Called(ctx, bookingID, reason)
	return args.Error(0)
}
