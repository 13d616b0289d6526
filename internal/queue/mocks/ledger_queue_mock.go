package mocks

import (
	"context"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/queue"

	"github.com/stretchr/testify/mock"
)

type MockLedgerQueue struct {
	mock.Mock
}

func NewMockLedgerQueue(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLedgerQueue {
	m := &MockLedgerQueue{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLedgerQueue) Publish(ctx context.Context, job *model.LedgerSyncJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockLedgerQueue) Subscribe(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}
