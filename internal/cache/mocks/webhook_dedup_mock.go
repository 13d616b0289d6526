package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockWebhookDeduplicator struct {
	mock.Mock
}

func NewMockWebhookDeduplicator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWebhookDeduplicator {
	m := &MockWebhookDeduplicator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockWebhookDeduplicator) Acquire(ctx context.Context, eventKey string) (bool, error) {
	args := m.Called(ctx, eventKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockWebhookDeduplicator) Release(ctx context.Context, eventKey string) error {
	args := m.Called(ctx, eventKey)
	return args.Error(0)
}
