package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func NewMockSender(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSender {
	m := &MockSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSender) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSender) Send(ctx context.Context, receiver string, message string) error {
	args := m.Called(ctx, receiver, message)
	return args.Error(0)
}
