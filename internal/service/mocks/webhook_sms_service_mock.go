package mocks

import (
	"context"

	"github.com/charile1/golf-reservation/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPaymentWebhookService struct {
	mock.Mock
}

func NewMockPaymentWebhookService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentWebhookService {
	m := &MockPaymentWebhookService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPaymentWebhookService) VerifySignature(signature string) error {
	args := m.Called(signature)
	return args.Error(0)
}

func (m *MockPaymentWebhookService) HandleEvent(ctx context.Context, event model.PaymentEvent) (*model.WebhookResult, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WebhookResult), args.Error(1)
}

type MockSMSService struct {
	mock.Mock
}

func NewMockSMSService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSMSService {
	m := &MockSMSService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSMSService) SendBulk(ctx context.Context, recipients []model.SMSRecipient, message string) (*model.SMSSendResult, error) {
	args := m.Called(ctx, recipients, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SMSSendResult), args.Error(1)
}
