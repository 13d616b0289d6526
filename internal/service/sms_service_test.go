package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/service"
	smsMocks "github.com/charile1/golf-reservation/internal/sms/mocks"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSMSService_SendBulk(t *testing.T) {
	ctx := context.Background()
	recipients := []model.SMSRecipient{
		{Name: "Kim", Phone: "01011112222"},
		{Name: "Lee", Phone: "01033334444"},
		{Name: "Park", Phone: "01055556666"},
	}

	t.Run("Success - partial failure is reported per recipient", func(t *testing.T) {
		sender := smsMocks.NewMockSender(t)
		svc := service.NewSMSService(sender)

		sender.On("Configured").Return(true).Once()
		sender.On("Send", ctx, "01011112222", "tee time moved").Return(nil).Once()
		sender.On("Send", ctx, "01033334444", "tee time moved").
			Return(fmt.Errorf("%w: invalid receiver (code -101)", apperrors.ErrSMSRejected)).Once()
		sender.On("Send", ctx, "01055556666", "tee time moved").Return(nil).Once()

		result, err := svc.SendBulk(ctx, recipients, "tee time moved")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.SentCount)
		assert.Equal(t, 1, result.FailCount)
		assert.Equal(t, []model.SMSRecipient{recipients[0], recipients[2]}, result.SuccessList)
		require.Len(t, result.FailList, 1)
		assert.Equal(t, "Lee", result.FailList[0].Recipient.Name)
		assert.Contains(t, result.FailList[0].Error, "invalid receiver")
	})

	t.Run("Failed - gateway not configured", func(t *testing.T) {
		sender := smsMocks.NewMockSender(t)
		svc := service.NewSMSService(sender)

		sender.On("Configured").Return(false).Once()

		_, err := svc.SendBulk(ctx, recipients, "hello")

		assert.ErrorIs(t, err, apperrors.ErrSMSNotConfigured)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - empty message", func(t *testing.T) {
		sender := smsMocks.NewMockSender(t)
		svc := service.NewSMSService(sender)

		_, err := svc.SendBulk(ctx, recipients, "  ")

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Failed - no recipients", func(t *testing.T) {
		sender := smsMocks.NewMockSender(t)
		svc := service.NewSMSService(sender)

		_, err := svc.SendBulk(ctx, nil, "hello")

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
