package service

import (
	"context"
	"strings"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/sms"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"
	"github.com/charile1/golf-reservation/pkg/logger"

	"go.uber.org/zap"
)

type SMSService interface {
	// SendBulk 逐一發送，單一收件人失敗不影響其他人
	SendBulk(ctx context.Context, recipients []model.SMSRecipient, message string) (*model.SMSSendResult, error)
}

type SMSServiceImpl struct {
	sender sms.Sender
}

func NewSMSService(sender sms.Sender) SMSService {
	return &SMSServiceImpl{sender: sender}
}

func (s *SMSServiceImpl) SendBulk(ctx context.Context, recipients []model.SMSRecipient, message string) (*model.SMSSendResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.NewValidationError("message", "message is required")
	}
	if len(recipients) == 0 {
		return nil, apperrors.NewValidationError("recipients", "at least one recipient is required")
	}
	if !s.sender.Configured() {
		return nil, apperrors.ErrSMSNotConfigured
	}

	log := logger.WithComponent("sms")
	result := &model.SMSSendResult{
		Success:     true,
		SuccessList: make([]model.SMSRecipient, 0, len(recipients)),
		FailList:    make([]model.SMSFailure, 0),
	}

	for _, r := range recipients {
		if err := s.sender.Send(ctx, r.Phone, message); err != nil {
			log.Error("SMS send failed", zap.String("recipient", r.Name), zap.Error(err))
			result.FailList = append(result.FailList, model.SMSFailure{Recipient: r, Error: err.Error()})
			continue
		}
		result.SuccessList = append(result.SuccessList, r)
	}

	result.SentCount = len(result.SuccessList)
	result.FailCount = len(result.FailList)
	log.Info("Bulk SMS finished", zap.Int("sent", result.SentCount), zap.Int("failed", result.FailCount))

	return result, nil
}
