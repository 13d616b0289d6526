package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/charile1/golf-reservation/config"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"
)

type Sender interface {
	Configured() bool
	Send(ctx context.Context, receiver string, message string) error
}

type AligoClient struct {
	cfg        config.AligoConfig
	httpClient *http.Client
}

func NewAligoClient(cfg config.AligoConfig) Sender {
	return &AligoClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// aligoResponse result_code 可能是字串或數字
type aligoResponse struct {
	ResultCode json.Number `json:"result_code"`
	Message    string      `json:"message"`
}

func (c *AligoClient) Configured() bool {
	return c.cfg.Configured()
}

func (c *AligoClient) Send(ctx context.Context, receiver string, message string) error {
	if !c.Configured() {
		return apperrors.ErrSMSNotConfigured
	}

	form := url.Values{}
	form.Set("key", c.cfg.APIKey)
	form.Set("user_id", c.cfg.UserID)
	form.Set("sender", c.cfg.SenderPhone)
	form.Set("receiver", receiver)
	form.Set("msg", message)
	form.Set("msg_type", "SMS")
	form.Set("title", "")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("aligo request: %w", err)
	}
	defer resp.Body.Close()

	var result aligoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("aligo response (status %d): %w", resp.StatusCode, err)
	}

	if result.ResultCode.String() != "1" {
		return fmt.Errorf("%w: %s (code %s)", apperrors.ErrSMSRejected, result.Message, result.ResultCode)
	}

	return nil
}
