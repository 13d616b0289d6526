package handler

import (
	"net/http"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/service"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"
	"github.com/charile1/golf-reservation/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const signatureHeader = "toss-signature"

type WebhookHandler struct {
	service service.PaymentWebhookService
}

func NewWebhookHandler(service service.PaymentWebhookService) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// RegisterRoutes webhook 不走人員 JWT，以簽章驗證
func (h *WebhookHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/toss/webhook", h.Toss)
}

func (h *WebhookHandler) Toss(c *gin.Context) {
	log := logger.WithComponent("webhook")

	if err := h.service.VerifySignature(c.GetHeader(signatureHeader)); err != nil {
		log.Warn("Invalid webhook signature", zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	var event model.PaymentEvent
	if err := BindJson(c, &event); err != nil {
		return
	}

	result, err := h.service.HandleEvent(c, event)
	if err != nil {
		log = log.With(zap.String("event_type", event.EventType), zap.Error(err))
		if apperrors.IsNotFound(err) {
			log.Warn("Webhook booking not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		log.Error("Webhook processing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	handleSuccess(c, result, http.StatusOK)
}
