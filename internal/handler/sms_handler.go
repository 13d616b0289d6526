package handler

import (
	"net/http"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/service"

	"github.com/gin-gonic/gin"
)

type SMSHandler struct {
	service service.SMSService
}

func NewSMSHandler(service service.SMSService) *SMSHandler {
	return &SMSHandler{service: service}
}

func (h *SMSHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("sms/send", h.Send)
}

func (h *SMSHandler) Send(c *gin.Context) {
	var req model.SendSMSRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.SendBulk(c, req.Recipients, req.Message)
	if err != nil {
		handleError(c, err, "SendSMS")
		return
	}
	handleSuccess(c, result, http.StatusOK)
}
