package handler

import (
	"net/http"
	"strings"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("bookings", h.List)
	router.GET("bookings/:id", h.GetByID)
	router.POST("bookings", h.Create)
	router.PUT("bookings/:id", h.Update)
	router.PUT("bookings/:id/confirm", h.Confirm)
	router.PUT("bookings/:id/cancel", h.Cancel)
	router.DELETE("bookings/:id", h.Delete)
}

type ListBookingsQuery struct {
	Status    string `form:"status"`
	Month     string `form:"month"`
	TeeTimeID string `form:"tee_time_id"`
}

// BookingRequest 建立與編輯預約共用
type BookingRequest struct {
	TeeTimeID      uuid.UUID           `json:"tee_time_id"`
	CustomerID     *uuid.UUID          `json:"customer_id"`
	Name           string              `json:"name"`
	Phone          string              `json:"phone"`
	PeopleCount    int                 `json:"people_count"`
	CompanionNames []string            `json:"companion_names"`
	BookingType    model.BookingType   `json:"booking_type"`
	PaymentAmount  int64               `json:"payment_amount"`
	Status         model.BookingStatus `json:"status"`
	Memo           *string             `json:"memo"`
}

func (r BookingRequest) toInput() model.BookingInput {
	return model.BookingInput{
		TeeTimeID:      r.TeeTimeID,
		CustomerID:     r.CustomerID,
		Name:           strings.TrimSpace(r.Name),
		Phone:          strings.TrimSpace(r.Phone),
		PeopleCount:    r.PeopleCount,
		CompanionNames: r.CompanionNames,
		BookingType:    r.BookingType,
		PaymentAmount:  r.PaymentAmount,
		Status:         r.Status,
		Memo:           r.Memo,
	}
}

// ConfirmBookingRequest body 可省略
type ConfirmBookingRequest struct {
	PaymentKey string `json:"payment_key"`
}

func (h *BookingHandler) List(c *gin.Context) {
	var query ListBookingsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	filter := model.BookingFilter{
		Status: model.BookingStatus(strings.ToUpper(query.Status)),
		Month:  query.Month,
	}
	if query.TeeTimeID != "" {
		teeTimeID, err := uuid.Parse(query.TeeTimeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tee_time_id"})
			return
		}
		filter.TeeTimeID = &teeTimeID
	}

	bookings, err := h.service.List(c, filter)
	if err != nil {
		handleError(c, err, "ListBookings")
		return
	}
	handleSuccess(c, bookings, http.StatusOK)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	booking, err := h.service.GetByID(c, id)
	if err != nil {
		handleError(c, err, "GetBooking")
		return
	}
	handleSuccess(c, booking, http.StatusOK)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req BookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, req.toInput())
	if err != nil {
		handleError(c, err, "CreateBooking")
		return
	}
	handleSuccess(c, created, http.StatusCreated)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	var req BookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.Update(c, id, req.toInput())
	if err != nil {
		handleError(c, err, "UpdateBooking")
		return
	}
	handleSuccess(c, updated, http.StatusOK)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	var req ConfirmBookingRequest
	if c.Request.ContentLength > 0 {
		if err := BindJson(c, &req); err != nil {
			return
		}
	}

	booking, err := h.service.ConfirmPayment(c, id, req.PaymentKey)
	if err != nil {
		handleError(c, err, "ConfirmBooking")
		return
	}
	handleSuccess(c, booking, http.StatusOK)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	booking, err := h.service.Cancel(c, id)
	if err != nil {
		handleError(c, err, "CancelBooking")
		return
	}
	handleSuccess(c, booking, http.StatusOK)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeleteBooking")
		return
	}
	handleSuccess(c, nil, http.StatusNoContent)
}
