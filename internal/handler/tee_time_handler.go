package handler

import (
	"net/http"
	"strings"

	"github.com/charile1/golf-reservation/internal/middleware"
	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/service"

	"github.com/gin-gonic/gin"
)

type TeeTimeHandler struct {
	service service.TeeTimeService
}

func NewTeeTimeHandler(service service.TeeTimeService) *TeeTimeHandler {
	return &TeeTimeHandler{service: service}
}

func (h *TeeTimeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("tee-times", h.List)
	router.GET("tee-times/:id", h.GetByID)
	router.GET("tee-times/:id/bookings", h.Bookings)
	router.POST("tee-times", h.Create)
	router.PUT("tee-times/:id", h.Update)
	router.DELETE("tee-times/:id", h.Delete)
}

// ListTeeTimesQuery 列表篩選：status 可重複或以逗號分隔
type ListTeeTimesQuery struct {
	Month     string   `form:"month"`
	CreatedOn string   `form:"created_on"`
	Status    []string `form:"status"`
	Sort      string   `form:"sort"`
}

// CreateTeeTimeRequest 建立開球時段請求
type CreateTeeTimeRequest struct {
	Date          string              `json:"date" binding:"required"`
	Time          string              `json:"time" binding:"required"`
	CourseName    string              `json:"course_name" binding:"required"`
	RevenueType   model.RevenueType   `json:"revenue_type"`
	GreenFee      int64               `json:"green_fee"`
	OnsitePayment int64               `json:"onsite_payment"`
	CostPrice     int64               `json:"cost_price"`
	SlotsTotal    int                 `json:"slots_total"`
	Status        model.TeeTimeStatus `json:"status"`
}

// UpdateTeeTimeRequest 更新開球時段請求
type UpdateTeeTimeRequest struct {
	Date          *string              `json:"date"`
	Time          *string              `json:"time"`
	CourseName    *string              `json:"course_name"`
	RevenueType   *model.RevenueType   `json:"revenue_type"`
	GreenFee      *int64               `json:"green_fee"`
	OnsitePayment *int64               `json:"onsite_payment"`
	CostPrice     *int64               `json:"cost_price"`
	SlotsTotal    *int                 `json:"slots_total"`
	Status        *model.TeeTimeStatus `json:"status"`
}

func (h *TeeTimeHandler) List(c *gin.Context) {
	var query ListTeeTimesQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	filter := model.TeeTimeFilter{
		Month:     query.Month,
		CreatedOn: query.CreatedOn,
		SortDesc:  strings.EqualFold(query.Sort, "desc"),
	}
	for _, raw := range query.Status {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, model.TeeTimeStatus(strings.ToUpper(s)))
			}
		}
	}

	teeTimes, err := h.service.List(c, filter)
	if err != nil {
		handleError(c, err, "ListTeeTimes")
		return
	}
	handleSuccess(c, teeTimes, http.StatusOK)
}

func (h *TeeTimeHandler) GetByID(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	teeTime, err := h.service.GetByID(c, id)
	if err != nil {
		handleError(c, err, "GetTeeTime")
		return
	}
	handleSuccess(c, teeTime, http.StatusOK)
}

func (h *TeeTimeHandler) Bookings(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	bookings, err := h.service.Bookings(c, id)
	if err != nil {
		handleError(c, err, "TeeTimeBookings")
		return
	}
	handleSuccess(c, bookings, http.StatusOK)
}

func (h *TeeTimeHandler) Create(c *gin.Context) {
	var req CreateTeeTimeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	teeTime := &model.TeeTime{
		Date:          req.Date,
		Time:          req.Time,
		CourseName:    req.CourseName,
		RevenueType:   req.RevenueType,
		GreenFee:      req.GreenFee,
		OnsitePayment: req.OnsitePayment,
		CostPrice:     req.CostPrice,
		SlotsTotal:    req.SlotsTotal,
		Status:        req.Status,
	}

	created, err := h.service.Create(c, middleware.StaffID(c), teeTime)
	if err != nil {
		handleError(c, err, "CreateTeeTime")
		return
	}
	handleSuccess(c, created, http.StatusCreated)
}

func (h *TeeTimeHandler) Update(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	var req UpdateTeeTimeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.Update(c, id, model.UpdateTeeTimeParams{
		Date:          req.Date,
		Time:          req.Time,
		CourseName:    req.CourseName,
		RevenueType:   req.RevenueType,
		GreenFee:      req.GreenFee,
		OnsitePayment: req.OnsitePayment,
		CostPrice:     req.CostPrice,
		SlotsTotal:    req.SlotsTotal,
		Status:        req.Status,
	})
	if err != nil {
		handleError(c, err, "UpdateTeeTime")
		return
	}
	handleSuccess(c, updated, http.StatusOK)
}

func (h *TeeTimeHandler) Delete(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeleteTeeTime")
		return
	}
	handleSuccess(c, nil, http.StatusNoContent)
}
