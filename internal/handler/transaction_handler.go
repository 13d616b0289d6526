package handler

import (
	"net/http"
	"strings"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(service service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

func (h *TransactionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("transactions", h.List)
	router.GET("transactions/summary", h.Summary)
	router.GET("transactions/:id", h.GetByID)
	router.PUT("transactions/:id", h.Update)
}

type ListTransactionsQuery struct {
	Status string `form:"status"`
	Month  string `form:"month"`
}

func (q ListTransactionsQuery) filter() model.TransactionFilter {
	return model.TransactionFilter{
		Status: model.TransactionStatus(strings.ToLower(q.Status)),
		Month:  q.Month,
	}
}

// UpdateTransactionRequest 人工調整帳目狀態或備註
type UpdateTransactionRequest struct {
	Status *model.TransactionStatus `json:"status"`
	Memo   *string                  `json:"memo"`
}

func (h *TransactionHandler) List(c *gin.Context) {
	var query ListTransactionsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	transactions, err := h.service.List(c, query.filter())
	if err != nil {
		handleError(c, err, "ListTransactions")
		return
	}
	handleSuccess(c, transactions, http.StatusOK)
}

func (h *TransactionHandler) Summary(c *gin.Context) {
	var query ListTransactionsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	summary, err := h.service.Summary(c, query.filter())
	if err != nil {
		handleError(c, err, "TransactionSummary")
		return
	}
	handleSuccess(c, summary, http.StatusOK)
}

func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	tx, err := h.service.GetByID(c, id)
	if err != nil {
		handleError(c, err, "GetTransaction")
		return
	}
	handleSuccess(c, tx, http.StatusOK)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	var req UpdateTransactionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	updated, err := h.service.Update(c, id, model.UpdateTransactionParams{
		Status: req.Status,
		Memo:   req.Memo,
	})
	if err != nil {
		handleError(c, err, "UpdateTransaction")
		return
	}
	handleSuccess(c, updated, http.StatusOK)
}
