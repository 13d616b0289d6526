package handler

import (
	"net/http"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/service"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(service service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("customers", h.List)
	router.GET("customers/:id", h.GetByID)
	router.POST("customers", h.Create)
	router.PUT("customers/:id", h.Update)
	router.DELETE("customers/:id", h.Delete)
}

// CustomerRequest 建立與編輯客戶共用
type CustomerRequest struct {
	Name      string                  `json:"name" binding:"required"`
	Phone     string                  `json:"phone"`
	Email     *string                 `json:"email"`
	GroupType model.CustomerGroupType `json:"group_type"`
	Memo      *string                 `json:"memo"`
}

func (r CustomerRequest) toModel() *model.Customer {
	return &model.Customer{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		GroupType: r.GroupType,
		Memo:      r.Memo,
	}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.service.List(c, c.Query("search"))
	if err != nil {
		handleError(c, err, "ListCustomers")
		return
	}
	handleSuccess(c, customers, http.StatusOK)
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	customer, err := h.service.GetByID(c, id)
	if err != nil {
		handleError(c, err, "GetCustomer")
		return
	}
	handleSuccess(c, customer, http.StatusOK)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, req.toModel())
	if err != nil {
		handleError(c, err, "CreateCustomer")
		return
	}
	handleSuccess(c, created, http.StatusCreated)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	var req CustomerRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	updated, err := h.service.Update(c, id, req.toModel())
	if err != nil {
		handleError(c, err, "UpdateCustomer")
		return
	}
	handleSuccess(c, updated, http.StatusOK)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeleteCustomer")
		return
	}
	handleSuccess(c, nil, http.StatusNoContent)
}
