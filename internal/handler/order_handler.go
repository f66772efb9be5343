package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stolovaya/canteen-api/internal/service"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
	"github.com/stolovaya/canteen-api/pkg/response"
)

// OrderHandler wires the student/parent-facing order and review endpoints.
type OrderHandler struct {
	service *service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{service: svc}
}

// Order handles POST /order.
func (h *OrderHandler) Order(c *gin.Context) {
	var req service.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SoftError(c, appErrors.Clone(appErrors.ErrValidation, "Некорректный запрос"))
		return
	}

	order, err := h.service.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		response.SoftError(c, err)
		return
	}

	response.JSON(c, gin.H{"message": "ok", "id": order.ID})
}

// Review handles POST /review.
func (h *OrderHandler) Review(c *gin.Context) {
	var req service.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SoftError(c, appErrors.Clone(appErrors.ErrValidation, "Некорректный запрос"))
		return
	}

	h.service.LeaveReview(c.Request.Context(), req)
	response.Message(c, "ok")
}
