package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stolovaya/canteen-api/internal/service"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
	"github.com/stolovaya/canteen-api/pkg/response"
)

// CookHandler wires the cook workspace endpoints.
type CookHandler struct {
	orders *service.OrderService
	notes  *service.NoteService
}

// NewCookHandler creates a new cook handler.
func NewCookHandler(orders *service.OrderService, notes *service.NoteService) *CookHandler {
	return &CookHandler{orders: orders, notes: notes}
}

// OrdersToday handles GET /cook/orders_today.
func (h *CookHandler) OrdersToday(c *gin.Context) {
	response.JSON(c, h.orders.OrdersToday())
}

// MarkGiven handles POST /cook/mark_given. A missing, non-integer or
// out-of-range id is reported in the body with HTTP 200.
func (h *CookHandler) MarkGiven(c *gin.Context) {
	var req service.MarkGivenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SoftError(c, appErrors.ErrNotFound)
		return
	}

	if err := h.orders.MarkGiven(c.Request.Context(), req); err != nil {
		response.SoftError(c, err)
		return
	}

	response.Message(c, "Отмечено")
}

// Reviews handles GET /cook/reviews.
func (h *CookHandler) Reviews(c *gin.Context) {
	response.JSON(c, h.orders.Reviews())
}

// NotesToday handles GET /cook/notes_today.
func (h *CookHandler) NotesToday(c *gin.Context) {
	notes, err := h.notes.CookNotesToday(c.Request.Context())
	if err != nil {
		response.SoftError(c, err)
		return
	}
	response.JSON(c, notes)
}
