package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stolovaya/canteen-api/internal/service"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
	"github.com/stolovaya/canteen-api/pkg/response"
)

// ParentHandler wires the parent workspace endpoints. Unlike the rest of
// the API, the two linking endpoints report failures with conventional
// 400/404 status codes.
type ParentHandler struct {
	links  *service.LinkService
	orders *service.OrderService
}

// NewParentHandler creates a new parent handler.
func NewParentHandler(links *service.LinkService, orders *service.OrderService) *ParentHandler {
	return &ParentHandler{links: links, orders: orders}
}

// LinkChild handles POST /parent/link_child.
func (h *ParentHandler) LinkChild(c *gin.Context) {
	var req service.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "parent_id и child_email обязательны"))
		return
	}

	childID, err := h.links.Link(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, gin.H{"message": "ok", "child_id": childID})
}

// LinkChildFull handles POST /parent/link_child_full.
func (h *ParentHandler) LinkChildFull(c *gin.Context) {
	var req service.FullLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Некорректный запрос"))
		return
	}

	result, err := h.links.LinkFull(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Children handles GET /parent/children/:parent_id.
func (h *ParentHandler) Children(c *gin.Context) {
	parentID, err := strconv.ParseInt(c.Param("parent_id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Не найдено"))
		return
	}

	kids, err := h.links.Children(c.Request.Context(), parentID)
	if err != nil {
		response.SoftError(c, err)
		return
	}

	response.JSON(c, kids)
}

// StudentOrders handles GET /parent/orders/:student_id.
func (h *ParentHandler) StudentOrders(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.Param("student_id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Не найдено"))
		return
	}

	response.JSON(c, h.orders.StudentOrders(studentID))
}

// StudentReviews handles GET /parent/reviews/:student_id.
func (h *ParentHandler) StudentReviews(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.Param("student_id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Не найдено"))
		return
	}

	response.JSON(c, h.orders.StudentReviews(studentID))
}
