package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stolovaya/canteen-api/internal/models"
	"github.com/stolovaya/canteen-api/internal/service"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
	"github.com/stolovaya/canteen-api/pkg/response"
)

// AdminHandler wires the admin console endpoints.
type AdminHandler struct {
	admin  *service.AdminService
	orders *service.OrderService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(admin *service.AdminService, orders *service.OrderService) *AdminHandler {
	return &AdminHandler{admin: admin, orders: orders}
}

type userIDRequest struct {
	ID int64 `json:"id"`
}

type changeRoleRequest struct {
	ID   int64       `json:"id"`
	Role models.Role `json:"role"`
}

// Users handles GET /admin/users.
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.admin.Users(c.Request.Context())
	if err != nil {
		response.SoftError(c, err)
		return
	}
	response.JSON(c, users)
}

// DeleteUser handles POST /admin/users/delete.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	var req userIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SoftError(c, appErrors.ErrNotFound)
		return
	}

	if err := h.admin.DeleteUser(c.Request.Context(), req.ID); err != nil {
		response.SoftError(c, err)
		return
	}

	response.Message(c, "Удалено")
}

// ChangeRole handles POST /admin/users/role.
func (h *AdminHandler) ChangeRole(c *gin.Context) {
	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SoftError(c, appErrors.ErrNotFound)
		return
	}

	if err := h.admin.ChangeRole(c.Request.Context(), req.ID, req.Role); err != nil {
		response.SoftError(c, err)
		return
	}

	response.Message(c, "Обновлено")
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.orders.Stats(c.Request.Context())
	if err != nil {
		response.SoftError(c, err)
		return
	}
	response.JSON(c, stats)
}

// Clear handles POST /admin/clear.
func (h *AdminHandler) Clear(c *gin.Context) {
	h.orders.Clear(c.Request.Context())
	response.Message(c, "Очищено")
}
