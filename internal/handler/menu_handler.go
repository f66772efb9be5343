package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stolovaya/canteen-api/internal/service"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
	"github.com/stolovaya/canteen-api/pkg/response"
)

// MenuHandler wires the menu catalog endpoints.
type MenuHandler struct {
	service *service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(svc *service.MenuService) *MenuHandler {
	return &MenuHandler{service: svc}
}

// Day handles GET /menu/:day. Unknown weekdays yield an empty object.
func (h *MenuHandler) Day(c *gin.Context) {
	menu, ok := h.service.Day(c.Param("day"))
	if !ok {
		response.JSON(c, gin.H{})
		return
	}
	response.JSON(c, menu)
}

// Add handles POST /menu/add.
func (h *MenuHandler) Add(c *gin.Context) {
	var req service.DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SoftError(c, appErrors.Clone(appErrors.ErrValidation, "Некорректный запрос"))
		return
	}

	if err := h.service.AddDish(req); err != nil {
		response.SoftError(c, err)
		return
	}

	response.Message(c, "Добавлено")
}

// Delete handles POST /menu/delete.
func (h *MenuHandler) Delete(c *gin.Context) {
	var req service.DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SoftError(c, appErrors.Clone(appErrors.ErrValidation, "Некорректный запрос"))
		return
	}

	if err := h.service.RemoveDish(req); err != nil {
		response.SoftError(c, err)
		return
	}

	response.Message(c, "Удалено")
}
