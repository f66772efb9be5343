package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stolovaya/canteen-api/internal/service"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
	"github.com/stolovaya/canteen-api/pkg/response"
)

// AuthHandler wires the registration and login endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SoftError(c, appErrors.Clone(appErrors.ErrValidation, "Некорректный запрос"))
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		response.SoftError(c, err)
		return
	}

	response.Message(c, "ok")
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SoftError(c, appErrors.ErrInvalidCredentials)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.SoftError(c, err)
		return
	}

	response.JSON(c, res)
}
