package handler

import (
	"net/http"

	"github.com/baraholka/baraholka-backend/internal/common"
	"github.com/baraholka/baraholka-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register
// @Summary Register a new member
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "registration data"
// @Success 201 {object} common.APIResponse{data=domain.MemberResponse}
// @Failure 400 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	member, err := h.service.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	common.CreatedResponse(c, member)
}

// Login handles POST /api/auth/login
// @Summary Authenticate and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "credentials"
// @Success 200 {object} common.APIResponse{data=service.LoginResponse}
// @Failure 400 {object} common.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, nil)
}
