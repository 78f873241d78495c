package handler

import (
	"net/http"

	"github.com/baraholka/baraholka-backend/internal/common"
	"github.com/baraholka/baraholka-backend/internal/domain"
	"github.com/baraholka/baraholka-backend/internal/middleware"
	"github.com/baraholka/baraholka-backend/internal/service"
	"github.com/baraholka/baraholka-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// MemberHandler handles member profile requests
type MemberHandler struct {
	service service.MemberService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(service service.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// GetMe handles GET /api/members/me
// @Summary Get own account
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=domain.MemberResponse}
// @Router /members/me [get]
func (h *MemberHandler) GetMe(c *gin.Context) {
	memberID := middleware.GetMemberID(c)

	member, err := h.service.GetMe(memberID)
	if err != nil {
		// The token subject no longer resolves to an account
		common.ErrorResponse(c, http.StatusUnauthorized, "Unknown account", err)
		return
	}

	common.SuccessResponse(c, member, nil)
}

// UpdateMe handles PUT /api/members/me
// @Summary Update own profile
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.UpdateMemberRequest true "profile fields"
// @Success 200 {object} common.APIResponse{data=domain.MemberResponse}
// @Router /members/me [put]
func (h *MemberHandler) UpdateMe(c *gin.Context) {
	memberID := middleware.GetMemberID(c)

	var req domain.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	member, err := h.service.UpdateMe(memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, member, nil)
}

// GetProfile handles GET /api/members/:id
// @Summary Get a member's public profile
// @Tags members
// @Produce json
// @Param id path int true "member id"
// @Success 200 {object} common.APIResponse{data=domain.MemberProfileResponse}
// @Failure 404 {object} common.APIResponse
// @Router /members/{id} [get]
func (h *MemberHandler) GetProfile(c *gin.Context) {
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid member id", err)
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, profile, nil)
}
