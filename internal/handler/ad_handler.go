package handler

import (
	"net/http"
	"time"

	"github.com/baraholka/baraholka-backend/internal/common"
	"github.com/baraholka/baraholka-backend/internal/domain"
	"github.com/baraholka/baraholka-backend/internal/middleware"
	"github.com/baraholka/baraholka-backend/internal/repository"
	"github.com/baraholka/baraholka-backend/internal/service"
	"github.com/baraholka/baraholka-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// AdHandler handles ad listing HTTP requests
type AdHandler struct {
	service service.AdService
}

// NewAdHandler creates a new AdHandler
func NewAdHandler(service service.AdService) *AdHandler {
	return &AdHandler{service: service}
}

// List handles GET /api/ads
// @Summary List ads with filters
// @Tags ads
// @Produce json
// @Param category query string false "auto or realty"
// @Param q query string false "title substring"
// @Param price_min query number false "minimum price"
// @Param price_max query number false "maximum price"
// @Param date_from query string false "created from (YYYY-MM-DD)"
// @Param date_to query string false "created to (YYYY-MM-DD)"
// @Param page query int false "page (default 1)"
// @Param page_size query int false "page size (default 20)"
// @Success 200 {object} common.APIResponse{data=[]domain.AdResponse}
// @Router /ads [get]
func (h *AdHandler) List(c *gin.Context) {
	params := &repository.AdListParams{
		Keyword:  c.Query("q"),
		Page:     ginutil.QueryInt(c, "page", 1),
		PageSize: ginutil.QueryInt(c, "page_size", 20),
	}

	// Unknown categories and malformed numbers are ignored, matching
	// a best-effort filter contract rather than a strict one
	switch cat := domain.AdCategory(c.Query("category")); cat {
	case domain.CategoryAuto, domain.CategoryRealty:
		params.Category = &cat
	}
	if v, ok := ginutil.QueryFloat(c, "price_min"); ok {
		params.PriceMin = &v
	}
	if v, ok := ginutil.QueryFloat(c, "price_max"); ok {
		params.PriceMax = &v
	}
	if t, err := time.Parse("2006-01-02", c.Query("date_from")); err == nil {
		params.DateFrom = &t
	}
	if t, err := time.Parse("2006-01-02", c.Query("date_to")); err == nil {
		params.DateTo = &t
	}

	result, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result.Ads, &common.Meta{
		Page:     params.Page,
		PageSize: params.PageSize,
		Total:    result.Total,
	})
}

// Get handles GET /api/ads/:id
// @Summary Get one ad
// @Tags ads
// @Produce json
// @Param id path int true "ad id"
// @Success 200 {object} common.APIResponse{data=domain.AdResponse}
// @Failure 404 {object} common.APIResponse
// @Router /ads/{id} [get]
func (h *AdHandler) Get(c *gin.Context) {
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid ad id", err)
		return
	}

	ad, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, ad, nil)
}

// Create handles POST /api/ads
// @Summary Publish a new ad
// @Tags ads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.AdRequest true "ad fields"
// @Success 201 {object} common.APIResponse{data=domain.AdResponse}
// @Router /ads [post]
func (h *AdHandler) Create(c *gin.Context) {
	memberID := middleware.GetMemberID(c)

	var req domain.AdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ad, err := h.service.Create(memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	common.CreatedResponse(c, ad)
}

// Update handles PUT /api/ads/:id
// @Summary Update an ad (owner only)
// @Tags ads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ad id"
// @Param request body domain.AdRequest true "ad fields"
// @Success 200 {object} common.APIResponse{data=domain.AdResponse}
// @Failure 403 {object} common.APIResponse
// @Router /ads/{id} [put]
func (h *AdHandler) Update(c *gin.Context) {
	memberID := middleware.GetMemberID(c)

	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid ad id", err)
		return
	}

	var req domain.AdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ad, err := h.service.Update(id, memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, ad, nil)
}

// Delete handles DELETE /api/ads/:id
// @Summary Delete an ad (owner only)
// @Tags ads
// @Produce json
// @Security BearerAuth
// @Param id path int true "ad id"
// @Success 204 "no content"
// @Failure 403 {object} common.APIResponse
// @Router /ads/{id} [delete]
func (h *AdHandler) Delete(c *gin.Context) {
	memberID := middleware.GetMemberID(c)

	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid ad id", err)
		return
	}

	if err := h.service.Delete(id, memberID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
