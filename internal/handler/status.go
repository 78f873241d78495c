package handler

import (
	"errors"
	"net/http"

	"github.com/baraholka/baraholka-backend/internal/common"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP status codes. Every handler
// funnels service errors through here so the mapping stays in one place.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrWeakPassword),
		errors.Is(err, common.ErrSelfThread),
		errors.Is(err, common.ErrEmptyMessage),
		errors.Is(err, common.ErrOwnMessageRead),
		errors.Is(err, common.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, common.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrMemberNotFound),
		errors.Is(err, common.ErrAdNotFound),
		errors.Is(err, common.ErrThreadNotFound),
		errors.Is(err, common.ErrMessageNotFound):
		status = http.StatusNotFound
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	common.ErrorResponse(c, status, message, err)
}
