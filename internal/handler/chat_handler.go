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

// ChatHandler handles thread and message HTTP requests
type ChatHandler struct {
	service service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// ListThreads handles GET /api/chat/threads
// @Summary List the caller's conversations, newest first
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=[]domain.ThreadResponse}
// @Router /chat/threads [get]
func (h *ChatHandler) ListThreads(c *gin.Context) {
	memberID := middleware.GetMemberID(c)

	threads, err := h.service.ListThreads(memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, threads, nil)
}

// CreateThread handles POST /api/chat/threads
// @Summary Get or create the conversation with another member
// @Description Returns the existing thread for the pair (and optional ad) or creates one. Idempotent.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreateThreadRequest true "recipient and optional ad"
// @Success 201 {object} common.APIResponse{data=domain.ThreadResponse}
// @Failure 400 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /chat/threads [post]
func (h *ChatHandler) CreateThread(c *gin.Context) {
	memberID := middleware.GetMemberID(c)

	var req domain.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	thread, err := h.service.GetOrCreateThread(memberID, req.RecipientID, req.AdID)
	if err != nil {
		respondError(c, err)
		return
	}

	common.CreatedResponse(c, thread)
}

// ListMessages handles GET /api/chat/threads/:id/messages
// @Summary List a thread's messages in append order
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "thread id"
// @Success 200 {object} common.APIResponse{data=[]domain.MessageResponse}
// @Failure 403 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /chat/threads/{id}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	memberID := middleware.GetMemberID(c)

	threadID, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid thread id", err)
		return
	}

	messages, err := h.service.ListMessages(threadID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, messages, nil)
}

// SendMessage handles POST /api/chat/threads/:id/messages
// @Summary Append a message to a thread
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "thread id"
// @Param request body domain.SendMessageRequest true "message text"
// @Success 201 {object} common.APIResponse{data=domain.MessageResponse}
// @Failure 403 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /chat/threads/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	memberID := middleware.GetMemberID(c)

	threadID, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid thread id", err)
		return
	}

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	msg, err := h.service.SendMessage(threadID, memberID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	common.CreatedResponse(c, msg)
}

// MarkRead handles POST /api/chat/messages/:id/read
// @Summary Mark a received message as read
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "message id"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /chat/messages/{id}/read [post]
func (h *ChatHandler) MarkRead(c *gin.Context) {
	memberID := middleware.GetMemberID(c)

	messageID, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid message id", err)
		return
	}

	if err := h.service.MarkRead(messageID, memberID); err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"read": true}, nil)
}
