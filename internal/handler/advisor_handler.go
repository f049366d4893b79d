package handler

import (
	"fmt"

	"github.com/grachmannico95/fintrack-be/internal/ai"
	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/internal/service"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

type AdvisorHandler struct {
	service service.AdvisorService
	logger  *logger.Logger
}

func NewAdvisorHandler(service service.AdvisorService, log *logger.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		service: service,
		logger:  log,
	}
}

type chatMessageRequest struct {
	Message             string       `json:"message"`
	ConversationHistory []ai.Message `json:"conversationHistory"`
	IncludeContext      bool         `json:"includeContext"`
}

func (h *AdvisorHandler) Message(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req chatMessageRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrValidation)
	}

	h.logger.Debug(c.Request().Context(), "Handling advisor message",
		"history_length", len(req.ConversationHistory),
		"include_context", req.IncludeContext,
	)

	reply, err := h.service.Chat(c.Request().Context(), uid, service.ChatRequest{
		Message:        req.Message,
		History:        req.ConversationHistory,
		IncludeContext: req.IncludeContext,
	})
	if err != nil {
		return err
	}

	return success(c, reply)
}
