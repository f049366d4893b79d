package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/internal/service"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

type SuggestionHandler struct {
	service service.SuggestionService
	logger  *logger.Logger
}

func NewSuggestionHandler(service service.SuggestionService, log *logger.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		service: service,
		logger:  log,
	}
}

func (h *SuggestionHandler) Category(c echo.Context) error {
	query := service.SuggestionQuery{
		Note:     c.QueryParam("note"),
		Merchant: c.QueryParam("merchant"),
	}

	if raw := c.QueryParam("amount"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: amount must be a number", domain.ErrValidation)
		}
		query.Amount = &amount
	}

	suggestions, err := h.service.Suggest(c.Request().Context(), query)
	if err != nil {
		return err
	}

	h.logger.Debug(c.Request().Context(), "Category suggestions computed",
		"count", len(suggestions),
	)

	return success(c, map[string]interface{}{
		"suggestions": suggestions,
	})
}

func (h *SuggestionHandler) ForTransaction(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	result, err := h.service.ForTransaction(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return err
	}

	return success(c, result)
}

type applyRequest struct {
	CategoryID string `json:"categoryId"`
}

func (h *SuggestionHandler) Apply(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrValidation)
	}

	tx, err := h.service.Apply(c.Request().Context(), uid, c.Param("id"), strings.TrimSpace(req.CategoryID))
	if err != nil {
		return err
	}

	return success(c, tx)
}

type applyBulkRequest struct {
	Items []domain.CategoryAssignment `json:"items"`
}

func (h *SuggestionHandler) ApplyBulk(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req applyBulkRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrValidation)
	}

	updated, err := h.service.ApplyBulk(c.Request().Context(), uid, req.Items)
	if err != nil {
		return err
	}

	return success(c, map[string]interface{}{
		"updated": updated,
		"message": fmt.Sprintf("Successfully updated %d transactions", updated),
	})
}
