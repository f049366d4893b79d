package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/internal/service"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type BudgetHandler struct {
	service service.BudgetService
	logger  *logger.Logger
}

func NewBudgetHandler(service service.BudgetService, log *logger.Logger) *BudgetHandler {
	return &BudgetHandler{
		service: service,
		logger:  log,
	}
}

// budgetLimit accepts a JSON number or a string such as "1,500.00".
type budgetLimit struct {
	value decimal.Decimal
	set   bool
}

func (l *budgetLimit) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if string(raw) == "null" {
		return nil
	}

	text := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return err
		}
		text = strings.Join(strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		}), "")
	}

	value, err := decimal.NewFromString(text)
	if err != nil {
		return fmt.Errorf("limit must be a number: %w", err)
	}

	l.value = value
	l.set = true
	return nil
}

type upsertBudgetRequest struct {
	CategoryID string      `json:"categoryId"`
	Month      string      `json:"month"`
	Limit      budgetLimit `json:"limit"`
}

type updateBudgetRequest struct {
	Limit budgetLimit `json:"limit"`
}

func (h *BudgetHandler) List(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	filter := domain.BudgetFilter{Month: strings.TrimSpace(c.QueryParam("month"))}
	if filter.Page, err = strconv.Atoi(c.QueryParam("page")); err != nil {
		filter.Page = 1
	}
	if filter.PerPage, err = strconv.Atoi(c.QueryParam("limit")); err != nil {
		filter.PerPage = 20
	}
	filter = filter.Normalize()

	items, total, err := h.service.List(c.Request().Context(), uid, filter)
	if err != nil {
		return err
	}

	return success(c, map[string]interface{}{
		"items": items,
		"total": total,
		"page":  filter.Page,
		"limit": filter.PerPage,
	})
}

func (h *BudgetHandler) Upsert(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req upsertBudgetRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrValidation)
	}
	if !req.Limit.set {
		return fmt.Errorf("%w: limit is required", domain.ErrValidation)
	}

	budget, err := h.service.Upsert(c.Request().Context(), uid, req.CategoryID, strings.TrimSpace(req.Month), req.Limit.value)
	if err != nil {
		return err
	}

	return created(c, budget)
}

func (h *BudgetHandler) Update(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req updateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrValidation)
	}
	if !req.Limit.set {
		return fmt.Errorf("%w: limit is required", domain.ErrValidation)
	}

	budget, err := h.service.UpdateLimit(c.Request().Context(), uid, c.Param("id"), req.Limit.value)
	if err != nil {
		return err
	}

	return success(c, budget)
}

func (h *BudgetHandler) Delete(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), uid, id); err != nil {
		return err
	}

	return success(c, map[string]string{"id": id})
}

// Summary reads the month from periodMonth, falling back to month.
func (h *BudgetHandler) Summary(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	month := strings.TrimSpace(c.QueryParam("periodMonth"))
	if month == "" {
		month = strings.TrimSpace(c.QueryParam("month"))
	}
	if month == "" {
		return fmt.Errorf("%w: month is required", domain.ErrValidation)
	}

	summary, err := h.service.Summary(c.Request().Context(), uid, month)
	if err != nil {
		return err
	}

	h.logger.Debug(c.Request().Context(), "Budget summary computed",
		"month", month,
		"budgets", len(summary.Items),
	)

	return success(c, summary)
}
