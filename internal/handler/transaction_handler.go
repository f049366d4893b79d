package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/internal/service"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

const dateParamLayout = "2006-01-02"

type TransactionHandler struct {
	service service.TransactionService
	logger  *logger.Logger
}

func NewTransactionHandler(service service.TransactionService, log *logger.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		logger:  log,
	}
}

func (h *TransactionHandler) List(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		return err
	}
	filter = filter.Normalize()

	items, total, err := h.service.List(c.Request().Context(), uid, filter)
	if err != nil {
		return err
	}

	return success(c, map[string]interface{}{
		"items":   items,
		"page":    filter.Page,
		"perPage": filter.PerPage,
		"total":   total,
	})
}

func (h *TransactionHandler) Export(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	count, err := h.service.Export(c.Request().Context(), uid, &buf)
	if err != nil {
		return err
	}

	h.logger.Debug(c.Request().Context(), "Serving transaction export",
		"rows", count,
	)

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="transactions.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *TransactionHandler) Get(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	tx, err := h.service.Get(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return err
	}

	return success(c, tx)
}

func (h *TransactionHandler) Create(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req service.TransactionInput
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrValidation)
	}

	tx, err := h.service.Create(c.Request().Context(), uid, req)
	if err != nil {
		return err
	}

	return created(c, tx)
}

func (h *TransactionHandler) Update(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req service.TransactionPatch
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrValidation)
	}

	tx, err := h.service.Update(c.Request().Context(), uid, c.Param("id"), req)
	if err != nil {
		return err
	}

	return success(c, tx)
}

func (h *TransactionHandler) Delete(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return err
	}

	return success(c, map[string]string{
		"message": "Transaction deleted successfully",
	})
}

func parseTransactionFilter(c echo.Context) (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter

	if raw := c.QueryParam("type"); raw != "" {
		txType := domain.TransactionType(strings.ToUpper(raw))
		if txType != domain.TransactionTypeIn && txType != domain.TransactionTypeOut {
			return filter, fmt.Errorf("%w: type must be IN or OUT", domain.ErrValidation)
		}
		filter.Type = &txType
	}

	filter.CategoryID = c.QueryParam("categoryId")

	for _, p := range []struct {
		name   string
		target **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		raw := c.QueryParam(p.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(dateParamLayout, raw)
		if err != nil {
			return filter, fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrValidation, p.name)
		}
		*p.target = &t
	}

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	filter.Page = page

	perPage, err := strconv.Atoi(c.QueryParam("perPage"))
	if err != nil || perPage < 1 {
		perPage = 20
	}
	filter.PerPage = perPage

	return filter, nil
}
