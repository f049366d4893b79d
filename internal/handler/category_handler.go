package handler

import (
	"fmt"
	"strings"

	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/internal/service"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	service service.CategoryService
	logger  *logger.Logger
}

func NewCategoryHandler(service service.CategoryService, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  log,
	}
}

func (h *CategoryHandler) List(c echo.Context) error {
	var categoryType *domain.CategoryType
	if raw := c.QueryParam("type"); raw != "" {
		t := domain.CategoryType(strings.ToUpper(raw))
		if !t.Valid() {
			return fmt.Errorf("%w: type must be INCOME, EXPENSE or TRANSFER", domain.ErrValidation)
		}
		categoryType = &t
	}

	h.logger.Debug(c.Request().Context(), "Listing categories",
		"type", c.QueryParam("type"),
	)

	categories, err := h.service.List(c.Request().Context(), categoryType)
	if err != nil {
		return err
	}

	return success(c, categories)
}
