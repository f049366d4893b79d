package handler

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/grachmannico95/fintrack-be/internal/csvimport"
	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/internal/service"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

type ImportHandler struct {
	service        service.ImportService
	maxUploadBytes int64
	logger         *logger.Logger
}

func NewImportHandler(service service.ImportService, maxUploadBytes int64, log *logger.Logger) *ImportHandler {
	return &ImportHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         log,
	}
}

// commitRequest keeps mapping values nullable so {"type": null} reads as unmapped.
type commitRequest struct {
	PreviewID string          `json:"previewId"`
	Mapping   map[string]*int `json:"mapping"`
}

func (h *ImportHandler) Preview(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return domain.ErrFileTooLarge
		}
		h.logger.Debug(ctx, "No file in import upload",
			"error", err,
		)
		return domain.ErrFileRequired
	}

	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		return domain.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	var reader io.Reader = src
	if h.maxUploadBytes > 0 {
		reader = io.LimitReader(src, h.maxUploadBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read uploaded file: %w", err)
	}

	h.logger.Info(ctx, "Handling import preview",
		"file_name", file.Filename,
		"size", len(data),
	)

	result, err := h.service.Preview(ctx, uid, file.Filename, data)
	if err != nil {
		return err
	}

	return success(c, result)
}

func (h *ImportHandler) Commit(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req commitRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrValidation)
	}

	req.PreviewID = strings.TrimSpace(req.PreviewID)
	if req.PreviewID == "" {
		return fmt.Errorf("%w: previewId is required", domain.ErrValidation)
	}
	if req.Mapping == nil {
		return fmt.Errorf("%w: mapping is required", domain.ErrValidation)
	}

	mapping := csvimport.ColumnMapping{}
	for field, idx := range req.Mapping {
		if idx != nil {
			mapping[csvimport.Field(field)] = *idx
		}
	}

	result, err := h.service.Commit(ctx, uid, req.PreviewID, mapping)
	if err != nil {
		return err
	}

	return success(c, result)
}

func (h *ImportHandler) History(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	records, err := h.service.History(c.Request().Context(), uid)
	if err != nil {
		return err
	}

	return success(c, map[string]interface{}{
		"items": records,
	})
}
