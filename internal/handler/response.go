package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type errorMapping struct {
	err    error
	status int
	code   string
}

// First match wins.
var errorMappings = []errorMapping{
	{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrFileRequired, http.StatusBadRequest, "NO_FILE"},
	{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
	{domain.ErrCSVParse, http.StatusBadRequest, "CSV_PARSE_ERROR"},
	{domain.ErrInsufficientData, http.StatusBadRequest, "INSUFFICIENT_DATA"},
	{domain.ErrTooManyRows, http.StatusRequestEntityTooLarge, "TOO_MANY_ROWS"},
	{domain.ErrInvalidMapping, http.StatusBadRequest, "VALIDATION_ERROR"},
	{domain.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{domain.ErrPreviewNotFound, http.StatusNotFound, "PREVIEW_NOT_FOUND"},
	{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{domain.ErrCommitInProgress, http.StatusConflict, "COMMIT_IN_PROGRESS"},
	{domain.ErrCategoryNotFound, http.StatusNotFound, "CATEGORY_NOT_FOUND"},
	{domain.ErrInvalidCategory, http.StatusBadRequest, "INVALID_CATEGORY"},
	{domain.ErrTransactionNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domain.ErrBudgetNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domain.ErrNotOwned, http.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNoItems, http.StatusBadRequest, "NO_ITEMS"},
	{domain.ErrTooManyItems, http.StatusBadRequest, "TOO_MANY_ITEMS"},
	{domain.ErrAdvisorUnavailable, http.StatusServiceUnavailable, "ADVISOR_UNAVAILABLE"},
}

var httpStatusCodes = map[int]string{
	http.StatusBadRequest:            "BAD_REQUEST",
	http.StatusUnauthorized:          "UNAUTHORIZED",
	http.StatusForbidden:             "FORBIDDEN",
	http.StatusNotFound:              "NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "FILE_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
	http.StatusTooManyRequests:       "TOO_MANY_REQUESTS",
}

// Classify returns the HTTP status, machine-readable code and client message for err.
func Classify(err error) (int, string, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.code, err.Error()
		}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code, ok := httpStatusCodes[he.Code]
		if !ok {
			code = "INTERNAL_ERROR"
		}
		return he.Code, code, fmt.Sprint(he.Message)
	}

	return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
}

// ErrorHandler renders every error that reaches echo in the response envelope.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, message := Classify(err)

		ctx := c.Request().Context()
		if status >= http.StatusInternalServerError {
			log.Error(ctx, "Request failed",
				"status", status,
				"error", err,
			)
		} else {
			log.Debug(ctx, "Request rejected",
				"status", status,
				"code", code,
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, Response{
				Success: false,
				Error:   &ErrorBody{Message: message, Code: code},
			})
		}
		if writeErr != nil {
			log.Error(ctx, "Failed to write error response",
				"error", writeErr,
			)
		}
	}
}

func success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// userID returns the caller identity placed on the context by the identity middleware.
func userID(c echo.Context) (string, error) {
	id := logger.GetUserID(c.Request().Context())
	if id == "" {
		return "", domain.ErrUnauthorized
	}
	return id, nil
}
