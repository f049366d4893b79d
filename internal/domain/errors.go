package domain

import "errors"

var (
	ErrUnauthorized        = errors.New("missing user identity")
	ErrFileRequired        = errors.New("no file uploaded")
	ErrFileTooLarge        = errors.New("file size exceeds upload limit")
	ErrCSVParse            = errors.New("CSV parsing failed")
	ErrInsufficientData    = errors.New("file must have at least 2 rows (header + data)")
	ErrTooManyRows         = errors.New("file has too many rows")
	ErrInvalidMapping      = errors.New("invalid column mapping")
	ErrValidation          = errors.New("validation failed")
	ErrPreviewNotFound     = errors.New("import session not found or expired")
	ErrForbidden           = errors.New("import session belongs to another user")
	ErrCommitInProgress    = errors.New("import session is already being committed")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrNotOwned            = errors.New("some transactions not found or do not belong to user")
	ErrNoItems             = errors.New("no items provided")
	ErrTooManyItems        = errors.New("too many items")
	ErrAdvisorUnavailable  = errors.New("advisor is not configured")
)
