package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIn  TransactionType = "IN"
	TransactionTypeOut TransactionType = "OUT"
)

type Transaction struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	AccountID  string          `json:"accountId"`
	Type       TransactionType `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	OccurredAt time.Time       `json:"occurredAt"`
	CategoryID *string         `json:"categoryId"`
	Note       *string         `json:"note"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type CategoryType string

const (
	CategoryTypeIncome   CategoryType = "INCOME"
	CategoryTypeExpense  CategoryType = "EXPENSE"
	CategoryTypeTransfer CategoryType = "TRANSFER"
)

func (t CategoryType) Valid() bool {
	switch t {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeTransfer:
		return true
	}
	return false
}

type Category struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type CategoryType `json:"type"`
}

// ImportRecord is the durable trace of one committed import session.
type ImportRecord struct {
	PreviewID    string    `json:"previewId"`
	UserID       string    `json:"userId"`
	FileName     string    `json:"fileName"`
	TotalRows    int       `json:"totalRows"`
	SuccessCount int       `json:"success"`
	FailedCount  int       `json:"failed"`
	CommittedAt  time.Time `json:"committedAt"`
}

// AmountScale is the number of decimal places amounts are stored with.
const AmountScale = 4

// CategoryAssignment sets the category of one transaction.
type CategoryAssignment struct {
	TransactionID string `json:"txId"`
	CategoryID    string `json:"categoryId"`
}

// Budget is a spending limit for one category in one calendar month (YYYY-MM).
type Budget struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	CategoryID string          `json:"categoryId"`
	Month      string          `json:"month"`
	Limit      decimal.Decimal `json:"limit"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type BudgetFilter struct {
	Month   string
	Page    int
	PerPage int
}

// Normalize clamps paging to page >= 1 and 1 <= perPage <= 100.
func (f BudgetFilter) Normalize() BudgetFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 20
	}
	if f.PerPage > 100 {
		f.PerPage = 100
	}
	return f
}

type TransactionFilter struct {
	Type       *TransactionType
	CategoryID string
	From       *time.Time
	To         *time.Time
	Page       int
	PerPage    int
}

// Normalize clamps paging to page >= 1 and 1 <= perPage <= 100.
func (f TransactionFilter) Normalize() TransactionFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 20
	}
	if f.PerPage > 100 {
		f.PerPage = 100
	}
	return f
}

// Matches reports whether tx passes every set criterion. Paging is ignored.
func (f TransactionFilter) Matches(tx Transaction) bool {
	if f.Type != nil && tx.Type != *f.Type {
		return false
	}
	if f.CategoryID != "" && (tx.CategoryID == nil || *tx.CategoryID != f.CategoryID) {
		return false
	}
	if f.From != nil && tx.OccurredAt.Before(*f.From) {
		return false
	}
	if f.To != nil && !tx.OccurredAt.Before(f.To.AddDate(0, 0, 1)) {
		return false
	}
	return true
}
