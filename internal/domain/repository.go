package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	// GetTransaction returns ErrTransactionNotFound when the id is unknown or
	// belongs to another user.
	GetTransaction(ctx context.Context, userID, id string) (*Transaction, error)
	// UpdateTransaction overwrites the stored row matching tx.ID and tx.UserID.
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, userID, id string) error
	// ListTransactions returns one page, newest first, and the total match count.
	// Rows with the same occurredAt are ordered by createdAt, newest first.
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]Transaction, int, error)
	// AssignCategories applies all assignments or none. It returns ErrNotOwned
	// when any transaction is missing or belongs to another user.
	AssignCategories(ctx context.Context, userID string, assignments []CategoryAssignment) (int, error)
	// SpendingByCategory sums OUT amounts per category with occurredAt in [from, to).
	SpendingByCategory(ctx context.Context, userID string, from, to time.Time) (map[string]decimal.Decimal, error)
}

type CategoryRepository interface {
	// FindCategoryByName matches case-insensitively on the full name.
	// Returns ErrCategoryNotFound when nothing matches.
	FindCategoryByName(ctx context.Context, name string) (*Category, error)
	GetCategory(ctx context.Context, id string) (*Category, error)
	ListCategories(ctx context.Context, categoryType *CategoryType) ([]Category, error)
}

type BudgetRepository interface {
	// UpsertBudget stores b, or updates the limit of the budget that already
	// exists for the same user, category and month. b is updated in place
	// with the stored id and creation time.
	UpsertBudget(ctx context.Context, b *Budget) error
	GetBudget(ctx context.Context, userID, id string) (*Budget, error)
	UpdateBudget(ctx context.Context, b *Budget) error
	DeleteBudget(ctx context.Context, userID, id string) error
	// ListBudgets returns one page, latest month first, and the total match count.
	ListBudgets(ctx context.Context, userID string, filter BudgetFilter) ([]Budget, int, error)
}

type ImportHistoryRepository interface {
	SaveImportRecord(ctx context.Context, record ImportRecord) error
	ListImportRecords(ctx context.Context, userID string) ([]ImportRecord, error)

	// Idempotency tracking
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}

type Repository interface {
	TransactionRepository
	CategoryRepository
	BudgetRepository
	ImportHistoryRepository
}
