package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/fintrack-be/internal/config"
	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionWhere(t *testing.T) {
	out := domain.TransactionTypeOut
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	where, args := transactionWhere("user-1", domain.TransactionFilter{
		Type:       &out,
		CategoryID: "cat_shopping",
		From:       &from,
		To:         &to,
	})

	assert.Equal(t, "user_id = $1 AND type = $2 AND category_id = $3 AND occurred_at >= $4 AND occurred_at < $5", where)
	assert.Equal(t, []interface{}{"user-1", "OUT", "cat_shopping", from, to.AddDate(0, 0, 1)}, args)

	where, args = transactionWhere("user-1", domain.TransactionFilter{})
	assert.Equal(t, "user_id = $1", where)
	assert.Len(t, args, 1)
}

// Runs against a real database when TEST_DATABASE_URL is set.
func TestPostgresStore_RoundTrip(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	store, err := NewPostgresStore(ctx, config.DatabaseConfig{URL: url, MaxConns: 2, ConnectRetries: 1}, logger.NewNop())
	require.NoError(t, err)
	defer store.Close()

	category, err := store.FindCategoryByName(ctx, "SALARY")
	require.NoError(t, err)
	assert.Equal(t, "cat_salary", category.ID)

	userID := "it-" + uuid.New().String()
	note := "january pay"
	err = store.CreateTransaction(ctx, &domain.Transaction{
		ID:         uuid.New().String(),
		UserID:     userID,
		AccountID:  "acc_cash",
		Type:       domain.TransactionTypeIn,
		Amount:     decimal.RequireFromString("1234.5"),
		Currency:   "USD",
		OccurredAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CategoryID: &category.ID,
		Note:       &note,
	})
	require.NoError(t, err)

	items, total, err := store.ListTransactions(ctx, userID, domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.True(t, decimal.RequireFromString("1234.5").Equal(items[0].Amount))
	assert.Equal(t, &note, items[0].Note)

	eventID := "evt-" + uuid.New().String()
	require.NoError(t, store.MarkEventProcessed(ctx, eventID))
	processed, err := store.IsEventProcessed(ctx, eventID)
	require.NoError(t, err)
	assert.True(t, processed)
}

// Runs against a real database when TEST_DATABASE_URL is set.
func TestPostgresStore_BudgetsAndAssignments(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	store, err := NewPostgresStore(ctx, config.DatabaseConfig{URL: url, MaxConns: 2, ConnectRetries: 1}, logger.NewNop())
	require.NoError(t, err)
	defer store.Close()

	userID := "it-" + uuid.New().String()
	tx := &domain.Transaction{
		ID:         uuid.New().String(),
		UserID:     userID,
		AccountID:  "acc_cash",
		Type:       domain.TransactionTypeOut,
		Amount:     decimal.RequireFromString("40"),
		Currency:   "USD",
		OccurredAt: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.CreateTransaction(ctx, tx))

	_, err = store.AssignCategories(ctx, userID, []domain.CategoryAssignment{
		{TransactionID: tx.ID, CategoryID: "cat_shopping"},
		{TransactionID: uuid.New().String(), CategoryID: "cat_shopping"},
	})
	assert.ErrorIs(t, err, domain.ErrNotOwned)

	got, err := store.GetTransaction(ctx, userID, tx.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)

	_, err = store.AssignCategories(ctx, userID, []domain.CategoryAssignment{{TransactionID: tx.ID, CategoryID: "cat_shopping"}})
	require.NoError(t, err)

	spent, err := store.SpendingByCategory(ctx, userID,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(spent["cat_shopping"]))

	budget := &domain.Budget{UserID: userID, CategoryID: "cat_shopping", Month: "2025-03", Limit: decimal.NewFromInt(100)}
	require.NoError(t, store.UpsertBudget(ctx, budget))
	again := &domain.Budget{UserID: userID, CategoryID: "cat_shopping", Month: "2025-03", Limit: decimal.NewFromInt(120)}
	require.NoError(t, store.UpsertBudget(ctx, again))
	assert.Equal(t, budget.ID, again.ID)

	items, total, err := store.ListBudgets(ctx, userID, domain.BudgetFilter{Month: "2025-03"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.True(t, decimal.NewFromInt(120).Equal(items[0].Limit))

	require.NoError(t, store.DeleteBudget(ctx, userID, budget.ID))
	require.NoError(t, store.DeleteTransaction(ctx, userID, tx.ID))
	assert.ErrorIs(t, store.DeleteTransaction(ctx, userID, tx.ID), domain.ErrTransactionNotFound)
}
