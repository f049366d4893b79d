package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/internal/storage"
	"github.com/grachmannico95/fintrack-be/mocks"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBudgetTestService(store *storage.MemoryStore) BudgetService {
	return NewBudgetService(store, store, store, 0.8, logger.NewNop())
}

func seedSpending(t *testing.T, store *storage.MemoryStore, id, categoryID, amount string, txType domain.TransactionType, at time.Time) {
	t.Helper()
	require.NoError(t, store.CreateTransaction(context.Background(), &domain.Transaction{
		ID:         id,
		UserID:     "user-1",
		AccountID:  "acc_cash",
		Type:       txType,
		Amount:     decimal.RequireFromString(amount),
		Currency:   "USD",
		OccurredAt: at,
		CategoryID: &categoryID,
	}))
}

func TestBudgetService_UpsertReplacesLimit(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newBudgetTestService(store)

	first, err := svc.Upsert(context.Background(), "user-1", "cat_groceries", "2025-03", decimal.RequireFromString("300"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := svc.Upsert(context.Background(), "user-1", "cat_groceries", "2025-03", decimal.RequireFromString("450.5"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "450.5", second.Limit.String())

	budgets, total, err := svc.List(context.Background(), "user-1", domain.BudgetFilter{Month: "2025-03"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, budgets, 1)
	assert.Equal(t, "450.5", budgets[0].Limit.String())
}

func TestBudgetService_UpsertValidation(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newBudgetTestService(store)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "user-1", "cat_groceries", "2025-13", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Upsert(ctx, "user-1", "cat_groceries", "March", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Upsert(ctx, "user-1", "cat_groceries", "2025-03", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Upsert(ctx, "user-1", "cat_groceries", "2025-03", decimal.RequireFromString("0.00001"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Upsert(ctx, "user-1", "cat_unknown", "2025-03", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = svc.List(ctx, "user-1", domain.BudgetFilter{Month: "2025/03"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBudgetService_UpdateLimitAndDelete(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newBudgetTestService(store)
	ctx := context.Background()

	budget, err := svc.Upsert(ctx, "user-1", "cat_shopping", "2025-04", decimal.NewFromInt(100))
	require.NoError(t, err)

	updated, err := svc.UpdateLimit(ctx, "user-1", budget.ID, decimal.RequireFromString("125.25"))
	require.NoError(t, err)
	assert.Equal(t, "125.25", updated.Limit.String())

	_, err = svc.UpdateLimit(ctx, "user-2", budget.ID, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrBudgetNotFound)

	_, err = svc.UpdateLimit(ctx, "user-1", budget.ID, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.ErrorIs(t, svc.Delete(ctx, "user-2", budget.ID), domain.ErrBudgetNotFound)
	require.NoError(t, svc.Delete(ctx, "user-1", budget.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "user-1", budget.ID), domain.ErrBudgetNotFound)
}

func TestBudgetService_Summary(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newBudgetTestService(store)
	ctx := context.Background()

	march := func(day int) time.Time { return time.Date(2025, 3, day, 12, 0, 0, 0, time.UTC) }

	seedSpending(t, store, "g1", "cat_groceries", "100.10", domain.TransactionTypeOut, march(2))
	seedSpending(t, store, "g2", "cat_groceries", "0.20", domain.TransactionTypeOut, march(31))
	seedSpending(t, store, "g3", "cat_groceries", "999", domain.TransactionTypeOut, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	seedSpending(t, store, "s1", "cat_shopping", "85", domain.TransactionTypeOut, march(5))
	seedSpending(t, store, "s2", "cat_shopping", "500", domain.TransactionTypeIn, march(6))
	seedSpending(t, store, "f1", "cat_fitness", "60", domain.TransactionTypeOut, march(7))

	_, err := svc.Upsert(ctx, "user-1", "cat_groceries", "2025-03", decimal.NewFromInt(500))
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, "user-1", "cat_shopping", "2025-03", decimal.NewFromInt(100))
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, "user-1", "cat_fitness", "2025-03", decimal.NewFromInt(50))
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, "user-1", "cat_fitness", "2025-02", decimal.NewFromInt(50))
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "user-1", "2025-03")
	require.NoError(t, err)

	require.Len(t, summary.Items, 3)
	byCategory := make(map[string]BudgetSummaryItem)
	for _, item := range summary.Items {
		byCategory[item.CategoryID] = item
	}

	groceries := byCategory["cat_groceries"]
	assert.Equal(t, "Groceries", groceries.CategoryName)
	assert.Equal(t, "100.3", groceries.Spent.String())
	assert.Equal(t, "399.7", groceries.Remaining.String())
	assert.Equal(t, 0.2006, groceries.Percent)
	assert.Equal(t, BudgetStateOK, groceries.State)

	shopping := byCategory["cat_shopping"]
	assert.Equal(t, "85", shopping.Spent.String())
	assert.Equal(t, 0.85, shopping.Percent)
	assert.Equal(t, BudgetStateWarning, shopping.State)

	fitness := byCategory["cat_fitness"]
	assert.Equal(t, "-10", fitness.Remaining.String())
	assert.Equal(t, BudgetStateOver, fitness.State)

	assert.Equal(t, "650", summary.Totals.Limit.String())
	assert.Equal(t, "245.3", summary.Totals.Spent.String())
	assert.Equal(t, "404.7", summary.Totals.Remaining.String())
}

func TestBudgetService_SummaryWithoutBudgets(t *testing.T) {
	svc := newBudgetTestService(storage.NewMemoryStore())

	summary, err := svc.Summary(context.Background(), "user-1", "2025-03")
	require.NoError(t, err)
	assert.NotNil(t, summary.Items)
	assert.Empty(t, summary.Items)
	assert.True(t, summary.Totals.Spent.IsZero())

	_, err = svc.Summary(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBudgetService_SummarySpendingError(t *testing.T) {
	budgets := mocks.NewMockBudgetRepository(t)
	transactions := mocks.NewMockTransactionRepository(t)
	svc := NewBudgetService(budgets, transactions, storage.NewMemoryStore(), 0, logger.NewNop())

	budgets.EXPECT().
		ListBudgets(mock.Anything, "user-1", domain.BudgetFilter{Month: "2025-03", Page: 1, PerPage: summaryPageSize}).
		Return([]domain.Budget{{ID: "b1", CategoryID: "cat_groceries", Month: "2025-03", Limit: decimal.NewFromInt(10)}}, 1, nil).
		Once()
	transactions.EXPECT().
		SpendingByCategory(mock.Anything, "user-1",
			time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)).
		Return(nil, errors.New("db down")).
		Once()

	_, err := svc.Summary(context.Background(), "user-1", "2025-03")
	assert.Error(t, err)
}

func TestBudgetService_StateThresholds(t *testing.T) {
	svc := NewBudgetService(nil, nil, nil, 0.5, logger.NewNop()).(*budgetService)

	assert.Equal(t, BudgetStateOK, svc.state(0.49))
	assert.Equal(t, BudgetStateWarning, svc.state(0.5))
	assert.Equal(t, BudgetStateOver, svc.state(1))

	assert.Equal(t, 0.0, ratio(decimal.NewFromInt(5), decimal.Zero))
}
