package service

import (
	"context"
	"errors"
	"strings"
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

func TestSuggest_ScoresByKeywordHits(t *testing.T) {
	svc := NewSuggestionService(storage.NewMemoryStore(), storage.NewMemoryStore(), nil, logger.NewNop())

	suggestions, err := svc.Suggest(context.Background(), SuggestionQuery{
		Note:     "Lunch at restaurant",
		Merchant: "Uber Eats",
	})
	require.NoError(t, err)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "cat_food_dining", suggestions[0].CategoryID)
	assert.Equal(t, 0.6, suggestions[0].Confidence)
	assert.Equal(t, "Matched keywords: restaurant, lunch", suggestions[0].Reason)
	assert.Equal(t, "cat_transportation", suggestions[1].CategoryID)
	assert.Equal(t, 0.3, suggestions[1].Confidence)
}

func TestSuggest_TopThreeStableOrder(t *testing.T) {
	svc := NewSuggestionService(storage.NewMemoryStore(), storage.NewMemoryStore(), nil, logger.NewNop())

	// gas hits Transportation and Utilities; gym and movie one each
	suggestions, err := svc.Suggest(context.Background(), SuggestionQuery{Note: "gas gym movie"})
	require.NoError(t, err)

	require.Len(t, suggestions, 3)
	assert.Equal(t, "Transportation", suggestions[0].CategoryName)
	assert.Equal(t, "Utilities", suggestions[1].CategoryName)
	assert.Equal(t, "Entertainment", suggestions[2].CategoryName)
}

func TestSuggest_ConfidenceIsCapped(t *testing.T) {
	svc := NewSuggestionService(storage.NewMemoryStore(), storage.NewMemoryStore(), nil, logger.NewNop())

	suggestions, err := svc.Suggest(context.Background(), SuggestionQuery{
		Note: "breakfast lunch dinner food cafe",
	})
	require.NoError(t, err)

	require.NotEmpty(t, suggestions)
	assert.Equal(t, 0.95, suggestions[0].Confidence)
}

func TestSuggest_EmptyText(t *testing.T) {
	svc := NewSuggestionService(storage.NewMemoryStore(), storage.NewMemoryStore(), nil, logger.NewNop())

	suggestions, err := svc.Suggest(context.Background(), SuggestionQuery{Note: "  "})
	require.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestSuggest_SkipsMissingCategory(t *testing.T) {
	store := storage.NewMemoryStore(domain.Category{ID: "c1", Name: "Fitness", Type: domain.CategoryTypeExpense})
	svc := NewSuggestionService(store, store, nil, logger.NewNop())

	suggestions, err := svc.Suggest(context.Background(), SuggestionQuery{Note: "gym and doctor"})
	require.NoError(t, err)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "c1", suggestions[0].CategoryID)
}

func TestSuggest_RepositoryError(t *testing.T) {
	categories := mocks.NewMockCategoryRepository(t)
	categories.EXPECT().
		FindCategoryByName(mock.Anything, "Fitness").
		Return(nil, errors.New("db down")).
		Once()

	svc := NewSuggestionService(mocks.NewMockTransactionRepository(t), categories, nil, logger.NewNop())

	_, err := svc.Suggest(context.Background(), SuggestionQuery{Note: "yoga"})
	assert.Error(t, err)
}

func TestDecodeSuggestionRules(t *testing.T) {
	rules, err := DecodeSuggestionRules(strings.NewReader(`
categories:
  - name: Groceries
    keywords: [" Supermarket ", grocery, ""]
  - name: Fitness
    keywords: [gym]
`))
	require.NoError(t, err)

	assert.Equal(t, []SuggestionRule{
		{Name: "Groceries", Keywords: []string{"supermarket", "grocery"}},
		{Name: "Fitness", Keywords: []string{"gym"}},
	}, rules)

	svc := NewSuggestionService(storage.NewMemoryStore(), storage.NewMemoryStore(), rules, logger.NewNop())
	suggestions, err := svc.Suggest(context.Background(), SuggestionQuery{Merchant: "City Supermarket"})
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "cat_groceries", suggestions[0].CategoryID)
}

func TestDecodeSuggestionRules_Invalid(t *testing.T) {
	_, err := DecodeSuggestionRules(strings.NewReader("categories:\n  - keywords: [x]\n"))
	assert.Error(t, err)

	_, err = DecodeSuggestionRules(strings.NewReader("categories: [unclosed"))
	assert.Error(t, err)

	_, err = LoadSuggestionRules("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func seedUncategorised(t *testing.T, store *storage.MemoryStore, id, userID, note string) {
	t.Helper()
	require.NoError(t, store.CreateTransaction(context.Background(), &domain.Transaction{
		ID:         id,
		UserID:     userID,
		AccountID:  "acc_cash",
		Type:       domain.TransactionTypeOut,
		Amount:     decimal.NewFromInt(12),
		Currency:   "USD",
		OccurredAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Note:       &note,
	}))
}

func TestForTransaction_SuggestsFromNote(t *testing.T) {
	store := storage.NewMemoryStore()
	seedUncategorised(t, store, "t1", "user-1", "Lunch at restaurant")
	svc := NewSuggestionService(store, store, nil, logger.NewNop())

	result, err := svc.ForTransaction(context.Background(), "user-1", "t1")
	require.NoError(t, err)

	assert.Equal(t, "t1", result.TransactionID)
	assert.Empty(t, result.Message)
	require.NotEmpty(t, result.Suggestions)
	assert.Equal(t, "cat_food_dining", result.Suggestions[0].CategoryID)
}

func TestForTransaction_AlreadyCategorised(t *testing.T) {
	store := storage.NewMemoryStore()
	seedUncategorised(t, store, "t1", "user-1", "Lunch at restaurant")
	svc := NewSuggestionService(store, store, nil, logger.NewNop())

	_, err := svc.Apply(context.Background(), "user-1", "t1", "cat_groceries")
	require.NoError(t, err)

	result, err := svc.ForTransaction(context.Background(), "user-1", "t1")
	require.NoError(t, err)
	assert.Empty(t, result.Suggestions)
	assert.NotNil(t, result.Suggestions)
	assert.Equal(t, "Transaction already has a category", result.Message)
}

func TestForTransaction_OtherUser(t *testing.T) {
	store := storage.NewMemoryStore()
	seedUncategorised(t, store, "t1", "user-1", "Lunch")
	svc := NewSuggestionService(store, store, nil, logger.NewNop())

	_, err := svc.ForTransaction(context.Background(), "user-2", "t1")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestApply(t *testing.T) {
	store := storage.NewMemoryStore()
	seedUncategorised(t, store, "t1", "user-1", "Lunch")
	svc := NewSuggestionService(store, store, nil, logger.NewNop())

	tx, err := svc.Apply(context.Background(), "user-1", "t1", "cat_food_dining")
	require.NoError(t, err)
	require.NotNil(t, tx.CategoryID)
	assert.Equal(t, "cat_food_dining", *tx.CategoryID)

	stored, err := store.GetTransaction(context.Background(), "user-1", "t1")
	require.NoError(t, err)
	assert.Equal(t, "cat_food_dining", *stored.CategoryID)
}

func TestApply_Errors(t *testing.T) {
	store := storage.NewMemoryStore()
	seedUncategorised(t, store, "t1", "user-1", "Lunch")
	svc := NewSuggestionService(store, store, nil, logger.NewNop())

	_, err := svc.Apply(context.Background(), "user-1", "missing", "cat_food_dining")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	_, err = svc.Apply(context.Background(), "user-1", "t1", "cat_unknown")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = svc.Apply(context.Background(), "user-1", "t1", " ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestApplyBulk(t *testing.T) {
	store := storage.NewMemoryStore()
	seedUncategorised(t, store, "t1", "user-1", "a")
	seedUncategorised(t, store, "t2", "user-1", "b")
	svc := NewSuggestionService(store, store, nil, logger.NewNop())

	updated, err := svc.ApplyBulk(context.Background(), "user-1", []domain.CategoryAssignment{
		{TransactionID: "t1", CategoryID: "cat_groceries"},
		{TransactionID: "t2", CategoryID: "cat_shopping"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	t2, err := store.GetTransaction(context.Background(), "user-1", "t2")
	require.NoError(t, err)
	assert.Equal(t, "cat_shopping", *t2.CategoryID)
}

func TestApplyBulk_RejectsForeignTransactionWithoutPartialWrites(t *testing.T) {
	store := storage.NewMemoryStore()
	seedUncategorised(t, store, "t1", "user-1", "a")
	seedUncategorised(t, store, "t2", "user-2", "b")
	svc := NewSuggestionService(store, store, nil, logger.NewNop())

	_, err := svc.ApplyBulk(context.Background(), "user-1", []domain.CategoryAssignment{
		{TransactionID: "t1", CategoryID: "cat_groceries"},
		{TransactionID: "t2", CategoryID: "cat_groceries"},
	})
	assert.ErrorIs(t, err, domain.ErrNotOwned)

	t1, err := store.GetTransaction(context.Background(), "user-1", "t1")
	require.NoError(t, err)
	assert.Nil(t, t1.CategoryID)
}

func TestApplyBulk_ItemLimits(t *testing.T) {
	svc := NewSuggestionService(mocks.NewMockTransactionRepository(t), mocks.NewMockCategoryRepository(t), nil, logger.NewNop())

	_, err := svc.ApplyBulk(context.Background(), "user-1", nil)
	assert.ErrorIs(t, err, domain.ErrNoItems)

	items := make([]domain.CategoryAssignment, maxBulkApply+1)
	_, err = svc.ApplyBulk(context.Background(), "user-1", items)
	assert.ErrorIs(t, err, domain.ErrTooManyItems)
}

func TestApplyBulk_UnknownCategory(t *testing.T) {
	transactions := mocks.NewMockTransactionRepository(t)
	categories := mocks.NewMockCategoryRepository(t)
	categories.EXPECT().
		GetCategory(mock.Anything, "cat_x").
		Return(nil, domain.ErrCategoryNotFound).
		Once()

	svc := NewSuggestionService(transactions, categories, nil, logger.NewNop())

	_, err := svc.ApplyBulk(context.Background(), "user-1", []domain.CategoryAssignment{
		{TransactionID: "t1", CategoryID: "cat_x"},
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
