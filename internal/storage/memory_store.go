package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultCategories is the category set the in-memory store starts with.
var DefaultCategories = []domain.Category{
	{ID: "cat_food_dining", Name: "Food & Dining", Type: domain.CategoryTypeExpense},
	{ID: "cat_transportation", Name: "Transportation", Type: domain.CategoryTypeExpense},
	{ID: "cat_shopping", Name: "Shopping", Type: domain.CategoryTypeExpense},
	{ID: "cat_entertainment", Name: "Entertainment", Type: domain.CategoryTypeExpense},
	{ID: "cat_groceries", Name: "Groceries", Type: domain.CategoryTypeExpense},
	{ID: "cat_utilities", Name: "Utilities", Type: domain.CategoryTypeExpense},
	{ID: "cat_healthcare", Name: "Healthcare", Type: domain.CategoryTypeExpense},
	{ID: "cat_fitness", Name: "Fitness", Type: domain.CategoryTypeExpense},
	{ID: "cat_salary", Name: "Salary", Type: domain.CategoryTypeIncome},
	{ID: "cat_freelance", Name: "Freelance", Type: domain.CategoryTypeIncome},
	{ID: "cat_transfer", Name: "Transfer", Type: domain.CategoryTypeTransfer},
}

type MemoryStore struct {
	transactions    map[string][]domain.Transaction
	categories      []domain.Category
	budgets         map[string][]domain.Budget
	imports         map[string][]domain.ImportRecord
	processedEvents map[string]bool
	mu              sync.RWMutex
}

func NewMemoryStore(categories ...domain.Category) *MemoryStore {
	if len(categories) == 0 {
		categories = DefaultCategories
	}

	return &MemoryStore{
		transactions:    make(map[string][]domain.Transaction),
		categories:      append([]domain.Category(nil), categories...),
		budgets:         make(map[string][]domain.Budget),
		imports:         make(map[string][]domain.ImportRecord),
		processedEvents: make(map[string]bool),
	}
}

func (s *MemoryStore) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions[tx.UserID] = append(s.transactions[tx.UserID], *tx)

	return nil
}

func (s *MemoryStore) GetTransaction(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.transactionIndex(userID, id)
	if idx < 0 {
		return nil, domain.ErrTransactionNotFound
	}

	tx := s.transactions[userID][idx]
	return &tx, nil
}

func (s *MemoryStore) UpdateTransaction(ctx context.Context, tx *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.transactionIndex(tx.UserID, tx.ID)
	if idx < 0 {
		return domain.ErrTransactionNotFound
	}
	s.transactions[tx.UserID][idx] = *tx

	return nil
}

func (s *MemoryStore) DeleteTransaction(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.transactionIndex(userID, id)
	if idx < 0 {
		return domain.ErrTransactionNotFound
	}

	txs := s.transactions[userID]
	s.transactions[userID] = append(txs[:idx:idx], txs[idx+1:]...)

	return nil
}

// transactionIndex must be called with mu held.
func (s *MemoryStore) transactionIndex(userID, id string) int {
	for i, tx := range s.transactions[userID] {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error) {
	filter = filter.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Walk backwards so rows that tie on both timestamps come out newest insert first.
	txs := s.transactions[userID]
	var filtered []domain.Transaction
	for i := len(txs) - 1; i >= 0; i-- {
		if filter.Matches(txs[i]) {
			filtered = append(filtered, txs[i])
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if !a.OccurredAt.Equal(b.OccurredAt) {
			return a.OccurredAt.After(b.OccurredAt)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	total := len(filtered)

	start := (filter.Page - 1) * filter.PerPage
	end := start + filter.PerPage

	if start >= total {
		return []domain.Transaction{}, total, nil
	}
	if end > total {
		end = total
	}

	return filtered[start:end], total, nil
}

func (s *MemoryStore) AssignCategories(ctx context.Context, userID string, assignments []domain.CategoryAssignment) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	indexes := make([]int, len(assignments))
	for i, a := range assignments {
		idx := s.transactionIndex(userID, a.TransactionID)
		if idx < 0 {
			return 0, domain.ErrNotOwned
		}
		indexes[i] = idx
	}

	for i, a := range assignments {
		categoryID := a.CategoryID
		s.transactions[userID][indexes[i]].CategoryID = &categoryID
	}

	return len(assignments), nil
}

func (s *MemoryStore) SpendingByCategory(ctx context.Context, userID string, from, to time.Time) (map[string]decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spent := make(map[string]decimal.Decimal)
	for _, tx := range s.transactions[userID] {
		if tx.Type != domain.TransactionTypeOut || tx.CategoryID == nil {
			continue
		}
		if tx.OccurredAt.Before(from) || !tx.OccurredAt.Before(to) {
			continue
		}
		spent[*tx.CategoryID] = spent[*tx.CategoryID].Add(tx.Amount)
	}

	return spent, nil
}

func (s *MemoryStore) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			category := c
			return &category, nil
		}
	}

	return nil, domain.ErrCategoryNotFound
}

func (s *MemoryStore) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}

	return nil, domain.ErrCategoryNotFound
}

func (s *MemoryStore) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.Category{}
	for _, c := range s.categories {
		if categoryType != nil && c.Type != *categoryType {
			continue
		}
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

func (s *MemoryStore) UpsertBudget(ctx context.Context, b *domain.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := s.budgets[b.UserID]
	for i := range budgets {
		if budgets[i].CategoryID == b.CategoryID && budgets[i].Month == b.Month {
			budgets[i].Limit = b.Limit
			*b = budgets[i]
			return nil
		}
	}

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	s.budgets[b.UserID] = append(budgets, *b)

	return nil
}

func (s *MemoryStore) GetBudget(ctx context.Context, userID, id string) (*domain.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.budgets[userID] {
		if b.ID == id {
			budget := b
			return &budget, nil
		}
	}

	return nil, domain.ErrBudgetNotFound
}

func (s *MemoryStore) UpdateBudget(ctx context.Context, b *domain.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := s.budgets[b.UserID]
	for i := range budgets {
		if budgets[i].ID == b.ID {
			budgets[i] = *b
			return nil
		}
	}

	return domain.ErrBudgetNotFound
}

func (s *MemoryStore) DeleteBudget(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := s.budgets[userID]
	for i := range budgets {
		if budgets[i].ID == id {
			s.budgets[userID] = append(budgets[:i:i], budgets[i+1:]...)
			return nil
		}
	}

	return domain.ErrBudgetNotFound
}

func (s *MemoryStore) ListBudgets(ctx context.Context, userID string, filter domain.BudgetFilter) ([]domain.Budget, int, error) {
	filter = filter.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []domain.Budget
	for _, b := range s.budgets[userID] {
		if filter.Month == "" || b.Month == filter.Month {
			filtered = append(filtered, b)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Month != filtered[j].Month {
			return filtered[i].Month > filtered[j].Month
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)

	start := (filter.Page - 1) * filter.PerPage
	end := start + filter.PerPage

	if start >= total {
		return []domain.Budget{}, total, nil
	}
	if end > total {
		end = total
	}

	return filtered[start:end], total, nil
}

func (s *MemoryStore) SaveImportRecord(ctx context.Context, record domain.ImportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.imports[record.UserID] = append(s.imports[record.UserID], record)

	return nil
}

func (s *MemoryStore) ListImportRecords(ctx context.Context, userID string) ([]domain.ImportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := append([]domain.ImportRecord{}, s.imports[userID]...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CommittedAt.After(records[j].CommittedAt)
	})

	return records, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}

var _ domain.Repository = (*MemoryStore)(nil)
