package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	budgetMonthLayout   = "2006-01"
	summaryPageSize     = 100
	defaultWarningRatio = 0.8
)

type BudgetState string

const (
	BudgetStateOK      BudgetState = "ok"
	BudgetStateWarning BudgetState = "warning"
	BudgetStateOver    BudgetState = "over"
)

type BudgetSummaryItem struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Month        string          `json:"month"`
	Limit        decimal.Decimal `json:"limit"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	Percent      float64         `json:"percent"`
	State        BudgetState     `json:"state"`
}

type BudgetTotals struct {
	Limit     decimal.Decimal `json:"limit"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
}

type BudgetSummary struct {
	Month  string              `json:"month"`
	Items  []BudgetSummaryItem `json:"items"`
	Totals BudgetTotals        `json:"totals"`
}

type BudgetService interface {
	List(ctx context.Context, userID string, filter domain.BudgetFilter) ([]domain.Budget, int, error)
	// Upsert creates the budget or replaces the limit of the existing one for
	// the same category and month.
	Upsert(ctx context.Context, userID, categoryID, month string, limit decimal.Decimal) (*domain.Budget, error)
	UpdateLimit(ctx context.Context, userID, id string, limit decimal.Decimal) (*domain.Budget, error)
	Delete(ctx context.Context, userID, id string) error
	Summary(ctx context.Context, userID, month string) (*BudgetSummary, error)
}

type budgetService struct {
	budgets      domain.BudgetRepository
	transactions domain.TransactionRepository
	categories   domain.CategoryRepository
	warningRatio float64
	logger       *logger.Logger
}

// NewBudgetService falls back to a 0.8 warning ratio when warningRatio is
// outside (0, 1).
func NewBudgetService(
	budgets domain.BudgetRepository,
	transactions domain.TransactionRepository,
	categories domain.CategoryRepository,
	warningRatio float64,
	log *logger.Logger,
) BudgetService {
	if warningRatio <= 0 || warningRatio >= 1 {
		warningRatio = defaultWarningRatio
	}
	return &budgetService{
		budgets:      budgets,
		transactions: transactions,
		categories:   categories,
		warningRatio: warningRatio,
		logger:       log,
	}
}

func (s *budgetService) List(ctx context.Context, userID string, filter domain.BudgetFilter) ([]domain.Budget, int, error) {
	filter = filter.Normalize()
	if filter.Month != "" {
		if _, err := parseBudgetMonth(filter.Month); err != nil {
			return nil, 0, err
		}
	}
	return s.budgets.ListBudgets(ctx, userID, filter)
}

func (s *budgetService) Upsert(ctx context.Context, userID, categoryID, month string, limit decimal.Decimal) (*domain.Budget, error) {
	if _, err := parseBudgetMonth(month); err != nil {
		return nil, err
	}

	limit, err := validateLimit(limit)
	if err != nil {
		return nil, err
	}

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return nil, fmt.Errorf("%w: categoryId is required", domain.ErrValidation)
	}
	if _, err := s.categories.GetCategory(ctx, categoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, fmt.Errorf("%w: category not found", domain.ErrInvalidCategory)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	budget := &domain.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Month:      month,
		Limit:      limit,
	}
	if err := s.budgets.UpsertBudget(ctx, budget); err != nil {
		s.logger.Error(ctx, "Failed to upsert budget",
			"category_id", categoryID,
			"month", month,
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Budget saved",
		"budget_id", budget.ID,
		"month", month,
	)

	return budget, nil
}

func (s *budgetService) UpdateLimit(ctx context.Context, userID, id string, limit decimal.Decimal) (*domain.Budget, error) {
	limit, err := validateLimit(limit)
	if err != nil {
		return nil, err
	}

	budget, err := s.budgets.GetBudget(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	budget.Limit = limit
	if err := s.budgets.UpdateBudget(ctx, budget); err != nil {
		return nil, err
	}

	return budget, nil
}

func (s *budgetService) Delete(ctx context.Context, userID, id string) error {
	if err := s.budgets.DeleteBudget(ctx, userID, id); err != nil {
		return err
	}

	s.logger.Info(ctx, "Budget deleted",
		"budget_id", id,
	)

	return nil
}

// Summary compares every budget of the month with the OUT spending of its
// category in [monthStart, nextMonthStart) UTC.
func (s *budgetService) Summary(ctx context.Context, userID, month string) (*BudgetSummary, error) {
	start, err := parseBudgetMonth(month)
	if err != nil {
		return nil, err
	}

	budgets, err := s.monthBudgets(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	spending, err := s.transactions.SpendingByCategory(ctx, userID, start, start.AddDate(0, 1, 0))
	if err != nil {
		s.logger.Error(ctx, "Failed to sum spending",
			"month", month,
			"error", err,
		)
		return nil, fmt.Errorf("sum spending: %w", err)
	}

	summary := &BudgetSummary{
		Month: month,
		Items: make([]BudgetSummaryItem, 0, len(budgets)),
		Totals: BudgetTotals{
			Limit: decimal.Zero,
			Spent: decimal.Zero,
		},
	}

	for _, b := range budgets {
		spent := spending[b.CategoryID]

		item := BudgetSummaryItem{
			ID:         b.ID,
			CategoryID: b.CategoryID,
			Month:      b.Month,
			Limit:      b.Limit,
			Spent:      spent,
			Remaining:  remaining(b.Limit, spent),
			Percent:    ratio(spent, b.Limit),
		}
		item.State = s.state(item.Percent)

		category, err := s.categories.GetCategory(ctx, b.CategoryID)
		switch {
		case err == nil:
			item.CategoryName = category.Name
		case !errors.Is(err, domain.ErrCategoryNotFound):
			return nil, fmt.Errorf("get category: %w", err)
		}

		summary.Items = append(summary.Items, item)
		summary.Totals.Limit = summary.Totals.Limit.Add(b.Limit)
		summary.Totals.Spent = summary.Totals.Spent.Add(spent)
	}

	summary.Totals.Remaining = remaining(summary.Totals.Limit, summary.Totals.Spent)

	return summary, nil
}

func (s *budgetService) monthBudgets(ctx context.Context, userID, month string) ([]domain.Budget, error) {
	var all []domain.Budget
	for page := 1; ; page++ {
		budgets, total, err := s.budgets.ListBudgets(ctx, userID, domain.BudgetFilter{
			Month:   month,
			Page:    page,
			PerPage: summaryPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("list budgets: %w", err)
		}
		all = append(all, budgets...)
		if len(budgets) == 0 || len(all) >= total {
			return all, nil
		}
	}
}

func (s *budgetService) state(percent float64) BudgetState {
	switch {
	case percent >= 1:
		return BudgetStateOver
	case percent >= s.warningRatio:
		return BudgetStateWarning
	default:
		return BudgetStateOK
	}
}

func parseBudgetMonth(month string) (time.Time, error) {
	start, err := time.Parse(budgetMonthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month must be YYYY-MM", domain.ErrValidation)
	}
	return start, nil
}

func validateLimit(limit decimal.Decimal) (decimal.Decimal, error) {
	rounded := limit.Round(domain.AmountScale)
	if !rounded.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: limit must be greater than 0", domain.ErrValidation)
	}
	return rounded, nil
}

// ratio is spent/limit rounded to four places, or 0 for a non-positive limit.
func ratio(spent, limit decimal.Decimal) float64 {
	if !limit.IsPositive() {
		return 0
	}
	r := spent.Div(limit).InexactFloat64()
	return math.Round(r*1e4) / 1e4
}

func remaining(limit, spent decimal.Decimal) decimal.Decimal {
	return decimal.Max(limit, decimal.Zero).Sub(decimal.Max(spent, decimal.Zero))
}
