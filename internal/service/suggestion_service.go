package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
)

const (
	maxSuggestions = 3
	maxBulkApply   = 100
)

type SuggestionQuery struct {
	Note     string
	Merchant string
	Amount   *float64
}

type Suggestion struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Confidence   float64 `json:"confidence"`
	Reason       string  `json:"reason,omitempty"`
}

// TransactionSuggestions carries a message instead of suggestions when the
// transaction is already categorised.
type TransactionSuggestions struct {
	TransactionID string       `json:"transactionId"`
	Suggestions   []Suggestion `json:"suggestions"`
	Message       string       `json:"message,omitempty"`
}

type SuggestionService interface {
	Suggest(ctx context.Context, query SuggestionQuery) ([]Suggestion, error)
	ForTransaction(ctx context.Context, userID, txID string) (*TransactionSuggestions, error)
	Apply(ctx context.Context, userID, txID, categoryID string) (*domain.Transaction, error)
	ApplyBulk(ctx context.Context, userID string, items []domain.CategoryAssignment) (int, error)
}

type suggestionService struct {
	transactions domain.TransactionRepository
	categories   domain.CategoryRepository
	rules        []SuggestionRule
	logger       *logger.Logger
}

// NewSuggestionService scores categories by keyword hits. With no rules the
// built-in set is used.
func NewSuggestionService(transactions domain.TransactionRepository, categories domain.CategoryRepository, rules []SuggestionRule, log *logger.Logger) SuggestionService {
	if len(rules) == 0 {
		rules = DefaultSuggestionRules
	}
	return &suggestionService{
		transactions: transactions,
		categories:   categories,
		rules:        rules,
		logger:       log,
	}
}

func (s *suggestionService) Suggest(ctx context.Context, query SuggestionQuery) ([]Suggestion, error) {
	suggestions := []Suggestion{}

	text := strings.ToLower(strings.Join(nonEmpty(query.Note, query.Merchant), " "))
	if text == "" {
		return suggestions, nil
	}

	for _, rule := range s.rules {
		var matched []string
		for _, kw := range rule.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}

		category, err := s.categories.FindCategoryByName(ctx, rule.Name)
		if errors.Is(err, domain.ErrCategoryNotFound) {
			s.logger.Debug(ctx, "Skipping suggestion rule without category",
				"category", rule.Name,
			)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("find category %q: %w", rule.Name, err)
		}

		suggestions = append(suggestions, Suggestion{
			CategoryID:   category.ID,
			CategoryName: category.Name,
			Confidence:   confidence(len(matched)),
			Reason:       "Matched keywords: " + strings.Join(matched, ", "),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return suggestions, nil
}

func (s *suggestionService) ForTransaction(ctx context.Context, userID, txID string) (*TransactionSuggestions, error) {
	tx, err := s.transactions.GetTransaction(ctx, userID, txID)
	if err != nil {
		return nil, err
	}

	if tx.CategoryID != nil {
		return &TransactionSuggestions{
			TransactionID: tx.ID,
			Suggestions:   []Suggestion{},
			Message:       "Transaction already has a category",
		}, nil
	}

	query := SuggestionQuery{}
	if tx.Note != nil {
		query.Note = *tx.Note
	}
	amount := tx.Amount.InexactFloat64()
	query.Amount = &amount

	suggestions, err := s.Suggest(ctx, query)
	if err != nil {
		return nil, err
	}

	return &TransactionSuggestions{
		TransactionID: tx.ID,
		Suggestions:   suggestions,
	}, nil
}

func (s *suggestionService) Apply(ctx context.Context, userID, txID, categoryID string) (*domain.Transaction, error) {
	if strings.TrimSpace(categoryID) == "" {
		return nil, fmt.Errorf("%w: categoryId is required", domain.ErrValidation)
	}

	tx, err := s.transactions.GetTransaction(ctx, userID, txID)
	if err != nil {
		return nil, err
	}

	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	tx.CategoryID = &category.ID
	if err := s.transactions.UpdateTransaction(ctx, tx); err != nil {
		s.logger.Error(ctx, "Failed to apply category",
			"transaction_id", txID,
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Category applied",
		"transaction_id", txID,
		"category_id", category.ID,
	)

	return tx, nil
}

// ApplyBulk assigns every category or none. Unknown categories and foreign
// transactions fail the whole batch.
func (s *suggestionService) ApplyBulk(ctx context.Context, userID string, items []domain.CategoryAssignment) (int, error) {
	if len(items) == 0 {
		return 0, domain.ErrNoItems
	}
	if len(items) > maxBulkApply {
		return 0, fmt.Errorf("%w: maximum %d items allowed", domain.ErrTooManyItems, maxBulkApply)
	}

	checked := make(map[string]struct{})
	for _, item := range items {
		if item.TransactionID == "" || item.CategoryID == "" {
			return 0, fmt.Errorf("%w: txId and categoryId are required", domain.ErrValidation)
		}
		if _, ok := checked[item.CategoryID]; ok {
			continue
		}
		if _, err := s.categories.GetCategory(ctx, item.CategoryID); err != nil {
			return 0, err
		}
		checked[item.CategoryID] = struct{}{}
	}

	updated, err := s.transactions.AssignCategories(ctx, userID, items)
	if err != nil {
		return 0, err
	}

	s.logger.Info(ctx, "Categories applied in bulk",
		"updated", updated,
	)

	return updated, nil
}

// confidence grows 0.3 per matched keyword and caps at 0.95.
func confidence(score int) float64 {
	c := math.Min(float64(score)*0.3, 0.95)
	return math.Round(c*100) / 100
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
