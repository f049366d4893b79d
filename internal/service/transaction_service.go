package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	exportPageSize  = 100
	maxNoteLength   = 500
	txDateLayout    = "2006-01-02"
	defaultCurrency = "USD"
)

var maxTransactionAmount = decimal.NewFromInt(100_000_000_000)

// NullableString tells an absent JSON field apart from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// TransactionInput creates a transaction. Description is accepted as an
// alias of Note.
type TransactionInput struct {
	Type        string           `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	AccountID   string           `json:"accountId"`
	CategoryID  *string          `json:"categoryId"`
	Note        *string          `json:"note"`
	Description *string          `json:"description"`
	TxDate      string           `json:"txDate"`
	Currency    string           `json:"currency"`
}

// TransactionPatch changes only the fields that are set. A null categoryId
// or note clears it.
type TransactionPatch struct {
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	AccountID   *string          `json:"accountId"`
	CategoryID  NullableString   `json:"categoryId"`
	Note        NullableString   `json:"note"`
	Description NullableString   `json:"description"`
	TxDate      *string          `json:"txDate"`
	Currency    *string          `json:"currency"`
}

type TransactionService interface {
	List(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error)
	Get(ctx context.Context, userID, id string) (*domain.Transaction, error)
	Create(ctx context.Context, userID string, in TransactionInput) (*domain.Transaction, error)
	Update(ctx context.Context, userID, id string, patch TransactionPatch) (*domain.Transaction, error)
	Delete(ctx context.Context, userID, id string) error
	// Export writes every transaction of the user as CSV and returns the row count.
	Export(ctx context.Context, userID string, w io.Writer) (int, error)
}

type transactionService struct {
	repo       domain.TransactionRepository
	categories domain.CategoryRepository
	logger     *logger.Logger
	now        func() time.Time
}

func NewTransactionService(repo domain.TransactionRepository, categories domain.CategoryRepository, log *logger.Logger) TransactionService {
	return &transactionService{
		repo:       repo,
		categories: categories,
		logger:     log,
		now:        time.Now,
	}
}

func (s *transactionService) List(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error) {
	filter = filter.Normalize()

	s.logger.Debug(ctx, "Listing transactions",
		"page", filter.Page,
		"per_page", filter.PerPage,
	)

	txs, total, err := s.repo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.logger.Error(ctx, "Failed to list transactions",
			"error", err,
		)
		return nil, 0, err
	}

	return txs, total, nil
}

func (s *transactionService) Get(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *transactionService) Create(ctx context.Context, userID string, in TransactionInput) (*domain.Transaction, error) {
	txType, err := parseTransactionType(in.Type)
	if err != nil {
		return nil, err
	}

	if in.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", domain.ErrValidation)
	}
	amount, err := validateAmount(*in.Amount)
	if err != nil {
		return nil, err
	}

	accountID := strings.TrimSpace(in.AccountID)
	if accountID == "" {
		return nil, fmt.Errorf("%w: accountId is required", domain.ErrValidation)
	}

	occurredAt, err := parseTxDate(in.TxDate)
	if err != nil {
		return nil, err
	}

	currency, err := normalizeCurrency(in.Currency)
	if err != nil {
		return nil, err
	}

	noteValue := in.Note
	if noteValue == nil {
		noteValue = in.Description
	}
	note, err := normalizeNote(noteValue)
	if err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		ID:         uuid.New().String(),
		UserID:     userID,
		AccountID:  accountID,
		Type:       txType,
		Amount:     amount,
		Currency:   currency,
		OccurredAt: occurredAt,
		CategoryID: categoryID,
		Note:       note,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		s.logger.Error(ctx, "Failed to create transaction",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Transaction created",
		"transaction_id", tx.ID,
	)

	return tx, nil
}

func (s *transactionService) Update(ctx context.Context, userID, id string, patch TransactionPatch) (*domain.Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Type != nil {
		if tx.Type, err = parseTransactionType(*patch.Type); err != nil {
			return nil, err
		}
	}
	if patch.Amount != nil {
		if tx.Amount, err = validateAmount(*patch.Amount); err != nil {
			return nil, err
		}
	}
	if patch.AccountID != nil {
		accountID := strings.TrimSpace(*patch.AccountID)
		if accountID == "" {
			return nil, fmt.Errorf("%w: accountId cannot be empty", domain.ErrValidation)
		}
		tx.AccountID = accountID
	}
	if patch.TxDate != nil {
		if tx.OccurredAt, err = parseTxDate(*patch.TxDate); err != nil {
			return nil, err
		}
	}
	if patch.Currency != nil {
		if tx.Currency, err = normalizeCurrency(*patch.Currency); err != nil {
			return nil, err
		}
	}

	note := patch.Note
	if !note.Set {
		note = patch.Description
	}
	if note.Set {
		if tx.Note, err = normalizeNote(note.Value); err != nil {
			return nil, err
		}
	}

	if patch.CategoryID.Set {
		if tx.CategoryID, err = s.resolveCategory(ctx, patch.CategoryID.Value); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Transaction updated",
		"transaction_id", tx.ID,
	)

	return tx, nil
}

func (s *transactionService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.DeleteTransaction(ctx, userID, id); err != nil {
		return err
	}

	s.logger.Info(ctx, "Transaction deleted",
		"transaction_id", id,
	)

	return nil
}

// resolveCategory treats nil and "" as uncategorised and rejects unknown ids.
func (s *transactionService) resolveCategory(ctx context.Context, id *string) (*string, error) {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil, nil
	}

	category, err := s.categories.GetCategory(ctx, strings.TrimSpace(*id))
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidCategory, *id)
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &category.ID, nil
}

func parseTransactionType(raw string) (domain.TransactionType, error) {
	switch t := domain.TransactionType(strings.ToUpper(strings.TrimSpace(raw))); t {
	case domain.TransactionTypeIn, domain.TransactionTypeOut:
		return t, nil
	case "":
		return "", fmt.Errorf("%w: type is required", domain.ErrValidation)
	default:
		return "", fmt.Errorf("%w: type must be IN or OUT", domain.ErrValidation)
	}
}

// validateAmount rounds to the stored scale and requires 0 < amount <= 1e11.
func validateAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(domain.AmountScale)
	if !rounded.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}
	if rounded.GreaterThan(maxTransactionAmount) {
		return decimal.Zero, fmt.Errorf("%w: amount is too large", domain.ErrValidation)
	}
	return rounded, nil
}

func parseTxDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, fmt.Errorf("%w: txDate is required", domain.ErrValidation)
	}
	t, err := time.Parse(txDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", domain.ErrValidation)
	}
	return t, nil
}

func normalizeCurrency(raw string) (string, error) {
	currency := strings.ToUpper(strings.TrimSpace(raw))
	if currency == "" {
		return defaultCurrency, nil
	}
	if len(currency) != 3 {
		return "", fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrValidation)
	}
	return currency, nil
}

// normalizeNote trims the note and maps blank to nil.
func normalizeNote(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	note := strings.TrimSpace(*raw)
	if note == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(note) > maxNoteLength {
		return nil, fmt.Errorf("%w: note must be %d characters or less", domain.ErrValidation, maxNoteLength)
	}
	return &note, nil
}

type exportRow struct {
	Date       string `csv:"date"`
	Type       string `csv:"type"`
	Amount     string `csv:"amount"`
	Currency   string `csv:"currency"`
	CategoryID string `csv:"category_id"`
	Note       string `csv:"note"`
	AccountID  string `csv:"account_id"`
}

func (s *transactionService) Export(ctx context.Context, userID string, w io.Writer) (int, error) {
	rows := []*exportRow{}

	for page := 1; ; page++ {
		txs, total, err := s.repo.ListTransactions(ctx, userID, domain.TransactionFilter{
			Page:    page,
			PerPage: exportPageSize,
		})
		if err != nil {
			return 0, fmt.Errorf("list transactions page %d: %w", page, err)
		}

		for _, tx := range txs {
			rows = append(rows, toExportRow(tx))
		}

		if len(txs) == 0 || len(rows) >= total {
			break
		}
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}

	s.logger.Info(ctx, "Exported transactions",
		"rows", len(rows),
	)

	return len(rows), nil
}

func toExportRow(tx domain.Transaction) *exportRow {
	row := &exportRow{
		Date:      tx.OccurredAt.Format("2006-01-02"),
		Type:      string(tx.Type),
		Amount:    tx.Amount.StringFixed(2),
		Currency:  tx.Currency,
		AccountID: tx.AccountID,
	}
	if tx.CategoryID != nil {
		row.CategoryID = *tx.CategoryID
	}
	if tx.Note != nil {
		row.Note = *tx.Note
	}
	return row
}
