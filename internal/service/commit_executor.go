package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/fintrack-be/internal/config"
	"github.com/grachmannico95/fintrack-be/internal/csvimport"
	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/internal/session"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/shopspring/decimal"
)

// CommitExecutor replays the rows of a session into the transaction store,
// one row at a time and in file order. A failing row never stops the batch.
type CommitExecutor struct {
	transactions domain.TransactionRepository
	categories   domain.CategoryRepository
	cfg          config.ImportConfig
	logger       *logger.Logger
	now          func() time.Time
}

func NewCommitExecutor(transactions domain.TransactionRepository, categories domain.CategoryRepository, cfg config.ImportConfig, log *logger.Logger, now func() time.Time) *CommitExecutor {
	if now == nil {
		now = time.Now
	}
	return &CommitExecutor{
		transactions: transactions,
		categories:   categories,
		cfg:          cfg,
		logger:       log,
		now:          now,
	}
}

func (e *CommitExecutor) Execute(ctx context.Context, sess *session.Session, mapping csvimport.ColumnMapping) CommitSummary {
	summary := CommitSummary{Errors: []RowError{}}

	for i, row := range sess.Rows {
		rowNumber := i + 2

		if err := e.commitRow(ctx, sess.OwnerUserID, row, mapping); err != nil {
			e.logger.Warn(ctx, "Import row failed",
				"row", rowNumber,
				"error", err,
			)
			summary.Failed++
			summary.Errors = append(summary.Errors, RowError{Row: rowNumber, Error: err.Error()})
			continue
		}

		summary.Success++
	}

	return summary
}

func (e *CommitExecutor) commitRow(ctx context.Context, userID string, row []string, mapping csvimport.ColumnMapping) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected error: %v", r)
		}
	}()

	if issues := csvimport.ValidateRow(row, mapping); len(issues) > 0 {
		return errors.New(strings.Join(issues, ", "))
	}

	dateIdx, _ := mapping.Index(csvimport.FieldDate)
	amountIdx, _ := mapping.Index(csvimport.FieldAmount)

	occurredAt, err := csvimport.ParseDate(csvimport.Cell(row, dateIdx))
	if err != nil {
		return err
	}
	amount, err := csvimport.ParseAmount(csvimport.Cell(row, amountIdx))
	if err != nil {
		return err
	}

	tx := &domain.Transaction{
		ID:         uuid.New().String(),
		UserID:     userID,
		AccountID:  e.cfg.DefaultAccountID,
		Type:       normalizeType(optionalCell(row, mapping, csvimport.FieldType)),
		Amount:     decimal.NewFromFloat(amount).Round(domain.AmountScale),
		Currency:   e.currency(optionalCell(row, mapping, csvimport.FieldCurrency)),
		OccurredAt: occurredAt,
		CreatedAt:  e.now(),
	}

	if note := optionalCell(row, mapping, csvimport.FieldDescription); note != "" {
		tx.Note = &note
	}

	if name := optionalCell(row, mapping, csvimport.FieldCategory); name != "" {
		category, err := e.categories.FindCategoryByName(ctx, name)
		switch {
		case errors.Is(err, domain.ErrCategoryNotFound):
		case err != nil:
			return fmt.Errorf("category lookup: %w", err)
		default:
			tx.CategoryID = &category.ID
		}
	}

	return e.transactions.CreateTransaction(ctx, tx)
}

func (e *CommitExecutor) currency(raw string) string {
	if raw == "" {
		return e.cfg.DefaultCurrency
	}
	return strings.ToUpper(raw)
}

// normalizeType maps anything other than a case-insensitive "IN" to OUT.
func normalizeType(raw string) domain.TransactionType {
	if strings.EqualFold(raw, string(domain.TransactionTypeIn)) {
		return domain.TransactionTypeIn
	}
	return domain.TransactionTypeOut
}

func optionalCell(row []string, mapping csvimport.ColumnMapping, field csvimport.Field) string {
	idx, ok := mapping.Index(field)
	if !ok {
		return ""
	}
	return csvimport.Cell(row, idx)
}
