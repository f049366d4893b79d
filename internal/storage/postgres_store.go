package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/fintrack-be/internal/config"
	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/grachmannico95/fintrack-be/pkg/retry"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	account_id  TEXT NOT NULL,
	type        TEXT NOT NULL,
	amount      NUMERIC(18, 4) NOT NULL,
	currency    TEXT NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL,
	category_id TEXT REFERENCES categories (id),
	note        TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS transactions_user_occurred_idx ON transactions (user_id, occurred_at DESC);

CREATE TABLE IF NOT EXISTS budgets (
	id           TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL,
	category_id  TEXT NOT NULL REFERENCES categories (id),
	month        TEXT NOT NULL,
	amount_limit NUMERIC(18, 4) NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, category_id, month)
);

CREATE TABLE IF NOT EXISTS import_records (
	preview_id   TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL,
	file_name    TEXT NOT NULL,
	total_rows   INTEGER NOT NULL,
	success      INTEGER NOT NULL,
	failed       INTEGER NOT NULL,
	committed_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS processed_events (
	event_id     TEXT PRIMARY KEY,
	processed_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

const connectMaxDelay = 5 * time.Second

const transactionColumns = `id, user_id, account_id, type, amount::text, currency, occurred_at, category_id, note, created_at`

const budgetColumns = `id, user_id, category_id, month, amount_limit::text, created_at`

// PostgresStore implements domain.Repository on a pgx connection pool.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *logger.Logger
}

// NewPostgresStore connects, retrying the initial ping, and applies the schema.
func NewPostgresStore(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	err = retry.Do(ctx, func() error {
		if pingErr := pool.Ping(ctx); pingErr != nil {
			log.Warn(ctx, "Database not reachable yet", "error", pingErr)
			return pingErr
		}
		return nil
	}, retry.WithMaxAttempts(cfg.ConnectRetries), retry.WithMaxDelay(connectMaxDelay))
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	store := &PostgresStore{pool: pool, logger: log}
	if err := store.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

// Migrate creates missing tables and seeds the default categories.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	for _, c := range DefaultCategories {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO categories (id, name, type) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			c.ID, c.Name, string(c.Type),
		)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.Name, err)
		}
	}

	return nil
}

// Ping reports whether the pool can reach the database.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	createdAt := tx.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO transactions (id, user_id, account_id, type, amount, currency, occurred_at, category_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10)`,
		tx.ID, tx.UserID, tx.AccountID, string(tx.Type), tx.Amount.String(), tx.Currency,
		tx.OccurredAt, tx.CategoryID, tx.Note, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return nil
}

func (s *PostgresStore) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error) {
	filter = filter.Normalize()

	where, args := transactionWhere(userID, filter)

	var total int
	if err := s.pool.QueryRow(ctx, "SELECT count(*) FROM transactions WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	query := fmt.Sprintf(`
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE %s
		ORDER BY occurred_at DESC, created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	items := []domain.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transaction: %w", err)
		}
		items = append(items, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transactions: %w", err)
	}

	return items, total, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		tx     domain.Transaction
		txType string
		amount string
	)
	err := row.Scan(&tx.ID, &tx.UserID, &tx.AccountID, &txType, &amount, &tx.Currency,
		&tx.OccurredAt, &tx.CategoryID, &tx.Note, &tx.CreatedAt)
	if err != nil {
		return nil, err
	}
	tx.Type = domain.TransactionType(txType)
	if tx.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("decode amount %q: %w", amount, err)
	}

	return &tx, nil
}

func (s *PostgresStore) GetTransaction(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 AND id = $2`, userID, id)

	tx, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	return tx, nil
}

func (s *PostgresStore) UpdateTransaction(ctx context.Context, tx *domain.Transaction) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE transactions
		SET account_id = $3, type = $4, amount = $5::numeric, currency = $6, occurred_at = $7, category_id = $8, note = $9
		WHERE user_id = $1 AND id = $2`,
		tx.UserID, tx.ID, tx.AccountID, string(tx.Type), tx.Amount.String(), tx.Currency,
		tx.OccurredAt, tx.CategoryID, tx.Note,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func (s *PostgresStore) DeleteTransaction(ctx context.Context, userID, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func (s *PostgresStore) AssignCategories(ctx context.Context, userID string, assignments []domain.CategoryAssignment) (int, error) {
	dbtx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin category assignment: %w", err)
	}
	defer func() { _ = dbtx.Rollback(ctx) }()

	for _, a := range assignments {
		tag, err := dbtx.Exec(ctx,
			`UPDATE transactions SET category_id = $3 WHERE user_id = $1 AND id = $2`,
			userID, a.TransactionID, a.CategoryID,
		)
		if err != nil {
			return 0, fmt.Errorf("assign category to %s: %w", a.TransactionID, err)
		}
		if tag.RowsAffected() == 0 {
			return 0, domain.ErrNotOwned
		}
	}

	if err := dbtx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit category assignment: %w", err)
	}

	return len(assignments), nil
}

func (s *PostgresStore) SpendingByCategory(ctx context.Context, userID string, from, to time.Time) (map[string]decimal.Decimal, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT category_id, sum(amount)::text
		FROM transactions
		WHERE user_id = $1 AND type = 'OUT' AND category_id IS NOT NULL
			AND occurred_at >= $2 AND occurred_at < $3
		GROUP BY category_id`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query spending: %w", err)
	}
	defer rows.Close()

	spent := make(map[string]decimal.Decimal)
	for rows.Next() {
		var categoryID, sum string
		if err := rows.Scan(&categoryID, &sum); err != nil {
			return nil, fmt.Errorf("scan spending: %w", err)
		}
		amount, err := decimal.NewFromString(sum)
		if err != nil {
			return nil, fmt.Errorf("decode spending %q: %w", sum, err)
		}
		spent[categoryID] = amount
	}

	return spent, rows.Err()
}

func transactionWhere(userID string, filter domain.TransactionFilter) (string, []interface{}) {
	clauses := []string{"user_id = $1"}
	args := []interface{}{userID}

	add := func(clause string, value interface{}) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if filter.Type != nil {
		add("type = $%d", string(*filter.Type))
	}
	if filter.CategoryID != "" {
		add("category_id = $%d", filter.CategoryID)
	}
	if filter.From != nil {
		add("occurred_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("occurred_at < $%d", filter.To.AddDate(0, 0, 1))
	}

	return strings.Join(clauses, " AND "), args
}

func (s *PostgresStore) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	var (
		c       domain.Category
		catType string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, type FROM categories WHERE lower(name) = lower($1) ORDER BY id LIMIT 1`, name,
	).Scan(&c.ID, &c.Name, &catType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	c.Type = domain.CategoryType(catType)

	return &c, nil
}

func (s *PostgresStore) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var (
		c       domain.Category
		catType string
	)
	err := s.pool.QueryRow(ctx, `SELECT id, name, type FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &catType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	c.Type = domain.CategoryType(catType)

	return &c, nil
}

func (s *PostgresStore) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	query := `SELECT id, name, type FROM categories`
	var args []interface{}
	if categoryType != nil {
		query += ` WHERE type = $1`
		args = append(args, string(*categoryType))
	}
	query += ` ORDER BY name`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var (
			c       domain.Category
			catType string
		)
		if err := rows.Scan(&c.ID, &c.Name, &catType); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Type = domain.CategoryType(catType)
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var (
		b     domain.Budget
		limit string
	)
	if err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Month, &limit, &b.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	if b.Limit, err = decimal.NewFromString(limit); err != nil {
		return nil, fmt.Errorf("decode budget limit %q: %w", limit, err)
	}

	return &b, nil
}

func (s *PostgresStore) UpsertBudget(ctx context.Context, b *domain.Budget) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO budgets (id, user_id, category_id, month, amount_limit)
		VALUES ($1, $2, $3, $4, $5::numeric)
		ON CONFLICT (user_id, category_id, month) DO UPDATE SET amount_limit = EXCLUDED.amount_limit
		RETURNING `+budgetColumns,
		b.ID, b.UserID, b.CategoryID, b.Month, b.Limit.String(),
	)

	stored, err := scanBudget(row)
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}
	*b = *stored

	return nil
}

func (s *PostgresStore) GetBudget(ctx context.Context, userID, id string) (*domain.Budget, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = $1 AND id = $2`, userID, id)

	b, err := scanBudget(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBudgetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get budget: %w", err)
	}

	return b, nil
}

func (s *PostgresStore) UpdateBudget(ctx context.Context, b *domain.Budget) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE budgets SET amount_limit = $3::numeric WHERE user_id = $1 AND id = $2`,
		b.UserID, b.ID, b.Limit.String(),
	)
	if err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}

	return nil
}

func (s *PostgresStore) DeleteBudget(ctx context.Context, userID, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM budgets WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}

	return nil
}

func (s *PostgresStore) ListBudgets(ctx context.Context, userID string, filter domain.BudgetFilter) ([]domain.Budget, int, error) {
	filter = filter.Normalize()

	where := "user_id = $1"
	args := []interface{}{userID}
	if filter.Month != "" {
		where += " AND month = $2"
		args = append(args, filter.Month)
	}

	var total int
	if err := s.pool.QueryRow(ctx, "SELECT count(*) FROM budgets WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count budgets: %w", err)
	}

	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	query := fmt.Sprintf(`
		SELECT `+budgetColumns+`
		FROM budgets
		WHERE %s
		ORDER BY month DESC, created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, *b)
	}

	return budgets, total, rows.Err()
}

func (s *PostgresStore) SaveImportRecord(ctx context.Context, record domain.ImportRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO import_records (preview_id, user_id, file_name, total_rows, success, failed, committed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (preview_id) DO NOTHING`,
		record.PreviewID, record.UserID, record.FileName, record.TotalRows,
		record.SuccessCount, record.FailedCount, record.CommittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert import record: %w", err)
	}

	return nil
}

func (s *PostgresStore) ListImportRecords(ctx context.Context, userID string) ([]domain.ImportRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT preview_id, user_id, file_name, total_rows, success, failed, committed_at
		FROM import_records
		WHERE user_id = $1
		ORDER BY committed_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query import records: %w", err)
	}
	defer rows.Close()

	records := []domain.ImportRecord{}
	for rows.Next() {
		var r domain.ImportRecord
		err := rows.Scan(&r.PreviewID, &r.UserID, &r.FileName, &r.TotalRows,
			&r.SuccessCount, &r.FailedCount, &r.CommittedAt)
		if err != nil {
			return nil, fmt.Errorf("scan import record: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

func (s *PostgresStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM processed_events WHERE event_id = $1)`, eventID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check processed event: %w", err)
	}

	return exists, nil
}

func (s *PostgresStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO processed_events (event_id) VALUES ($1) ON CONFLICT DO NOTHING`, eventID,
	)
	if err != nil {
		return fmt.Errorf("mark event processed: %w", err)
	}

	return nil
}

var _ domain.Repository = (*PostgresStore)(nil)
