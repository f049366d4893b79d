package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/grachmannico95/fintrack-be/internal/archive"
	"github.com/grachmannico95/fintrack-be/internal/config"
	"github.com/grachmannico95/fintrack-be/internal/csvimport"
	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/internal/eventbus"
	"github.com/grachmannico95/fintrack-be/internal/session"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
)

type ImportService interface {
	Preview(ctx context.Context, userID, fileName string, data []byte) (*PreviewResult, error)
	Commit(ctx context.Context, userID, previewID string, mapping csvimport.ColumnMapping) (*CommitResult, error)
	History(ctx context.Context, userID string) ([]domain.ImportRecord, error)
}

type PreviewResult struct {
	PreviewID        string                  `json:"previewId"`
	FileName         string                  `json:"fileName"`
	Headers          []string                `json:"headers"`
	SampleRows       []csvimport.RowOutcome  `json:"sampleRows"`
	SuggestedMapping csvimport.ColumnMapping `json:"suggestedMapping"`
	Ambiguities      []csvimport.Ambiguity   `json:"ambiguities"`
	TotalRows        int                     `json:"totalRows"`
	ValidRows        int                     `json:"validRows"`
	InvalidRows      int                     `json:"invalidRows"`
	ExpiresAt        time.Time               `json:"expiresAt"`
}

type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type CommitSummary struct {
	Success int        `json:"success"`
	Failed  int        `json:"failed"`
	Errors  []RowError `json:"errors"`
}

type CommitResult struct {
	Message string        `json:"message"`
	Results CommitSummary `json:"results"`
}

// ImportDeps are the collaborators of the import service. Archiver defaults
// to archive.NopArchiver and Now to time.Now.
type ImportDeps struct {
	Sessions     session.Store
	Transactions domain.TransactionRepository
	Categories   domain.CategoryRepository
	History      domain.ImportHistoryRepository
	Publisher    eventbus.Publisher
	Archiver     archive.Archiver
	Config       config.ImportConfig
	Logger       *logger.Logger
	Now          func() time.Time
}

type importService struct {
	sessions  session.Store
	history   domain.ImportHistoryRepository
	publisher eventbus.Publisher
	archiver  archive.Archiver
	executor  *CommitExecutor
	cfg       config.ImportConfig
	logger    *logger.Logger
	now       func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewImportService(deps ImportDeps) ImportService {
	if deps.Archiver == nil {
		deps.Archiver = archive.NopArchiver{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}

	return &importService{
		sessions:  deps.Sessions,
		history:   deps.History,
		publisher: deps.Publisher,
		archiver:  deps.Archiver,
		executor:  NewCommitExecutor(deps.Transactions, deps.Categories, deps.Config, deps.Logger, deps.Now),
		cfg:       deps.Config,
		logger:    deps.Logger,
		now:       deps.Now,
		inFlight:  make(map[string]struct{}),
	}
}

func (s *importService) Preview(ctx context.Context, userID, fileName string, data []byte) (*PreviewResult, error) {
	now := s.now()

	removed, err := s.sessions.SweepExpired(ctx, now, s.cfg.SessionTTL)
	if err != nil {
		s.logger.Warn(ctx, "Failed to sweep expired import sessions",
			"error", err,
		)
	} else if removed > 0 {
		s.logger.Debug(ctx, "Swept expired import sessions",
			"removed", removed,
		)
	}

	if s.cfg.MaxUploadBytes > 0 && int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, domain.ErrFileTooLarge
	}

	table, err := csvimport.ParseFile(fileName, data)
	if err != nil {
		s.logger.Info(ctx, "Rejected import upload",
			"file_name", fileName,
			"error", err,
		)
		return nil, err
	}

	if s.cfg.MaxRows > 0 && table.TotalRows() > s.cfg.MaxRows {
		return nil, fmt.Errorf("%w: %d rows, limit is %d", domain.ErrTooManyRows, table.TotalRows(), s.cfg.MaxRows)
	}

	match := csvimport.MatchHeaders(table.Headers)

	eval := csvimport.Evaluate(table.Rows, match.Mapping, s.cfg.SampleRows)

	result := &PreviewResult{
		FileName:         fileName,
		Headers:          table.Headers,
		SampleRows:       eval.Outcomes,
		SuggestedMapping: match.Mapping,
		Ambiguities:      match.Ambiguities,
		TotalRows:        table.TotalRows(),
		ValidRows:        eval.Valid,
		InvalidRows:      eval.Invalid,
		ExpiresAt:        now.Add(s.cfg.SessionTTL),
	}

	sess := &session.Session{
		ID:          session.NewID(userID, now),
		OwnerUserID: userID,
		FileName:    fileName,
		Headers:     table.Headers,
		Rows:        table.Rows,
		CreatedAt:   now,
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store import session: %w", err)
	}
	result.PreviewID = sess.ID

	ctx = logger.WithPreviewID(ctx, sess.ID)

	if err := s.archiver.Archive(ctx, archive.ObjectName(userID, sess.ID, fileName), data); err != nil {
		s.logger.Warn(ctx, "Failed to archive import upload",
			"error", err,
		)
	}

	s.logger.Info(ctx, "Import preview created",
		"file_name", fileName,
		"total_rows", result.TotalRows,
		"valid_rows", result.ValidRows,
		"invalid_rows", result.InvalidRows,
	)

	return result, nil
}

func (s *importService) Commit(ctx context.Context, userID, previewID string, mapping csvimport.ColumnMapping) (*CommitResult, error) {
	ctx = logger.WithPreviewID(ctx, previewID)

	if !s.claim(previewID) {
		s.logger.Warn(ctx, "Rejected concurrent commit")
		return nil, domain.ErrCommitInProgress
	}
	defer s.release(previewID)

	sess, err := s.sessions.Get(ctx, previewID)
	if err != nil {
		if errors.Is(err, domain.ErrPreviewNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load import session: %w", err)
	}

	if sess.Expired(s.now(), s.cfg.SessionTTL) {
		s.deleteSession(ctx, previewID)
		return nil, domain.ErrPreviewNotFound
	}

	if sess.OwnerUserID != userID {
		s.logger.Warn(ctx, "Import session accessed by another user")
		return nil, domain.ErrForbidden
	}

	if err := mapping.Validate(len(sess.Headers)); err != nil {
		return nil, err
	}

	// The client may go away mid-commit; rows already started must finish.
	commitCtx := context.WithoutCancel(ctx)

	s.logger.Info(commitCtx, "Starting import commit",
		"total_rows", len(sess.Rows),
	)

	summary := s.executor.Execute(commitCtx, sess, mapping)

	s.deleteSession(commitCtx, previewID)

	record := domain.ImportRecord{
		PreviewID:    previewID,
		UserID:       sess.OwnerUserID,
		FileName:     sess.FileName,
		TotalRows:    len(sess.Rows),
		SuccessCount: summary.Success,
		FailedCount:  summary.Failed,
		CommittedAt:  s.now(),
	}
	if err := s.publisher.Publish(commitCtx, eventbus.NewImportCompleted(record)); err != nil {
		s.logger.Error(commitCtx, "Failed to publish import completed event",
			"error", err,
		)
	}

	s.logger.Info(commitCtx, "Import commit finished",
		"success", summary.Success,
		"failed", summary.Failed,
	)

	return &CommitResult{
		Message: fmt.Sprintf("Imported %d of %d transactions", summary.Success, len(sess.Rows)),
		Results: summary,
	}, nil
}

func (s *importService) History(ctx context.Context, userID string) ([]domain.ImportRecord, error) {
	records, err := s.history.ListImportRecords(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list import history",
			"error", err,
		)
		return nil, err
	}
	return records, nil
}

func (s *importService) claim(previewID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[previewID]; busy {
		return false
	}
	s.inFlight[previewID] = struct{}{}
	return true
}

func (s *importService) release(previewID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, previewID)
}

func (s *importService) deleteSession(ctx context.Context, previewID string) {
	if err := s.sessions.Delete(ctx, previewID); err != nil {
		s.logger.Error(ctx, "Failed to delete import session",
			"error", err,
		)
	}
}
