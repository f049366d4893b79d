package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/grachmannico95/fintrack-be/internal/config"
	"github.com/grachmannico95/fintrack-be/internal/csvimport"
	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/internal/eventbus"
	"github.com/grachmannico95/fintrack-be/internal/session"
	"github.com/grachmannico95/fintrack-be/internal/storage"
	"github.com/grachmannico95/fintrack-be/mocks"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const mixedStatementCSV = "Date,Amount,Type\n2025-01-01,1000,IN\nbad-date,500,OUT\n2025-01-03,-5,OUT\n"

var dateAmountTypeMapping = csvimport.ColumnMapping{
	csvimport.FieldDate:   0,
	csvimport.FieldAmount: 1,
	csvimport.FieldType:   2,
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingArchiver struct {
	objects []string
	err     error
}

func (a *recordingArchiver) Archive(ctx context.Context, objectName string, data []byte) error {
	a.objects = append(a.objects, objectName)
	return a.err
}

func testImportConfig() config.ImportConfig {
	return config.ImportConfig{
		SessionTTL:       10 * time.Minute,
		MaxUploadBytes:   1 << 20,
		SampleRows:       20,
		MaxRows:          1000,
		DefaultAccountID: "acc_cash",
		DefaultCurrency:  "USD",
	}
}

type importFixture struct {
	svc      ImportService
	store    *storage.MemoryStore
	sessions *session.MemoryStore
	clock    *fakeClock
}

func newImportFixture(t *testing.T) *importFixture {
	t.Helper()

	publisher := mocks.NewMockPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	f := &importFixture{
		store:    storage.NewMemoryStore(),
		sessions: session.NewMemoryStore(),
		clock:    newFakeClock(),
	}
	f.svc = NewImportService(ImportDeps{
		Sessions:     f.sessions,
		Transactions: f.store,
		Categories:   f.store,
		History:      f.store,
		Publisher:    publisher,
		Config:       testImportConfig(),
		Logger:       logger.NewNop(),
		Now:          f.clock.Now,
	})
	return f
}

func TestNewImportService(t *testing.T) {
	f := newImportFixture(t)

	assert.NotNil(t, f.svc)
	assert.Implements(t, (*ImportService)(nil), f.svc)
}

func TestPreview_CountsInvalidDateAndAmount(t *testing.T) {
	f := newImportFixture(t)

	result, err := f.svc.Preview(context.Background(), "user-1", "statement.csv", []byte(mixedStatementCSV))
	require.NoError(t, err)

	assert.NotEmpty(t, result.PreviewID)
	assert.Contains(t, result.PreviewID, "import_user-1_")
	assert.Equal(t, []string{"Date", "Amount", "Type"}, result.Headers)
	assert.Equal(t, dateAmountTypeMapping, result.SuggestedMapping)
	assert.Empty(t, result.Ambiguities)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 1, result.ValidRows)
	assert.Equal(t, 2, result.InvalidRows)

	require.Len(t, result.SampleRows, 3)
	assert.Equal(t, 2, result.SampleRows[0].Row)
	assert.Empty(t, result.SampleRows[0].Issues)
	assert.Equal(t, []string{csvimport.IssueInvalidDate}, result.SampleRows[1].Issues)
	assert.Equal(t, []string{csvimport.IssueInvalidAmount}, result.SampleRows[2].Issues)

	assert.Equal(t, 1, f.sessions.Len())
}

func TestPreview_SampleRowsAreCapped(t *testing.T) {
	publisher := mocks.NewMockPublisher(t)
	cfg := testImportConfig()
	cfg.SampleRows = 2
	store := storage.NewMemoryStore()

	svc := NewImportService(ImportDeps{
		Sessions:     session.NewMemoryStore(),
		Transactions: store,
		Categories:   store,
		History:      store,
		Publisher:    publisher,
		Config:       cfg,
		Logger:       logger.NewNop(),
	})

	result, err := svc.Preview(context.Background(), "user-1", "s.csv", []byte(mixedStatementCSV))
	require.NoError(t, err)

	assert.Len(t, result.SampleRows, 2)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 1, result.ValidRows)
	assert.Equal(t, 2, result.InvalidRows)
}

func TestPreview_RejectsBadUploads(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "empty file", data: "", wantErr: domain.ErrInsufficientData},
		{name: "header only", data: "Date,Amount\n", wantErr: domain.ErrInsufficientData},
		{name: "broken quoting", data: "Date,Amount\n\"2025-01-01,10\n", wantErr: domain.ErrCSVParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newImportFixture(t)

			result, err := f.svc.Preview(context.Background(), "user-1", "s.csv", []byte(tt.data))

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			assert.Equal(t, 0, f.sessions.Len())
		})
	}
}

func TestPreview_Limits(t *testing.T) {
	store := storage.NewMemoryStore()
	cfg := testImportConfig()
	cfg.MaxRows = 2
	cfg.MaxUploadBytes = 128

	svc := NewImportService(ImportDeps{
		Sessions:     session.NewMemoryStore(),
		Transactions: store,
		Categories:   store,
		History:      store,
		Publisher:    mocks.NewMockPublisher(t),
		Config:       cfg,
		Logger:       logger.NewNop(),
	})

	_, err := svc.Preview(context.Background(), "user-1", "s.csv", []byte(mixedStatementCSV))
	assert.ErrorIs(t, err, domain.ErrTooManyRows)

	big := make([]byte, 129)
	_, err = svc.Preview(context.Background(), "user-1", "s.csv", big)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestPreview_ArchivesUpload(t *testing.T) {
	store := storage.NewMemoryStore()
	archiver := &recordingArchiver{err: errors.New("bucket unavailable")}

	svc := NewImportService(ImportDeps{
		Sessions:     session.NewMemoryStore(),
		Transactions: store,
		Categories:   store,
		History:      store,
		Publisher:    mocks.NewMockPublisher(t),
		Archiver:     archiver,
		Config:       testImportConfig(),
		Logger:       logger.NewNop(),
	})

	result, err := svc.Preview(context.Background(), "user-1", "jan.csv", []byte(mixedStatementCSV))

	// archival failure never fails the preview
	require.NoError(t, err)
	require.Len(t, archiver.objects, 1)
	assert.Equal(t, "imports/user-1/"+result.PreviewID+"/jan.csv", archiver.objects[0])
}

func TestCommit_ImportsValidRowsAndReportsFailures(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	preview, err := f.svc.Preview(ctx, "user-1", "statement.csv", []byte(mixedStatementCSV))
	require.NoError(t, err)

	result, err := f.svc.Commit(ctx, "user-1", preview.PreviewID, dateAmountTypeMapping)
	require.NoError(t, err)

	assert.Equal(t, "Imported 1 of 3 transactions", result.Message)
	assert.Equal(t, 1, result.Results.Success)
	assert.Equal(t, 2, result.Results.Failed)
	assert.Equal(t, []RowError{
		{Row: 3, Error: csvimport.IssueInvalidDate},
		{Row: 4, Error: csvimport.IssueInvalidAmount},
	}, result.Results.Errors)

	txs, total, err := f.store.ListTransactions(ctx, "user-1", domain.TransactionFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, domain.TransactionTypeIn, txs[0].Type)
	assert.Equal(t, "1000", txs[0].Amount.String())
	assert.Equal(t, "USD", txs[0].Currency)
	assert.Equal(t, "acc_cash", txs[0].AccountID)
	assert.Nil(t, txs[0].CategoryID)
	assert.Nil(t, txs[0].Note)
}

func TestCommit_UnknownPreview(t *testing.T) {
	f := newImportFixture(t)

	result, err := f.svc.Commit(context.Background(), "user-1", "import_user-1_0_deadbeef", dateAmountTypeMapping)

	assert.ErrorIs(t, err, domain.ErrPreviewNotFound)
	assert.Nil(t, result)
}

func TestCommit_OtherUserIsForbidden(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	preview, err := f.svc.Preview(ctx, "user-1", "statement.csv", []byte(mixedStatementCSV))
	require.NoError(t, err)

	_, err = f.svc.Commit(ctx, "user-2", preview.PreviewID, dateAmountTypeMapping)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// the owner can still commit
	result, err := f.svc.Commit(ctx, "user-1", preview.PreviewID, dateAmountTypeMapping)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Results.Success)
}

func TestCommit_SecondCommitIsNotFound(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	preview, err := f.svc.Preview(ctx, "user-1", "statement.csv", []byte(mixedStatementCSV))
	require.NoError(t, err)

	_, err = f.svc.Commit(ctx, "user-1", preview.PreviewID, dateAmountTypeMapping)
	require.NoError(t, err)

	_, err = f.svc.Commit(ctx, "user-1", preview.PreviewID, dateAmountTypeMapping)
	assert.ErrorIs(t, err, domain.ErrPreviewNotFound)
	assert.Equal(t, 0, f.sessions.Len())
}

func TestCommit_InvalidMappingKeepsSession(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	preview, err := f.svc.Preview(ctx, "user-1", "statement.csv", []byte(mixedStatementCSV))
	require.NoError(t, err)

	_, err = f.svc.Commit(ctx, "user-1", preview.PreviewID, csvimport.ColumnMapping{csvimport.FieldDate: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidMapping)

	_, err = f.svc.Commit(ctx, "user-1", preview.PreviewID, csvimport.ColumnMapping{
		csvimport.FieldDate:   0,
		csvimport.FieldAmount: 7,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMapping)

	assert.Equal(t, 1, f.sessions.Len())
}

func TestSessionExpiry(t *testing.T) {
	t.Run("retrievable at nine minutes", func(t *testing.T) {
		f := newImportFixture(t)
		ctx := context.Background()

		preview, err := f.svc.Preview(ctx, "user-1", "s.csv", []byte(mixedStatementCSV))
		require.NoError(t, err)

		f.clock.Advance(9 * time.Minute)
		_, err = f.svc.Preview(ctx, "user-2", "other.csv", []byte(mixedStatementCSV))
		require.NoError(t, err)

		_, err = f.svc.Commit(ctx, "user-1", preview.PreviewID, dateAmountTypeMapping)
		assert.NoError(t, err)
	})

	t.Run("gone at eleven minutes after a sweep", func(t *testing.T) {
		f := newImportFixture(t)
		ctx := context.Background()

		preview, err := f.svc.Preview(ctx, "user-1", "s.csv", []byte(mixedStatementCSV))
		require.NoError(t, err)

		f.clock.Advance(11 * time.Minute)
		_, err = f.svc.Preview(ctx, "user-2", "other.csv", []byte(mixedStatementCSV))
		require.NoError(t, err)
		assert.Equal(t, 1, f.sessions.Len())

		_, err = f.svc.Commit(ctx, "user-1", preview.PreviewID, dateAmountTypeMapping)
		assert.ErrorIs(t, err, domain.ErrPreviewNotFound)
	})

	t.Run("expired without a sweep is not found", func(t *testing.T) {
		f := newImportFixture(t)
		ctx := context.Background()

		preview, err := f.svc.Preview(ctx, "user-1", "s.csv", []byte(mixedStatementCSV))
		require.NoError(t, err)

		f.clock.Advance(11 * time.Minute)

		_, err = f.svc.Commit(ctx, "user-1", preview.PreviewID, dateAmountTypeMapping)
		assert.ErrorIs(t, err, domain.ErrPreviewNotFound)
		assert.Equal(t, 0, f.sessions.Len())
	})
}

func TestCommit_ConcurrentCommitIsRejected(t *testing.T) {
	store := storage.NewMemoryStore()
	txRepo := mocks.NewMockTransactionRepository(t)
	publisher := mocks.NewMockPublisher(t)
	sessions := session.NewMemoryStore()

	started := make(chan struct{})
	unblock := make(chan struct{})
	var once sync.Once

	txRepo.EXPECT().
		CreateTransaction(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, tx *domain.Transaction) {
			once.Do(func() { close(started) })
			<-unblock
		}).
		Return(nil)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewImportService(ImportDeps{
		Sessions:     sessions,
		Transactions: txRepo,
		Categories:   store,
		History:      store,
		Publisher:    publisher,
		Config:       testImportConfig(),
		Logger:       logger.NewNop(),
	})

	ctx := context.Background()
	preview, err := svc.Preview(ctx, "user-1", "s.csv", []byte(mixedStatementCSV))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Commit(ctx, "user-1", preview.PreviewID, dateAmountTypeMapping)
		done <- err
	}()

	<-started
	_, err = svc.Commit(ctx, "user-1", preview.PreviewID, dateAmountTypeMapping)
	assert.ErrorIs(t, err, domain.ErrCommitInProgress)

	close(unblock)
	require.NoError(t, <-done)

	_, err = svc.Commit(ctx, "user-1", preview.PreviewID, dateAmountTypeMapping)
	assert.ErrorIs(t, err, domain.ErrPreviewNotFound)
}

func TestCommit_CancelledRequestStillFinishes(t *testing.T) {
	f := newImportFixture(t)

	preview, err := f.svc.Preview(context.Background(), "user-1", "s.csv", []byte(mixedStatementCSV))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := f.svc.Commit(ctx, "user-1", preview.PreviewID, dateAmountTypeMapping)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Results.Success)
}

func TestCommit_PublishesImportCompleted(t *testing.T) {
	store := storage.NewMemoryStore()
	publisher := mocks.NewMockPublisher(t)
	clock := newFakeClock()

	var published eventbus.Event
	publisher.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("eventbus.Event")).
		Run(func(ctx context.Context, event eventbus.Event) {
			published = event
		}).
		Return(errors.New("bus closed")).
		Once()

	svc := NewImportService(ImportDeps{
		Sessions:     session.NewMemoryStore(),
		Transactions: store,
		Categories:   store,
		History:      store,
		Publisher:    publisher,
		Config:       testImportConfig(),
		Logger:       logger.NewNop(),
		Now:          clock.Now,
	})

	ctx := context.Background()
	preview, err := svc.Preview(ctx, "user-1", "jan.csv", []byte(mixedStatementCSV))
	require.NoError(t, err)

	// a publish failure does not change the commit outcome
	_, err = svc.Commit(ctx, "user-1", preview.PreviewID, dateAmountTypeMapping)
	require.NoError(t, err)

	assert.Equal(t, eventbus.EventTypeImportCompleted, published.Type)
	assert.Equal(t, "import-completed-"+preview.PreviewID, published.ID)

	payload, ok := published.Payload.(eventbus.ImportCompletedEvent)
	require.True(t, ok)
	assert.Equal(t, domain.ImportRecord{
		PreviewID:    preview.PreviewID,
		UserID:       "user-1",
		FileName:     "jan.csv",
		TotalRows:    3,
		SuccessCount: 1,
		FailedCount:  2,
		CommittedAt:  clock.Now(),
	}, payload.Record)
}

func TestHistory(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.SaveImportRecord(ctx, domain.ImportRecord{PreviewID: "p1", UserID: "user-1"}))
	require.NoError(t, f.store.SaveImportRecord(ctx, domain.ImportRecord{PreviewID: "p2", UserID: "user-2"}))

	records, err := f.svc.History(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "p1", records[0].PreviewID)
}
