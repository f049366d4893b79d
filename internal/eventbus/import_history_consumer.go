package eventbus

import (
	"context"
	"fmt"

	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
)

// ImportHistoryConsumer persists an ImportRecord per completed commit.
type ImportHistoryConsumer struct {
	repo        domain.ImportHistoryRepository
	logger      *logger.Logger
	workerCount int
}

func NewImportHistoryConsumer(repo domain.ImportHistoryRepository, log *logger.Logger, workerCount int) *ImportHistoryConsumer {
	if workerCount < 1 {
		workerCount = 1
	}
	return &ImportHistoryConsumer{
		repo:        repo,
		logger:      log,
		workerCount: workerCount,
	}
}

func (c *ImportHistoryConsumer) Consume(ctx context.Context, event Event) error {
	processed, err := c.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		c.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		c.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(ImportCompletedEvent)
	if !ok {
		return fmt.Errorf("invalid payload type %T for %s", event.Payload, event.Type)
	}

	ctx = logger.WithUserID(ctx, payload.Record.UserID)
	ctx = logger.WithPreviewID(ctx, payload.Record.PreviewID)

	if err := c.repo.SaveImportRecord(ctx, payload.Record); err != nil {
		c.logger.Error(ctx, "Failed to save import record",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if err := c.repo.MarkEventProcessed(ctx, event.ID); err != nil {
		c.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	c.logger.Debug(ctx, "Import record saved",
		"success", payload.Record.SuccessCount,
		"failed", payload.Record.FailedCount,
	)

	return nil
}

func (c *ImportHistoryConsumer) GetWorkerCount() int {
	return c.workerCount
}
