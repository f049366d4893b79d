// Package session holds uploaded import files between preview and commit.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one parsed upload awaiting a commit decision.
type Session struct {
	ID          string
	OwnerUserID string
	FileName    string
	Headers     []string
	Rows        [][]string
	CreatedAt   time.Time
}

// Expired reports whether the session is older than ttl at now.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) > ttl
}

// NewID builds a preview id carrying the owner and creation time. The random
// suffix keeps two uploads in the same millisecond apart.
func NewID(userID string, createdAt time.Time) string {
	return fmt.Sprintf("import_%s_%d_%s", userID, createdAt.UnixMilli(), uuid.New().String()[:8])
}

// Store is the keyed holder of import sessions. Get returns
// domain.ErrPreviewNotFound for unknown ids; ownership is the caller's check.
type Store interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	SweepExpired(ctx context.Context, now time.Time, ttl time.Duration) (int, error)
}
