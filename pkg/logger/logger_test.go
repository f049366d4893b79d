package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))
	assert.Empty(t, GetUserID(ctx))

	ctx = WithTraceID(ctx, "trace-1")
	ctx = WithUserID(ctx, "user-1")
	ctx = WithPreviewID(ctx, "import_user-1_1")

	assert.Equal(t, "trace-1", GetTraceID(ctx))
	assert.Equal(t, "user-1", GetUserID(ctx))
	assert.Equal(t, "import_user-1_1", GetPreviewID(ctx))
}

func TestBuildFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := &Logger{zap: zap.New(core)}

	ctx := WithUserID(WithTraceID(context.Background(), "trace-1"), "user-1")
	log.Warn(ctx, "row failed",
		"row", 3,
		"error", errors.New("Invalid date"),
		42, "ignored",
		"dangling",
	)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "trace-1", fields["trace_id"])
		assert.Equal(t, "user-1", fields["user_id"])
		assert.EqualValues(t, 3, fields["row"])
		assert.Equal(t, "Invalid date", fields["error"])
		assert.NotContains(t, fields, "dangling")
		assert.Len(t, fields, 4)
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zap.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zap.InfoLevel, parseLevel("verbose"))
}
