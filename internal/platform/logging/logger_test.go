package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_InfoContextAddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	ctx := WithRequestID(context.Background(), "req-42")
	logger.InfoContext(ctx, "upstream fetched", "url", "https://example.test/leagues?id=47", "status", 200)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "https://example.test/leagues?id=47", fields["url"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestLogger_ErrorValuesUseNamedErrorField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Warn("penalty enrichment fallback", "error", errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
}

func TestLogger_OddArgsDoNotPanic(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Info("dangling", "key")

	entries := logs.All()
	require.Len(t, entries, 1)
	_, ok := entries[0].ContextMap()["key"]
	assert.True(t, ok)
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("nil logger")
		logger.With("k", "v").Named("x").Debug("child")
	})
}
