package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/wb_order_viewer/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_order_viewer/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_AddsContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core))

	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	ctx = ctxmeta.WithOrderUID(ctx, "uid-1")

	log.Warnf(ctx, "lookup failed status=%d", 500)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, "lookup failed status=500", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "req-1", fields["request_id"])
	require.Equal(t, "uid-1", fields["order_uid"])
	require.NotContains(t, fields, "trace_id")
}

func TestZapLogger_NoContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core))

	log.Infof(context.Background(), "plain")
	log.Errorf(context.Background(), "boom")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Empty(t, entries[0].ContextMap())
	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestNewZapLogger_Modes(t *testing.T) {
	for _, prod := range []bool{false, true} {
		l, cleanup, err := logger.NewZapLogger(prod)
		require.NoError(t, err)
		require.NotNil(t, l.Base())
		require.NotNil(t, l.Sugared())
		_ = cleanup() // Sync на stderr может вернуть ошибку в CI — не важно
	}
}
