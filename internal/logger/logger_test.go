package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	got, ok := ParseLogLevel("verbose")
	require.False(t, ok)
	require.Equal(t, DefaultLevel, got)
}

func TestContextLogger(t *testing.T) {
	t.Run("Should fall back to a no-op logger", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.NotPanics(t, func() { DebugKV(context.Background(), "ignored", "k", "v") })
	})
	t.Run("Should write fields carried by the context", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := ToContext(context.Background(), New(&buf, zapcore.DebugLevel))
		ctx = WithKV(ctx, "run_id", "abc")
		InfoKV(ctx, "manifest read", "path", "Cargo.toml")
		out := buf.String()
		assert.Contains(t, out, "manifest read")
		assert.Contains(t, out, `"run_id": "abc"`)
		assert.Contains(t, out, `"path": "Cargo.toml"`)
	})
	t.Run("Should drop messages below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := ToContext(context.Background(), New(&buf, zapcore.WarnLevel))
		DebugKV(ctx, "hidden")
		InfoKV(ctx, "hidden too")
		WarnKV(ctx, "shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}
