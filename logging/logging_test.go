package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/dasdy/gamepedia/logging"
	"github.com/stretchr/testify/assert"
)

func newTextLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(logging.ContextHandler{Handler: slog.NewTextHandler(buf, nil)})
}

func TestContextAttributesAreLogged(t *testing.T) {
	var buf bytes.Buffer

	logger := newTextLogger(&buf)

	ctx := logging.PackageCtx("routes")
	ctx = logging.AppendCtx(ctx, slog.String("request_id", "abc"))

	logger.InfoContext(ctx, "Handling request")

	out := buf.String()
	assert.Contains(t, out, "msg=\"Handling request\"")
	assert.Contains(t, out, "package=routes")
	assert.Contains(t, out, "request_id=abc")
}

func TestAppendCtxDoesNotLeakBetweenSiblings(t *testing.T) {
	var buf bytes.Buffer

	logger := newTextLogger(&buf)

	parent := logging.AppendCtx(context.Background(), slog.String("a", "1"))
	parent = logging.AppendCtx(parent, slog.String("b", "2"))
	left := logging.AppendCtx(parent, slog.String("side", "left"))
	_ = logging.AppendCtx(parent, slog.String("side", "right"))

	logger.InfoContext(left, "check")

	assert.Contains(t, buf.String(), "side=left")
	assert.NotContains(t, buf.String(), "side=right")
}

func TestWithAttrsKeepsContextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := newTextLogger(&buf).With("component", "web")
	ctx := logging.AppendCtx(context.Background(), slog.String("path", "/"))

	logger.InfoContext(ctx, "served")

	assert.Contains(t, buf.String(), "component=web")
	assert.Contains(t, buf.String(), "path=/")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.NewLogger(&buf, slog.LevelInfo)
	ctx := logging.AppendCtx(logging.PackageCtx("routes"), slog.String("request_id", "abc123"))

	logger.DebugContext(ctx, "Hidden below info")
	logger.InfoContext(ctx, "Handling request")

	out := buf.String()
	assert.Contains(t, out, "Handling request")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "routes")
	assert.NotContains(t, out, "Hidden below info")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, logging.ParseLevel(input))
		})
	}
}
