package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(
		WithLoggerLevel(LevelDebug),
		WithLoggerWriter(buf),
		WithHandler(TextHandler),
	)
	ctx := WithStdlib(context.Background(), l)

	StdlibLogger(ctx).Debug("test message", "customer_id", "C1")
	require.Contains(t, buf.String(), "test message")
	require.Contains(t, buf.String(), "customer_id=C1")
}

func TestLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(WithLoggerWriter(buf), WithHandler(TextHandler))

	l.Info("hidden")
	l.Debug("hidden")
	require.Empty(t, buf.String())

	l.Warn("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestCustomLevelsJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(WithLoggerLevel(LevelTrace), WithLoggerWriter(buf), WithHandler(JSONHandler))

	l.With("account", "A1").Trace("tracing")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "TRACE", line["level"])
	assert.Equal(t, "A1", line["account"])
	assert.Equal(t, LevelTrace, l.With("k", "v").Level())
}

func TestStdlibLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, StdlibLevel("TRACE"))
	assert.Equal(t, LevelDebug, StdlibLevel("debug"))
	assert.Equal(t, LevelNotice, StdlibLevel("notice"))
	assert.Equal(t, LevelError, StdlibLevel("error"))
	assert.Equal(t, DefaultStdlibLevel, StdlibLevel("bogus"))
}

func TestHandler(t *testing.T) {
	assert.Equal(t, JSONHandler, Handler("JSON"))
	assert.Equal(t, TextHandler, Handler("txt"))
	assert.Equal(t, DevHandler, Handler(""))
}

func TestVoidLogger(t *testing.T) {
	l := VoidLogger()
	l.Error("nothing to see")
	l.Trace("nor here")
	assert.Equal(t, l, l.With())
}
