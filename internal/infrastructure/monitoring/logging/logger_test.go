package logging

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Defaults(t *testing.T) {
	l, err := NewLogger(Config{})
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestNewLogger_InvalidOutputPath(t *testing.T) {
	_, err := NewLogger(Config{OutputPaths: []string{"bogus://nowhere"}})
	assert.Error(t, err)
}

func TestZapLogger_FieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel) // debug and above
	l := NewLoggerFromCore(core)

	l.Debug("d", String("k", "v"))
	l.Info("i", Int("n", 3), Bool("b", true))
	l.Warn("w", Strings("list", []string{"a", "b"}))
	l.Error("e", Err(fmt.Errorf("boom")), Duration("took", time.Second))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "d", entries[0].Message)
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
	assert.Equal(t, int64(3), entries[1].ContextMap()["n"])
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestZapLogger_WithAndNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core).Named("amr").With(String("component", "resolve"))

	l.Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "amr", entries[0].LoggerName)
	assert.Equal(t, "resolve", entries[0].ContextMap()["component"])
}

func TestErr_Nil(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	// Must be safe to call through the whole surface.
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	assert.NotNil(t, l.With(String("a", "b")))
	assert.NotNil(t, l.Named("sub"))
}
