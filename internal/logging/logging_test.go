package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dshills/ember/internal/event"
	"github.com/dshills/ember/internal/input"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestNewWithWriter_NamesAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(Config{Level: "info", Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Core.Debug("hidden")
	l.Core.Info("core line")
	l.Client.Warn("client line")
	l.Sync()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, CoreName, first["logger"])
	assert.Equal(t, "core line", first["msg"])
	assert.Equal(t, ClientName, second["logger"])
}

func TestLoggers_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(Config{Level: "error", Format: "console"}, zapcore.AddSync(&buf))
	require.NoError(t, err)
	assert.Equal(t, "error", l.Level())

	l.Client.Info("dropped")
	require.NoError(t, l.SetLevel("debug"))
	assert.Equal(t, "debug", l.Level())
	l.Client.Debug("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")

	assert.ErrorIs(t, l.SetLevel("nope"), ErrInvalidLevel)
	assert.Equal(t, "debug", l.Level())
}

func TestNewWithWriter_Invalid(t *testing.T) {
	_, err := NewWithWriter(Config{Level: "info", Format: "xml"}, zapcore.AddSync(&bytes.Buffer{}))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewWithWriter(Config{Level: "verbose"}, zapcore.AddSync(&bytes.Buffer{}))
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ember.log")

	l, err := New(Config{Level: "info", Format: "console", File: path})
	require.NoError(t, err)
	l.Component("window").Info("opened")
	l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "EMBER.window")
	assert.Contains(t, string(data), "opened")
}

func TestEventField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	e := event.NewKeyPressedEvent(input.KeyA, 2)
	log.Debug("raised", Event(e))
	log.Debug("raised", Event(nil))

	entries := logs.All()
	require.Len(t, entries, 2)

	obj, ok := entries[0].ContextMap()["event"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "KeyPressed", obj["name"])
	assert.Equal(t, "Input|Keyboard", obj["categories"])
	assert.Equal(t, false, obj["handled"])
	assert.Equal(t, "KeyPressedEvent: 65 (2 repeats)", obj["desc"])

	assert.Equal(t, "<nil>", entries[1].ContextMap()["event"])
}

func TestViolations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := Violations(zap.New(core))

	h(&event.InvariantError{Kind: event.KindMouseMoved, Type: "*x.Fake", Reason: "bad"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "MouseMoved", entry.ContextMap()["kind"])
	assert.Equal(t, "*x.Fake", entry.ContextMap()["type"])
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Core.Info("nothing")
	l.Client.Error("nothing")
	assert.NoError(t, l.SetLevel("debug"))
	l.Close()
}
