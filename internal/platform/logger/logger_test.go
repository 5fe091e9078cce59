package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"verbose": Info,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("logfmt"))
}

func TestZapLogger_FieldsAndWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core)).With(map[string]any{"module": "wizard"})

	log.Info("wizard started", map[string]any{"wizard_id": "w1", "": "dropped"})
	log.Debug("detail", nil)

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "wizard started", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, "wizard", ctx["module"])
	assert.Equal(t, "w1", ctx["wizard_id"])
	assert.NotContains(t, ctx, "")
}

func TestZapLogger_LevelFilter(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	log := FromZap(zap.New(core))

	log.Info("ignored", nil)
	log.Warn("kept", map[string]any{"error": "boom"})
	log.Error("kept too", nil)

	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, 1, logs.FilterMessage("kept").Len())
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().With(map[string]any{"a": 1}).Error("x", map[string]any{"b": 2})
	})
}
