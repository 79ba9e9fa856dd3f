package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs(t *testing.T) {
	out := sanitizeKVs([]interface{}{"api_key", "sk-123", "model", "gpt", "max_tokens", 60, "dangling"})

	assert.Equal(t, []interface{}{"api_key", "[REDACTED]", "model", "gpt", "max_tokens", 60, "dangling"}, out)
}

func TestLoggerRedactsSecrets(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("request_id", "r-1").Info("llm client ready", "provider", "openai", "LLM_API_KEY", "sk-abc")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "openai", fields["provider"])
	assert.Equal(t, "[REDACTED]", fields["LLM_API_KEY"])
	assert.Equal(t, "r-1", fields["request_id"])
}

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		l, err := New(mode)
		require.NoError(t, err)
		assert.NotNil(t, l.SugaredLogger)
	}
	assert.NotPanics(t, func() { Nop().Warn("ignored", "k", "v") })
}
