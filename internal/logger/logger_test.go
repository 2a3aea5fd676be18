package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/mtlprog/embedkit/internal/logger"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for input, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(input), input)
	}
}

func TestSetupWriter(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logger.SetupWriter(&buf, slog.LevelInfo, "json")
	slog.Debug("hidden")
	slog.Info("session created", "agent_id", "agent-1")

	assert.Equal(t, "session created", gjson.Get(buf.String(), "msg").String())
	assert.Equal(t, "agent-1", gjson.Get(buf.String(), "agent_id").String())
	assert.True(t, gjson.Get(buf.String(), "source").Exists())

	buf.Reset()
	logger.SetupWriter(&buf, slog.LevelDebug, "text")
	slog.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}
