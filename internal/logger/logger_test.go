package logger

import (
	"os"
	"path/filepath"
	"testing"

	"trivia-board/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_BeforeInitializeIsNop(t *testing.T) {
	assert.NotNil(t, Get())
}

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize(config.LoggerConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestInitialize_WritesRotatingFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")

	require.NoError(t, Initialize(config.LoggerConfig{Env: "production", Level: "debug", File: logFile}))
	Get().Info("file sink check")
	_ = Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "file sink check")
}
