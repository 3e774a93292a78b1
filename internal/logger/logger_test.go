package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Behyna/ujumbesms/internal/config"
	"github.com/Behyna/ujumbesms/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Level(t *testing.T) {
	log, err := logger.New(&config.Config{Log: config.Log{Level: "warn"}})
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := logger.New(&config.Config{Log: config.Log{Level: "verbose"}})
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zap.InfoLevel))
	assert.False(t, log.Core().Enabled(zap.DebugLevel))
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ujumbesms.log")

	log, err := logger.New(&config.Config{Log: config.Log{Level: "info", File: path, MaxSizeMB: 1}})
	require.NoError(t, err)

	log.Info("balance inquiry", zap.Int64("credits", 10))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"balance inquiry"`)
	assert.Contains(t, string(data), `"credits":10`)
}
