package logging

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	for _, development := range []bool{true, false} {
		logger, err := NewLogger(development)
		require.NoError(t, err)
		assert.NotNil(t, logger)
		assert.Equal(t, development, logger.Core().Enabled(zapcore.DebugLevel))
	}
}

func TestWithRunID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := WithRunID(zap.New(core))

	logger.Info("first")
	logger.Info("second")

	entries := logs.All()
	require.Len(t, entries, 2)

	runID, ok := entries[0].ContextMap()["run_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(runID)
	assert.NoError(t, err)
	assert.Equal(t, runID, entries[1].ContextMap()["run_id"])
}
