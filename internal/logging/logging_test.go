package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "skyblock")
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Warn("meter clamped", "roll", 7)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "meter clamped")
	assert.Contains(t, out, "roll=7")
	assert.Contains(t, out, "skyblock")
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	logger := New(&bytes.Buffer{}, "verbose", "")
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}
