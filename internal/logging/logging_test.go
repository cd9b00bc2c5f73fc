package logging_test

import (
	"testing"

	"github.com/localnerve/planning-portal/internal/logging"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	assert.True(t, logging.New("debug", "json").Core().Enabled(zapcore.DebugLevel))
	assert.False(t, logging.New("warn", "console").Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logging.New("", "json").Core().Enabled(zapcore.InfoLevel))
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, logging.OrNop(nil))
}
