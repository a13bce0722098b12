package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	type test struct {
		env   string
		level zapcore.Level
	}

	tests := []test{
		{"prod", zapcore.InfoLevel},
		{"development", zapcore.DebugLevel},
		{"test", zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(
			tt.env, func(t *testing.T) {
				logger, err := NewLogger(tt.env)
				require.NoError(t, err)
				require.True(t, logger.Core().Enabled(tt.level))
				require.False(t, logger.Core().Enabled(tt.level-1))
			},
		)
	}

	logger, err := NewLogger("none")
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.FatalLevel))
}
