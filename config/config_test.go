package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("CIRC_BORROW_LIMIT", "5")

	cfg := NewConfig(WithLogLevel(zapcore.DebugLevel))

	// env wins over the code default
	require.Equal(t, 5, cfg.BorrowLimit)
	require.Equal(t, "circulation_report.pdf", cfg.Report.Path)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)

	// sync.Once: later options do not reconfigure
	again := NewConfig(WithBorrowLimit(1))
	require.Equal(t, cfg, again)
}
