package common_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planvet/planvet/internal/interface/cli/common"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want common.LogLevel
	}{
		{"debug", common.LogLevelDebug},
		{"info", common.LogLevelInfo},
		{"warn", common.LogLevelWarn},
		{"warning", common.LogLevelWarn},
		{"error", common.LogLevelError},
		{"ERROR", common.LogLevelError},
		{"", common.LogLevelInfo},
		{"bogus", common.LogLevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, common.ParseLogLevel(tt.in), "level %q", tt.in)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := common.NewLogger(&buf, common.LogLevelWarn)

	logger.Debugf("hidden %d", 1)
	logger.Infof("hidden %d", 2)
	logger.Warnf("shown %d", 3)
	logger.Errorf("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN: shown 3")
	assert.Contains(t, out, "ERROR: shown 4")
}
