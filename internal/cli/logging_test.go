package cli

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  log.Level
	}{
		{value: "", want: log.InfoLevel},
		{value: "debug", want: log.DebugLevel},
		{value: "DEBUG", want: log.DebugLevel},
		{value: "warn", want: log.WarnLevel},
		{value: "ERROR", want: log.ErrorLevel},
		{value: "verbose", want: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, levelFromEnv(tt.value))
		})
	}
}

func TestConfigureLogging(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	t.Setenv(EnvLogLevel, "debug")
	ConfigureLogging()
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}
