package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLogLevel names the environment variable holding the startup log level.
const EnvLogLevel = "LOG_LEVEL"

// ConfigureLogging sets up the default logger from the environment. The
// --log-level flag still overrides the level once a command runs.
func ConfigureLogging() {
	log.SetLevel(levelFromEnv(os.Getenv(EnvLogLevel)))
	log.SetReportTimestamp(true)
	log.SetReportCaller(true)

	if path := os.Getenv(EnvConfigFile); path != "" {
		log.Debug("Using config file from environment", "file", path)
	}
}

func levelFromEnv(value string) log.Level {
	switch strings.ToUpper(value) {
	case "DEBUG":
		return log.DebugLevel
	case "WARN":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
