package commands

import (
	"os"

	"github.com/charmbracelet/log"

	"evalgo.org/archium/internal/config"
)

// newLogger creates the CLI logger from the logging configuration.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(cfg *config.Config) *log.Logger {
	level := log.InfoLevel
	if cfg != nil {
		if parsed, err := log.ParseLevel(cfg.Logging.Level); err == nil {
			level = parsed
		}
	}

	formatter := log.TextFormatter
	if cfg != nil && cfg.Logging.Format == "json" {
		formatter = log.JSONFormatter
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Formatter:       formatter,
	})
}
