package config

import (
	"fmt"
	"strings"
)

// LoggingConfig defines diagnostic log settings. Logs go to stderr.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error or disabled.
	Level string `json:"level"`
	// Console switches from JSON lines to human readable output.
	Console bool `json:"console"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "warn"
	}
	c.Level = strings.ToLower(c.Level)
}

// Validate checks the level name.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
		return nil
	}
	return fmt.Errorf("unknown log level %s", c.Level)
}
