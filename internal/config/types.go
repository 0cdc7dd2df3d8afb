package config

import "github.com/charmbracelet/log"

// Default values.
const (
	DefaultStoreFile = "store.json"
	DefaultLogLevel  = "info"
)

// Config holds the full configuration for taskdeck.
type Config struct {
	// StoreFile is the path to the JSON document holding all state.
	StoreFile string `toml:"store_file"`

	// Logging
	LogLevel string `toml:"log_level"`

	// Output
	NoColor bool `toml:"no_color"`
}

func setDefaults(cfg *Config) {
	cfg.StoreFile = DefaultStoreFile
	cfg.LogLevel = DefaultLogLevel
}

// LogLevelValue parses LogLevel into a charmbracelet/log level, falling
// back to info on unknown input.
func (c *Config) LogLevelValue() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
