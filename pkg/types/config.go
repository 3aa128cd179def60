// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// StripConfig holds settings for the strip run.
type StripConfig struct {
	// Root is the base directory the target list is resolved against.
	// Empty means the directory of the running executable.
	Root string `json:"root" yaml:"root" mapstructure:"root"`
}

// HistoryConfig holds settings for the run history database.
type HistoryConfig struct {
	// Enabled records each successful batch run when true.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// DBPath is the SQLite database file (default <root>/.logstrip/history.db).
	DBPath string `json:"db_path" yaml:"db_path" mapstructure:"db_path"`
}

// Config groups all logstrip settings as read from the config file.
type Config struct {
	Strip   StripConfig   `json:"strip" yaml:"strip" mapstructure:"strip"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
