package config

import "time"

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource

	// Config files that were read, empty when absent.
	UserFile    string
	ProjectFile string
}

// Default values.
const (
	DefaultDBPath        = "tasks.db"
	DefaultReminderHours = 24
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// MaxReminderHours caps reminder windows at roughly a century, well below
// the point where the window overflows time.Duration.
const MaxReminderHours = 24 * 365 * 100

// Config holds the full configuration for tasks.
type Config struct {
	// Database file (relative paths resolve against the project root)
	DBPath string `toml:"db_path"`

	// Reminder window for the due command, in hours
	ReminderHours int `toml:"reminder_hours"`

	// Command run after every change
	HookCommand string `toml:"hook_command"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// ReminderWindow returns the due-soon window as a duration.
func (c *Config) ReminderWindow() time.Duration {
	return time.Duration(c.ReminderHours) * time.Hour
}
