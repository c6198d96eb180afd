package config

import "flag"

// flagToSource maps flag names to source field names.
var flagToSource = map[string]string{
	"db":             "db_path",
	"reminder-hours": "reminder_hours",
	"hook":           "hook_command",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// parseFlags defines and parses CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	return parseFlagsHelper(cfg, fs, args, nil, "")
}

// parseFlagsHelper binds the global flags to cfg and parses args. Flags
// default to the values loaded so far, so only flags present on the command
// line change anything. If sources is non-nil, it tracks the source of each
// value.
func parseFlagsHelper(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource, source ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("tasks", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the task database")
	fs.IntVar(&cfg.ReminderHours, "reminder-hours", cfg.ReminderHours, "Window for the due command (hours)")
	fs.StringVar(&cfg.HookCommand, "hook", cfg.HookCommand, "Command to run after each change")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if fieldName, ok := flagToSource[f.Name]; ok {
				sources[fieldName] = source
			}
		})
	}

	return nil
}
