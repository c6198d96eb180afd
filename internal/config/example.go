package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasks configuration file
# Values can be overridden by TASKS_* environment variables or CLI flags

# Task database (relative to the project root, supports ~ expansion)
db_path = "tasks.db"

# Window used by "tasks due", in hours
reminder_hours = 24

# Command run after add, update, done, rm and import.
# Called as: <hook> <action> <id> <status>
# hook_command = "/path/to/hook.sh"

# Logging
log_level = "info"     # debug, info, warn, error
log_format = "text"    # text, json, logfmt
log_timestamps = false
log_caller = false
`
}
