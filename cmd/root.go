// Package cmd implements the CLI command structure for tasks.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasks-go/internal/config"
	"github.com/nibzard/tasks-go/internal/hooks"
	"github.com/nibzard/tasks-go/internal/logging"
	"github.com/nibzard/tasks-go/internal/query"
	"github.com/nibzard/tasks-go/internal/store"
	"github.com/nibzard/tasks-go/internal/task"
	"github.com/nibzard/tasks-go/internal/transfer"
	"github.com/nibzard/tasks-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// now is the clock used by the due command.
var now = time.Now

// app carries the wiring shared by every subcommand.
type app struct {
	cfg    *config.Config
	cws    *config.ConfigWithSources
	logger *log.Logger
	store  *store.Store
	query  *query.Service
	stdout io.Writer
	stderr io.Writer
}

// Run executes the tasks CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("tasks", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}

	cfg := cws.Config
	a := &app{
		cfg: cfg,
		cws: cws,
		logger: logging.New(stderr, logging.Options{
			Level:      cfg.LogLevel,
			Format:     cfg.LogFormat,
			Timestamps: cfg.LogTimestamps,
			Caller:     cfg.LogCaller,
		}),
		store:  store.New(cfg.DBPath),
		stdout: stdout,
		stderr: stderr,
	}
	a.query = query.New(a.store)

	if *showVersion {
		return a.versionCommand()
	}

	// Determine the subcommand
	// If no args, list all tasks
	subcommand := "ls"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	// Commands that never touch the database
	switch subcommand {
	case "version":
		return a.versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	case "config":
		return helpShown(a.configCommand(remainingArgs))
	case "doctor":
		return helpShown(a.doctorCommand(ctx, remainingArgs))
	}

	commands := map[string]func(context.Context, []string) error{
		"init":      a.initCommand,
		"add":       a.addCommand,
		"ls":        a.lsCommand,
		"pending":   a.statusShortcut(task.StatusPending),
		"completed": a.statusShortcut(task.StatusCompleted),
		"show":      a.showCommand,
		"update":    a.updateCommand,
		"done":      a.doneCommand,
		"rm":        a.rmCommand,
		"search":    a.searchCommand,
		"sort":      a.sortCommand,
		"due":       a.dueCommand,
		"export":    a.exportCommand,
		"import":    a.importCommand,
		"tui":       a.tuiCommand,
	}
	command, ok := commands[subcommand]
	if !ok {
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}

	if err := a.store.Initialize(ctx); err != nil {
		return err
	}
	a.logger.Debug("database ready", "path", a.store.Path())

	return helpShown(command(ctx, remainingArgs))
}

// helpShown treats -h on a subcommand as success. The flag set has
// already written its usage to stderr.
func helpShown(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

// initCommand creates the database and optionally an example config file.
func (a *app) initCommand(_ context.Context, args []string) error {
	fs := newFlagSet("init", a.stderr)
	writeConfig := fs.Bool("config", false, "Also write an example tasks.toml in the current directory")
	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Initialized task database at %s\n", a.store.Path())
	if !*writeConfig {
		return nil
	}

	path := filepath.Join(a.cfg.ProjectRoot, "tasks.toml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.WriteFile(path, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	fmt.Fprintf(a.stdout, "Wrote example config to %s\n", path)
	return nil
}

// addCommand inserts a new task.
func (a *app) addCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("add", a.stderr)
	deadline := fs.String("deadline", "", "Deadline (YYYY-MM-DD)")
	priority := fs.String("priority", "", "Priority (high|medium|low)")
	status := fs.String("status", "", "Initial status (default pending)")
	positional, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return err
	}

	draft := task.Draft{
		Description: strings.Join(positional, " "),
		Deadline:    task.Ptr(*deadline),
		Priority:    task.Ptr(*priority),
		Status:      task.Status(strings.TrimSpace(*status)),
	}
	a.warn(task.CheckDraft(draft))

	id, err := a.store.Insert(ctx, draft)
	if err != nil {
		return err
	}
	a.logger.Info("task added", "id", id)
	fmt.Fprintf(a.stdout, "Task added successfully! (ID: %d)\n", id)

	return a.runHook(ctx, hooks.ActionAdd, id, string(draft.Normalize().Status))
}

// lsCommand lists tasks, optionally filtered by status or sorted.
func (a *app) lsCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("ls", a.stderr)
	status := fs.String("status", "", "Filter by status (pending|completed)")
	sortField := fs.String("sort", "", "Sort by field (deadline|status|priority)")
	verbose := fs.Bool("v", false, "Show more details")
	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return err
	}

	statusFilter := strings.TrimSpace(*status)
	field := strings.TrimSpace(*sortField)
	if statusFilter != "" && field != "" {
		return fmt.Errorf("-status and -sort cannot be combined")
	}

	var (
		tasks []task.Task
		err   error
		empty = "No tasks found."
	)
	switch {
	case statusFilter != "":
		tasks, err = a.query.FilterByStatus(ctx, task.Status(statusFilter))
		empty = fmt.Sprintf("No %s tasks found.", statusFilter)
	case field != "":
		tasks, err = a.query.SortBy(ctx, field)
	default:
		tasks, err = a.query.All(ctx)
	}
	if err != nil {
		return err
	}
	a.printTasks(tasks, empty, *verbose)
	return nil
}

// statusShortcut returns a command listing tasks with a fixed status.
func (a *app) statusShortcut(status task.Status) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		fs := newFlagSet(string(status), a.stderr)
		verbose := fs.Bool("v", false, "Show more details")
		if _, err := parseArgs(fs, args, 0, 0); err != nil {
			return err
		}
		tasks, err := a.query.FilterByStatus(ctx, status)
		if err != nil {
			return err
		}
		a.printTasks(tasks, fmt.Sprintf("No %s tasks found.", status), *verbose)
		return nil
	}
}

// showCommand prints one task.
func (a *app) showCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("show", a.stderr)
	positional, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	id, err := parseID(positional[0])
	if err != nil {
		return err
	}

	t, err := a.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		fmt.Fprintln(a.stdout, "Task not found.")
		return nil
	}
	printTaskDetails(a.stdout, t)
	a.warn(task.Check(*t))
	return nil
}

// updateCommand changes the given fields of a task. Blank flags leave the
// field unchanged.
func (a *app) updateCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("update", a.stderr)
	description := fs.String("description", "", "New description")
	deadline := fs.String("deadline", "", "New deadline (YYYY-MM-DD)")
	status := fs.String("status", "", "New status (pending|completed)")
	priority := fs.String("priority", "", "New priority (high|medium|low)")
	positional, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	id, err := parseID(positional[0])
	if err != nil {
		return err
	}

	patch := task.Patch{
		Description: task.Ptr(*description),
		Deadline:    task.Ptr(*deadline),
		Status:      task.Ptr(*status),
		Priority:    task.Ptr(*priority),
	}
	return a.applyPatch(ctx, hooks.ActionUpdate, id, patch)
}

// doneCommand marks a task completed.
func (a *app) doneCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("done", a.stderr)
	positional, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	id, err := parseID(positional[0])
	if err != nil {
		return err
	}
	patch := task.Patch{Status: task.Ptr(string(task.StatusCompleted))}
	return a.applyPatch(ctx, hooks.ActionDone, id, patch)
}

func (a *app) applyPatch(ctx context.Context, action string, id int64, patch task.Patch) error {
	current, err := a.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		fmt.Fprintln(a.stdout, "Task not found.")
		return nil
	}
	if patch.Empty() {
		fmt.Fprintln(a.stdout, "Nothing to update.")
		return nil
	}
	a.warn(task.CheckPatch(patch))

	if err := a.store.Update(ctx, id, patch); err != nil {
		return err
	}
	a.logger.Info("task updated", "id", id, "action", action)
	fmt.Fprintln(a.stdout, "Task updated successfully!")

	status := string(current.Status)
	if patch.Status != nil {
		status = strings.TrimSpace(*patch.Status)
	}
	return a.runHook(ctx, action, id, status)
}

// rmCommand deletes a task.
func (a *app) rmCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("rm", a.stderr)
	positional, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	id, err := parseID(positional[0])
	if err != nil {
		return err
	}

	current, err := a.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		fmt.Fprintln(a.stdout, "Task not found.")
		return nil
	}
	if err := a.store.Delete(ctx, id); err != nil {
		return err
	}
	a.logger.Info("task deleted", "id", id)
	fmt.Fprintln(a.stdout, "Task deleted successfully!")

	return a.runHook(ctx, hooks.ActionRemove, id, string(current.Status))
}

// searchCommand finds tasks by description keyword.
func (a *app) searchCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("search", a.stderr)
	verbose := fs.Bool("v", false, "Show more details")
	positional, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return err
	}
	keyword := strings.Join(positional, " ")

	tasks, err := a.query.Search(ctx, keyword)
	if err != nil {
		return err
	}
	a.printTasks(tasks, fmt.Sprintf("No tasks matching %q.", keyword), *verbose)
	return nil
}

// sortCommand lists all tasks ordered by a field.
func (a *app) sortCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("sort", a.stderr)
	verbose := fs.Bool("v", false, "Show more details")
	positional, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}

	tasks, err := a.query.SortBy(ctx, positional[0])
	if err != nil {
		return err
	}
	a.printTasks(tasks, "No tasks found.", *verbose)
	return nil
}

// dueCommand lists tasks whose deadline falls within the reminder window.
func (a *app) dueCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("due", a.stderr)
	hours := fs.Int("hours", a.cfg.ReminderHours, "Reminder window in hours")
	verbose := fs.Bool("v", false, "Show more details")
	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return err
	}

	// Larger values overflow time.Duration.
	if *hours > config.MaxReminderHours {
		return &task.ValidationError{
			Field: "hours",
			Err:   fmt.Errorf("must be at most %d, got %d", config.MaxReminderHours, *hours),
		}
	}
	window := time.Duration(*hours) * time.Hour
	tasks, err := a.query.DueWithin(ctx, now(), window)
	if err != nil {
		return err
	}
	a.printTasks(tasks, fmt.Sprintf("No tasks due within %d hours.", *hours), *verbose)
	return nil
}

// exportCommand writes every task as JSON or YAML.
func (a *app) exportCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("export", a.stderr)
	formatName := fs.String("format", "json", "Output format (json|yaml)")
	output := fs.String("o", "", "Write to file instead of stdout")
	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return err
	}

	format, err := transfer.ParseFormat(*formatName)
	if err != nil {
		return err
	}
	tasks, err := a.query.All(ctx)
	if err != nil {
		return err
	}

	if *output == "" {
		return transfer.Export(a.stdout, tasks, format)
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := transfer.Export(f, tasks, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	a.logger.Info("tasks exported", "count", len(tasks), "path", *output, "format", format)
	fmt.Fprintf(a.stdout, "Exported %d task(s) to %s\n", len(tasks), *output)
	return nil
}

// importCommand inserts every task from a JSON export. Ids in the file are
// ignored.
func (a *app) importCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("import", a.stderr)
	positional, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}

	var r io.Reader
	if positional[0] == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(positional[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	doc, err := transfer.Decode(r)
	if err != nil {
		return err
	}

	drafts := doc.Drafts()
	for i, draft := range drafts {
		a.warn(task.CheckDraft(draft))
		id, err := a.store.Insert(ctx, draft)
		if err != nil {
			return fmt.Errorf("import task %d of %d: %w", i+1, len(drafts), err)
		}
		a.logger.Debug("task imported", "id", id)
		if err := a.runHook(ctx, hooks.ActionImport, id, string(draft.Normalize().Status)); err != nil {
			return err
		}
	}
	a.logger.Info("tasks imported", "count", len(drafts))
	fmt.Fprintf(a.stdout, "Imported %d task(s).\n", len(drafts))
	return nil
}

// tuiCommand launches the terminal browser.
func (a *app) tuiCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("tui", a.stderr)
	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return err
	}
	return ui.RunTUI(ctx, a.query, ui.Options{
		DBPath: a.store.Path(),
		Window: a.cfg.ReminderWindow(),
	})
}

// doctorCommand checks configuration and the database.
func (a *app) doctorCommand(ctx context.Context, args []string) error {
	fs := newFlagSet("doctor", a.stderr)
	verbose := fs.Bool("v", false, "Verbose output")
	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return err
	}

	w := a.stdout
	fmt.Fprintln(w, "Tasks Doctor")
	fmt.Fprintln(w, "============")
	fmt.Fprintln(w)

	allOK := true

	// Check project root
	fmt.Fprintf(w, "Project root: %s\n", a.cfg.ProjectRoot)
	if _, err := os.Stat(a.cfg.ProjectRoot); err != nil {
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		allOK = false
	} else {
		fmt.Fprintln(w, "  ✅ OK")
	}
	fmt.Fprintln(w)

	// Check config
	fmt.Fprintln(w, "Config:")
	if file := a.cws.GetConfigFile(); file != "" {
		fmt.Fprintf(w, "  ✅ Config file: %s\n", file)
	} else {
		fmt.Fprintln(w, "  ✅ Config file: none (using defaults)")
	}
	fmt.Fprintf(w, "  ✅ Reminder window: %d hours\n", a.cfg.ReminderHours)
	if a.cfg.HookCommand == "" {
		fmt.Fprintln(w, "  ✅ Hook: not configured")
	} else if path, err := exec.LookPath(a.cfg.HookCommand); err != nil {
		fmt.Fprintf(w, "  ❌ Hook: %s (not found)\n", a.cfg.HookCommand)
		allOK = false
	} else {
		fmt.Fprintf(w, "  ✅ Hook: %s\n", path)
	}
	fmt.Fprintln(w)

	// Check database
	fmt.Fprintf(w, "Database: %s\n", a.store.Path())
	dbOK := true
	if err := a.store.Initialize(ctx); err != nil {
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		dbOK = false
	}
	if dbOK {
		columns, err := a.store.Columns(ctx)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  ❌ Error reading schema: %v\n", err)
			dbOK = false
		case !hasColumns(columns, "id", "description", "deadline", "status", "priority"):
			fmt.Fprintf(w, "  ❌ Unexpected columns: %s\n", strings.Join(columns, ", "))
			dbOK = false
		default:
			fmt.Fprintln(w, "  ✅ Schema OK")
			if *verbose {
				fmt.Fprintf(w, "     Columns: %s\n", strings.Join(columns, ", "))
			}
		}
	}
	if dbOK {
		tasks, err := a.query.All(ctx)
		if err != nil {
			fmt.Fprintf(w, "  ❌ Error reading tasks: %v\n", err)
			dbOK = false
		} else {
			warnings := 0
			for _, t := range tasks {
				for _, msg := range task.Check(t) {
					warnings++
					if *verbose {
						fmt.Fprintf(w, "     ⚠️  Task %d: %s\n", t.ID, msg)
					}
				}
			}
			fmt.Fprintf(w, "  ✅ %d task(s)\n", len(tasks))
			if warnings > 0 {
				fmt.Fprintf(w, "  ⚠️  %d warning(s) (use -v for details)\n", warnings)
			}
		}
	}
	if !dbOK {
		allOK = false
	}
	fmt.Fprintln(w)

	if !allOK {
		fmt.Fprintln(w, "❌ Some checks failed")
		return fmt.Errorf("doctor checks failed")
	}
	fmt.Fprintln(w, "✅ All checks passed")
	return nil
}

// configCommand prints the effective configuration.
func (a *app) configCommand(args []string) error {
	fs := newFlagSet("config", a.stderr)
	example := fs.Bool("example", false, "Print an example config file")
	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return err
	}
	if *example {
		fmt.Fprint(a.stdout, config.ExampleConfig())
		return nil
	}

	if file := a.cws.GetConfigFile(); file != "" {
		fmt.Fprintf(a.stdout, "# config file: %s\n", file)
	}
	for _, f := range a.cws.Fields() {
		fmt.Fprintf(a.stdout, "%-15s = %-30q # %s\n", f.Name, f.Value, f.Source)
	}
	return nil
}

func (a *app) versionCommand() error {
	fmt.Fprintf(a.stdout, "tasks version %s\n", Version)
	return nil
}

// runHook invokes the configured hook after a change.
func (a *app) runHook(ctx context.Context, action string, id int64, status string) error {
	if a.cfg.HookCommand == "" {
		return nil
	}
	result, err := hooks.Invoke(ctx, hooks.Options{
		Command: a.cfg.HookCommand,
		Action:  action,
		TaskID:  id,
		Status:  status,
		WorkDir: a.cfg.ProjectRoot,
		Stdout:  a.stdout,
		Stderr:  a.stderr,
	})
	if err != nil {
		a.logger.Error("hook failed", "action", action, "id", id, "exit", result.ExitCode, "err", err)
		return fmt.Errorf("task %d saved but %w", id, err)
	}
	a.logger.Debug("hook ran", "command", result.Command)
	return nil
}

func (a *app) warn(warnings []string) {
	for _, msg := range warnings {
		a.logger.Warn(msg)
	}
}

func (a *app) printTasks(tasks []task.Task, empty string, verbose bool) {
	if len(tasks) == 0 {
		fmt.Fprintln(a.stdout, empty)
		return
	}
	for i := range tasks {
		if verbose {
			printTaskDetails(a.stdout, &tasks[i])
			fmt.Fprintln(a.stdout)
			continue
		}
		fmt.Fprintln(a.stdout, tasks[i].String())
	}
}

func printTaskDetails(w io.Writer, t *task.Task) {
	fmt.Fprintf(w, "Task %d\n", t.ID)
	fmt.Fprintf(w, "  Description: %s\n", t.Description)
	fmt.Fprintf(w, "  Deadline:    %s\n", orDash(t.DeadlineValue()))
	fmt.Fprintf(w, "  Status:      %s\n", t.Status)
	fmt.Fprintf(w, "  Priority:    %s\n", orDash(t.PriorityValue()))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("tasks "+name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// parseArgs parses flags that may appear before or after positional
// arguments and checks the positional count. maxArgs < 0 means unbounded.
func parseArgs(fs *flag.FlagSet, args []string, minArgs, maxArgs int) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}

	name := strings.TrimPrefix(fs.Name(), "tasks ")
	if len(positional) < minArgs {
		return nil, fmt.Errorf("%s: missing argument", name)
	}
	if maxArgs >= 0 && len(positional) > maxArgs {
		return nil, fmt.Errorf("%s: unexpected arguments: %v", name, positional[maxArgs:])
	}
	return positional, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}

func hasColumns(columns []string, want ...string) bool {
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[c] = true
	}
	for _, c := range want {
		if !have[c] {
			return false
		}
	}
	return true
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Tasks - a small task manager backed by SQLite")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasks [global options] [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  init [-config]              Create the database (and an example tasks.toml)")
	fmt.Fprintln(w, "  add <description>           Add a task (-deadline, -priority, -status)")
	fmt.Fprintln(w, "  ls                          List tasks (default command; -status, -sort, -v)")
	fmt.Fprintln(w, "  pending                     List pending tasks")
	fmt.Fprintln(w, "  completed                   List completed tasks")
	fmt.Fprintln(w, "  show <id>                   Show one task")
	fmt.Fprintln(w, "  update <id>                 Update a task (-description, -deadline, -status, -priority)")
	fmt.Fprintln(w, "  done <id>                   Mark a task completed")
	fmt.Fprintln(w, "  rm <id>                     Delete a task")
	fmt.Fprintln(w, "  search <keyword>            Find tasks by description")
	fmt.Fprintln(w, "  sort <field>                List tasks ordered by deadline, status or priority")
	fmt.Fprintln(w, "  due [-hours N]              List tasks due soon")
	fmt.Fprintln(w, "  export [-format F] [-o P]   Export tasks as json or yaml")
	fmt.Fprintln(w, "  import <file>               Import tasks from a JSON export (- for stdin)")
	fmt.Fprintln(w, "  tui                         Launch terminal UI")
	fmt.Fprintln(w, "  doctor [-v]                 Check config and database")
	fmt.Fprintln(w, "  config [-example]           Show effective configuration")
	fmt.Fprintln(w, "  version                     Show version information")
	fmt.Fprintln(w, "  help                        Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
