// Package hooks invokes an external command after task changes.
package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Actions passed as the hook's first argument.
const (
	ActionAdd    = "add"
	ActionUpdate = "update"
	ActionDone   = "done"
	ActionRemove = "rm"
	ActionImport = "import"
)

// Options configures a hook invocation.
type Options struct {
	Command string
	Action  string
	TaskID  int64
	Status  string
	WorkDir string

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Result captures the outcome of a hook invocation.
type Result struct {
	Ran      bool
	Command  []string
	ExitCode int
}

// Invoke runs the hook command as `<command> <action> <id> <status>`.
// An empty command is a no-op.
func Invoke(ctx context.Context, opts Options) (Result, error) {
	command := strings.TrimSpace(opts.Command)
	if command == "" {
		return Result{}, nil
	}
	if opts.Action == "" {
		return Result{}, fmt.Errorf("hook action is empty")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	args := []string{opts.Action, strconv.FormatInt(opts.TaskID, 10), opts.Status}
	cmd := exec.CommandContext(ctx, command, args...)
	if opts.WorkDir != "" {
		cmd.Dir = opts.WorkDir
	}
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	result := Result{
		Ran:      true,
		Command:  cmd.Args,
		ExitCode: exitCodeFromError(err),
	}
	if err != nil {
		return result, fmt.Errorf("hook %s %s: %w", command, opts.Action, err)
	}
	return result, nil
}

func exitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
