// Package hooks provides tests for external hook invocation.
package hooks

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// writeScript creates an executable shell script in a temp dir.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("hook scripts use /bin/sh")
	}
	path := filepath.Join(t.TempDir(), "hook.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestInvoke tests the Invoke function with various scenarios.
func TestInvoke(t *testing.T) {
	t.Run("empty command returns success without running", func(t *testing.T) {
		result, err := Invoke(context.Background(), Options{Action: ActionAdd, TaskID: 1})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Ran {
			t.Error("expected Ran to be false")
		}
	})

	t.Run("blank command returns success without running", func(t *testing.T) {
		result, err := Invoke(context.Background(), Options{Command: "   ", Action: ActionAdd})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Ran {
			t.Error("expected Ran to be false")
		}
	})

	t.Run("missing action returns error", func(t *testing.T) {
		_, err := Invoke(context.Background(), Options{Command: "echo"})
		if err == nil || !strings.Contains(err.Error(), "action") {
			t.Fatalf("expected action error, got %v", err)
		}
	})

	t.Run("missing binary returns error", func(t *testing.T) {
		result, err := Invoke(context.Background(), Options{
			Command: filepath.Join(t.TempDir(), "no-such-hook"),
			Action:  ActionRemove,
			TaskID:  9,
		})
		if err == nil {
			t.Fatal("expected error for missing hook binary")
		}
		if result.ExitCode != -1 {
			t.Errorf("expected ExitCode -1, got %d", result.ExitCode)
		}
	})
}

// TestInvokeArguments checks the hook receives action, id and status.
func TestInvokeArguments(t *testing.T) {
	hook := writeScript(t, `echo "$1|$2|$3"`)

	var stdout bytes.Buffer
	result, err := Invoke(context.Background(), Options{
		Command: hook,
		Action:  ActionDone,
		TaskID:  42,
		Status:  "completed",
		Stdout:  &stdout,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.Ran {
		t.Error("expected Ran to be true")
	}
	if got := strings.TrimSpace(stdout.String()); got != "done|42|completed" {
		t.Errorf("hook args: got %q, want done|42|completed", got)
	}
	if len(result.Command) != 4 {
		t.Errorf("Command: got %v, want 4 elements", result.Command)
	}
}

// TestInvokeHookFailure tests a hook that returns non-zero exit code.
func TestInvokeHookFailure(t *testing.T) {
	hook := writeScript(t, "echo broken >&2\nexit 42")

	var stderr bytes.Buffer
	result, err := Invoke(context.Background(), Options{
		Command: hook,
		Action:  ActionUpdate,
		TaskID:  2,
		Status:  "pending",
		Stderr:  &stderr,
	})
	if err == nil {
		t.Fatal("expected error for failed hook, got nil")
	}
	if !strings.Contains(err.Error(), "update") {
		t.Errorf("error lacks action context: %v", err)
	}
	if !result.Ran {
		t.Error("expected Ran to be true")
	}
	if result.ExitCode != 42 {
		t.Errorf("expected ExitCode 42, got %d", result.ExitCode)
	}
	if !strings.Contains(stderr.String(), "broken") {
		t.Errorf("stderr not captured: %q", stderr.String())
	}
}

// TestInvokeWithWorkDir tests hook invocation with a custom working directory.
func TestInvokeWithWorkDir(t *testing.T) {
	workDir := t.TempDir()
	hook := writeScript(t, "pwd")

	var stdout bytes.Buffer
	_, err := Invoke(context.Background(), Options{
		Command: hook,
		Action:  ActionAdd,
		TaskID:  1,
		Status:  "pending",
		WorkDir: workDir,
		Stdout:  &stdout,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want, _ := filepath.EvalSymlinks(workDir)
	got, _ := filepath.EvalSymlinks(strings.TrimSpace(stdout.String()))
	if got != want {
		t.Errorf("working dir: got %q, want %q", got, want)
	}
}

// TestInvokeWithContextCancellation tests that a cancelled context stops the hook.
func TestInvokeWithContextCancellation(t *testing.T) {
	hook := writeScript(t, "sleep 10")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	result, err := Invoke(ctx, Options{Command: hook, Action: ActionImport})
	if err == nil {
		t.Fatal("expected error from cancelled hook")
	}
	if !result.Ran {
		t.Error("expected Ran to be true")
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("hook was not stopped by context: took %v", time.Since(start))
	}
}
