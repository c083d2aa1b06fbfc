// Package hook finds and runs the post-copy script a template directory may
// carry. The script is any immediate child named _templatesmanagerscript.*;
// it runs with no arguments and the directory as its working directory.
package hook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Pattern is the glob a hook script's file name must match.
const Pattern = "_templatesmanagerscript.*"

// Result describes what happened when a directory was scanned for a hook.
type Result struct {
	Dir      string // Directory that was scanned and used as working directory
	Script   string // Script file name; empty when none was found
	Ran      bool   // Whether the script process was started
	ExitCode int    // Exit status; -1 when the process did not exit normally
	Err      error  // Start or wait failure
}

// Found reports whether a hook script was present.
func (r Result) Found() bool {
	return r.Script != ""
}

// Failed reports whether a present hook did not complete successfully.
func (r Result) Failed() bool {
	return r.Found() && (r.Err != nil || r.ExitCode != 0)
}

// Runner executes hook scripts.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput redirects the script's stdout and stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewRunner returns a Runner that inherits the process's stdout and stderr.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Find returns the name of the first immediate child of dir matching
// Pattern, or "" if there is none.
func Find(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("scanning %s for hook script: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(Pattern, e.Name()); ok {
			return e.Name(), nil
		}
	}
	return "", nil
}

// Run scans dir and, when a hook script is present, executes it there and
// waits for it. Failures are reported in the Result, never returned.
func (r *Runner) Run(ctx context.Context, dir string) Result {
	res := Result{Dir: dir}

	script, err := Find(dir)
	if err != nil {
		res.Err = err
		return res
	}
	if script == "" {
		return res
	}
	res.Script = script

	cmd := exec.CommandContext(ctx, "."+string(filepath.Separator)+script)
	cmd.Dir = dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Start(); err != nil {
		res.Err = fmt.Errorf("starting %s: %w", script, err)
		res.ExitCode = -1
		return res
	}
	res.Ran = true

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res
		}
		res.Err = fmt.Errorf("running %s: %w", script, err)
		res.ExitCode = -1
	}
	return res
}
