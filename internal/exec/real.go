// Package exec provides a testable interface for running external commands.
// This file implements the os/exec-backed runner.
package exec

import (
	"bytes"
	"context"
	"errors"
	osexec "os/exec"
	"strings"
)

// RealRunner executes commands via os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run implements CommandRunner.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (Result, error) {
	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env
	cmd.Stdin = opts.Stdin

	var stdout, stderr bytes.Buffer
	if opts.Stdout != nil {
		cmd.Stdout = opts.Stdout
	} else {
		cmd.Stdout = &stdout
	}
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	} else {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			// Command ran and exited non-zero: report via ExitCode, not error.
			result.ExitCode = exitErr.ExitCode()
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			return result, nil
		}
		// Execution failure (binary not found, ctx canceled before start).
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		return result, err
	}

	return result, nil
}

// LookPath implements LookPather. When env carries a PATH entry, that value
// is used for resolution instead of the process PATH, so venv-prefixed
// environments resolve the same way the child process would.
func (r *RealRunner) LookPath(name string, env []string) (string, error) {
	if path, ok := pathFromEnv(env); ok {
		return lookPathIn(name, path)
	}
	return osexec.LookPath(name)
}

// pathFromEnv extracts the PATH value from an environment list.
func pathFromEnv(env []string) (string, bool) {
	for i := len(env) - 1; i >= 0; i-- {
		if strings.HasPrefix(env[i], "PATH=") {
			return strings.TrimPrefix(env[i], "PATH="), true
		}
	}
	return "", false
}
