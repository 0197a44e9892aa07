// Package exec provides a testable interface for running external commands.
package exec

import (
	"context"
	"io"
)

// RunOpts holds per-invocation options for CommandRunner.Run.
type RunOpts struct {
	// Dir is the working directory for the command (empty = inherit).
	Dir string

	// Env is the full environment for the command (nil = inherit).
	Env []string

	// Stdout and Stderr, when non-nil, stream the command's output instead
	// of capturing it into the Result. Used for interactive yt-dlp runs so
	// progress output reaches the terminal live.
	Stdout io.Writer
	Stderr io.Writer

	// Stdin, when non-nil, is connected to the command's stdin.
	Stdin io.Reader
}

// Result holds the outcome of a completed command.
// Stdout/Stderr are empty when the corresponding writer was provided in RunOpts.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandRunner is the interface for running external commands.
// A non-zero exit code is not an error: it is reported via Result.ExitCode.
// Run returns an error only for execution failures (binary not found,
// context canceled, I/O setup failures).
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, opts RunOpts) (Result, error)
}

// LookPather resolves an executable name against a search path.
// Split out from CommandRunner so doctor checks can be stubbed independently.
type LookPather interface {
	LookPath(name string, env []string) (string, error)
}
