// Package errors defines the stable error code system for tiktok-collection-dl.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	// Configuration error codes
	EInvalidConfig Code = "E_INVALID_CONFIG" // config file exists but cannot be parsed
	EConfigExists  Code = "E_CONFIG_EXISTS"  // config init target already exists

	// Prerequisite error codes
	EYtdlpNotInstalled  Code = "E_YTDLP_NOT_INSTALLED"  // yt-dlp not resolvable on PATH
	EFfmpegNotInstalled Code = "E_FFMPEG_NOT_INSTALLED" // ffmpeg not resolvable on PATH

	// Download error codes
	EDownloadFailed Code = "E_DOWNLOAD_FAILED" // yt-dlp exited non-zero
	EProbeFailed    Code = "E_PROBE_FAILED"    // metadata probe failed
	EInterrupted    Code = "E_INTERRUPTED"     // stopped by SIGINT

	// Batch error codes
	EListNotFound Code = "E_LIST_NOT_FOUND" // list.txt missing in output dir
	EEmptyList    Code = "E_EMPTY_LIST"     // list.txt has no usable URLs
	EBatchFailed  Code = "E_BATCH_FAILED"   // one or more batch items failed

	// Filesystem error codes
	EOutputDir   Code = "E_OUTPUT_DIR"   // output directory cannot be created/accessed
	ECleanFailed Code = "E_CLEAN_FAILED" // clean could not remove matched files
)

// DLError is the standard error type for tiktok-collection-dl errors.
type DLError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *DLError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *DLError) Unwrap() error {
	return e.Cause
}

// ExitCodeError wraps an error with an explicit process exit code.
// Used to propagate yt-dlp exit codes unchanged.
type ExitCodeError struct {
	Err  error
	Code int
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

func (e *ExitCodeError) ExitCode() int {
	return e.Code
}

// WithExitCode wraps err with a specific process exit code.
func WithExitCode(err error, code int) error {
	return &ExitCodeError{Err: err, Code: code}
}

// New creates a new DLError with the given code and message.
func New(code Code, msg string) error {
	return &DLError{Code: code, Msg: msg}
}

// NewWithDetails creates a new DLError with code, message, and details.
// Details map is defensively copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &DLError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new DLError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &DLError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new DLError wrapping an underlying error with details.
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &DLError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not a DLError.
func GetCode(err error) Code {
	var de *DLError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// AsDLError returns (*DLError, true) if err is or wraps a DLError.
func AsDLError(err error) (*DLError, bool) {
	var de *DLError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// copyDetails returns a defensive copy of the details map, or nil if empty/nil.
func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the appropriate exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors.
// An ExitCodeError anywhere in the chain wins (yt-dlp propagation).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec *ExitCodeError
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var de *DLError
	if errors.As(err, &de) {
		_, _ = fmt.Fprintf(w, "error_code: %s\n", de.Code)
		_, _ = fmt.Fprintln(w, de.Msg)
	} else {
		_, _ = fmt.Fprintln(w, err.Error())
	}
}
