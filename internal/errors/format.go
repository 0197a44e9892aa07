// Package errors provides error formatting for tiktok-collection-dl CLI output.
package errors

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// PrintOptions controls error output formatting.
type PrintOptions struct {
	// Verbose enables detailed error output with more context keys.
	Verbose bool
}

// Context key whitelist (default mode, in order).
var defaultContextKeys = []string{
	"url",
	"output_dir",
	"archive",
	"list",
	"config",
	"command",
	"exit_code",
	"pattern",
	"path",
}

// Additional context keys for verbose mode.
var verboseContextKeys = []string{
	"url",
	"output_dir",
	"collection",
	"uploader",
	"folder",
	"archive",
	"list",
	"config",
	"command",
	"exit_code",
	"pattern",
	"path",
	"venv",
	"stderr",
}

// Truncation limits.
const (
	maxValueLen      = 256 // max chars for single-line context values
	maxExtraValueLen = 128 // max chars for extra section values
)

// Format formats an error for display. Pure function, no I/O.
func Format(err error, opts PrintOptions) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	de, isDL := AsDLError(err)
	if !isDL {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("error_code: ")
	sb.WriteString(string(de.Code))
	sb.WriteString("\n")
	sb.WriteString(de.Msg)
	sb.WriteString("\n")

	contextKeys := defaultContextKeys
	if opts.Verbose {
		contextKeys = verboseContextKeys
	}

	printedKeys := make(map[string]bool)
	wroteHeader := false

	for _, key := range contextKeys {
		if de.Details == nil {
			continue
		}
		val, ok := de.Details[key]
		if !ok || val == "" {
			continue
		}
		if key == "hint" {
			continue
		}
		if !wroteHeader {
			sb.WriteString("\n")
			wroteHeader = true
		}
		printedKeys[key] = true
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(sanitizeValue(val, maxValueLen))
		sb.WriteString("\n")
	}

	// In verbose mode, print non-whitelisted keys under extra:
	if opts.Verbose && de.Details != nil {
		var extraKeys []string
		for key := range de.Details {
			if !printedKeys[key] && key != "hint" {
				extraKeys = append(extraKeys, key)
			}
		}
		if len(extraKeys) > 0 {
			sort.Strings(extraKeys)
			sb.WriteString("\nextra:\n")
			for _, key := range extraKeys {
				val := de.Details[key]
				if val == "" {
					continue
				}
				sb.WriteString("  ")
				sb.WriteString(key)
				sb.WriteString(": ")
				sb.WriteString(sanitizeValue(val, maxExtraValueLen))
				sb.WriteString("\n")
			}
		}
	}

	if de.Details != nil {
		if hint, ok := de.Details["hint"]; ok && hint != "" {
			sb.WriteString("\nhint: ")
			sb.WriteString(hint)
			sb.WriteString("\n")
		}
	}

	for _, try := range deriveTryLines(de) {
		sb.WriteString("try: ")
		sb.WriteString(try)
		sb.WriteString("\n")
	}

	return sb.String()
}

// PrintWithOptions writes a formatted error to w with the given options.
func PrintWithOptions(w io.Writer, err error, opts PrintOptions) {
	if err == nil {
		return
	}
	_, _ = io.WriteString(w, Format(err, opts))
}

// sanitizeValue sanitizes a value for single-line context output.
func sanitizeValue(val string, maxLen int) string {
	val = strings.TrimRight(val, " \t\r\n")
	val = strings.ReplaceAll(val, "\r\n", "\n")
	val = strings.ReplaceAll(val, "\n", "\\n")
	if len(val) > maxLen {
		return val[:maxLen] + "…"
	}
	return val
}

// deriveTryLines returns actionable suggestions based on error code.
func deriveTryLines(de *DLError) []string {
	if de == nil {
		return nil
	}

	var lines []string

	switch de.Code {
	case EYtdlpNotInstalled:
		lines = append(lines, "pip install yt-dlp")
		lines = append(lines, "set venv_path in tiktok_collection_dl_config.yaml")
	case EFfmpegNotInstalled:
		lines = append(lines, "install ffmpeg and ensure it is on PATH")
	case EListNotFound:
		if de.Details != nil {
			if list := de.Details["list"]; list != "" {
				lines = append(lines, fmt.Sprintf("create %s with one collection URL per line", list))
			}
		}
	case EConfigExists:
		if de.Details != nil {
			if cfg := de.Details["config"]; cfg != "" {
				lines = append(lines, fmt.Sprintf("edit %s directly", cfg))
			}
		}
	}

	return lines
}
