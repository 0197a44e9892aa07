// Package render formats human-readable command output.
package render

import (
	"fmt"
	"io"
)

// prefix tags every banner line, matching the tool's log convention.
const prefix = "[tiktok-collection-dl]"

// Linef writes one prefixed banner line.
func Linef(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, prefix+" "+format+"\n", args...)
}

// DownloadBanner describes one collection invocation.
type DownloadBanner struct {
	URL        string
	OutputDir  string
	Archive    string
	FolderName string // set when folder-per-collection mode is on
	AlbumName  string // set when album embedding resolved a clean title
	Command    string // full yt-dlp command line
}

// Download prints the pre-invocation banner for a single collection.
func Download(w io.Writer, b DownloadBanner) {
	Linef(w, "Collection : %s", b.URL)
	if b.FolderName != "" {
		Linef(w, "Folder     : %s", b.FolderName)
	}
	Linef(w, "Output dir : %s", b.OutputDir)
	Linef(w, "Archive    : %s", b.Archive)
	if b.AlbumName != "" {
		Linef(w, "Album tag  : %q", b.AlbumName)
	}
	Linef(w, "Command    : %s", b.Command)
	_, _ = fmt.Fprintln(w)
}

// LaunchBanner describes the launcher dispatch before any download starts.
type LaunchBanner struct {
	Mode      string // "single" or "batch"
	URL       string // single mode
	OutputDir string
	ListPath  string // batch mode
}

// Launch prints the launcher mode banner.
func Launch(w io.Writer, b LaunchBanner) {
	Linef(w, "Mode       : %s", b.Mode)
	if b.URL != "" {
		Linef(w, "URL        : %s", b.URL)
	}
	Linef(w, "Output dir : %s", b.OutputDir)
	if b.ListPath != "" {
		Linef(w, "List       : %s", b.ListPath)
	}
}

// ItemOutcome is one finished batch item.
type ItemOutcome struct {
	URL      string
	ExitCode int
}

// BatchSummary prints the end-of-batch report.
func BatchSummary(w io.Writer, runID string, outcomes []ItemOutcome) {
	ok, failed := 0, 0
	for _, o := range outcomes {
		if o.ExitCode == 0 {
			ok++
		} else {
			failed++
		}
	}

	_, _ = fmt.Fprintln(w)
	Linef(w, "Batch %s finished: %d ok, %d failed (of %d)", runID, ok, failed, len(outcomes))
	for _, o := range outcomes {
		if o.ExitCode != 0 {
			Linef(w, "  failed (exit %d): %s", o.ExitCode, o.URL)
		}
	}
}

// Success prints the post-invocation success line.
func Success(w io.Writer, url string) {
	Linef(w, "Done: %s", url)
}

// Failure prints the post-invocation failure line.
func Failure(w io.Writer, url string, exitCode int) {
	Linef(w, "Finished with errors (exit %d): %s", exitCode, url)
}
