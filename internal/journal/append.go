// Package journal records download outcomes per output directory.
// Records are stored in an append-only JSONL file.
package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// DirName is the metadata directory created inside each output directory.
const DirName = ".tiktok-collection-dl"

// FileName is the journal file inside DirName.
const FileName = "journal.jsonl"

// Record is a single line in journal.jsonl.
// This is the public contract for the journal file format.
type Record struct {
	SchemaVersion string `json:"schema_version"`
	Timestamp     string `json:"timestamp"` // RFC3339
	RunID         string `json:"run_id"`    // shared by all items of one batch
	Mode          string `json:"mode"`      // "single" or "batch"
	URL           string `json:"url"`
	OutputDir     string `json:"output_dir"`
	ExitCode      int    `json:"exit_code"`
	OK            bool   `json:"ok"`
}

// SchemaVersion is the current journal record schema.
const SchemaVersion = "1"

// Path returns the journal path for an output directory.
func Path(outputDir string) string {
	return filepath.Join(outputDir, DirName, FileName)
}

// NewRecord builds a record with the current timestamp.
func NewRecord(runID, mode, url, outputDir string, exitCode int) Record {
	return Record{
		SchemaVersion: SchemaVersion,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		RunID:         runID,
		Mode:          mode,
		URL:           url,
		OutputDir:     outputDir,
		ExitCode:      exitCode,
		OK:            exitCode == 0,
	}
}

// Append appends a single record to the journal for outputDir.
// The file is created lazily if it doesn't exist.
//
// Best-effort: errors are returned but callers should typically ignore them
// and continue; a journal failure must never fail a download.
func Append(outputDir string, rec Record) (err error) {
	path := Path(outputDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.Write(data)
	return err
}
