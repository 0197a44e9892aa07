// Package clean removes leftover partial-download files from output dirs.
package clean

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/fs"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/journal"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/list"
)

// Result reports what a sweep did (or would do, in dry-run mode).
type Result struct {
	// Matched are the relative paths that matched a pattern, sorted.
	Matched []string

	// Removed is the number of files actually deleted (0 in dry-run).
	Removed int
}

// Sweep walks outputDir and removes files matching any of the doublestar
// patterns. Patterns match slash-separated paths relative to outputDir.
//
// The download archive, the batch list, and the journal directory are never
// candidates regardless of patterns: those files carry state that makes
// re-runs cheap.
func Sweep(outputDir string, patterns []string, dryRun bool) (Result, error) {
	var res Result
	if len(patterns) == 0 {
		return res, nil
	}

	root, err := filepath.Abs(outputDir)
	if err != nil {
		return res, errors.WrapWithDetails(errors.EOutputDir,
			"cannot resolve output dir", err,
			map[string]string{"output_dir": outputDir})
	}
	if _, err := os.Stat(root); err != nil {
		return res, errors.WrapWithDetails(errors.EOutputDir,
			"output dir not accessible", err,
			map[string]string{"output_dir": outputDir})
	}

	var matched []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relSlash := filepath.ToSlash(rel)

		if d.IsDir() {
			if d.Name() == journal.DirName {
				return filepath.SkipDir
			}
			return nil
		}
		if isProtected(d.Name()) {
			return nil
		}

		for _, pattern := range patterns {
			ok, err := doublestar.Match(pattern, relSlash)
			if err != nil {
				return errors.WrapWithDetails(errors.ECleanFailed,
					"invalid clean pattern", err,
					map[string]string{"pattern": pattern})
			}
			if ok {
				matched = append(matched, relSlash)
				break
			}
		}
		return nil
	})
	if err != nil {
		if errors.GetCode(err) != "" {
			return res, err
		}
		return res, errors.Wrap(errors.ECleanFailed, "sweep failed", err)
	}

	sort.Strings(matched)
	res.Matched = matched
	if dryRun {
		return res, nil
	}

	for _, rel := range matched {
		if err := fs.SafeRemove(filepath.Join(root, filepath.FromSlash(rel)), root); err != nil {
			return res, errors.WrapWithDetails(errors.ECleanFailed,
				"failed to remove matched file", err,
				map[string]string{"path": rel})
		}
		res.Removed++
	}
	return res, nil
}

// isProtected reports whether a file name carries download state.
func isProtected(name string) bool {
	if name == list.FileName {
		return true
	}
	return strings.HasPrefix(name, ".yt-dlp-archive-")
}
