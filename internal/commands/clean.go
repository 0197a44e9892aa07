package commands

import (
	"io"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/clean"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/config"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/render"
)

// CleanOpts holds options for the clean command.
type CleanOpts struct {
	// OutputDir is the directory to sweep (empty = config default).
	OutputDir string

	// DryRun lists matches without removing them.
	DryRun bool
}

// Clean removes leftover partial-download files from the output dir.
// Patterns come from the clean_patterns config key; list files, archive
// files, and the journal are never touched.
func Clean(cfg config.Config, opts CleanOpts, stdout io.Writer) error {
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = cfg.DefaultOutputDir
	}

	res, err := clean.Sweep(outDir, cfg.CleanPatterns, opts.DryRun)
	if err != nil {
		return err
	}

	if len(res.Matched) == 0 {
		render.Linef(stdout, "Nothing to clean in %s", outDir)
		return nil
	}
	for _, rel := range res.Matched {
		if opts.DryRun {
			render.Linef(stdout, "would remove %s", rel)
		} else {
			render.Linef(stdout, "removed %s", rel)
		}
	}
	if opts.DryRun {
		render.Linef(stdout, "Dry run: %d file(s) matched", len(res.Matched))
	} else {
		render.Linef(stdout, "Removed %d file(s)", res.Removed)
	}
	return nil
}
