package commands

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/config"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/fs"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/list"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/render"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/ytdlp"
)

// BatchOpts holds options for the batch command.
type BatchOpts struct {
	// OutputDir is the directory holding list.txt (empty = config default).
	OutputDir string

	// PassthroughArgs are forwarded to yt-dlp for every item.
	PassthroughArgs []string

	// DryRun plans every item without invoking yt-dlp.
	DryRun bool

	// ConsoleTitle lets yt-dlp update the terminal title during downloads.
	ConsoleTitle bool
}

// NewRunID returns a fresh short batch run identifier.
func NewRunID() string {
	return uuid.NewString()[:8]
}

// Batch downloads every collection listed in list.txt, sequentially.
//
// A failed item does not stop the batch; an interrupt does. The batch
// exits with the last non-zero item exit code when any item failed.
func Batch(ctx context.Context, client ytdlp.Client, fsys fs.FS, cfg config.Config, opts BatchOpts, stdout, stderr io.Writer) error {
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = cfg.DefaultOutputDir
	}
	listPath := list.PathIn(outDir)

	urls, found, err := list.Read(fsys, outDir)
	if err != nil {
		return errors.WrapWithDetails(errors.EListNotFound,
			"cannot read collection list", err,
			map[string]string{"list": listPath})
	}
	if !found {
		return errors.NewWithDetails(errors.EListNotFound,
			"collection list not found",
			map[string]string{"list": listPath, "output_dir": outDir})
	}
	if len(urls) == 0 {
		return errors.NewWithDetails(errors.EEmptyList,
			"collection list has no URLs",
			map[string]string{"list": listPath})
	}

	runID := NewRunID()
	render.Linef(stdout, "Batch %s: %d collection(s) from %s", runID, len(urls), listPath)

	outcomes := make([]render.ItemOutcome, 0, len(urls))
	lastFailure := 0
	for i, url := range urls {
		render.Linef(stdout, "[%d/%d] %s", i+1, len(urls), url)

		itemErr := Get(ctx, client, fsys, cfg, GetOpts{
			URL:             url,
			OutputDir:       outDir,
			PassthroughArgs: opts.PassthroughArgs,
			DryRun:          opts.DryRun,
			ConsoleTitle:    opts.ConsoleTitle,
			RunID:           runID,
			Mode:            "batch",
		}, stdout, stderr)

		exitCode := errors.ExitCode(itemErr)
		outcomes = append(outcomes, render.ItemOutcome{URL: url, ExitCode: exitCode})
		if exitCode != 0 {
			lastFailure = exitCode
		}

		if errors.GetCode(itemErr) == errors.EInterrupted || ctx.Err() != nil {
			render.BatchSummary(stdout, runID, outcomes)
			return itemErr
		}
	}

	render.BatchSummary(stdout, runID, outcomes)

	if lastFailure != 0 {
		failed := make([]string, 0, len(outcomes))
		for _, o := range outcomes {
			if o.ExitCode != 0 {
				failed = append(failed, o.URL)
			}
		}
		return errors.WithExitCode(errors.NewWithDetails(errors.EBatchFailed,
			"some collections failed to download",
			map[string]string{"url": strings.Join(failed, ", "), "list": listPath}), lastFailure)
	}
	return nil
}
