package commands

import (
	"context"
	"io"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/config"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/fs"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/launch"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/list"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/render"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/ytdlp"
)

// RunOpts holds options for the env-driven run command.
type RunOpts struct {
	// Getenv is the environment lookup (os.Getenv in production).
	Getenv func(string) string

	// PassthroughArgs are forwarded to yt-dlp for every download.
	PassthroughArgs []string

	// DryRun plans without invoking yt-dlp.
	DryRun bool

	// ConsoleTitle lets yt-dlp update the terminal title during downloads.
	ConsoleTitle bool
}

// Run dispatches to single or batch mode based on the environment.
// COLLECTION_URL selects single mode, OUTPUT_DIR overrides the output
// directory; neither set means a batch over the default output dir.
func Run(ctx context.Context, client ytdlp.Client, fsys fs.FS, cfg config.Config, opts RunOpts, stdout, stderr io.Writer) error {
	plan := launch.PlanFromEnv(opts.Getenv)

	outDir := plan.OutputDir
	if outDir == "" {
		outDir = cfg.DefaultOutputDir
	}

	banner := render.LaunchBanner{
		Mode:      string(plan.Mode),
		URL:       plan.URL,
		OutputDir: outDir,
	}
	if plan.Mode == launch.ModeBatch {
		banner.ListPath = list.PathIn(outDir)
	}
	render.Launch(stdout, banner)

	if plan.Mode == launch.ModeSingle {
		return Get(ctx, client, fsys, cfg, GetOpts{
			URL:             plan.URL,
			OutputDir:       plan.OutputDir,
			PassthroughArgs: opts.PassthroughArgs,
			DryRun:          opts.DryRun,
			ConsoleTitle:    opts.ConsoleTitle,
		}, stdout, stderr)
	}
	return Batch(ctx, client, fsys, cfg, BatchOpts{
		OutputDir:       plan.OutputDir,
		PassthroughArgs: opts.PassthroughArgs,
		DryRun:          opts.DryRun,
		ConsoleTitle:    opts.ConsoleTitle,
	}, stdout, stderr)
}
