package commands

import (
	"context"
	"io"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/config"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/exec"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/fs"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/render"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/ytdlp"
)

// DoctorOpts holds environment inputs for the doctor command.
type DoctorOpts struct {
	// Cwd and Home anchor the config search paths.
	Cwd  string
	Home string

	// Env is the child process environment (venv PATH already applied).
	Env []string
}

// Doctor checks the tool's prerequisites and reports each one.
// A missing yt-dlp fails the command; everything else is informational
// (ffmpeg is only needed for format conversion and tagging).
func Doctor(ctx context.Context, client ytdlp.Client, lp exec.LookPather, fsys fs.FS, cfg config.Config, opts DoctorOpts, stdout io.Writer) error {
	version, err := client.Version(ctx)
	ytdlpOK := err == nil
	render.CheckLine(stdout, ytdlp.Binary, ytdlpOK, version)

	ffmpegPath, err := lp.LookPath("ffmpeg", opts.Env)
	render.CheckLine(stdout, "ffmpeg", err == nil, ffmpegPath)

	if cfg.VenvPath != "" {
		binDir := config.VenvBinDir(cfg.VenvPath)
		_, statErr := fsys.Stat(binDir)
		render.CheckLine(stdout, "venv", statErr == nil, binDir)
	}

	for _, path := range config.SearchPaths(opts.Cwd, opts.Home) {
		_, statErr := fsys.Stat(path)
		render.CheckLine(stdout, "config", statErr == nil, path)
	}

	if !ytdlpOK {
		return errors.New(errors.EYtdlpNotInstalled, "yt-dlp is not available")
	}
	return nil
}
