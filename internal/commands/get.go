// Package commands implements tiktok-collection-dl CLI commands.
package commands

import (
	"context"
	"io"
	"path/filepath"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/archive"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/collection"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/config"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/fs"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/journal"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/render"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/ytdlp"
)

// GetOpts holds options for the get command.
type GetOpts struct {
	// URL is the collection URL (required).
	URL string

	// OutputDir is the base output directory (empty = config default).
	OutputDir string

	// PassthroughArgs are CLI args after "--", forwarded to yt-dlp verbatim.
	PassthroughArgs []string

	// DryRun prints the banner and command without invoking yt-dlp.
	DryRun bool

	// ConsoleTitle lets yt-dlp update the terminal title during downloads.
	ConsoleTitle bool

	// RunID groups journal records; empty means a standalone run.
	RunID string

	// Mode is recorded in the journal ("single" unless part of a batch).
	Mode string
}

// Get executes one collection download.
func Get(ctx context.Context, client ytdlp.Client, fsys fs.FS, cfg config.Config, opts GetOpts, stdout, stderr io.Writer) error {
	if opts.URL == "" {
		return errors.New(errors.EUsage, "collection URL is required")
	}
	mode := opts.Mode
	if mode == "" {
		mode = "single"
	}

	info := resolveInfo(ctx, client, cfg, opts.URL, stdout, stderr)

	baseDir := opts.OutputDir
	if baseDir == "" {
		baseDir = cfg.DefaultOutputDir
	}

	outDir := baseDir
	folderName := ""
	if cfg.UseCollectionFolder {
		folderName = collection.ApplyFolderTemplate(cfg.CollectionFolderTemplate, info)
		outDir = filepath.Join(baseDir, folderName)
	}

	if err := fsys.MkdirAll(outDir, 0o755); err != nil {
		return errors.WrapWithDetails(errors.EOutputDir,
			"cannot create output directory", err,
			map[string]string{"output_dir": outDir})
	}

	albumName := ""
	if cfg.EmbedCollectionAsAlbum {
		albumName = info.PlaylistTitle
	}

	req := ytdlp.Request{
		URL:                  opts.URL,
		OutputDir:            outDir,
		ArchivePath:          archive.Path(outDir, opts.URL),
		OutputTemplate:       cfg.OutputTemplate,
		AudioFormat:          cfg.AudioFormat,
		AudioQuality:         cfg.AudioQuality,
		NoOverwrites:         cfg.NoOverwrites,
		IgnoreErrors:         cfg.IgnoreErrors,
		AlbumName:            albumName,
		EmbedAlbum:           cfg.EmbedCollectionAsAlbum,
		WindowsSafeFilenames: cfg.WindowsSafeFilenames,
		ConsoleTitle:         opts.ConsoleTitle,
		ExtraArgs:            append(append([]string{}, cfg.ExtraYtdlpArgs...), opts.PassthroughArgs...),
	}

	render.Download(stdout, render.DownloadBanner{
		URL:        opts.URL,
		OutputDir:  outDir,
		Archive:    req.ArchivePath,
		FolderName: folderName,
		AlbumName:  albumName,
		Command:    ytdlp.CommandLine(req),
	})

	if opts.DryRun {
		render.Linef(stdout, "Dry run: not invoking yt-dlp")
		return nil
	}

	err := client.Download(ctx, req)
	exitCode := errors.ExitCode(err)

	// Journal failures never fail the download.
	_ = journal.Append(outDir, journal.NewRecord(opts.RunID, mode, opts.URL, outDir, exitCode))

	if err != nil {
		render.Failure(stderr, opts.URL, exitCode)
		return err
	}
	render.Success(stdout, opts.URL)
	return nil
}

// resolveInfo gathers collection metadata when the config needs it.
//
// The URL is the primary title source. The yt-dlp probe fills in the
// uploader and serves as title fallback; probe failures degrade to
// URL-only metadata rather than aborting the download.
func resolveInfo(ctx context.Context, client ytdlp.Client, cfg config.Config, url string, stdout, stderr io.Writer) collection.Info {
	info := collection.Info{PlaylistTitle: collection.TitleFromURL(url)}
	if info.PlaylistTitle != "" {
		render.Linef(stdout, "Collection title (from URL): %q", info.PlaylistTitle)
	}

	needsProbe := cfg.UseCollectionFolder || cfg.EmbedCollectionAsAlbum
	if !needsProbe {
		return info
	}

	probed, err := client.Probe(ctx, url)
	if err != nil {
		render.Linef(stderr, "Warning: metadata probe failed, continuing without it")
	} else {
		info.Uploader = probed.Uploader
		if info.PlaylistTitle == "" {
			info.PlaylistTitle = probed.PlaylistTitle
		}
	}

	if cfg.StripUploaderFromCollectionTitle {
		info = collection.StripUploaderPrefix(info)
	}
	return info
}
