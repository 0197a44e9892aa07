package commands

import (
	"context"
	"io"
	"path/filepath"
	"strconv"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/archive"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/collection"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/config"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/fs"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/render"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/ytdlp"
)

// InfoOpts holds options for the info command.
type InfoOpts struct {
	URL       string
	OutputDir string
}

// Info shows what a get run would do for a URL, without downloading.
// It resolves metadata, the target folder, the archive path, and how
// many items the archive already records.
func Info(ctx context.Context, client ytdlp.Client, fsys fs.FS, cfg config.Config, opts InfoOpts, stdout, stderr io.Writer) error {
	if opts.URL == "" {
		return errors.New(errors.EUsage, "collection URL is required")
	}

	info := collection.Info{PlaylistTitle: collection.TitleFromURL(opts.URL)}
	probed, err := client.Probe(ctx, opts.URL)
	if err != nil {
		render.Linef(stderr, "Warning: metadata probe failed, showing URL-derived info only")
	} else {
		info.Uploader = probed.Uploader
		if info.PlaylistTitle == "" {
			info.PlaylistTitle = probed.PlaylistTitle
		}
	}
	if cfg.StripUploaderFromCollectionTitle {
		info = collection.StripUploaderPrefix(info)
	}

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
	archivePath := archive.Path(outDir, opts.URL)

	render.Linef(stdout, "Collection : %s", opts.URL)
	if info.Uploader != "" {
		render.Linef(stdout, "Uploader   : %s", info.Uploader)
	}
	if info.PlaylistTitle != "" {
		render.Linef(stdout, "Title      : %s", info.PlaylistTitle)
	}
	if folderName != "" {
		render.Linef(stdout, "Folder     : %s", folderName)
	}
	render.Linef(stdout, "Output dir : %s", outDir)
	render.Linef(stdout, "Archive    : %s", archivePath)

	count, found, _ := archive.Count(fsys, archivePath)
	if found {
		render.Linef(stdout, "Archived   : %s item(s)", strconv.Itoa(count))
	} else {
		render.Linef(stdout, "Archived   : none yet")
	}
	return nil
}
