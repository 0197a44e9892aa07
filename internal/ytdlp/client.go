// Package ytdlp drives the external yt-dlp executable.
// This file defines the Client interface for testable yt-dlp operations.
package ytdlp

import (
	"context"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/collection"
)

// Binary is the executable name resolved via the child PATH.
const Binary = "yt-dlp"

// Request describes a single collection download.
type Request struct {
	// URL is the collection URL, passed to yt-dlp last.
	URL string

	// OutputDir is the resolved output directory (per-collection folder
	// already applied when enabled).
	OutputDir string

	// ArchivePath is the download-archive file for this collection.
	ArchivePath string

	// OutputTemplate is the yt-dlp output template, joined under OutputDir.
	OutputTemplate string

	// AudioFormat and AudioQuality map to --audio-format / --audio-quality.
	AudioFormat  string
	AudioQuality string

	// NoOverwrites and IgnoreErrors toggle the matching yt-dlp flags.
	NoOverwrites bool
	IgnoreErrors bool

	// AlbumName, when non-empty, is embedded as the album tag via a
	// postprocessor override. Empty with EmbedAlbum set falls back to
	// yt-dlp's own playlist_title mapping.
	AlbumName  string
	EmbedAlbum bool

	// WindowsSafeFilenames toggles --windows-filenames.
	WindowsSafeFilenames bool

	// ConsoleTitle toggles --console-title. Set when stdout is a terminal;
	// title escape sequences would pollute piped output.
	ConsoleTitle bool

	// ExtraArgs are forwarded to yt-dlp verbatim, before the URL.
	ExtraArgs []string
}

// Client is the interface for yt-dlp operations.
// All methods accept a context for cancellation.
// Implementations must be safe for testing without yt-dlp installed.
type Client interface {
	// Version returns the installed yt-dlp version string.
	Version(ctx context.Context) (string, error)

	// Probe fetches collection metadata without downloading: uploader
	// always, playlist title as a fallback source. A missing yt-dlp or a
	// failed probe yields an error; partial metadata is not an error.
	Probe(ctx context.Context, url string) (collection.Info, error)

	// Download runs a full collection download, streaming yt-dlp output to
	// the configured writers. A non-zero yt-dlp exit code is returned as
	// E_DOWNLOAD_FAILED carrying that exit code.
	Download(ctx context.Context, req Request) error
}
