// Package ytdlp drives the external yt-dlp executable.
// This file builds yt-dlp argument lists.
package ytdlp

import (
	"path/filepath"
	"regexp"
	"strings"
)

// probeDelim separates --print fields in probe output. Chosen to never occur
// in TikTok usernames or collection titles.
const probeDelim = "|||"

// probeFields are the metadata fields requested from yt-dlp, in order.
var probeFields = []string{"uploader", "playlist_title"}

// ProbeArgs returns the argument list for a metadata-only probe.
// --playlist-items 1 keeps the flat extraction to a single entry.
func ProbeArgs(url string) []string {
	fields := make([]string, len(probeFields))
	for i, f := range probeFields {
		fields[i] = "%(" + f + ")s"
	}
	return []string{
		"--flat-playlist",
		"--playlist-items", "1",
		"--print", strings.Join(fields, probeDelim),
		"--no-warnings",
		url,
	}
}

// DownloadArgs returns the full yt-dlp argument list for a download request.
// The URL is always last.
func DownloadArgs(req Request) []string {
	args := []string{
		"--format", "bestaudio/best",
		"--extract-audio",
		"--audio-format", req.AudioFormat,
		"--audio-quality", req.AudioQuality,
		"--output", filepath.Join(req.OutputDir, req.OutputTemplate),
		"--download-archive", req.ArchivePath,
	}
	if req.ConsoleTitle {
		args = append(args, "--console-title")
	}
	if req.NoOverwrites {
		args = append(args, "--no-overwrites")
	}
	if req.IgnoreErrors {
		args = append(args, "--ignore-errors")
	}

	args = append(args, metadataArgs(req)...)
	args = append(args, req.ExtraArgs...)
	args = append(args, req.URL)
	return args
}

// metadataArgs builds the album-tagging and filename flags.
//
// With a clean resolved album name the tag is injected straight into the
// ffmpeg audio-extraction call. This bypasses yt-dlp's internal
// playlist_title, which is often polluted with an uploader prefix and
// percent-encoded characters. The value is shell-quoted because yt-dlp
// re-splits the postprocessor argument string.
func metadataArgs(req Request) []string {
	var args []string

	if req.EmbedAlbum {
		if req.AlbumName != "" {
			args = append(args,
				"--postprocessor-args",
				"ffmpeg-FFmpegExtractAudio:-metadata "+shellQuote("album="+req.AlbumName),
			)
		} else {
			// Fallback: map yt-dlp's own playlist_title to album.
			args = append(args, "--parse-metadata", "playlist_title:%(album)s")
			if !contains(req.ExtraArgs, "--add-metadata") {
				args = append(args, "--add-metadata")
			}
		}
	}

	if req.WindowsSafeFilenames {
		args = append(args, "--windows-filenames")
	}

	return args
}

var shellSafePattern = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// shellQuote quotes s for POSIX shell-style word splitting.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if shellSafePattern.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
