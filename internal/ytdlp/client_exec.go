// Package ytdlp drives the external yt-dlp executable.
// This file implements the exec-backed Client using internal/exec.CommandRunner.
package ytdlp

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/collection"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/exec"
)

// maxStderrLen is the maximum stderr length to include in error details.
const maxStderrLen = 4096

// ExecClient is a yt-dlp Client implementation that shells out via
// internal/exec.CommandRunner.
type ExecClient struct {
	runner exec.CommandRunner

	// env is the child environment (venv PATH already applied); nil inherits.
	env []string

	// stdout/stderr receive streamed download output.
	stdout io.Writer
	stderr io.Writer
}

// NewExecClient creates a new ExecClient.
// Download output streams to stdout/stderr; probes are always captured.
func NewExecClient(runner exec.CommandRunner, env []string, stdout, stderr io.Writer) *ExecClient {
	return &ExecClient{runner: runner, env: env, stdout: stdout, stderr: stderr}
}

// Version implements Client.Version.
// Uses: yt-dlp --version
func (c *ExecClient) Version(ctx context.Context) (string, error) {
	result, err := c.runner.Run(ctx, Binary, []string{"--version"}, exec.RunOpts{Env: c.env})
	if err != nil {
		return "", errors.Wrap(errors.EYtdlpNotInstalled, "yt-dlp not found on PATH", err)
	}
	if result.ExitCode != 0 {
		return "", errors.NewWithDetails(errors.EYtdlpNotInstalled,
			"yt-dlp --version failed",
			map[string]string{"exit_code": fmt.Sprintf("%d", result.ExitCode)})
	}
	return strings.TrimSpace(result.Stdout), nil
}

// Probe implements Client.Probe.
// Uses: yt-dlp --flat-playlist --playlist-items 1 --print ... --no-warnings <url>
func (c *ExecClient) Probe(ctx context.Context, rawURL string) (collection.Info, error) {
	result, err := c.runner.Run(ctx, Binary, ProbeArgs(rawURL), exec.RunOpts{Env: c.env})
	if err != nil {
		return collection.Info{}, errors.WrapWithDetails(errors.EYtdlpNotInstalled,
			"yt-dlp not found on PATH", err,
			map[string]string{"url": rawURL})
	}
	if result.ExitCode != 0 {
		return collection.Info{}, errors.NewWithDetails(errors.EProbeFailed,
			"yt-dlp could not read collection metadata",
			map[string]string{
				"url":       rawURL,
				"exit_code": fmt.Sprintf("%d", result.ExitCode),
				"stderr":    capStderr(result.Stderr),
			})
	}
	return parseProbeOutput(result.Stdout), nil
}

// parseProbeOutput extracts metadata fields from the first probe output line.
// Missing fields, "NA", and empty values are left blank; values are
// percent-decoded because TikTok titles arrive URL-encoded.
func parseProbeOutput(stdout string) collection.Info {
	line := ""
	for _, l := range strings.Split(stdout, "\n") {
		if strings.TrimSpace(l) != "" {
			line = strings.TrimSpace(l)
			break
		}
	}
	if line == "" {
		return collection.Info{}
	}

	parts := strings.Split(line, probeDelim)
	values := make(map[string]string, len(probeFields))
	for i, field := range probeFields {
		if i >= len(parts) {
			break
		}
		raw := strings.TrimSpace(parts[i])
		if raw == "" || strings.EqualFold(raw, "NA") {
			continue
		}
		if decoded, err := url.PathUnescape(raw); err == nil {
			raw = decoded
		}
		values[field] = raw
	}

	return collection.Info{
		Uploader:      values["uploader"],
		PlaylistTitle: values["playlist_title"],
	}
}

// Download implements Client.Download.
// Streams yt-dlp output and propagates a non-zero exit code unchanged.
func (c *ExecClient) Download(ctx context.Context, req Request) error {
	args := DownloadArgs(req)
	result, err := c.runner.Run(ctx, Binary, args, exec.RunOpts{
		Env:    c.env,
		Stdout: c.stdout,
		Stderr: c.stderr,
	})
	if err != nil {
		if ctx.Err() != nil {
			return errors.WithExitCode(
				errors.NewWithDetails(errors.EInterrupted, "stopped by user",
					map[string]string{"url": req.URL}),
				130)
		}
		return errors.WrapWithDetails(errors.EYtdlpNotInstalled,
			"yt-dlp not found on PATH", err,
			map[string]string{"url": req.URL})
	}
	if result.ExitCode != 0 {
		return errors.WithExitCode(
			errors.NewWithDetails(errors.EDownloadFailed,
				"yt-dlp finished with errors",
				map[string]string{
					"url":       req.URL,
					"exit_code": fmt.Sprintf("%d", result.ExitCode),
				}),
			result.ExitCode)
	}
	return nil
}

// CommandLine renders the full invocation for banner output.
func CommandLine(req Request) string {
	parts := append([]string{Binary}, DownloadArgs(req)...)
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = shellQuote(p)
	}
	return strings.Join(quoted, " ")
}

// capStderr bounds stderr detail text.
func capStderr(stderr string) string {
	trimmed := strings.TrimSpace(stderr)
	if len(trimmed) > maxStderrLen {
		return trimmed[:maxStderrLen] + "..."
	}
	return trimmed
}
