// Command tiktok-collection-dl batch-downloads TikTok collections as audio
// by driving an external yt-dlp executable.
package main

import (
	"os"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/cli/cobra"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
)

func main() {
	err := cobra.Execute(os.Stdout, os.Stderr)
	if err != nil {
		// Use verbose mode if --verbose global flag was set
		opts := errors.PrintOptions{
			Verbose: cobra.GetGlobalOpts().Verbose,
		}
		errors.PrintWithOptions(os.Stderr, err, opts)
		os.Exit(errors.ExitCode(err))
	}
}
