// Package cobra provides the Cobra-based CLI command tree for tiktok-collection-dl.
package cobra

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/version"
)

// GlobalOpts holds global options parsed before subcommand dispatch.
type GlobalOpts struct {
	Verbose    bool
	ConfigFile string
}

// globalOpts stores the parsed global options for access by subcommands.
var globalOpts GlobalOpts

// GetGlobalOpts returns the parsed global options.
func GetGlobalOpts() GlobalOpts {
	return globalOpts
}

// NewRootCmd creates the root cobra command for tiktok-collection-dl.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tiktok-collection-dl",
		Short: "Batch-download TikTok collections as audio via yt-dlp",
		Long: `tiktok-collection-dl - batch-download TikTok collections as audio

Drives an external yt-dlp executable to download every video in a TikTok
collection as audio files. Handles config layering, per-collection download
archives, batch URL lists, and collection metadata (folder names, album tags).
Network I/O and transcoding stay with yt-dlp and ffmpeg.`,
		Version:       version.FullVersion(),
		SilenceErrors: true, // We handle error printing in main.go
		SilenceUsage:  true, // We handle usage printing manually
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalOpts.Verbose, "verbose", false, "show detailed error context")
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigFile, "config", "", "explicit config file (replaces the search order)")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add all subcommands
	rootCmd.AddCommand(
		newGetCmd(),
		newBatchCmd(),
		newRunCmd(),
		newInfoCmd(),
		newConfigCmd(),
		newDoctorCmd(),
		newCleanCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command with the given output writers.
// This is the main entry point from main.go.
func Execute(stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
