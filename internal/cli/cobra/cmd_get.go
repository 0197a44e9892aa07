package cobra

import (
	"github.com/spf13/cobra"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/commands"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
)

func newGetCmd() *cobra.Command {
	var flags downloadFlags
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "get <collection_url> [output_dir]",
		Short: "Download one TikTok collection as audio",
		Long: `Download one TikTok collection as audio files.
The output directory defaults to the configured default_output_dir.
Arguments after "--" are forwarded to yt-dlp verbatim.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, passthrough := splitDash(cmd, args)
			if len(positional) < 1 || len(positional) > 2 {
				_ = cmd.Help()
				return errors.New(errors.EUsage, "expected <collection_url> [output_dir]")
			}

			d, err := buildDeps(cmd, flags.overrides(cmd))
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()

			opts := commands.GetOpts{
				URL:             positional[0],
				PassthroughArgs: passthrough,
				DryRun:          dryRun,
				ConsoleTitle:    consoleTitle(),
			}
			if len(positional) == 2 {
				opts.OutputDir = positional[1]
			}

			return commands.Get(ctx, d.client, d.fsys, d.resolved.Config, opts,
				cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addDownloadFlags(cmd, &flags)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the yt-dlp command without running it")

	return cmd
}
