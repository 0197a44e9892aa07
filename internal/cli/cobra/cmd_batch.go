package cobra

import (
	"github.com/spf13/cobra"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/commands"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
)

func newBatchCmd() *cobra.Command {
	var flags downloadFlags
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "batch [output_dir]",
		Short: "Download every collection listed in list.txt",
		Long: `Download every collection URL in <output_dir>/list.txt, in order.
A failed URL does not stop the batch; the command exits with the last
non-zero yt-dlp exit code when any URL failed.
Arguments after "--" are forwarded to yt-dlp verbatim.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, passthrough := splitDash(cmd, args)
			if len(positional) > 1 {
				_ = cmd.Help()
				return errors.New(errors.EUsage, "expected at most [output_dir]")
			}

			d, err := buildDeps(cmd, flags.overrides(cmd))
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()

			opts := commands.BatchOpts{
				PassthroughArgs: passthrough,
				DryRun:          dryRun,
				ConsoleTitle:    consoleTitle(),
			}
			if len(positional) == 1 {
				opts.OutputDir = positional[0]
			}

			return commands.Batch(ctx, d.client, d.fsys, d.resolved.Config, opts,
				cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addDownloadFlags(cmd, &flags)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "plan every item without running yt-dlp")

	return cmd
}
