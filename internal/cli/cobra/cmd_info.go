package cobra

import (
	"github.com/spf13/cobra"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/commands"
)

func newInfoCmd() *cobra.Command {
	var flags downloadFlags

	cmd := &cobra.Command{
		Use:   "info <collection_url> [output_dir]",
		Short: "Show collection metadata and the planned download layout",
		Long: `Resolve and print collection metadata (uploader, title, folder name,
archive path, archived item count) without downloading anything.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(cmd, flags.overrides(cmd))
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()

			opts := commands.InfoOpts{URL: args[0]}
			if len(args) == 2 {
				opts.OutputDir = args[1]
			}

			return commands.Info(ctx, d.client, d.fsys, d.resolved.Config, opts,
				cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addDownloadFlags(cmd, &flags)

	return cmd
}
