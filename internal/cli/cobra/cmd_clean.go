package cobra

import (
	"github.com/spf13/cobra"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/commands"
)

func newCleanCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "clean [output_dir]",
		Short: "Remove leftover partial-download files",
		Long: `Remove files matching the configured clean_patterns globs from the
output directory. List files, download archives, and the journal are never
removed. Use --dry-run to see what would be deleted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(cmd, nil)
			if err != nil {
				return err
			}

			opts := commands.CleanOpts{DryRun: dryRun}
			if len(args) == 1 {
				opts.OutputDir = args[0]
			}

			return commands.Clean(d.resolved.Config, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list matches without removing them")

	return cmd
}
