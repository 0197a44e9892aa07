package cobra

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/commands"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/launch"
)

func newRunCmd() *cobra.Command {
	var flags downloadFlags
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Environment-driven launcher (COLLECTION_URL, OUTPUT_DIR)",
		Long: `Dispatch a download based on the environment, mirroring the launcher
scripts this tool grew out of. Reads COLLECTION_URL and OUTPUT_DIR (a ./.env
file is loaded first, without overriding existing variables):

  neither set          batch in the default output dir
  COLLECTION_URL only  download that URL into the default output dir
  OUTPUT_DIR only      batch in that dir
  both set             download that URL into that dir

Arguments after "--" are forwarded to yt-dlp verbatim.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, passthrough := splitDash(cmd, args)

			launch.LoadDotenv()

			d, err := buildDeps(cmd, flags.overrides(cmd))
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()

			opts := commands.RunOpts{
				Getenv:          os.Getenv,
				PassthroughArgs: passthrough,
				DryRun:          dryRun,
				ConsoleTitle:    consoleTitle(),
			}

			return commands.Run(ctx, d.client, d.fsys, d.resolved.Config, opts,
				cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addDownloadFlags(cmd, &flags)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "plan without running yt-dlp")

	return cmd
}
