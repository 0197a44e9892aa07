package cobra

import (
	"github.com/spf13/cobra"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/commands"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check yt-dlp and ffmpeg availability and show resolved paths",
		Long: `Check prerequisites and show resolved paths.
Verifies yt-dlp and ffmpeg are resolvable (through the configured venv when
set) and lists which config files exist. A missing yt-dlp fails the check;
ffmpeg is only needed for audio extraction and tagging.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(cmd, nil)
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()

			opts := commands.DoctorOpts{
				Cwd:  d.cwd,
				Home: d.home,
				Env:  d.childEnv,
			}

			return commands.Doctor(ctx, d.client, d.runner, d.fsys, d.resolved.Config, opts,
				cmd.OutOrStdout())
		},
	}
}
