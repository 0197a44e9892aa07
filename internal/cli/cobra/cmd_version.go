package cobra

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tiktok-collection-dl version",
		Long:  "Print the tiktok-collection-dl version string.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tiktok-collection-dl %s\n", version.FullVersion())
		},
	}
}
