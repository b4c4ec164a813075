package version

import (
	"fmt"

	"github.com/safedep/outdated/internal/ui"
	"github.com/safedep/outdated/internal/version"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), ui.GenerateBanner(version.Version, version.Commit))
			return nil
		},
	}
}
