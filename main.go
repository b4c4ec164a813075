package main

import (
	"os"

	"github.com/safedep/dry/log"
	"github.com/safedep/outdated/cmd/check"
	"github.com/safedep/outdated/cmd/setup"
	"github.com/safedep/outdated/cmd/version"
	"github.com/safedep/outdated/config"
	"github.com/spf13/cobra"
)

var debug bool

func main() {
	cmd := &cobra.Command{
		Use:          "outdated",
		Short:        "Find declared npm dependencies that are behind the registry",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				os.Setenv("APP_LOG_LEVEL", "debug")
			}

			log.InitZapLogger("outdated", "")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return check.Run(cmd)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	config.ApplyCobraFlags(cmd)

	cmd.AddCommand(version.NewVersionCommand())
	cmd.AddCommand(setup.NewConfigCommand())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
