package setup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/safedep/outdated/config"
	"github.com/safedep/outdated/internal/ui"
	"github.com/safedep/outdated/internal/version"
	"github.com/spf13/cobra"
)

func NewConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage outdated configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configCmd.AddCommand(NewInitCommand())
	configCmd.AddCommand(NewInfoCommand())

	return configCmd
}

func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a template config file to the user config directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteTemplateConfig()
			if err != nil {
				ui.ErrorExit(fmt.Errorf("failed to write template config: %w", err))
			}

			ui.PrintConfigInitInfo(path)
			return nil
		},
	}
}

func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the configuration that applies to this directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				ui.ErrorExit(err)
			}

			fmt.Print(ui.GenerateBanner(version.Version, version.Commit))
			ui.PrintInfoSection("Configuration", configEntries(cfg))

			return nil
		},
	}
}

func configEntries(cfg *config.RuntimeConfig) map[string]string {
	configFile := cfg.ConfigFilePath()
	if configFile == "" {
		configFile = "(none, using defaults)"
	}

	ignored := "(none)"
	if len(cfg.IgnorePackages) > 0 {
		ignored = strings.Join(cfg.IgnorePackages, ", ")
	}

	return map[string]string{
		"Config File":      configFile,
		"Manifest":         cfg.Manifest,
		"Registry URL":     cfg.Registry.URL,
		"Registry Client":  cfg.Registry.Client,
		"Registry Timeout": cfg.Registry.Timeout.String(),
		"Ignored Packages": ignored,
		"Progress":         strconv.FormatBool(cfg.Progress),
	}
}
