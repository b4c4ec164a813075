package config

import (
	"github.com/spf13/cobra"
)

const (
	FlagManifest        = "manifest"
	FlagConfig          = "config"
	FlagRegistryURL     = "registry-url"
	FlagRegistryClient  = "registry-client"
	FlagRegistryTimeout = "registry-timeout"
	FlagIgnore          = "ignore"
	FlagProgress        = "progress"
)

// ApplyCobraFlags registers the flags Load understands on cmd. Defaults
// shown in help are the built-in defaults; Load decides what applies.
func ApplyCobraFlags(cmd *cobra.Command) {
	defaults := DefaultConfig()

	cmd.Flags().StringP(FlagManifest, "m", defaults.Manifest, "Path to the package.json to audit")
	cmd.PersistentFlags().String(FlagConfig, "", "Path to a config file")
	cmd.Flags().String(FlagRegistryURL, defaults.Registry.URL, "Base URL of the npm registry")
	cmd.Flags().String(FlagRegistryClient, defaults.Registry.Client,
		"Registry client implementation (http, packageregistry)")
	cmd.Flags().Duration(FlagRegistryTimeout, defaults.Registry.Timeout, "Timeout for every registry request")
	cmd.Flags().StringSlice(FlagIgnore, nil, "Package to skip, can be repeated")
	cmd.Flags().Bool(FlagProgress, defaults.Progress, "Show a progress bar when stderr is a terminal")
}
