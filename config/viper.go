package config

import (
	"fmt"
	"strings"

	"github.com/safedep/dry/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command line flags to config keys
var flagKeys = map[string]string{
	FlagManifest:        "manifest",
	FlagRegistryURL:     "registry.url",
	FlagRegistryClient:  "registry.client",
	FlagRegistryTimeout: "registry.timeout",
	FlagIgnore:          "ignore_packages",
	FlagProgress:        "progress",
}

// Load resolves the runtime configuration. Precedence is flags, then
// environment, then config file, then defaults. Flags that are not present in
// fs are ignored, so fs may be nil.
func Load(fs *pflag.FlagSet) (*RuntimeConfig, error) {
	v := viper.New()

	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	explicit := ""
	if fs != nil {
		if f := fs.Lookup(FlagConfig); f != nil {
			explicit = f.Value.String()
		}
	}

	configFile, err := findConfigFile(explicit)
	if err != nil {
		return nil, err
	}

	if configFile != "" {
		log.Debugf("Loading config from %s", configFile)

		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}

			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &RuntimeConfig{
		Config:         cfg,
		configFilePath: configFile,
	}, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("manifest", cfg.Manifest)
	v.SetDefault("registry.url", cfg.Registry.URL)
	v.SetDefault("registry.client", cfg.Registry.Client)
	v.SetDefault("registry.timeout", cfg.Registry.Timeout)
	v.SetDefault("ignore_packages", cfg.IgnorePackages)
	v.SetDefault("progress", cfg.Progress)
}
