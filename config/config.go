package config

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/safedep/outdated/usefulerror"
)

const (
	// Environment variable prefix for every config key. Nested keys use an
	// underscore, eg. OUTDATED_REGISTRY_URL
	ENV_PREFIX = "OUTDATED"

	DefaultManifest        = "package.json"
	DefaultRegistryURL     = "https://registry.npmjs.org"
	DefaultRegistryClient  = "http"
	DefaultRegistryTimeout = 60 * time.Second
)

//go:embed config.template.yml
var templateConfig string

// Config is everything that can be loaded from a config file, the environment
// or flags.
type Config struct {
	// Manifest is the path of the package.json to audit
	Manifest string `mapstructure:"manifest"`

	Registry RegistryConfig `mapstructure:"registry"`

	// IgnorePackages are never looked up and never reported
	IgnorePackages []string `mapstructure:"ignore_packages"`

	// Progress shows a progress bar on stderr when it is a terminal
	Progress bool `mapstructure:"progress"`
}

type RegistryConfig struct {
	URL string `mapstructure:"url"`

	// Client is the registry client implementation, http or packageregistry
	Client string `mapstructure:"client"`

	Timeout time.Duration `mapstructure:"timeout"`
}

// RuntimeConfig is the resolved configuration for a single run
type RuntimeConfig struct {
	Config

	configFilePath string
}

// ConfigFilePath returns the config file that was loaded, if any
func (r *RuntimeConfig) ConfigFilePath() string {
	return r.configFilePath
}

func DefaultConfig() Config {
	return Config{
		Manifest: DefaultManifest,
		Registry: RegistryConfig{
			URL:     DefaultRegistryURL,
			Client:  DefaultRegistryClient,
			Timeout: DefaultRegistryTimeout,
		},
		IgnorePackages: []string{},
		Progress:       false,
	}
}

func (c *Config) validate() error {
	if c.Manifest == "" {
		return invalidConfig("manifest path must not be empty")
	}

	registryURL, err := url.Parse(c.Registry.URL)
	if err != nil || (registryURL.Scheme != "http" && registryURL.Scheme != "https") || registryURL.Host == "" {
		return invalidConfig(fmt.Sprintf("registry.url %q is not an http(s) URL", c.Registry.URL))
	}

	if c.Registry.Timeout <= 0 {
		return invalidConfig(fmt.Sprintf("registry.timeout must be positive, got %s", c.Registry.Timeout))
	}

	return nil
}

func invalidConfig(message string) error {
	return usefulerror.Useful().
		WithCode(usefulerror.ErrCodeConfigInvalid).
		WithHumanError(message).
		WithHelp("Fix the value in your config file, environment or flags").
		WithAdditionalHelp(fmt.Sprintf("Environment variables use the %s_ prefix", ENV_PREFIX)).
		Msg(message)
}

// WriteTemplateConfig writes the template configuration file to the user
// config directory unless one already exists. Returns the path of the file.
func WriteTemplateConfig() (string, error) {
	configDir, err := createConfigDir()
	if err != nil {
		return "", err
	}

	configFilePath, err := ConfigFilePath()
	if err != nil {
		return "", fmt.Errorf("failed to get config file path: %w", err)
	}

	if _, err := os.Stat(configFilePath); err == nil {
		return configFilePath, nil
	}

	if err := os.WriteFile(configFilePath, []byte(templateConfig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write template config in %s: %w", configDir, err)
	}

	return configFilePath, nil
}
