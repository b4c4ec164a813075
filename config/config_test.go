package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safedep/outdated/config"
	"github.com/safedep/outdated/usefulerror"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "outdated-config-test-")
	if err != nil {
		panic(err)
	}

	if err := os.Setenv(config.CONFIG_DIR_ENV, dir); err != nil {
		panic(err)
	}

	code := m.Run()

	_ = os.Unsetenv(config.CONFIG_DIR_ENV)
	_ = os.RemoveAll(dir)

	os.Exit(code)
}

func newFlagSet(t *testing.T) *pflag.FlagSet {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	config.ApplyCobraFlags(cmd)

	fs := cmd.Flags()
	fs.AddFlagSet(cmd.PersistentFlags())

	return fs
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_DefaultsOnly(t *testing.T) {
	t.Setenv(config.CONFIG_DIR_ENV, t.TempDir())

	cfg, err := config.Load(newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, "package.json", cfg.Manifest)
	assert.Equal(t, "https://registry.npmjs.org", cfg.Registry.URL)
	assert.Equal(t, "http", cfg.Registry.Client)
	assert.Equal(t, 60*time.Second, cfg.Registry.Timeout)
	assert.Empty(t, cfg.IgnorePackages)
	assert.False(t, cfg.Progress)
	assert.Empty(t, cfg.ConfigFilePath())
}

func TestLoad_NilFlagSet(t *testing.T) {
	t.Setenv(config.CONFIG_DIR_ENV, t.TempDir())

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	defaults := config.DefaultConfig()
	assert.Equal(t, defaults.Manifest, cfg.Manifest)
	assert.Equal(t, defaults.Registry, cfg.Registry)
	assert.Empty(t, cfg.IgnorePackages)
}

func TestLoad_FlagsOverrideDefaults(t *testing.T) {
	t.Setenv(config.CONFIG_DIR_ENV, t.TempDir())

	fs := newFlagSet(t)
	assert.NoError(t, fs.Set(config.FlagManifest, "web/package.json"))
	assert.NoError(t, fs.Set(config.FlagRegistryURL, "http://localhost:4873"))
	assert.NoError(t, fs.Set(config.FlagRegistryClient, "packageregistry"))
	assert.NoError(t, fs.Set(config.FlagRegistryTimeout, "5s"))
	assert.NoError(t, fs.Set(config.FlagIgnore, "typescript"))
	assert.NoError(t, fs.Set(config.FlagIgnore, "eslint"))
	assert.NoError(t, fs.Set(config.FlagProgress, "true"))

	cfg, err := config.Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "web/package.json", cfg.Manifest)
	assert.Equal(t, "http://localhost:4873", cfg.Registry.URL)
	assert.Equal(t, "packageregistry", cfg.Registry.Client)
	assert.Equal(t, 5*time.Second, cfg.Registry.Timeout)
	assert.Equal(t, []string{"typescript", "eslint"}, cfg.IgnorePackages)
	assert.True(t, cfg.Progress)
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.CONFIG_DIR_ENV, dir)

	path, err := config.ConfigFilePath()
	require.NoError(t, err)

	writeFile(t, path, `
manifest: app/package.json
registry:
  timeout: 15s
ignore_packages:
  - left-pad
`)

	cfg, err := config.Load(newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigFilePath())
	assert.Equal(t, "app/package.json", cfg.Manifest)
	assert.Equal(t, 15*time.Second, cfg.Registry.Timeout)
	assert.Equal(t, "https://registry.npmjs.org", cfg.Registry.URL)
	assert.Equal(t, []string{"left-pad"}, cfg.IgnorePackages)
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.CONFIG_DIR_ENV, dir)
	t.Setenv("OUTDATED_REGISTRY_URL", "https://registry.example.com")
	t.Setenv("OUTDATED_IGNORE_PACKAGES", "a,b")

	path, err := config.ConfigFilePath()
	require.NoError(t, err)

	writeFile(t, path, "registry:\n  url: https://file.example.com\n")

	cfg, err := config.Load(newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, "https://registry.example.com", cfg.Registry.URL)
	assert.Equal(t, []string{"a", "b"}, cfg.IgnorePackages)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv(config.CONFIG_DIR_ENV, t.TempDir())
	t.Setenv("OUTDATED_MANIFEST", "env/package.json")

	fs := newFlagSet(t)
	assert.NoError(t, fs.Set(config.FlagManifest, "flag/package.json"))

	cfg, err := config.Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "flag/package.json", cfg.Manifest)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	t.Setenv(config.CONFIG_DIR_ENV, t.TempDir())

	path := writeFile(t, filepath.Join(t.TempDir(), "custom.yml"), "registry:\n  client: packageregistry\n")

	fs := newFlagSet(t)
	assert.NoError(t, fs.Set(config.FlagConfig, path))

	cfg, err := config.Load(fs)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigFilePath())
	assert.Equal(t, "packageregistry", cfg.Registry.Client)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	t.Setenv(config.CONFIG_DIR_ENV, t.TempDir())

	fs := newFlagSet(t)
	assert.NoError(t, fs.Set(config.FlagConfig, filepath.Join(t.TempDir(), "missing.yml")))

	_, err := config.Load(fs)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_LocalConfigFileWinsOverUserConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.CONFIG_DIR_ENV, dir)

	userConfig, err := config.ConfigFilePath()
	require.NoError(t, err)
	writeFile(t, userConfig, "manifest: user/package.json\n")

	work := t.TempDir()
	writeFile(t, filepath.Join(work, config.LocalConfigFileName), "manifest: local/package.json\n")
	t.Chdir(work)

	cfg, err := config.Load(newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, "local/package.json", cfg.Manifest)
	assert.Equal(t, config.LocalConfigFileName, cfg.ConfigFilePath())
}

func TestLoad_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.CONFIG_DIR_ENV, dir)

	path, err := config.ConfigFilePath()
	require.NoError(t, err)
	writeFile(t, path, "registry: [unclosed\n")

	_, err = config.Load(newFlagSet(t))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name  string
		flag  string
		value string
	}{
		{"non positive timeout", config.FlagRegistryTimeout, "0s"},
		{"registry url without scheme", config.FlagRegistryURL, "registry.npmjs.org"},
		{"registry url with unsupported scheme", config.FlagRegistryURL, "ftp://registry.npmjs.org"},
		{"empty manifest", config.FlagManifest, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(config.CONFIG_DIR_ENV, t.TempDir())

			fs := newFlagSet(t)
			assert.NoError(t, fs.Set(tc.flag, tc.value))

			_, err := config.Load(fs)
			require.Error(t, err)

			usefulErr, ok := usefulerror.AsUsefulError(err)
			require.True(t, ok)
			assert.Equal(t, usefulerror.ErrCodeConfigInvalid, usefulErr.Code())
		})
	}
}
