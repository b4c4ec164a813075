package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	configName = "config"
	configType = "yml"
	configPath = "safedep/outdated"

	// LocalConfigFileName is looked up in the working directory before the
	// user config directory
	LocalConfigFileName = ".outdated.yml"

	CONFIG_DIR_ENV = "OUTDATED_CONFIG_DIR"
)

// ConfigDir returns the application config directory. OUTDATED_CONFIG_DIR
// replaces it entirely. Otherwise the defaults are:
// - macOS:   ~/Library/Application Support/safedep/outdated
// - Linux:   ~/.config/safedep/outdated
// - Windows: %AppData%\safedep\outdated
func ConfigDir() (string, error) {
	dir := os.Getenv(CONFIG_DIR_ENV)
	if dir != "" {
		return dir, nil
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to retrieve user config directory: %w", err)
	}

	return filepath.Join(userConfigDir, configPath), nil
}

func createConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	return dir, nil
}

// ConfigFilePath returns the path of the user config file without creating
// any directories.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, fmt.Sprintf("%s.%s", configName, configType)), nil
}

// findConfigFile returns the config file to load. An explicit path always
// wins and must exist. Returns an empty path when there is nothing to load.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}

		return explicit, nil
	}

	if _, err := os.Stat(LocalConfigFileName); err == nil {
		return LocalConfigFileName, nil
	}

	userConfigFile, err := ConfigFilePath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(userConfigFile); err == nil {
		return userConfigFile, nil
	}

	return "", nil
}
