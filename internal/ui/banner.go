package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

var (
	brandBlue = color.RGB(37, 99, 235).Add(color.Bold).SprintFunc()
	whiteDim  = color.New(color.Faint).SprintFunc()

	pseudoVersionPattern = regexp.MustCompile(`^(v?\d+\.\d+\.\d+)-0\.\d{14}-[a-f0-9]{12}$`)
)

// GenerateBanner renders the banner shown by the version command
func GenerateBanner(version, commit string) string {
	title := fmt.Sprintf("outdated\tFrom SafeDep %s", whiteDim("(github.com/safedep/outdated)"))

	if len(commit) >= 7 {
		commit = commit[:7]
	}

	if commit == "" {
		commit = "unknown"
	}

	version = cleanVersion(version)
	if version == "" {
		version = "(devel)"
	}

	return fmt.Sprintf("\n%s\n%s: %s %s: %s\n", brandBlue(title),
		whiteDim("version"), Colors.Bold(version),
		whiteDim("commit"), Colors.Bold(commit),
	)
}

// cleanVersion strips build metadata and pseudo-version timestamps.
// Tagged pre-releases such as v1.2.3-rc.1 are kept as-is.
func cleanVersion(version string) string {
	if version == "" {
		return version
	}

	version, _, _ = strings.Cut(version, "+")
	if matches := pseudoVersionPattern.FindStringSubmatch(version); len(matches) > 1 {
		return matches[1]
	}

	return version
}
