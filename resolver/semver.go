package resolver

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var prereleaseComparatorRe = regexp.MustCompile(`v?\d+\.\d+\.\d+-[0-9A-Za-z.-]+`)

// parseRange parses an npm style range. An empty range matches everything,
// same as npm.
func parseRange(versionRange string) (*semver.Constraints, error) {
	versionRange = strings.TrimSpace(versionRange)
	if versionRange == "" {
		versionRange = "*"
	}

	return semver.NewConstraint(versionRange)
}

// prereleaseAllowed applies the npm rule for pre-release versions: they only
// match when the range has a pre-release comparator on the same
// major.minor.patch tuple.
func prereleaseAllowed(v *semver.Version, versionRange string) bool {
	if v.Prerelease() == "" {
		return true
	}

	for _, token := range prereleaseComparatorRe.FindAllString(versionRange, -1) {
		c, err := semver.NewVersion(token)
		if err != nil {
			continue
		}

		if c.Major() == v.Major() && c.Minor() == v.Minor() && c.Patch() == v.Patch() {
			return true
		}
	}

	return false
}

// Satisfies returns true when version is within versionRange. Unparseable
// versions or ranges (dist-tags, git urls, aliases) never satisfy.
func Satisfies(version, versionRange string) bool {
	constraint, err := parseRange(versionRange)
	if err != nil {
		return false
	}

	v, err := semver.NewVersion(strings.TrimSpace(version))
	if err != nil {
		return false
	}

	if !prereleaseAllowed(v, versionRange) {
		return false
	}

	return constraint.Check(v)
}

// MaxSatisfying returns the highest version in versions that is within
// versionRange. Pre-releases are only considered when the range carries one
// on the same major.minor.patch.
func MaxSatisfying(versions []string, versionRange string) (string, bool) {
	constraint, err := parseRange(versionRange)
	if err != nil {
		return "", false
	}

	var best *semver.Version
	for _, version := range versions {
		v, err := semver.NewVersion(version)
		if err != nil {
			continue
		}

		if !prereleaseAllowed(v, versionRange) {
			continue
		}

		if constraint.Check(v) && (best == nil || v.GreaterThan(best)) {
			best = v
		}
	}

	if best == nil {
		return "", false
	}

	return best.Original(), true
}

// IsValidRange reports whether versionRange is a semver range we can reason
// about. Dist-tags, git urls, file paths and protocol prefixed specs are not.
func IsValidRange(versionRange string) bool {
	_, err := parseRange(versionRange)
	return err == nil
}
