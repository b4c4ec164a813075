package outdated

import (
	"strings"

	"github.com/safedep/outdated/resolver"
)

const locationPrefix = "node_modules/"

// IsOutdated decides whether a declared range is reported against the latest
// version. A range is outdated when latest falls outside of it, or when the
// range text does not end with the latest version.
//
// The suffix test is textual on purpose: `>=1.0.0` against latest `1.2.0` is
// reported even though it admits 1.2.0. It also matches coincidental digit
// suffixes (`1.2.30` against `2.30`).
func IsOutdated(latestVersion, declaredRange string) bool {
	return !resolver.Satisfies(latestVersion, declaredRange) ||
		!strings.HasSuffix(declaredRange, latestVersion)
}

// Location is the conventional install path of a package. Nothing on disk is
// checked.
func Location(packageName string) string {
	return locationPrefix + packageName
}
