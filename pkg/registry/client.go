// Package registry provides clients for reading package metadata from an npm
// compatible registry. Only the two lookups needed to audit declared version
// ranges are exposed: the latest manifest and the list of published versions.
package registry

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrPackageNotFound is wrapped when the registry does not know the package
	ErrPackageNotFound = errors.New("package not found")

	// ErrMalformedResponse is wrapped when the registry answered with data we
	// cannot use, such as a manifest without a version
	ErrMalformedResponse = errors.New("malformed registry response")
)

const (
	OpFetchLatestManifest = "fetch latest manifest"
	OpFetchAllVersions    = "fetch versions"
)

// PackageManifest is the subset of a version manifest we care about
type PackageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Client is the contract for registry lookups. Implementations must not cache
// across calls; every call reflects the registry state at that moment.
type Client interface {
	// FetchLatestManifest returns the manifest the registry designates as latest
	FetchLatestManifest(ctx context.Context, packageName string) (*PackageManifest, error)

	// FetchAllVersions returns every published version of the package. An empty
	// slice is valid and means nothing is published.
	FetchAllVersions(ctx context.Context, packageName string) ([]string, error)
}

// RegistryLookupError is returned by all Client implementations when a lookup
// for a single package fails for any reason.
type RegistryLookupError struct {
	Package string
	Op      string
	Err     error
}

func (e *RegistryLookupError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RegistryLookupError) Unwrap() error {
	return e.Err
}

func newLookupError(packageName, op string, err error) *RegistryLookupError {
	return &RegistryLookupError{
		Package: packageName,
		Op:      op,
		Err:     err,
	}
}
