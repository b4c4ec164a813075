// Package resolver turns registry metadata into the two versions an audit
// needs for a declared range: the latest published version and the highest
// version the range admits.
package resolver

import (
	"context"
	"errors"

	"github.com/safedep/dry/log"
	"github.com/safedep/outdated/pkg/registry"
)

type VersionResolver struct {
	client registry.Client
}

func NewVersionResolver(client registry.Client) *VersionResolver {
	return &VersionResolver{client: client}
}

// ResolveLatestVersion returns the version the registry designates as latest.
// Errors are always *registry.RegistryLookupError.
func (r *VersionResolver) ResolveLatestVersion(ctx context.Context, packageName string) (string, error) {
	manifest, err := r.client.FetchLatestManifest(ctx, packageName)
	if err != nil {
		return "", asLookupError(packageName, registry.OpFetchLatestManifest, err)
	}

	log.Debugf("Resolved npm/%s to latest version %s", packageName, manifest.Version)
	return manifest.Version, nil
}

// ResolveWantedVersion returns the highest published version satisfying
// versionRange. The boolean is false when nothing satisfies, which is not an
// error. Errors are always *registry.RegistryLookupError.
func (r *VersionResolver) ResolveWantedVersion(ctx context.Context,
	packageName, versionRange string) (string, bool, error) {
	versions, err := r.client.FetchAllVersions(ctx, packageName)
	if err != nil {
		return "", false, asLookupError(packageName, registry.OpFetchAllVersions, err)
	}

	wanted, ok := MaxSatisfying(versions, versionRange)
	if !ok {
		log.Debugf("No version of npm/%s satisfies %q", packageName, versionRange)
		return "", false, nil
	}

	log.Debugf("Resolved npm/%s@%s to wanted version %s", packageName, versionRange, wanted)
	return wanted, true, nil
}

func asLookupError(packageName, op string, err error) error {
	var lookupErr *registry.RegistryLookupError
	if errors.As(err, &lookupErr) {
		return err
	}

	return &registry.RegistryLookupError{
		Package: packageName,
		Op:      op,
		Err:     err,
	}
}
