package registry

import (
	"context"
	"fmt"

	"github.com/safedep/dry/log"
	"github.com/safedep/dry/packageregistry"
)

// PackageRegistryClient serves lookups through the npm adapter of
// dry/packageregistry. The adapter does not take a context, so cancellation is
// only honoured between calls.
type PackageRegistryClient struct {
	discovery packageregistry.PackageDiscovery
}

var _ Client = (*PackageRegistryClient)(nil)

func NewPackageRegistryClient() (*PackageRegistryClient, error) {
	adapter, err := packageregistry.NewNpmAdapter()
	if err != nil {
		return nil, fmt.Errorf("failed to create npm adapter: %w", err)
	}

	discovery, err := adapter.PackageDiscovery()
	if err != nil {
		return nil, fmt.Errorf("failed to get package discovery: %w", err)
	}

	return &PackageRegistryClient{discovery: discovery}, nil
}

func (c *PackageRegistryClient) FetchLatestManifest(ctx context.Context, packageName string) (*PackageManifest, error) {
	pkg, err := c.getPackage(ctx, packageName)
	if err != nil {
		return nil, newLookupError(packageName, OpFetchLatestManifest, err)
	}

	if pkg.LatestVersion == "" {
		return nil, newLookupError(packageName, OpFetchLatestManifest,
			fmt.Errorf("%w: no latest version", ErrMalformedResponse))
	}

	log.Debugf("Registry: %s latest is %s", packageName, pkg.LatestVersion)
	return &PackageManifest{Name: packageName, Version: pkg.LatestVersion}, nil
}

func (c *PackageRegistryClient) FetchAllVersions(ctx context.Context, packageName string) ([]string, error) {
	pkg, err := c.getPackage(ctx, packageName)
	if err != nil {
		return nil, newLookupError(packageName, OpFetchAllVersions, err)
	}

	versions := make([]string, 0, len(pkg.Versions))
	for _, v := range pkg.Versions {
		versions = append(versions, v.Version)
	}

	return versions, nil
}

func (c *PackageRegistryClient) getPackage(ctx context.Context, packageName string) (*packageregistry.Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pkg, err := c.discovery.GetPackage(packageName)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	return pkg, nil
}
