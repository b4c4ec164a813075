// Package outdated builds the set of declared dependencies that are behind the
// registry.
package outdated

import (
	"context"
	"fmt"
	"slices"

	"github.com/safedep/dry/log"
	"github.com/safedep/outdated/manifest"
)

// VersionResolver is the contract the builder needs from the resolver package
type VersionResolver interface {
	ResolveLatestVersion(ctx context.Context, packageName string) (string, error)
	ResolveWantedVersion(ctx context.Context, packageName, versionRange string) (string, bool, error)
}

type BuilderInteraction struct {
	// ShowLookupFailure is called with a diagnostic line for every failed
	// registry lookup. Lines are only produced for errors with a message.
	ShowLookupFailure func(message string)

	// Progress is called once for every constraint that was processed,
	// including skipped and ignored ones
	Progress func(constraint manifest.Constraint)
}

type BuilderConfig struct {
	// IgnorePackages are skipped before any registry call
	IgnorePackages []string
}

func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		IgnorePackages: []string{},
	}
}

type Builder struct {
	config      BuilderConfig
	resolver    VersionResolver
	interaction BuilderInteraction
}

func NewBuilder(config BuilderConfig, resolver VersionResolver, interaction BuilderInteraction) *Builder {
	return &Builder{
		config:      config,
		resolver:    resolver,
		interaction: interaction,
	}
}

// Build audits every declared constraint of m in order, one at a time. Lookup
// failures never fail the build; only context cancellation does.
func (b *Builder) Build(ctx context.Context, m *manifest.Manifest) (*Report, error) {
	report := &Report{Outcome: OutcomeNothingToCheck, Records: []Record{}}
	if m.IsEmpty() {
		log.Debugf("Manifest declares no dependencies, nothing to check")
		return report, nil
	}

	constraints := m.Constraints()
	log.Debugf("Checking %d declared constraints", len(constraints))

	for _, constraint := range constraints {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b.check(ctx, constraint, report)
		b.progress(constraint)
	}

	report.Outcome = OutcomeUpToDate
	if report.HasOutdated() {
		report.Outcome = OutcomeOutdated
	}

	return report, nil
}

func (b *Builder) check(ctx context.Context, constraint manifest.Constraint, report *Report) {
	if slices.Contains(b.config.IgnorePackages, constraint.Name) {
		log.Debugf("Ignoring %s (%s) by configuration", constraint.Name, constraint.Bucket)
		report.Ignored++
		return
	}

	latest, err := b.resolver.ResolveLatestVersion(ctx, constraint.Name)
	if err != nil {
		b.lookupFailure("Failed to fetch version for %s: %s", constraint.Name, err)
		report.Skipped++
		return
	}

	report.Checked++

	wanted, found, err := b.resolver.ResolveWantedVersion(ctx, constraint.Name, constraint.Range)
	if err != nil {
		b.lookupFailure("Failed to fetch wanted version for %s: %s", constraint.Name, err)
		found = false
	}

	if !IsOutdated(latest, constraint.Range) {
		log.Debugf("%s@%s is current with latest %s", constraint.Name, constraint.Range, latest)
		return
	}

	if !found {
		wanted = constraint.Range
	}

	report.Records = append(report.Records, Record{
		Package:  constraint.Name,
		Current:  constraint.Range,
		Wanted:   wanted,
		Latest:   latest,
		Location: Location(constraint.Name),
		Bucket:   constraint.Bucket,
	})
}

func (b *Builder) lookupFailure(format, packageName string, err error) {
	log.Debugf("registry lookup failed for %s: %v", packageName, err)

	message := err.Error()
	if message == "" || b.interaction.ShowLookupFailure == nil {
		return
	}

	b.interaction.ShowLookupFailure(fmt.Sprintf(format, packageName, message))
}

func (b *Builder) progress(constraint manifest.Constraint) {
	if b.interaction.Progress != nil {
		b.interaction.Progress(constraint)
	}
}
