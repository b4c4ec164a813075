package flows

import (
	"context"
	"fmt"
	"os"

	"github.com/safedep/dry/log"
	"github.com/safedep/outdated/config"
	"github.com/safedep/outdated/internal/ui"
	"github.com/safedep/outdated/internal/version"
	"github.com/safedep/outdated/manifest"
	"github.com/safedep/outdated/outdated"
	"github.com/safedep/outdated/pkg/registry"
	"github.com/safedep/outdated/resolver"
	"github.com/safedep/outdated/usefulerror"
	"golang.org/x/term"
)

// OutdatedFlowInteraction is how the flow talks to the user
type OutdatedFlowInteraction struct {
	ShowLookupFailure func(message string)
	ShowReport        func(report *outdated.Report)
}

func DefaultOutdatedFlowInteraction() OutdatedFlowInteraction {
	return OutdatedFlowInteraction{
		ShowLookupFailure: ui.ShowLookupFailure,
		ShowReport:        ui.ShowReport,
	}
}

type outdatedFlow struct {
	config      *config.RuntimeConfig
	interaction OutdatedFlowInteraction
	hooks       []Hook
}

// Outdated creates the flow that audits a manifest against the registry
func Outdated(cfg *config.RuntimeConfig, interaction OutdatedFlowInteraction, hooks ...Hook) *outdatedFlow {
	return &outdatedFlow{
		config:      cfg,
		interaction: interaction,
		hooks:       hooks,
	}
}

// Run loads the manifest, builds the outdated set and shows it. Only a
// manifest, configuration or cancellation error is returned; registry
// failures are reported per package and do not fail the run.
func (f *outdatedFlow) Run(ctx context.Context) (*outdated.Report, error) {
	m, err := manifest.Load(f.config.Manifest)
	if err != nil {
		return nil, err
	}

	for _, h := range f.hooks {
		ctx, err = h.BeforeFlow(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("failed to run hook: %w", err)
		}
	}

	client, err := registry.NewClientFactory(registry.ClientFactoryConfig{
		BaseURL:   f.config.Registry.URL,
		Timeout:   f.config.Registry.Timeout,
		UserAgent: fmt.Sprintf("outdated/%s", version.Version),
	}).CreateClient(registry.ClientType(f.config.Registry.Client))
	if err != nil {
		return nil, usefulerror.Useful().
			WithCode(usefulerror.ErrCodeConfigInvalid).
			WithHumanError(fmt.Sprintf("Unable to create the %q registry client", f.config.Registry.Client)).
			WithHelp("Set registry.client to http or packageregistry").
			WithAdditionalHelp("Use --registry-client to override the configured client").
			Wrap(err)
	}

	log.Debugf("Auditing %s against %s using %s client", m.Path,
		f.config.Registry.URL, f.config.Registry.Client)

	interaction := outdated.BuilderInteraction{
		ShowLookupFailure: f.interaction.ShowLookupFailure,
	}

	stopProgress := func() {}
	if f.showProgress() && !m.IsEmpty() {
		ui.StartProgressWriter()

		tracker := ui.TrackProgress("Checking packages", len(m.Constraints()))
		interaction.Progress = func(constraint manifest.Constraint) {
			tracker.UpdateMessage(constraint.Name)
			tracker.Increment(1)
		}

		stopProgress = func() {
			tracker.MarkAsDone()
			ui.StopProgressWriter()
		}
	}

	builderConfig := outdated.DefaultBuilderConfig()
	builderConfig.IgnorePackages = f.config.IgnorePackages

	builder := outdated.NewBuilder(builderConfig, resolver.NewVersionResolver(client), interaction)

	report, err := builder.Build(ctx, m)
	stopProgress()

	if err != nil {
		return nil, err
	}

	log.Debugf("Audit finished: outcome=%s checked=%d skipped=%d ignored=%d outdated=%d",
		report.Outcome, report.Checked, report.Skipped, report.Ignored, len(report.Records))

	if f.interaction.ShowReport != nil {
		f.interaction.ShowReport(report)
	}

	return report, nil
}

func (f *outdatedFlow) showProgress() bool {
	return f.config.Progress && term.IsTerminal(int(os.Stderr.Fd()))
}
