package check

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/safedep/dry/log"
	"github.com/safedep/outdated/config"
	"github.com/safedep/outdated/internal/flows"
	"github.com/safedep/outdated/internal/ui"
	"github.com/safedep/outdated/manifest"
	"github.com/spf13/cobra"
)

// Run audits the manifest selected by the flags of cmd. Registry lookup
// failures are reported per package and still exit 0; configuration and
// manifest errors exit 1.
func Run(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		ui.ErrorExit(err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	unsupportedRanges := flows.NewUnsupportedRangeHook(func(c manifest.Constraint) {
		log.Warnf("%s@%s in %s is not a semver range and will always be reported", c.Name, c.Range, c.Bucket)
	})

	_, err = flows.Outdated(cfg, flows.DefaultOutdatedFlowInteraction(), unsupportedRanges).Run(ctx)
	if err != nil {
		ui.ErrorExit(err)
	}

	return nil
}
