package flows

import (
	"context"

	"github.com/safedep/outdated/manifest"
	"github.com/safedep/outdated/resolver"
)

// Hook runs after the manifest is loaded and before any registry lookup
type Hook interface {
	BeforeFlow(context.Context, *manifest.Manifest) (context.Context, error)
}

type hook func(context.Context, *manifest.Manifest) (context.Context, error)

var _ Hook = hook(nil)

func (h hook) BeforeFlow(ctx context.Context, m *manifest.Manifest) (context.Context, error) {
	return h(ctx, m)
}

// NewUnsupportedRangeHook reports constraints whose range is not semver, such
// as dist-tags, git urls or workspace specs. These never satisfy their latest
// version and always show up as outdated.
func NewUnsupportedRangeHook(report func(manifest.Constraint)) Hook {
	return hook(func(ctx context.Context, m *manifest.Manifest) (context.Context, error) {
		for _, constraint := range m.Constraints() {
			if !resolver.IsValidRange(constraint.Range) {
				report(constraint)
			}
		}

		return ctx, nil
	})
}
