package outdated

import "github.com/safedep/outdated/manifest"

// Outcome of building the outdated set
type Outcome int

const (
	// OutcomeNothingToCheck means the manifest declares no dependency buckets
	// and no registry call was made
	OutcomeNothingToCheck Outcome = iota
	OutcomeUpToDate
	OutcomeOutdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNothingToCheck:
		return "nothing_to_check"
	case OutcomeUpToDate:
		return "up_to_date"
	case OutcomeOutdated:
		return "outdated"
	default:
		return "unknown"
	}
}

// Record is a single row of the outdated report
type Record struct {
	Package  string
	Current  string
	Wanted   string
	Latest   string
	Location string

	// Bucket is where the constraint was declared. Not rendered.
	Bucket manifest.Bucket
}

// Row returns the rendered columns in report order
func (r Record) Row() []string {
	return []string{r.Package, r.Current, r.Wanted, r.Latest, r.Location}
}

type Report struct {
	Outcome Outcome
	Records []Record

	// Checked is the number of constraints for which the latest version was resolved
	Checked int

	// Skipped is the number of constraints dropped because the latest lookup failed
	Skipped int

	// Ignored is the number of constraints excluded by configuration
	Ignored int
}

func (r *Report) HasOutdated() bool {
	return len(r.Records) > 0
}
