package filtering

import (
	"context"

	"github.com/spigell/resume-screener/internal/screening"
)

const DuplicateSourceName = "duplicate_source"

type duplicateSourceFilter struct {
	disabled bool
	reason   string
}

// NewDuplicateSource creates a filter that keeps only the first candidate read
// from each source path. Candidates without a source are never dropped.
func NewDuplicateSource() Filter {
	return &duplicateSourceFilter{}
}

func (f *duplicateSourceFilter) Name() string { return DuplicateSourceName }

func (f *duplicateSourceFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *duplicateSourceFilter) IsEnabled() bool { return !f.disabled }

func (f *duplicateSourceFilter) Validate() error { return nil }

func (f *duplicateSourceFilter) Apply(_ context.Context, c *screening.Candidates) (*screening.Candidates, Step, error) {
	initial := c.Len()
	seen := make(map[string]struct{}, initial)

	removed := c.RemoveFunc(func(candidate *screening.Candidate) bool {
		if candidate.Source == "" {
			return false
		}
		if _, ok := seen[candidate.Source]; ok {
			return true
		}
		seen[candidate.Source] = struct{}{}
		return false
	})

	return c, result(initial, removed, c), nil
}

func (f *duplicateSourceFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}
