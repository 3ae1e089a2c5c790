package filtering

import (
	"context"

	"github.com/spigell/resume-screener/internal/screening"
)

const EmptyTextName = "empty_text"

type emptyTextFilter struct {
	disabled bool
	reason   string
}

// NewEmptyText creates a filter that removes candidates whose text is blank,
// such as scanned documents without a text layer.
func NewEmptyText() Filter {
	return &emptyTextFilter{}
}

func (f *emptyTextFilter) Name() string { return EmptyTextName }

func (f *emptyTextFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *emptyTextFilter) IsEnabled() bool { return !f.disabled }

func (f *emptyTextFilter) Validate() error { return nil }

func (f *emptyTextFilter) Apply(_ context.Context, c *screening.Candidates) (*screening.Candidates, Step, error) {
	initial := c.Len()
	removed := c.ExcludeEmpty()
	return c, result(initial, removed, c), nil
}

func (f *emptyTextFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}
