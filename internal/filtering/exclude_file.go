package filtering

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spigell/resume-screener/internal/screening"
)

const ExcludeFileName = "exclude_file"

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that removes candidates listed in an exclude
// file, matched by source path and by display name. A missing file excludes
// nothing.
func NewExcludeFile(path string) Filter {
	return &excludeFileFilter{
		path: strings.TrimSpace(path),
	}
}

func (f *excludeFileFilter) Name() string { return ExcludeFileName }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate() error { return nil }

func (f *excludeFileFilter) Apply(_ context.Context, c *screening.Candidates) (*screening.Candidates, Step, error) {
	initial := c.Len()
	if f.path == "" {
		return c, result(initial, nil, c), nil
	}

	excluded, err := screening.GetExcludedFromFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, result(initial, nil, c), nil
	}
	if err != nil {
		return c, Step{}, fmt.Errorf("getting excluded candidates from file: %w", err)
	}

	removed := c.Exclude(screening.CandidateSourceField, excluded.Sources())
	removed = append(removed, c.Exclude(screening.CandidateIDField, excluded.Names())...)

	return c, result(initial, removed, c), nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
