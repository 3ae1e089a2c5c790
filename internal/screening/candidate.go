package screening

import (
	"strings"
	"time"
)

const (
	CandidateIDField     = "ID"
	CandidateSourceField = "Source"
)

// Candidate is one resume handed to a batch run. ID is a display name and may
// repeat; Source is where the text came from, if anywhere.
type Candidate struct {
	ID     string `json:"id"`
	Text   string `json:"-"`
	Source string `json:"source,omitempty"`
}

type Candidates struct {
	Items []*Candidate
}

func NewCandidates(items ...*Candidate) *Candidates {
	return &Candidates{Items: items}
}

func (c *Candidates) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

func (c *Candidates) IDs() []string {
	ids := make([]string, 0, c.Len())
	for _, candidate := range c.Items {
		ids = append(ids, candidate.ID)
	}
	return ids
}

func (ca *Candidate) GetStringField(name string) string {
	switch name {
	case CandidateIDField:
		return ca.ID
	case CandidateSourceField:
		return ca.Source
	default:
		return ""
	}
}

// Exclude removes every candidate whose field matches one of targets and
// returns the IDs of the removed candidates. Order of the rest is kept.
func (c *Candidates) Exclude(name string, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		set[target] = struct{}{}
	}

	return c.RemoveFunc(func(candidate *Candidate) bool {
		_, ok := set[candidate.GetStringField(name)]
		return ok
	})
}

// ExcludeEmpty removes candidates without any non-blank text.
func (c *Candidates) ExcludeEmpty() []string {
	return c.RemoveFunc(func(candidate *Candidate) bool {
		return strings.TrimSpace(candidate.Text) == ""
	})
}

// RemoveFunc drops candidates for which drop returns true, preserving the
// order of the remaining ones.
func (c *Candidates) RemoveFunc(drop func(*Candidate) bool) []string {
	var removed []string
	kept := c.Items[:0]
	for _, candidate := range c.Items {
		if drop(candidate) {
			removed = append(removed, candidate.ID)
			continue
		}
		kept = append(kept, candidate)
	}
	for i := len(kept); i < len(c.Items); i++ {
		c.Items[i] = nil
	}
	c.Items = kept
	return removed
}

func (c *Candidates) ToExcluded() *ExcludedCandidates {
	excluded := &ExcludedCandidates{}
	for _, candidate := range c.Items {
		excluded.Items = append(excluded.Items, &ExcludedCandidate{
			Name:       candidate.ID,
			Source:     candidate.Source,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}
