package screening

import (
	"encoding/json"
	"os"
	"time"
)

type ExcludedCandidates struct {
	Items []*ExcludedCandidate
}

type ExcludedCandidate struct {
	Name       string
	Source     string
	ExcludedAt time.Time
}

func GetExcludedFromFile(path string) (*ExcludedCandidates, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedCandidates{}, nil
	}

	var excluded ExcludedCandidates
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedCandidates) Append(s *ExcludedCandidates) {
	e.Items = append(e.Items, s.Items...)
}

// Names returns the names of entries without a source path. Entries with a
// source are matched by it, so that a same-named resume elsewhere is kept.
func (e *ExcludedCandidates) Names() []string {
	names := make([]string, 0, len(e.Items))
	for _, candidate := range e.Items {
		if candidate.Source == "" {
			names = append(names, candidate.Name)
		}
	}
	return names
}

// Sources returns the non-empty source paths of the excluded candidates.
func (e *ExcludedCandidates) Sources() []string {
	sources := make([]string, 0, len(e.Items))
	for _, candidate := range e.Items {
		if candidate.Source != "" {
			sources = append(sources, candidate.Source)
		}
	}
	return sources
}

func (e *ExcludedCandidates) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
