package screening

import (
	"encoding/json"
	"os"

	"github.com/spigell/resume-screener/internal/scoring"
)

// Score bands used by the summary.
const (
	StrongThreshold   = 70.0
	ModerateThreshold = 50.0
)

type Band string

const (
	BandStrong   Band = "Above 70"
	BandModerate Band = "50-70"
	BandWeak     Band = "Below 50"
)

// BandOf places an overall score into exactly one band.
func BandOf(overall float64) Band {
	switch {
	case overall >= StrongThreshold:
		return BandStrong
	case overall >= ModerateThreshold:
		return BandModerate
	default:
		return BandWeak
	}
}

// Results is the ranked outcome of one batch run. It is rebuilt on every run.
type Results struct {
	RunID     string           `json:"run_id"`
	Reference string           `json:"job_description"`
	Records   []scoring.Record `json:"results"`
}

// Summary holds figures derived from a result table.
type Summary struct {
	Count    int     `json:"total"`
	Mean     float64 `json:"average_score"`
	Max      float64 `json:"highest_score"`
	Min      float64 `json:"lowest_score"`
	Strong   int     `json:"above_70"`
	Moderate int     `json:"between_50_70"`
	Weak     int     `json:"below_50"`
}

func (r *Results) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Records)
}

// Summary folds the records into count, mean, extremes and band counts.
// An empty table yields the zero Summary.
func (r *Results) Summary() Summary {
	var s Summary
	if r.Len() == 0 {
		return s
	}

	total := 0.0
	s.Max = r.Records[0].Overall
	s.Min = r.Records[0].Overall

	for _, record := range r.Records {
		total += record.Overall
		s.Max = max(s.Max, record.Overall)
		s.Min = min(s.Min, record.Overall)

		switch BandOf(record.Overall) {
		case BandStrong:
			s.Strong++
		case BandModerate:
			s.Moderate++
		default:
			s.Weak++
		}
	}

	s.Count = len(r.Records)
	s.Mean = scoring.Round2(total / float64(s.Count))
	s.Max = scoring.Round2(s.Max)
	s.Min = scoring.Round2(s.Min)

	return s
}

// Top returns up to n highest ranked records.
func (r *Results) Top(n int) []scoring.Record {
	if r == nil {
		return nil
	}
	if n < 0 || n > r.Len() {
		n = r.Len()
	}
	return r.Records[:n]
}

// FindByID returns the first record with the given candidate id.
func (r *Results) FindByID(id string) *scoring.Record {
	for i := range r.Records {
		if r.Records[i].CandidateID == id {
			return &r.Records[i]
		}
	}
	return nil
}

func (r *Results) IDs() []string {
	ids := make([]string, 0, r.Len())
	for _, record := range r.Records {
		ids = append(ids, record.CandidateID)
	}
	return ids
}

type dump struct {
	*Results
	Summary Summary `json:"summary"`
}

func (r *Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "screening_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump{Results: r, Summary: r.Summary()}); err != nil {
		return "", err
	}
	return file.Name(), nil
}
