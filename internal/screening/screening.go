// Package screening runs a batch of resumes against one job description and
// aggregates the per-candidate scores into a ranked table and summary figures.
package screening

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-screener/internal/logger"
	"github.com/spigell/resume-screener/internal/scoring"
	"github.com/spigell/resume-screener/internal/utils"
)

const logPreviewLength = 80

var (
	// ErrNoReference is returned when the job description is blank.
	ErrNoReference = errors.New("no job description provided")
	// ErrNoCandidates is returned when there is nothing to score.
	ErrNoCandidates = errors.New("no candidates to score")
)

type options struct {
	workers int
	logger  *zap.Logger
	runID   string
}

type Option func(*options)

// WithWorkers bounds the number of candidates scored at once. Values below 1
// fall back to the number of CPUs.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(o *options) {
		o.runID = id
	}
}

// Run scores every candidate against reference and returns the results sorted
// by overall score, highest first, together with their summary. Candidates
// with equal scores keep their submission order.
func Run(ctx context.Context, reference string, candidates *Candidates, opts ...Option) (*Results, Summary, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.NumCPU()
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}

	if strings.TrimSpace(reference) == "" {
		return nil, Summary{}, ErrNoReference
	}
	if candidates.Len() == 0 {
		return nil, Summary{}, ErrNoCandidates
	}

	scorer := scoring.NewScorer(reference)
	log := logger.WithFields(o.logger, logger.RunFields(o.runID, candidates.Len(), scorer.Keywords().Len())...)

	log.Info("starting the screening",
		zap.Int("workers", o.workers),
		zap.String("job_description", utils.TruncateForLog(reference, logPreviewLength)),
	)

	if scorer.Keywords().Len() == 0 {
		log.Warn("no keywords extracted from the job description",
			zap.String("hint", "keyword match is 0 for every candidate; add concrete skills to the job description"),
		)
	}

	records, err := scoreAll(ctx, log, scorer, candidates.Items, o.workers)
	if err != nil {
		return nil, Summary{}, err
	}

	results := NewResults(o.runID, reference, records)
	summary := results.Summary()

	log.Info("screening finished",
		zap.Int("count", summary.Count),
		zap.Float64("mean", summary.Mean),
		zap.Float64("max", summary.Max),
		zap.Float64("min", summary.Min),
		zap.Int("strong", summary.Strong),
		zap.Int("moderate", summary.Moderate),
		zap.Int("weak", summary.Weak),
	)

	return results, summary, nil
}

func scoreAll(ctx context.Context, log *zap.Logger, scorer *scoring.Scorer, items []*Candidate, workers int) ([]scoring.Record, error) {
	for i, candidate := range items {
		if candidate == nil {
			return nil, fmt.Errorf("candidate at position %d is nil", i)
		}
	}

	records := make([]scoring.Record, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, candidate := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			records[i] = scorer.Score(candidate.ID, candidate.Text, i)

			log.Debug("candidate scored",
				zap.String("candidate", candidate.ID),
				zap.Int("position", i),
				zap.Float64("overall", records[i].Overall),
				zap.Int("keywords_matched", records[i].KeywordsMatched),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring candidates: %w", err)
	}

	return records, nil
}

// NewResults builds a result table from records, sorting them by overall
// score in descending order with a stable sort.
func NewResults(runID, reference string, records []scoring.Record) *Results {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b scoring.Record) int {
		switch {
		case a.Overall > b.Overall:
			return -1
		case a.Overall < b.Overall:
			return 1
		default:
			return 0
		}
	})

	return &Results{
		RunID:     runID,
		Reference: reference,
		Records:   sorted,
	}
}
