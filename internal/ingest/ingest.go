// Package ingest turns resume and job description files into plain text.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-screener/internal/logger"
	"github.com/spigell/resume-screener/internal/screening"
)

// ErrUnsupported is returned for files whose extension has no reader.
var ErrUnsupported = errors.New("unsupported file type")

type reader func(path string) (string, error)

var readers = map[string]reader{
	".pdf":  readPDF,
	".docx": readDOCX,
	".txt":  readText,
	".md":   readText,
	".html": readHTML,
	".htm":  readHTML,
}

// Supported reports whether path has an extension the extractor can read.
func Supported(path string) bool {
	_, ok := readers[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extensions lists the supported file extensions.
func Extensions() []string {
	return []string{".pdf", ".docx", ".txt", ".md", ".html", ".htm"}
}

// ReadFile extracts the plain text of a single file.
func ReadFile(path string) (string, error) {
	read, ok := readers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
	}
	return read(path)
}

// Failure records a file that could not be turned into a candidate.
type Failure struct {
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

type Extractor struct {
	logger  *zap.Logger
	workers int
}

func New(log *zap.Logger, workers int) *Extractor {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Extractor{
		logger:  logger.WithFields(log),
		workers: workers,
	}
}

// Collect reads every file in paths. Directories contribute their supported
// files, without recursing. The candidates keep the order of paths; files that
// fail to read are left out and returned as failures.
func (e *Extractor) Collect(ctx context.Context, paths []string) (*screening.Candidates, []Failure, error) {
	files, failures := e.expand(paths)

	candidates := make([]*screening.Candidate, len(files))
	errs := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			text, err := ReadFile(file)
			if err != nil {
				errs[i] = err
				return nil
			}

			candidates[i] = &screening.Candidate{
				ID:     filepath.Base(file),
				Text:   text,
				Source: file,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("reading resumes: %w", err)
	}

	result := screening.NewCandidates()
	for i, candidate := range candidates {
		if errs[i] != nil {
			failures = append(failures, Failure{Path: files[i], Err: errs[i]})
			e.logger.Warn("could not read resume, skipping",
				zap.String("path", files[i]),
				zap.Error(errs[i]),
			)
			continue
		}

		e.logger.Debug("resume read",
			zap.String("path", files[i]),
			zap.Int("characters", utf8.RuneCountInString(candidate.Text)),
		)
		result.Items = append(result.Items, candidate)
	}

	e.logger.Info("resumes collected",
		zap.Int("count", result.Len()),
		zap.Int("failed", len(failures)),
	)

	return result, failures, nil
}

func (e *Extractor) expand(paths []string) ([]string, []Failure) {
	var (
		files    []string
		failures []Failure
	)

	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			failures = append(failures, Failure{Path: path, Err: err})
			e.logger.Warn("could not access resume path, skipping", zap.String("path", path), zap.Error(err))
			continue
		}

		if !info.IsDir() {
			if !Supported(path) {
				failures = append(failures, Failure{Path: path, Err: ErrUnsupported})
				e.logger.Warn("unsupported resume file, skipping",
					zap.String("path", path),
					zap.Strings("supported", Extensions()),
				)
				continue
			}
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			failures = append(failures, Failure{Path: path, Err: err})
			e.logger.Warn("could not list resume directory, skipping", zap.String("path", path), zap.Error(err))
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !Supported(entry.Name()) {
				continue
			}
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}

	return files, failures
}
