// Package pipeline wires Stage 1 (internal/extractor) and Stage 2
// (internal/kythe) together into a per-file extraction and drives it over a
// file list with a bounded worker pool, grounded on the teacher repo's
// internal/indexer goroutine-per-file fan-out (one goroutine per file
// feeding a buffered error channel, joined with sync.WaitGroup).
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hdlxref/hdlfacts/internal/config"
	"github.com/hdlxref/hdlfacts/internal/cst"
	"github.com/hdlxref/hdlfacts/internal/extractor"
	"github.com/hdlxref/hdlfacts/internal/kythe"
	"github.com/hdlxref/hdlfacts/internal/metrics"
	"github.com/hdlxref/hdlfacts/internal/sink"
)

// Pipeline extracts files against one resolved dialect, one Sink and one
// Metrics instance shared across a run.
type Pipeline struct {
	Config  *config.Config
	Sink    sink.Sink
	Metrics *metrics.Metrics
	Log     *logrus.Logger

	dialect extractor.Registered

	// extractFile is p.ExtractFile by default; Run calls through this field
	// so tests can swap in a stub without a real tree-sitter grammar.
	extractFile func(ctx context.Context, path string) error
}

// New resolves cfg.Dialect and returns a Pipeline ready to extract files.
func New(cfg *config.Config, sk sink.Sink, m *metrics.Metrics, log *logrus.Logger) (*Pipeline, error) {
	reg, err := extractor.Lookup(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	return NewWithRegistered(cfg, reg, sk, m, log), nil
}

// NewWithRegistered builds a Pipeline from an already-resolved dialect,
// letting callers (and tests) bypass the registry lookup in New.
func NewWithRegistered(cfg *config.Config, reg extractor.Registered, sk sink.Sink, m *metrics.Metrics, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.New()
	}
	p := &Pipeline{Config: cfg, Sink: sk, Metrics: m, Log: log, dialect: reg}
	p.extractFile = p.ExtractFile
	return p
}

// ExtractFile runs Stage 1 and Stage 2 for a single file and writes the
// result to p.Sink. Safe to call concurrently as long as p.Sink is
// (sink.Serialize wraps a Sink for exactly this).
func (p *Pipeline) ExtractFile(ctx context.Context, path string) error {
	runID := uuid.New().String()
	log := p.Log.WithFields(logrus.Fields{"run": runID, "file": path})

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("pipeline: read %s: %w", path, err)
	}

	root, err := cst.Parse(ctx, source, p.dialect.Language)
	if err != nil {
		return fmt.Errorf("pipeline: parse %s: %w", path, err)
	}

	start := time.Now()
	tree := extractor.New(p.dialect.Dialect).Build(root, source, path)

	emitter := &kythe.Emitter{
		FilePath: path,
		Language: p.Config.VName.Language,
		Root:     p.Config.VName.Root,
		Corpus:   p.Config.VName.Corpus,
		Sink:     p.Sink,
		Metrics:  p.Metrics,
		Log:      log,
	}
	if err := emitter.Emit(tree); err != nil {
		return fmt.Errorf("pipeline: emit %s: %w", path, err)
	}

	p.Metrics.ObserveExtraction(time.Since(start))
	p.Metrics.IncFilesProcessed()
	log.Info("file extracted")
	return nil
}

// Run extracts every file in files, bounded to p.Config.Concurrency.Workers
// goroutines at a time (0 means GOMAXPROCS). One failing file does not stop
// the others; every error is collected and joined into the return value.
func (p *Pipeline) Run(ctx context.Context, files []string) error {
	workers := 0
	if p.Config != nil {
		workers = p.Config.Concurrency.Workers
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sem := make(chan struct{}, workers)
	errCh := make(chan error, len(files))
	var wg sync.WaitGroup

	for _, f := range files {
		if ctx.Err() != nil {
			errCh <- ctx.Err()
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(f string) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := p.extractFile(ctx, f); err != nil {
				errCh <- err
			}
		}(f)
	}

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("pipeline: %d of %d files failed: %w", len(errs), len(files), errors.Join(errs...))
}
