// Package seeder implements the offline lexicon load: parse a TSV dump,
// bulk-insert PostgreSQL, and build the suggestion index.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/stepbible/step-vocab/internal/adapter/search"
	"github.com/stepbible/step-vocab/internal/app/seeder/lexicon"
	"github.com/stepbible/step-vocab/internal/domain"
)

// DefinitionBulkRepo is the repository surface the pipeline needs.
type DefinitionBulkRepo interface {
	InsertBatch(ctx context.Context, defs []domain.LexiconDefinition, loadID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// Summary holds the outcome of one pipeline run.
type Summary struct {
	LoadID   uuid.UUID
	Parsed   int
	Skipped  int
	Inserted int64
	Indexed  int64
	Total    int64
	Duration time.Duration
}

// Pipeline orchestrates the lexicon load.
type Pipeline struct {
	log  *slog.Logger
	repo DefinitionBulkRepo
	idx  bleve.Index
	cfg  Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo DefinitionBulkRepo, idx bleve.Index, cfg Config) *Pipeline {
	return &Pipeline{
		log:  log.With("component", "seeder"),
		repo: repo,
		idx:  idx,
		cfg:  cfg,
	}
}

// Run parses the configured dataset and loads it into the database and the
// suggestion index. Database and index writers run concurrently, each
// consuming the same chunk stream. Already-present keys are skipped by the
// store; the index write is idempotent by document ID.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	f, err := os.Open(p.cfg.LexiconPath)
	if err != nil {
		return nil, fmt.Errorf("open lexicon dataset: %w", err)
	}
	defer f.Close()

	parsed, err := lexicon.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse lexicon dataset: %w", err)
	}

	summary := &Summary{
		LoadID:  uuid.New(),
		Parsed:  len(parsed.Definitions),
		Skipped: parsed.Skipped,
	}

	p.log.Info("lexicon dataset parsed",
		"path", p.cfg.LexiconPath,
		"definitions", summary.Parsed,
		"skipped", summary.Skipped,
		"load_id", summary.LoadID,
	)

	if p.cfg.DryRun {
		summary.Duration = time.Since(start)
		p.log.Info("dry run, skipping writes")
		return summary, nil
	}

	if err := p.load(ctx, parsed.Definitions, summary); err != nil {
		return nil, err
	}

	total, err := p.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count definitions: %w", err)
	}
	summary.Total = total
	summary.Duration = time.Since(start)

	p.log.Info("lexicon load finished",
		"inserted", summary.Inserted,
		"indexed", summary.Indexed,
		"total", summary.Total,
		"duration", summary.Duration,
	)

	return summary, nil
}

// load fans each chunk out to the database writer and the index writer.
func (p *Pipeline) load(ctx context.Context, defs []domain.LexiconDefinition, summary *Summary) error {
	var inserted, indexed atomic.Int64

	dbCh := make(chan []domain.LexiconDefinition)
	idxCh := make(chan []domain.LexiconDefinition)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(dbCh)
		defer close(idxCh)

		for _, chunk := range chunks(defs, p.cfg.BatchSize) {
			select {
			case dbCh <- chunk:
			case <-gctx.Done():
				return gctx.Err()
			}
			select {
			case idxCh <- chunk:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	g.Go(func() error {
		for chunk := range dbCh {
			n, err := p.repo.InsertBatch(gctx, chunk, summary.LoadID)
			if err != nil {
				return fmt.Errorf("insert batch: %w", err)
			}
			inserted.Add(n)
		}
		return nil
	})

	g.Go(func() error {
		for chunk := range idxCh {
			batch := p.idx.NewBatch()
			for _, d := range chunk {
				err := batch.Index(d.StrongNumber, search.Document{
					Original:        d.Original,
					Transliteration: d.SimpleTransliteration,
					Gloss:           d.ShortDefinition,
				})
				if err != nil {
					return fmt.Errorf("batch index %s: %w", d.StrongNumber, err)
				}
			}
			if err := p.idx.Batch(batch); err != nil {
				return fmt.Errorf("write index batch: %w", err)
			}
			indexed.Add(int64(len(chunk)))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	summary.Inserted = inserted.Load()
	summary.Indexed = indexed.Load()
	return nil
}

// chunks splits defs into slices of at most size elements.
func chunks(defs []domain.LexiconDefinition, size int) [][]domain.LexiconDefinition {
	if size <= 0 {
		size = 500
	}

	var out [][]domain.LexiconDefinition
	for len(defs) > size {
		out = append(out, defs[:size])
		defs = defs[size:]
	}
	if len(defs) > 0 {
		out = append(out, defs)
	}
	return out
}
