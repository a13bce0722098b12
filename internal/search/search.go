package search

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"litecene/internal/common"
	"litecene/internal/search/query_language"
)

// Matcher finds the documents of a corpus matching a query.
// Ids are returned sorted.
type Matcher interface {
	Match(ctx context.Context, corpus common.Corpus, q query_language.Query) ([]string, error)
}

// MemoryMatcher evaluates queries in process.
type MemoryMatcher struct {
	workers int
	logger  *zap.Logger
}

func NewMemoryMatcher(workers int, logger *zap.Logger) *MemoryMatcher {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryMatcher{workers: workers, logger: logger}
}

func (m *MemoryMatcher) Match(ctx context.Context, corpus common.Corpus, q query_language.Query) ([]string, error) {
	match := CompileInMemoryMatcher(q)
	g, ctx := errgroup.WithContext(ctx)

	in := make(chan common.Document)
	g.Go(
		func() error {
			defer close(in)
			for _, d := range corpus {
				select {
				case in <- d:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		},
	)

	ids := make([]string, 0)
	matched := NewMatchPool(ctx, match, in, m.workers)
	g.Go(
		func() error {
			for d := range matched {
				ids = append(ids, d.Id)
			}
			return ctx.Err()
		},
	)

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("match corpus: %w", err)
	}
	slices.Sort(ids)
	m.logger.Debug("matched corpus", zap.Stringer("query", q), zap.Int("documents", len(corpus)), zap.Int("matched", len(ids)))
	return ids, nil
}
