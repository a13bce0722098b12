package ui

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"litecene/internal/common"
	"litecene/internal/persistence"
	"litecene/internal/search"
	"litecene/internal/search/query_language"
)

const (
	BackendMemory = "memory"
	BackendDuckDB = "duckdb"
)

// Litecene wires the query language and both matching backends for the console and http api.
type Litecene struct {
	Cfg      Config
	Logger   *zap.Logger
	Compiler *search.SQLCompiler
	Memory   *search.MemoryMatcher

	ctx     context.Context
	duckMu  sync.Mutex
	duck    *persistence.DuckDB
	sqlRuns *search.SQLMatcher
}

func NewLitecene(ctx context.Context, cfg Config, logger *zap.Logger) (*Litecene, error) {
	dialect, err := search.DialectByName(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	return &Litecene{
		Cfg:      cfg,
		Logger:   logger,
		Compiler: search.NewSQLCompiler(dialect),
		Memory:   search.NewMemoryMatcher(cfg.Concurrency, logger),
		ctx:      ctx,
	}, nil
}

func (l *Litecene) Parse(query string) (query_language.Query, error) {
	return query_language.ParseUserQuery(
		query,
		query_language.WithLogger(l.Logger),
		query_language.WithStrictWildcards(l.Cfg.StrictWildcards),
	)
}

// Matcher returns the backend by name, an empty name selects the in-memory one.
// The duckdb database is opened on first use.
func (l *Litecene) Matcher(backend string) (search.Matcher, error) {
	switch backend {
	case "", BackendMemory:
		return l.Memory, nil
	case BackendDuckDB:
		l.duckMu.Lock()
		defer l.duckMu.Unlock()
		if l.sqlRuns != nil {
			return l.sqlRuns, nil
		}
		duck, err := persistence.NewDuckDB(l.ctx, l.Cfg.StoragePath, l.Logger)
		if err != nil {
			return nil, fmt.Errorf("open duckdb: %w", err)
		}
		l.duck = duck
		// only duckdb can execute the predicates here, whatever dialect is configured
		l.sqlRuns = search.NewSQLMatcher(duck.DB(), duck, search.NewSQLCompiler(search.DuckDB{}), l.Cfg.Indexed, l.Logger)
		return l.sqlRuns, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// Match parses the query and matches the corpus with the given backend.
func (l *Litecene) Match(ctx context.Context, backend, query string, corpus common.Corpus) ([]string, error) {
	q, err := l.Parse(query)
	if err != nil {
		return nil, err
	}
	m, err := l.Matcher(backend)
	if err != nil {
		return nil, err
	}
	return m.Match(ctx, corpus, q)
}

func (l *Litecene) Close() error {
	l.duckMu.Lock()
	defer l.duckMu.Unlock()
	if l.duck == nil {
		return nil
	}
	return l.duck.Close()
}
