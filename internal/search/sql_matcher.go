package search

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"litecene/internal/common"
	"litecene/internal/search/query_language"
)

// CorpusStore materializes a corpus into a table of analyzed documents.
type CorpusStore interface {
	// PutCorpus replaces the documents of the table.
	PutCorpus(ctx context.Context, corpus common.Corpus) error
	Table() string
	// IdField and TextField are the columns of document ids and analyzed text.
	IdField() string
	TextField() string
}

// SQLMatcher matches a corpus by issuing the compiled predicate as a WHERE clause.
type SQLMatcher struct {
	db       *sql.DB
	store    CorpusStore
	compiler *SQLCompiler
	indexed  bool
	logger   *zap.Logger
	mu       sync.Mutex // the store holds one corpus at a time
}

func NewSQLMatcher(db *sql.DB, store CorpusStore, compiler *SQLCompiler, indexed bool, logger *zap.Logger) *SQLMatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLMatcher{db: db, store: store, compiler: compiler, indexed: indexed, logger: logger}
}

// Statement returns the SQL that selects ids of matching documents.
func (m *SQLMatcher) Statement(q query_language.Query) string {
	return fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY %s",
		m.store.IdField(),
		m.store.Table(),
		m.compiler.Compile(q, m.store.TextField(), m.indexed),
		m.store.IdField(),
	)
}

func (m *SQLMatcher) Match(ctx context.Context, corpus common.Corpus, q query_language.Query) (ids []string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	err = m.store.PutCorpus(ctx, corpus)
	if err != nil {
		return nil, fmt.Errorf("materialize corpus: %w", err)
	}

	stmt := m.Statement(q)
	m.logger.Debug("matching corpus", zap.String("sql", stmt))

	rows, err := m.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	ids = make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan document id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}
	return ids, nil
}
