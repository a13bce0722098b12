package persistence

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/marcboeker/go-duckdb/v2"
	"go.uber.org/zap"

	"litecene/internal/common"
)

//go:embed migrations/schema.sql
var migrationFS embed.FS

const (
	documentsTable = "documents"
	idField        = "id"
	textField      = "body"
)

// DuckDB keeps one corpus of analyzed documents in the documents table.
// An empty file path opens an in-memory database.
type DuckDB struct {
	db        *sql.DB
	conn      driver.Conn // dedicated to appenders
	logger    *zap.Logger
	mu        sync.Mutex
	closeOnce sync.Once
}

func NewDuckDB(ctx context.Context, filePath string, logger *zap.Logger) (duck *DuckDB, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	duck = &DuckDB{
		logger: logger,
	}

	c, err := duckdb.NewConnector(filePath, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize new connector: %w", err)
	}

	duck.conn, err = c.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not connect: %w", err)
	}
	duck.db = sql.OpenDB(c)

	// must migrate before making an appender
	err = duck.Migrate()
	if err != nil {
		_ = duck.Close()
		return nil, fmt.Errorf("could not migrate: %w", err)
	}

	go func() {
		<-ctx.Done()
		_ = duck.Close()
	}()

	logger.Debug("duckdb is ready", zap.String("path", filePath))
	return duck, nil
}

func (duck *DuckDB) Migrate() error {
	migrateContent, err := migrationFS.ReadFile("migrations/schema.sql")
	if err != nil {
		return err
	}
	_, err = duck.db.Exec(string(migrateContent))
	return err
}

func (duck *DuckDB) DB() *sql.DB { return duck.db }

func (duck *DuckDB) Table() string     { return documentsTable }
func (duck *DuckDB) IdField() string   { return idField }
func (duck *DuckDB) TextField() string { return textField }

// PutCorpus replaces all stored documents with the corpus.
func (duck *DuckDB) PutCorpus(ctx context.Context, corpus common.Corpus) (err error) {
	duck.mu.Lock()
	defer duck.mu.Unlock()

	_, err = duck.db.ExecContext(ctx, "DELETE FROM "+documentsTable)
	if err != nil {
		return fmt.Errorf("wipe documents: %w", err)
	}

	duckAppender, err := duckdb.NewAppenderFromConn(duck.conn, "", documentsTable)
	if err != nil {
		return fmt.Errorf("could not create new appender for %s: %w", documentsTable, err)
	}
	appender := NewAppender(duckAppender)
	defer func() {
		err = errors.Join(err, appender.Close())
	}()

	for _, d := range corpus {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = appender.AppendRow(d.Id, common.Analyze(d.Text))
		if err != nil {
			return fmt.Errorf("append document %s: %w", d.Id, err)
		}
	}

	duck.logger.Debug("stored corpus", zap.Int("documents", len(corpus)))
	return appender.Flush()
}

// Documents returns the stored analyzed text by document id.
func (duck *DuckDB) Documents(ctx context.Context) (map[string]string, error) {
	rows, err := duck.db.QueryContext(ctx, fmt.Sprintf("SELECT %s, %s FROM %s", idField, textField, documentsTable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make(map[string]string)
	for rows.Next() {
		var id, body string
		if err = rows.Scan(&id, &body); err != nil {
			return nil, err
		}
		docs[id] = body
	}
	return docs, rows.Err()
}

func (duck *DuckDB) Close() (err error) {
	duck.closeOnce.Do(
		func() {
			err = errors.Join(duck.conn.Close(), duck.db.Close())
		},
	)
	return err
}
