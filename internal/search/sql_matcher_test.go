package search

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"litecene/internal/common"
	"litecene/internal/search/query_language"
)

type stubStore struct {
	corpus common.Corpus
	err    error
}

func (s *stubStore) PutCorpus(_ context.Context, corpus common.Corpus) error {
	s.corpus = corpus
	return s.err
}
func (s *stubStore) Table() string     { return "docs" }
func (s *stubStore) IdField() string   { return "id" }
func (s *stubStore) TextField() string { return "body" }

func TestSQLMatcher(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	store := &stubStore{}
	m := NewSQLMatcher(db, store, NewSQLCompiler(nil), false, nil)

	q, err := query_language.ParseUserQuery("fontina")
	require.NoError(t, err)

	stmt := "SELECT id FROM docs WHERE (list_has_all(regexp_extract_all(body, '[a-z0-9]+'), ['fontina'])) ORDER BY id"
	require.Equal(t, stmt, m.Statement(q))

	mock.ExpectQuery(stmt).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("cheese"))

	ids, err := m.Match(context.Background(), common.ReferenceCorpus, q)
	require.NoError(t, err)
	require.Equal(t, []string{"cheese"}, ids)
	require.Equal(t, common.ReferenceCorpus, store.corpus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLMatcherEmptyResult(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	m := NewSQLMatcher(db, &stubStore{}, NewSQLCompiler(DuckDB{}), false, nil)
	mock.ExpectQuery("SELECT id FROM docs WHERE (TRUE) ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := m.Match(context.Background(), common.Corpus{}, query_language.Vacuous{})
	require.NoError(t, err)
	require.NotNil(t, ids)
	require.Empty(t, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLMatcherErrors(t *testing.T) {
	q := query_language.NewText(0, query_language.Term{Text: "fontina"})

	t.Run(
		"store", func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			storeErr := errors.New("disk full")
			m := NewSQLMatcher(db, &stubStore{err: storeErr}, NewSQLCompiler(nil), false, nil)
			_, err = m.Match(context.Background(), common.ReferenceCorpus, q)
			require.ErrorIs(t, err, storeErr)
			require.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"query", func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			queryErr := errors.New("syntax error")
			mock.ExpectQuery("SELECT id FROM docs").WillReturnError(queryErr)

			m := NewSQLMatcher(db, &stubStore{}, NewSQLCompiler(nil), false, nil)
			_, err = m.Match(context.Background(), common.ReferenceCorpus, q)
			require.ErrorIs(t, err, queryErr)
			require.NoError(t, mock.ExpectationsWereMet())
		},
	)
}
