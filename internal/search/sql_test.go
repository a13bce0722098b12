package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"litecene/internal/search/query_language"
)

func TestBigQueryPredicate(t *testing.T) {
	type test struct {
		query    string
		indexed  bool
		expected string
	}

	tests := []test{
		{"fontina", false, `(SEARCH(t.text, 'fontina'))`},
		{"fontina", true, `(SEARCH(t.text, 'fontina'))`},
		{"mizzenmast fontina", false, `(SEARCH(t.text, 'fontina mizzenmast'))`},
		{"", false, `(TRUE)`},
		{"font*", false, `(REGEXP_CONTAINS(t.text, r"\b\Qfont\E[a-z0-9]*\b"))`},
		{"font*", true, `((TRUE) AND (REGEXP_CONTAINS(t.text, r"\b\Qfont\E[a-z0-9]*\b")))`},
		{
			`"melted cheese"`, true,
			`((SEARCH(t.text, 'cheese melted')) AND (REGEXP_CONTAINS(t.text, r"\b\Qmelted\E\b \b\Qcheese\E\b")))`,
		},
		{
			"fontina OR mizzenmast", false,
			`((REGEXP_CONTAINS(t.text, r"\b\Qfontina\E\b")) OR (REGEXP_CONTAINS(t.text, r"\b\Qmizzenmast\E\b")))`,
		},
		{
			"fontina AND NOT cheese", false,
			`((REGEXP_CONTAINS(t.text, r"\b\Qfontina\E\b")) AND (NOT (REGEXP_CONTAINS(t.text, r"\b\Qcheese\E\b"))))`,
		},
		{
			"a AND (b OR c)", false,
			`((REGEXP_CONTAINS(t.text, r"\b\Qa\E\b")) AND (((REGEXP_CONTAINS(t.text, r"\b\Qb\E\b")) OR (REGEXP_CONTAINS(t.text, r"\b\Qc\E\b")))))`,
		},
		{
			`"spirits mizzenmast"~4`, false,
			`(EXISTS (SELECT 1 FROM ` +
				`(SELECT i, t FROM UNNEST(REGEXP_EXTRACT_ALL(t.text, r"[a-z0-9]+")) AS t WITH OFFSET i WHERE REGEXP_CONTAINS(t, r"\b\Qspirits\E\b")) AS _q0` +
				` CROSS JOIN ` +
				`(SELECT i, t FROM UNNEST(REGEXP_EXTRACT_ALL(t.text, r"[a-z0-9]+")) AS t WITH OFFSET i WHERE REGEXP_CONTAINS(t, r"\b\Qmizzenmast\E\b")) AS _q1` +
				` WHERE GREATEST(_q0.i, _q1.i)-LEAST(_q0.i, _q1.i)+1 <= 4))`,
		},
	}

	compiler := NewSQLCompiler(BigQuery{})
	for _, tt := range tests {
		t.Run(
			tt.query, func(t *testing.T) {
				q, err := query_language.ParseUserQuery(tt.query)
				require.NoError(t, err)
				require.Equal(t, tt.expected, compiler.Compile(q, "t.text", tt.indexed))
			},
		)
	}
}

func TestBigQueryNgramPositions(t *testing.T) {
	q := query_language.NewText(4, query_language.Term{Text: "crow s"}, query_language.Term{Text: "nest"})
	expected := `(EXISTS (SELECT 1 FROM ` +
		`(SELECT i, t FROM UNNEST(ML.NGRAMS(REGEXP_EXTRACT_ALL(f, r"[a-z0-9]+"), [ 2, 2 ])) AS t WITH OFFSET i WHERE REGEXP_CONTAINS(t, r"\b\Qcrow s\E\b")) AS _q0` +
		` CROSS JOIN ` +
		`(SELECT i, t FROM UNNEST(REGEXP_EXTRACT_ALL(f, r"[a-z0-9]+")) AS t WITH OFFSET i WHERE REGEXP_CONTAINS(t, r"\b\Qnest\E\b")) AS _q1` +
		` WHERE GREATEST(_q0.i, _q1.i)-LEAST(_q0.i, _q1.i)+1 <= 4))`
	require.Equal(t, expected, NewSQLCompiler(BigQuery{}).Compile(q, "f", false))
}

func TestDuckDBPredicate(t *testing.T) {
	type test struct {
		query    query_language.Query
		indexed  bool
		expected string
	}

	fontina := query_language.NewText(0, query_language.Term{Text: "fontina"})
	tests := []test{
		{fontina, false, `(list_has_all(regexp_extract_all(body, '[a-z0-9]+'), ['fontina']))`},
		{
			query_language.NewText(0, query_language.Term{Text: "font", Wildcard: true}), false,
			`(regexp_matches(body, '\bfont[a-z0-9]*\b'))`,
		},
		{
			query_language.NewText(0, query_language.Term{Text: "it's"}, query_language.Term{Text: "a.b"}), true,
			`((list_has_all(regexp_extract_all(body, '[a-z0-9]+'), ['a.b', 'it''s'])) AND (regexp_matches(body, '\bit''s\b \ba\.b\b')))`,
		},
		{
			query_language.Not{Child: fontina}, false,
			`(NOT (regexp_matches(body, '\bfontina\b')))`,
		},
		{
			query_language.NewList(fontina, query_language.Vacuous{}), false,
			`((regexp_matches(body, '\bfontina\b')) AND (TRUE))`,
		},
		{
			query_language.NewText(4, query_language.Term{Text: "crow s"}, query_language.Term{Text: "nest"}), false,
			`(EXISTS (SELECT 1 FROM ` +
				`(SELECT _p.i FROM (SELECT unnest(range(1, len(regexp_extract_all(body, '[a-z0-9]+')) + 1)) AS i) AS _p` +
				` WHERE regexp_matches(array_to_string(list_slice(regexp_extract_all(body, '[a-z0-9]+'), _p.i, _p.i + 1), ' '), '\bcrow s\b')) AS _q0` +
				` CROSS JOIN ` +
				`(SELECT _p.i FROM (SELECT unnest(range(1, len(regexp_extract_all(body, '[a-z0-9]+')) + 1)) AS i) AS _p` +
				` WHERE regexp_matches(regexp_extract_all(body, '[a-z0-9]+')[_p.i], '\bnest\b')) AS _q1` +
				` WHERE greatest(_q0.i, _q1.i) - least(_q0.i, _q1.i) + 1 <= 4))`,
		},
	}

	for _, tt := range tests {
		t.Run(
			query_language.Dump(tt.query), func(t *testing.T) {
				require.Equal(t, tt.expected, CompileSQLPredicate(tt.query, "body", tt.indexed))
			},
		)
	}
}

func TestDialectByName(t *testing.T) {
	d, err := DialectByName("BigQuery")
	require.NoError(t, err)
	require.Equal(t, BigQuery{}, d)

	d, err = DialectByName("duckdb")
	require.NoError(t, err)
	require.Equal(t, DuckDB{}, d)

	_, err = DialectByName("oracle")
	require.Error(t, err)
}

func TestAnalysisExpression(t *testing.T) {
	require.Equal(
		t,
		`LOWER(TRIM(REGEXP_REPLACE(REGEXP_REPLACE(NORMALIZE(t.text, NFKD), r"\p{M}", ''), r"[^a-zA-Z0-9]+", ' ')))`,
		BigQuery{}.Analysis("t.text"),
	)
	require.Equal(
		t,
		`lower(trim(regexp_replace(strip_accents(body), '[^a-zA-Z0-9]+', ' ', 'g')))`,
		DuckDB{}.Analysis("body"),
	)
}
