package search

import (
	"fmt"
	"regexp"
	"strings"

	"litecene/internal/search/query_language"
)

// Dialect renders the engine specific parts of a predicate.
// Fields are expected to hold analyzed text, see common.Analyze.
type Dialect interface {
	Name() string
	// Search is true when every token is present in the field.
	Search(field string, tokens []string) string
	// Contains is true when the regular expression matches the field.
	Contains(field, pattern string) string
	// TermPattern is a regular expression matching the term as whole words.
	TermPattern(term query_language.Term) string
	// Positions is a relation aliased as alias with a column i of every position
	// where n consecutive tokens of the field match the pattern.
	Positions(field string, n int, pattern, alias string) string
	// Window is true when the positions of all columns fit into proximity tokens.
	Window(columns []string, proximity int) string
	True() string
	// Analysis is an expression that turns raw text of the field into analyzed text.
	Analysis(field string) string
}

var dialects = map[string]Dialect{
	DuckDB{}.Name():   DuckDB{},
	BigQuery{}.Name(): BigQuery{},
}

// DialectByName finds a dialect: "duckdb" or "bigquery".
func DialectByName(name string) (Dialect, error) {
	d, ok := dialects[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown sql dialect %q", name)
	}
	return d, nil
}

const wildcardSuffix = "[a-z0-9]*"

// DuckDB produces predicates for DuckDB.
type DuckDB struct{}

func (DuckDB) Name() string { return "duckdb" }

func duckTokens(field string) string {
	return fmt.Sprintf("regexp_extract_all(%s, '[a-z0-9]+')", field)
}

func duckString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (DuckDB) Search(field string, tokens []string) string {
	quoted := make([]string, 0, len(tokens))
	for _, t := range tokens {
		quoted = append(quoted, duckString(t))
	}
	return fmt.Sprintf("list_has_all(%s, [%s])", duckTokens(field), strings.Join(quoted, ", "))
}

func (DuckDB) Contains(field, pattern string) string {
	return fmt.Sprintf("regexp_matches(%s, %s)", field, duckString(pattern))
}

func (DuckDB) TermPattern(term query_language.Term) string {
	p := `\b` + regexp.QuoteMeta(term.Text)
	if term.Wildcard {
		p += wildcardSuffix
	}
	return p + `\b`
}

func (DuckDB) Positions(field string, n int, pattern, alias string) string {
	tokens := duckTokens(field)
	candidate := fmt.Sprintf("%s[_p.i]", tokens)
	if n > 1 {
		candidate = fmt.Sprintf("array_to_string(list_slice(%s, _p.i, _p.i + %d), ' ')", tokens, n-1)
	}
	return fmt.Sprintf(
		"(SELECT _p.i FROM (SELECT unnest(range(1, len(%s) + 1)) AS i) AS _p WHERE regexp_matches(%s, %s)) AS %s",
		tokens, candidate, duckString(pattern), alias,
	)
}

func (DuckDB) Window(columns []string, proximity int) string {
	cols := strings.Join(columns, ", ")
	return fmt.Sprintf("greatest(%s) - least(%s) + 1 <= %d", cols, cols, proximity)
}

func (DuckDB) True() string { return "TRUE" }

func (DuckDB) Analysis(field string) string {
	return fmt.Sprintf("lower(trim(regexp_replace(strip_accents(%s), '[^a-zA-Z0-9]+', ' ', 'g')))", field)
}

// BigQuery produces predicates for Google BigQuery.
type BigQuery struct{}

func (BigQuery) Name() string { return "bigquery" }

func (BigQuery) Search(field string, tokens []string) string {
	return fmt.Sprintf("SEARCH(%s, '%s')", field, strings.Join(tokens, " "))
}

func (BigQuery) Contains(field, pattern string) string {
	return fmt.Sprintf(`REGEXP_CONTAINS(%s, r"%s")`, field, pattern)
}

func (BigQuery) TermPattern(term query_language.Term) string {
	p := `\b\Q` + term.Text + `\E`
	if term.Wildcard {
		p += wildcardSuffix
	}
	return p + `\b`
}

func (BigQuery) Positions(field string, n int, pattern, alias string) string {
	tokens := fmt.Sprintf(`REGEXP_EXTRACT_ALL(%s, r"[a-z0-9]+")`, field)
	if n > 1 {
		tokens = fmt.Sprintf("ML.NGRAMS(%s, [ %d, %d ])", tokens, n, n)
	}
	return fmt.Sprintf(
		`(SELECT i, t FROM UNNEST(%s) AS t WITH OFFSET i WHERE REGEXP_CONTAINS(t, r"%s")) AS %s`,
		tokens, pattern, alias,
	)
}

func (BigQuery) Window(columns []string, proximity int) string {
	cols := strings.Join(columns, ", ")
	return fmt.Sprintf("GREATEST(%s)-LEAST(%s)+1 <= %d", cols, cols, proximity)
}

func (BigQuery) True() string { return "TRUE" }

func (BigQuery) Analysis(field string) string {
	return fmt.Sprintf(
		`LOWER(TRIM(REGEXP_REPLACE(REGEXP_REPLACE(NORMALIZE(%s, NFKD), r"\p{M}", ''), r"[^a-zA-Z0-9]+", ' ')))`,
		field,
	)
}
