package search

import (
	"fmt"
	"strings"

	"litecene/internal/search/query_language"
)

// SQLCompiler turns queries into boolean SQL expressions over a single text field.
// Literals are not escaped against injection, queries come from the parser.
type SQLCompiler struct {
	dialect Dialect
}

func NewSQLCompiler(dialect Dialect) *SQLCompiler {
	if dialect == nil {
		dialect = DuckDB{}
	}
	return &SQLCompiler{dialect: dialect}
}

func (c *SQLCompiler) Dialect() Dialect { return c.dialect }

// CompileSQLPredicate compiles the query for DuckDB.
func CompileSQLPredicate(q query_language.Query, field string, indexed bool) string {
	return NewSQLCompiler(DuckDB{}).Compile(q, field, indexed)
}

// Compile returns a predicate matching the query against the field.
// Fully searchable queries only test token presence. Otherwise the precise predicate is used,
// guarded by the token presence test when the field has a search index.
func (c *SQLCompiler) Compile(q query_language.Query, field string, indexed bool) string {
	if IsFullySearchable(q) {
		return fmt.Sprintf("(%s)", c.search(q, field))
	}
	if indexed {
		return fmt.Sprintf("((%s) AND (%s))", c.search(q, field), c.precise(q, field))
	}
	return fmt.Sprintf("(%s)", c.precise(q, field))
}

func (c *SQLCompiler) search(q query_language.Query, field string) string {
	tokens := RequiredTokens(q)
	if len(tokens) == 0 {
		return c.dialect.True()
	}
	return c.dialect.Search(field, tokens)
}

func (c *SQLCompiler) precise(q query_language.Query, field string) string {
	join := func(qs []query_language.Query, op string) string {
		parts := make([]string, 0, len(qs))
		for _, child := range qs {
			parts = append(parts, "("+c.precise(child, field)+")")
		}
		return strings.Join(parts, op)
	}

	switch q := q.(type) {
	case query_language.And:
		return join(q.Children, " AND ")
	case query_language.List:
		return join(q.Children, " AND ")
	case query_language.Or:
		return join(q.Children, " OR ")
	case query_language.Not:
		return fmt.Sprintf("NOT (%s)", c.precise(q.Child, field))
	case query_language.Paren:
		return fmt.Sprintf("(%s)", c.precise(q.Child, field))
	case query_language.Text:
		if q.Proximity == 0 {
			return c.dialect.Contains(field, c.phrase(q.Terms))
		}
		return c.proximity(q, field)
	case query_language.Vacuous:
		return c.dialect.True()
	default:
		panic(fmt.Sprintf("unsupported query node %T", q))
	}
}

func (c *SQLCompiler) phrase(terms []query_language.Term) string {
	patterns := make([]string, 0, len(terms))
	for _, t := range terms {
		patterns = append(patterns, c.dialect.TermPattern(t))
	}
	return strings.Join(patterns, " ")
}

// proximity looks for one position per term such that all of them fit into the window:
// the cartesian product of per-term position relations is filtered by the window size.
func (c *SQLCompiler) proximity(q query_language.Text, field string) string {
	relations := make([]string, 0, len(q.Terms))
	columns := make([]string, 0, len(q.Terms))
	for i, t := range q.Terms {
		alias := fmt.Sprintf("_q%d", i)
		relations = append(relations, c.dialect.Positions(field, t.Size(), c.dialect.TermPattern(t), alias))
		columns = append(columns, alias+".i")
	}
	return fmt.Sprintf(
		"EXISTS (SELECT 1 FROM %s WHERE %s)",
		strings.Join(relations, " CROSS JOIN "),
		c.dialect.Window(columns, q.Proximity),
	)
}
