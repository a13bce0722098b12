package query_language

import (
	"strconv"
	"strings"
	"unicode"
)

func joinQueries(qs []Query, sep string) string {
	parts := make([]string, 0, len(qs))
	for _, q := range qs {
		parts = append(parts, q.String())
	}
	return strings.Join(parts, sep)
}

func (q And) String() string   { return joinQueries(q.Children, " AND ") }
func (q Or) String() string    { return joinQueries(q.Children, " OR ") }
func (q List) String() string  { return joinQueries(q.Children, " ") }
func (q Not) String() string   { return "NOT " + q.Child.String() }
func (q Paren) String() string { return "(" + q.Child.String() + ")" }
func (Vacuous) String() string { return `""` }

func (q Text) String() string {
	if q.Proximity == 0 && len(q.Terms) == 1 && isBareWord(q.Terms[0].Text) {
		return q.Terms[0].String()
	}
	words := make([]string, 0, len(q.Terms))
	for _, t := range q.Terms {
		words = append(words, t.String())
	}
	s := `"` + strings.Join(words, " ") + `"`
	if q.Proximity != 0 {
		s += "~" + strconv.Itoa(q.Proximity)
	}
	return s
}

// isBareWord reports whether the text prints as a single unquoted term.
func isBareWord(s string) bool {
	switch s {
	case "AND", "OR", "NOT":
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || isMeta(r) || r == '*' {
			return false
		}
	}
	return true
}
