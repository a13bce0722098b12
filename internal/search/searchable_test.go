package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"litecene/internal/search/query_language"
)

func TestFullySearchable(t *testing.T) {
	type test struct {
		query            string
		fullySearchable  bool
		requiredTokens   []string
	}

	tests := []test{
		{"fontina", true, []string{"fontina"}},
		{"fontina mizzenmast", true, []string{"fontina", "mizzenmast"}},
		{"fontina AND mizzenmast", true, []string{"fontina", "mizzenmast"}},
		{"(fontina) AND (a b)", true, []string{"a", "b", "fontina"}},
		{"b a b", true, []string{"a", "b"}},
		{"(a OR b) c", false, []string{"c"}},
		{"font*", false, []string{}},
		{`"melted cheese"`, false, []string{"cheese", "melted"}},
		{`"melted chee*"`, false, []string{"melted"}},
		{`"spirits mizzenmast"~4`, false, []string{"mizzenmast", "spirits"}},
		{"crow's", false, []string{"crow", "s"}},
		{"fontina OR mizzenmast", false, []string{}},
		{"(a b) OR (b c)", false, []string{"b"}},
		{"(a b c) OR (b c) OR (c d)", false, []string{"c"}},
		{"(a b) OR c OR (b c)", false, []string{}},
		{"NOT fontina", false, []string{}},
		{"a AND NOT b", false, []string{"a"}},
		{"a OR NOT a", false, []string{}},
		{"", false, []string{}},
	}

	for _, tt := range tests {
		t.Run(
			tt.query, func(t *testing.T) {
				q, err := query_language.ParseUserQuery(tt.query)
				require.NoError(t, err)
				require.Equal(t, tt.fullySearchable, IsFullySearchable(q))
				require.Equal(t, tt.requiredTokens, RequiredTokens(q))
			},
		)
	}
}

func TestFullySearchableMultiWordTerm(t *testing.T) {
	q := query_language.Text{Terms: []query_language.Term{{Text: "crow s"}}}
	require.False(t, IsFullySearchable(q))
	require.Equal(t, []string{"crow", "s"}, RequiredTokens(q))

	q = query_language.Text{Terms: []query_language.Term{{Text: "crow ne", Wildcard: true}}}
	require.Equal(t, []string{"crow"}, RequiredTokens(q))
}

func TestRequiredTokensAreSound(t *testing.T) {
	queries := []string{
		"ipsum",
		"fontina AND ipsum",
		"(fontina OR mizzenmast) AND ipsum",
		"(melted cheese) OR (cheese fontina)",
		`"crow's nest"~4`,
		"font* ipsum",
	}

	for _, input := range queries {
		t.Run(
			input, func(t *testing.T) {
				q, err := query_language.ParseUserQuery(input)
				require.NoError(t, err)
				precise := CompileInMemoryMatcher(q)
				required := RequiredTokens(q)
				for _, d := range referenceCorpus() {
					if !precise(d) {
						continue
					}
					tokens := analyzedTokens(d)
					for _, token := range required {
						require.Contains(t, tokens, token, d.Id)
					}
				}
			},
		)
	}
}

func TestSets(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, setOr([]string{"c", "a"}, []string{"b", "a"}))
	require.Equal(t, []string{}, setOr[string]())
	require.Equal(t, []int{2, 3}, setAnd([]int{1, 2, 3}, []int{3, 2, 4}))
	require.Equal(t, []int{}, setAnd([]int{1}, []int{2}))
}
