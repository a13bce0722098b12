package search

import (
	"litecene/internal/search/query_language"
)

// IsFullySearchable tells if the query is answered exactly by testing the presence of RequiredTokens.
// Order, adjacency, wildcards, disjunction and negation all need the precise predicate.
func IsFullySearchable(q query_language.Query) bool {
	switch q := q.(type) {
	case query_language.And:
		return allFullySearchable(q.Children)
	case query_language.List:
		return allFullySearchable(q.Children)
	case query_language.Paren:
		return IsFullySearchable(q.Child)
	case query_language.Text:
		return len(q.Terms) == 1 && !q.Terms[0].Wildcard && q.Terms[0].Size() == 1
	default:
		return false
	}
}

func allFullySearchable(qs []query_language.Query) bool {
	for _, q := range qs {
		if !IsFullySearchable(q) {
			return false
		}
	}
	return true
}

// RequiredTokens returns the sorted tokens that every matching document contains.
func RequiredTokens(q query_language.Query) []string {
	switch q := q.(type) {
	case query_language.And:
		return requiredTokensOfAll(q.Children)
	case query_language.List:
		return requiredTokensOfAll(q.Children)
	case query_language.Or:
		// only tokens required by every alternative
		var r []string
		for i, c := range q.Children {
			if i == 0 {
				r = RequiredTokens(c)
			} else {
				r = setAnd(r, RequiredTokens(c))
			}
			if len(r) == 0 {
				return []string{}
			}
		}
		return r
	case query_language.Paren:
		return RequiredTokens(q.Child)
	case query_language.Text:
		tokens := make([]string, 0, len(q.Terms))
		for _, t := range q.Terms {
			words := t.Words()
			if t.Wildcard && len(words) > 0 {
				words = words[:len(words)-1] // the last word is a prefix
			}
			tokens = append(tokens, words...)
		}
		return setOr(tokens)
	default:
		return []string{}
	}
}

func requiredTokensOfAll(qs []query_language.Query) []string {
	sets := make([][]string, 0, len(qs))
	for _, q := range qs {
		sets = append(sets, RequiredTokens(q))
	}
	return setOr(sets...)
}
