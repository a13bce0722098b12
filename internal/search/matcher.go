package search

import (
	"regexp"
	"slices"
	"strings"

	"litecene/internal/common"
	"litecene/internal/search/query_language"
)

type MatchFunc func(common.Document) bool

// analyzedText caches the analysis of a document while its query tree is evaluated.
type analyzedText struct {
	text      string
	tokens    []string
	tokenized bool
}

func (a *analyzedText) Tokens() []string {
	if !a.tokenized {
		a.tokens, a.tokenized = common.Tokenize(a.text), true
	}
	return a.tokens
}

type textMatcher func(*analyzedText) bool

// CompileInMemoryMatcher returns a function that tells if a document matches the query.
// It agrees with the SQL predicate evaluated over the analyzed document text.
func CompileInMemoryMatcher(q query_language.Query) MatchFunc {
	m := compileMatcher(q)
	return func(d common.Document) bool {
		return m(&analyzedText{text: common.Analyze(d.Text)})
	}
}

func compileMatcher(q query_language.Query) textMatcher {
	compileAll := func(qs []query_language.Query) []textMatcher {
		ms := make([]textMatcher, 0, len(qs))
		for _, c := range qs {
			ms = append(ms, compileMatcher(c))
		}
		return ms
	}
	all := func(ms []textMatcher) textMatcher {
		return func(a *analyzedText) bool {
			for _, m := range ms {
				if !m(a) {
					return false
				}
			}
			return true
		}
	}

	switch q := q.(type) {
	case query_language.And:
		return all(compileAll(q.Children))
	case query_language.List:
		return all(compileAll(q.Children))
	case query_language.Or:
		ms := compileAll(q.Children)
		return func(a *analyzedText) bool {
			for _, m := range ms {
				if m(a) {
					return true
				}
			}
			return false
		}
	case query_language.Not:
		m := compileMatcher(q.Child)
		return func(a *analyzedText) bool { return !m(a) }
	case query_language.Paren:
		return compileMatcher(q.Child)
	case query_language.Text:
		if q.Proximity == 0 {
			return phraseMatcher(q.Terms)
		}
		return proximityMatcher(q)
	default:
		return func(*analyzedText) bool { return true }
	}
}

func termPattern(t query_language.Term) *regexp.Regexp {
	return regexp.MustCompile(DuckDB{}.TermPattern(t))
}

func phraseMatcher(terms []query_language.Term) textMatcher {
	patterns := make([]string, 0, len(terms))
	for _, t := range terms {
		patterns = append(patterns, DuckDB{}.TermPattern(t))
	}
	re := regexp.MustCompile(strings.Join(patterns, " "))
	return func(a *analyzedText) bool { return re.MatchString(a.text) }
}

type termPositions struct {
	size int
	re   *regexp.Regexp
}

func proximityMatcher(q query_language.Text) textMatcher {
	terms := make([]termPositions, 0, len(q.Terms))
	for _, t := range q.Terms {
		terms = append(terms, termPositions{size: t.Size(), re: termPattern(t)})
	}
	return func(a *analyzedText) bool {
		tokens := a.Tokens()
		positions := make([][]int, 0, len(terms))
		for _, t := range terms {
			var ps []int
			for i := 0; i+t.size <= len(tokens); i++ {
				if t.re.MatchString(strings.Join(tokens[i:i+t.size], " ")) {
					ps = append(ps, i)
				}
			}
			if len(ps) == 0 {
				return false
			}
			positions = append(positions, ps)
		}
		return fitsWindow(positions, q.Proximity)
	}
}

// fitsWindow tells if one position can be picked from every list
// so that max - min + 1 <= window.
func fitsWindow(positions [][]int, window int) bool {
	type hit struct{ pos, list int }
	hits := make([]hit, 0)
	for list, ps := range positions {
		if len(ps) == 0 {
			return false
		}
		for _, p := range ps {
			hits = append(hits, hit{p, list})
		}
	}
	slices.SortFunc(hits, func(a, b hit) int { return a.pos - b.pos })

	// slide over the sorted hits keeping the shortest span that covers every list
	counts := make([]int, len(positions))
	covered, left := 0, 0
	for _, h := range hits {
		if counts[h.list] == 0 {
			covered++
		}
		counts[h.list]++
		for covered == len(positions) {
			if h.pos-hits[left].pos+1 <= window {
				return true
			}
			counts[hits[left].list]--
			if counts[hits[left].list] == 0 {
				covered--
			}
			left++
		}
	}
	return false
}
