package query_language

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TextProcessor rewrites the text of a single term. Processors must be idempotent.
type TextProcessor func(string) string

// TextFilter applies process to every term of text tokens and re-splits the result on whitespace.
// A proximity bound moves by the change of the token size, so the slack between
// the bound and the terms it must hold is preserved.
func TextFilter(process TextProcessor, logger *zap.Logger) TokenFilter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(t Token) Token {
		if t.Type != TokenText {
			return t
		}
		terms := make([]Term, 0, len(t.Terms))
		for _, term := range t.Terms {
			terms = append(terms, resegment(Term{Text: process(term.Text), Wildcard: term.Wildcard})...)
		}
		proximity := t.Proximity
		if proximity != 0 {
			proximity += termsSize(terms) - termsSize(t.Terms)
		}
		return boundedTextToken(terms, proximity, logger)
	}
}

// resegment splits a term into one term per word, the wildcard stays on the last one.
func resegment(term Term) []Term {
	words := term.Words()
	if len(words) == 0 {
		if term.Wildcard {
			return []Term{{Wildcard: true}}
		}
		return nil
	}
	terms := make([]Term, len(words))
	for i, w := range words {
		terms[i] = Term{Text: w}
	}
	terms[len(terms)-1].Wildcard = term.Wildcard
	return terms
}

// boundedTextToken builds a text token whose proximity bound is consistent with its terms.
// A bound is meaningless for a single term and is dropped,
// a bound too small to hold the terms collapses the token to a vacuous one.
func boundedTextToken(terms []Term, proximity int, logger *zap.Logger) Token {
	if len(terms) == 0 {
		return Token{Type: TokenText}
	}
	if proximity != 0 && len(terms) < 2 {
		logger.Debug("dropped proximity of a single term", zap.Stringer("term", terms[0]), zap.Int("proximity", proximity))
		proximity = 0
	}
	if size := termsSize(terms); proximity != 0 && proximity < size {
		logger.Warn(
			"proximity window cannot hold its terms, ignoring the phrase",
			zap.Stringer("phrase", TextToken(0, terms...)),
			zap.Int("proximity", proximity),
			zap.Int("size", size),
		)
		return Token{Type: TokenText}
	}
	return TextToken(proximity, terms...)
}

// LettersAndDigits turns every run of other characters into one space.
func LettersAndDigits(s string) string {
	return strings.Join(
		strings.FieldsFunc(
			s, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r)
			},
		), " ",
	)
}

func Lowercase(s string) string { return strings.ToLower(s) }

// StripMarks decomposes the text and removes non-spacing marks: "füñkÿ" becomes "funky".
func StripMarks(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// PrintableASCII replaces every code point outside of 0x20-0x7E with a space.
func PrintableASCII(s string) string {
	return strings.Map(
		func(r rune) rune {
			if r < 0x20 || r > 0x7E {
				return ' '
			}
			return r
		}, s,
	)
}

// DefaultTokenFilters is the filter chain applied to user queries, order matters.
func DefaultTokenFilters(logger *zap.Logger) []TokenFilter {
	return []TokenFilter{
		TextFilter(LettersAndDigits, logger),
		TextFilter(Lowercase, logger),
		TextFilter(StripMarks, logger),
		TextFilter(PrintableASCII, logger),
	}
}
