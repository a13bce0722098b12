package common

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Analyze prepares document text for matching: diacritics are removed, the text is lowercased
// and every run of characters other than [a-z0-9] becomes a single space.
// Both search backends match against the analyzed text.
func Analyze(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.M)))
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)
	return strings.Join(strings.FieldsFunc(folded, func(r rune) bool { return !isToken(r) }), " ")
}

// Tokenize splits analyzed text into tokens.
func Tokenize(analyzed string) []string {
	return strings.Fields(analyzed)
}

func isToken(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
