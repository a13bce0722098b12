package query_language

import (
	"fmt"
	"strings"
)

// Term is a literal word of a query. Wildcard terms match any word starting with Text.
type Term struct {
	Text     string
	Wildcard bool
}

// Vacuous terms have no text and no wildcard, they constrain nothing.
func (t Term) Vacuous() bool { return !t.Wildcard && strings.TrimSpace(t.Text) == "" }

// Words splits the text on whitespace.
func (t Term) Words() []string { return strings.Fields(t.Text) }

// Size is the number of document tokens the term spans.
func (t Term) Size() int {
	n := len(t.Words())
	if n == 0 && t.Wildcard {
		return 1
	}
	return n
}

func (t Term) String() string {
	if t.Wildcard {
		return t.Text + "*"
	}
	return t.Text
}

func termsSize(terms []Term) (size int) {
	for _, t := range terms {
		size += t.Size()
	}
	return
}

// parseTerm reads a term from a raw word. A trailing '*' marks a wildcard,
// stray is set when other '*' had to be removed.
func parseTerm(word string, strict bool) (term Term, stray bool, err error) {
	if strings.HasSuffix(word, "*") {
		term.Wildcard = true
		word = word[:len(word)-1]
	}
	if strings.Contains(word, "*") {
		if strict {
			err = fmt.Errorf("%w: %q", ErrInvalidWildcard, word)
			return
		}
		stray = true
		word = strings.ReplaceAll(word, "*", "")
	}
	term.Text = word
	return
}
