package query_language

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// Tokenizer scans a code point stream into tokens.
// The first error is sticky: every later call returns it again.
type Tokenizer struct {
	src     CodePointStream
	pos     int // code points consumed so far
	pending *Token
	err     error
	strict  bool
	logger  *zap.Logger
}

// NewTokenizer makes a tokenizer. In strict mode a '*' that does not end a term fails with ErrInvalidWildcard,
// otherwise it is removed with a warning.
func NewTokenizer(src CodePointStream, strict bool, logger *zap.Logger) *Tokenizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tokenizer{src: src, strict: strict, logger: logger}
}

func (t *Tokenizer) Peek() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	if t.pending == nil {
		tok, err := t.scan()
		if err != nil {
			t.err = err
			return Token{}, err
		}
		t.pending = &tok
	}
	return *t.pending, nil
}

func (t *Tokenizer) Next() (Token, error) {
	tok, err := t.Peek()
	t.pending = nil
	return tok, err
}

func (t *Tokenizer) read() rune {
	r := t.src.Next()
	if r != EOF {
		t.pos++
	}
	return r
}

func isMeta(r rune) bool {
	switch r {
	case '(', ')', '"', '~':
		return true
	}
	return false
}

func (t *Tokenizer) scan() (Token, error) {
	for r := t.src.Peek(); r != EOF && unicode.IsSpace(r); r = t.src.Peek() {
		t.read()
	}

	switch r := t.src.Peek(); r {
	case EOF:
		return EOFToken, nil
	case '(':
		t.read()
		return LParenToken, nil
	case ')':
		t.read()
		return RParenToken, nil
	case '"':
		return t.phrase()
	case '~':
		return Token{}, fmt.Errorf("%w %q at position %d", ErrUnrecognizedCharacter, r, t.pos)
	default:
		return t.word()
	}
}

func (t *Tokenizer) word() (Token, error) {
	var sb strings.Builder
	for r := t.src.Peek(); r != EOF && !unicode.IsSpace(r) && !isMeta(r); r = t.src.Peek() {
		sb.WriteRune(t.read())
	}

	switch w := sb.String(); w {
	case "AND":
		return AndToken, nil
	case "OR":
		return OrToken, nil
	case "NOT":
		return NotToken, nil
	default:
		term, err := t.term(w)
		if err != nil {
			return Token{}, err
		}
		return TextToken(0, term), nil
	}
}

func (t *Tokenizer) phrase() (Token, error) {
	start := t.pos
	t.read() // opening quote

	var sb strings.Builder
	for {
		r := t.read()
		if r == EOF {
			return Token{}, fmt.Errorf("%w: quote opened at position %d", ErrUnterminatedPhrase, start)
		}
		if r == '"' {
			break
		}
		sb.WriteRune(r)
	}

	proximity := 0
	if t.src.Peek() == '~' {
		t.read()
		var digits strings.Builder
		for r := t.src.Peek(); r >= '0' && r <= '9'; r = t.src.Peek() {
			digits.WriteRune(t.read())
		}
		if digits.Len() == 0 {
			return Token{}, fmt.Errorf("%w: expected digits at position %d", ErrInvalidProximity, t.pos)
		}
		p, err := strconv.Atoi(digits.String())
		if err != nil || p == 0 {
			return Token{}, fmt.Errorf("%w: %q at position %d", ErrInvalidProximity, digits.String(), t.pos)
		}
		proximity = p
	}

	words := strings.Fields(sb.String())
	terms := make([]Term, 0, len(words))
	for _, w := range words {
		term, err := t.term(w)
		if err != nil {
			return Token{}, err
		}
		terms = append(terms, term)
	}
	return boundedTextToken(terms, proximity, t.logger), nil
}

func (t *Tokenizer) term(word string) (Term, error) {
	term, stray, err := parseTerm(word, t.strict)
	if err != nil {
		return term, fmt.Errorf("%w at position %d", err, t.pos)
	}
	if stray {
		t.logger.Warn("ignored misplaced wildcard", zap.String("word", word), zap.Int("pos", t.pos))
	}
	return term, nil
}
