package query_language

import (
	"fmt"
	"strings"
)

type TokenType int8

const (
	TokenEOF TokenType = iota
	TokenAnd
	TokenOr
	TokenNot
	TokenLParen
	TokenRParen
	TokenText
)

func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenNot:
		return "NOT"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenText:
		return "TEXT"
	default:
		return fmt.Sprintf("TokenType(%d)", int8(tt))
	}
}

// Token is a lexical unit of a query.
// Terms and Proximity are only set on TokenText, Proximity 0 means no bound.
type Token struct {
	Type      TokenType
	Terms     []Term
	Proximity int
}

var (
	EOFToken    = Token{Type: TokenEOF}
	AndToken    = Token{Type: TokenAnd}
	OrToken     = Token{Type: TokenOr}
	NotToken    = Token{Type: TokenNot}
	LParenToken = Token{Type: TokenLParen}
	RParenToken = Token{Type: TokenRParen}
)

func TextToken(proximity int, terms ...Term) Token {
	return Token{Type: TokenText, Terms: terms, Proximity: proximity}
}

// Vacuous reports whether a text token carries no usable term.
func (t Token) Vacuous() bool {
	if t.Type != TokenText {
		return false
	}
	for _, term := range t.Terms {
		if !term.Vacuous() {
			return false
		}
	}
	return true
}

func (t Token) String() string {
	if t.Type != TokenText {
		return t.Type.String()
	}
	words := make([]string, 0, len(t.Terms))
	for _, term := range t.Terms {
		words = append(words, term.String())
	}
	s := fmt.Sprintf("TEXT[%s]", strings.Join(words, " "))
	if t.Proximity > 0 {
		s += fmt.Sprintf("~%d", t.Proximity)
	}
	return s
}

// TokenStream is a pull-based stream of tokens with one token of lookahead.
// Once exhausted it keeps returning EOFToken.
type TokenStream interface {
	Peek() (Token, error)
	Next() (Token, error)
}

type sliceStream struct {
	tokens []Token
	pos    int
}

// NewSliceStream streams the given tokens followed by EOF.
func NewSliceStream(tokens ...Token) TokenStream {
	return &sliceStream{tokens: tokens}
}

func (s *sliceStream) Peek() (Token, error) {
	if s.pos >= len(s.tokens) {
		return EOFToken, nil
	}
	return s.tokens[s.pos], nil
}

func (s *sliceStream) Next() (Token, error) {
	t, err := s.Peek()
	if t.Type != TokenEOF {
		s.pos++
	}
	return t, err
}

// TokenFilter rewrites a single token. Filters must be stateless.
type TokenFilter func(Token) Token

type filteredStream struct {
	upstream TokenStream
	filters  []TokenFilter
	pending  *Token
}

// FilterTokens applies filters left to right to every token of upstream.
func FilterTokens(upstream TokenStream, filters ...TokenFilter) TokenStream {
	return &filteredStream{upstream: upstream, filters: filters}
}

func (f *filteredStream) apply(t Token) Token {
	for _, filter := range f.filters {
		t = filter(t)
	}
	return t
}

func (f *filteredStream) Peek() (Token, error) {
	if f.pending != nil {
		return *f.pending, nil
	}
	t, err := f.upstream.Peek()
	if err != nil {
		return t, err
	}
	t = f.apply(t)
	f.pending = &t
	return t, nil
}

func (f *filteredStream) Next() (Token, error) {
	if f.pending != nil {
		t := *f.pending
		f.pending = nil
		_, err := f.upstream.Next()
		return t, err
	}
	t, err := f.upstream.Next()
	if err != nil {
		return t, err
	}
	return f.apply(t), nil
}

// Drain reads every token up to, not including, EOF.
func Drain(ts TokenStream) ([]Token, error) {
	tokens := make([]Token, 0)
	for {
		t, err := ts.Next()
		if err != nil {
			return tokens, err
		}
		if t.Type == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, t)
	}
}
