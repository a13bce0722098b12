package query_language

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedPhrase    = errors.New("unterminated phrase")
	ErrInvalidProximity      = errors.New("invalid proximity")
	ErrInvalidWildcard       = errors.New("invalid wildcard")
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
	ErrUnmatchedParenthesis  = errors.New("unmatched parenthesis")
	ErrUnparsedToken         = errors.New("unparsed token")
	ErrUnexpectedEOF         = errors.New("unexpected end of query")
	ErrUnrecognizedToken     = errors.New("unrecognized token")
)

// SyntaxError describes why a user query could not be parsed.
type SyntaxError struct {
	Query string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid query %q: %s", e.Query, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
