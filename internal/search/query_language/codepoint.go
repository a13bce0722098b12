package query_language

import "strings"

// EOF is returned by a CodePointStream once the input is exhausted.
// It is not a valid code point.
const EOF rune = -1

// CodePointStream is a pull-based stream of code points with one code point of lookahead.
type CodePointStream interface {
	// Peek returns the current code point without consuming it.
	Peek() rune
	// Next returns the current code point and advances.
	Next() rune
}

type stringSource struct {
	runes []rune
	pos   int
}

func NewStringSource(s string) CodePointStream {
	return &stringSource{runes: []rune(s)}
}

func (s *stringSource) Peek() rune {
	if s.pos >= len(s.runes) {
		return EOF
	}
	return s.runes[s.pos]
}

func (s *stringSource) Next() rune {
	r := s.Peek()
	if r != EOF {
		s.pos++
	}
	return r
}

// CodePointFilter is a one-to-one mapping of code points.
type CodePointFilter func(rune) rune

type filteredSource struct {
	upstream CodePointStream
	filters  []CodePointFilter
}

// FilterCodePoints applies filters left to right to every code point of upstream.
// EOF is never passed to a filter.
func FilterCodePoints(upstream CodePointStream, filters ...CodePointFilter) CodePointStream {
	return &filteredSource{upstream: upstream, filters: filters}
}

func (f *filteredSource) apply(r rune) rune {
	if r == EOF {
		return EOF
	}
	for _, filter := range f.filters {
		r = filter(r)
		if r < 0 {
			panic("code point filter produced an invalid code point")
		}
	}
	return r
}

func (f *filteredSource) Peek() rune { return f.apply(f.upstream.Peek()) }
func (f *filteredSource) Next() rune { return f.apply(f.upstream.Next()) }

// SmartQuotes maps typographic double quotes to the ASCII one.
func SmartQuotes(r rune) rune {
	switch r {
	case '“', '”':
		return '"'
	}
	return r
}

// DrainCodePoints reads the stream to the end.
func DrainCodePoints(s CodePointStream) string {
	var sb strings.Builder
	for r := s.Next(); r != EOF; r = s.Next() {
		sb.WriteRune(r)
	}
	return sb.String()
}
