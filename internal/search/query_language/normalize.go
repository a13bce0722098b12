package query_language

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Category is a set of major Unicode general categories.
type Category uint8

const (
	CategoryLetter Category = 1 << iota
	CategoryMark
	CategoryNumber
	CategoryPunctuation
	CategorySymbol
	CategorySeparator
	CategoryOther
)

var categoryNames = []struct {
	c    Category
	name string
}{
	{CategoryLetter, "letter"},
	{CategoryMark, "mark"},
	{CategoryNumber, "number"},
	{CategoryPunctuation, "punctuation"},
	{CategorySymbol, "symbol"},
	{CategorySeparator, "separator"},
	{CategoryOther, "other"},
}

func (c Category) Has(o Category) bool { return c&o == o }

func (c Category) String() string {
	names := make([]string, 0, len(categoryNames))
	for _, cn := range categoryNames {
		if c.Has(cn.c) {
			names = append(names, cn.name)
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// categoryOf returns the major general category of r.
func categoryOf(r rune) Category {
	switch {
	case unicode.IsLetter(r):
		return CategoryLetter
	case unicode.IsMark(r):
		return CategoryMark
	case unicode.IsNumber(r):
		return CategoryNumber
	case unicode.IsPunct(r):
		return CategoryPunctuation
	case unicode.IsSymbol(r):
		return CategorySymbol
	case unicode.In(r, unicode.Z):
		return CategorySeparator
	default:
		return CategoryOther
	}
}

// NormalizedText is the ASCII-only form of a user query.
type NormalizedText struct {
	Original   string
	Normalized string
	// Removed lists the categories of every code point that was replaced or dropped.
	Removed Category
}

// Normalize applies NFKD and folds the result to printable ASCII:
// marks are dropped, any other non-ASCII code point becomes a space.
func Normalize(s string) NormalizedText {
	nt := NormalizedText{Original: s}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range norm.NFKD.String(s) {
		if r >= 0x20 && r <= 0x7E {
			sb.WriteRune(r)
			continue
		}
		c := categoryOf(r)
		nt.Removed |= c
		if c != CategoryMark {
			sb.WriteByte(' ')
		}
	}
	nt.Normalized = sb.String()
	return nt
}
