package query_language

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	type test struct {
		input      string
		normalized string
		removed    Category
	}

	tests := []test{
		{"plain ascii", "plain ascii", 0},
		{"Tĥïŝ ĩš â fůňķŷ Šťŕĭńġ", "This is a funky String", CategoryMark},
		{"Tĥïŝ ĩš â fůňķŷ Šťŕĭńġ Æ Ø Ð ß", "This is a funky String" + strings.Repeat(" ", 8), CategoryLetter | CategoryMark},
		{"南无阿弥陀佛", strings.Repeat(" ", 6), CategoryLetter},
		{"a\tb", "a b", CategoryOther},
		{"“quoted”", " quoted ", CategoryPunctuation},
		{"ﬁne", "fine", 0}, // compatibility decomposition of the ligature
		{"", "", 0},
	}

	for _, tt := range tests {
		t.Run(
			tt.input, func(t *testing.T) {
				nt := Normalize(tt.input)
				require.Equal(t, tt.input, nt.Original)
				require.Equal(t, tt.normalized, nt.Normalized)
				require.Equal(t, tt.removed, nt.Removed)
			},
		)
	}
}

func TestCategoryString(t *testing.T) {
	require.Equal(t, "{}", Category(0).String())
	require.Equal(t, "{letter,mark}", (CategoryMark | CategoryLetter).String())
}
