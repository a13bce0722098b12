package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	type test struct {
		input    string
		expected string
	}

	tests := []test{
		{"hello Hello HELLO", "hello hello hello"},
		{"  crow's nest ", "crow s nest"},
		{"Füñkÿ-123", "funky 123"},
		{"jelly-o.\n", "jelly o"},
		{"Rock Star/Ninja", "rock star ninja"},
		{"南无阿弥陀佛", ""},
		{"snake_case", "snake case"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(
			tt.input, func(t *testing.T) {
				analyzed := Analyze(tt.input)
				require.Equal(t, tt.expected, analyzed)
				require.Equal(t, analyzed, Analyze(analyzed))
			},
		)
	}
}

func TestTokenize(t *testing.T) {
	require.Equal(t, []string{"crow", "s", "nest"}, Tokenize(Analyze("crow's nest")))
	require.Empty(t, Tokenize(""))
}
