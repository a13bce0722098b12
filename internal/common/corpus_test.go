package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCorpus(t *testing.T) {
	path := MakeCorpusFile(t, ReferenceCorpus)

	corpus, err := LoadCorpus(path)
	require.NoError(t, err)
	require.Equal(t, ReferenceCorpus, corpus)
	require.Equal(t, []string{"pirate", "cupcake", "cheese", "hipster", "office"}, corpus.Ids())
}

func TestParseCorpusErrors(t *testing.T) {
	_, err := ParseCorpus([]byte("- id: a\n  text: x\n- id: a\n  text: y\n"))
	require.ErrorIs(t, err, ErrDuplicateDocument)

	_, err = ParseCorpus([]byte("- text: x\n"))
	require.ErrorContains(t, err, "has no id")

	_, err = ParseCorpus([]byte("{not a list"))
	require.Error(t, err)

	_, err = LoadCorpus("/does/not/exist.yaml")
	require.Error(t, err)
}
