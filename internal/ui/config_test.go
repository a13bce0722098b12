package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	type test struct {
		name     string
		modify   func(cfg *Config)
		expected string
	}

	tests := []test{
		{"default", func(cfg *Config) {}, ""},
		{"bigquery", func(cfg *Config) { cfg.Dialect = "BigQuery" }, ""},
		{
			"unknown dialect", func(cfg *Config) { cfg.Dialect = "oracle" },
			"Invalid config values:\n> Dialect: unknown sql dialect \"oracle\"\n",
		},
		{
			"empty field", func(cfg *Config) { cfg.Field = "" },
			"Invalid config values:\n> Field: value is empty\n",
		},
		{
			"missing corpus", func(cfg *Config) { cfg.CorpusPath = "./no-such-corpus.yaml" },
			"Invalid config values:\n> CorpusPath: path \"./no-such-corpus.yaml\" does not exist\n",
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				cfg := DefaultCfg
				tt.modify(&cfg)
				err := cfg.Validate()
				if tt.expected == "" {
					require.NoError(t, err)
					return
				}
				require.EqualError(t, err, tt.expected)
			},
		)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := LoadConfig()
	require.ErrorIs(t, err, errNoConfigFile)

	corpusPath := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(corpusPath, []byte("- id: a\n  text: b\n"), 0644))

	content := `
field: t.text
dialect: bigquery
indexed: true
strict_wildcards: true
corpus_path: ` + corpusPath + `
concurrency: 0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "litecene.yaml"), []byte(content), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	expected := DefaultCfg
	expected.Field = "t.text"
	expected.Dialect = "bigquery"
	expected.Indexed = true
	expected.StrictWildcards = true
	expected.CorpusPath = corpusPath
	require.Equal(t, expected, cfg)
}
