package common

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrDuplicateDocument = errors.New("duplicate document id")

// LoadCorpus reads a YAML list of documents:
//
//	- id: cheese
//	  text: Everyone loves cheesy feet brie.
func LoadCorpus(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return ParseCorpus(data)
}

func ParseCorpus(data []byte) (Corpus, error) {
	var corpus Corpus
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	seen := make(map[string]struct{}, len(corpus))
	for i, d := range corpus {
		if d.Id == "" {
			return nil, fmt.Errorf("document #%d has no id", i)
		}
		if _, ok := seen[d.Id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDocument, d.Id)
		}
		seen[d.Id] = struct{}{}
	}
	return corpus, nil
}
