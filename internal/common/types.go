package common

// Document is a unit of search, its Text is matched as a whole.
type Document struct {
	Id   string `yaml:"id" json:"id"`
	Text string `yaml:"text" json:"text"`
}

type Corpus []Document

func (c Corpus) Ids() []string {
	ids := make([]string, 0, len(c))
	for _, d := range c {
		ids = append(ids, d.Id)
	}
	return ids
}
