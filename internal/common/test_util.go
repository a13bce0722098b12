package common

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// ReferenceCorpus holds five short documents, each of them contains "ipsum".
var ReferenceCorpus = Corpus{
	{
		Id:   "pirate",
		Text: "Prow scuttle parrel provost Sail ho shrouds spirits boom mizzenmast yardarm. Pinnace holystone mizzenmast quarter crow's nest nipperkin grog yardarm hempen halter ipsum furl. Swab barque interloper chantey doubloon starboard grog black jack gangway rutters.\n",
	},
	{
		Id:   "cupcake",
		Text: "Cupcake ipsum dolor sit amet pudding. Cake ice cream apple pie jelly donut lemon drops muffin ice cream. Brownie shortbread gingerbread sweet ipsum croissant candy chocolate bar jelly. Sweet cake cotton candy caramels oat cake cheesecake jelly-o.\n",
	},
	{
		Id:   "cheese",
		Text: "Everyone loves cheesy feet brie. Cauliflower cheese melted cheese fromage frais danish fontina parmesan feta mozzarella melted cheese. Jarlsberg boursin ipsum melted cheese goat chalk and cheese cheeseburger caerphilly the big cheese. Cheddar cheese on toast.\n",
	},
	{
		Id:   "hipster",
		Text: "Venmo pok pok man braid hella XOXO copper mug. Jean shorts XOXO freegan, jianbing forage bitters shoreditch mixtape celiac ugh ipsum bespoke health goth. Street art four dollar toast portland salvia vice, pabst squid mustache farm-to-table edison bulb tousled bespoke kogi seitan. Scenester cornhole put a bird on it, lyft hammock hella trust fund wayfarers. Farm-to-table waistcoat chia 3 wolf moon sustainable craft beer semiotics whatever offal post-ironic. Occupy deep v brooklyn cred neutra thundercats. Yr vexillologist woke tacos skateboard keytar ethical farm-to-table.",
	},
	{
		Id:   "office",
		Text: "Ramp up let's put a pin in that so up the flagpole bazooka that run it past the boss jump right in and banzai attack will they won't they ipsum its all greek to me unless they bother until the end of time maybe vis a vis too many cooks over the line. Rock Star/Ninja when does this sunset? or we should have a meeting to discuss the details of the next meeting quick sync so looks great, can we try it a different way. Put it on the parking lot deep dive. We can't hear you do i have consent to record this meeting.",
	},
}

// ReferenceScenario is a query with the ids of ReferenceCorpus it must match.
type ReferenceScenario struct {
	Query    string
	Expected []string
}

var ReferenceScenarios = []ReferenceScenario{
	{"ipsum", []string{"cheese", "cupcake", "hipster", "office", "pirate"}},
	{"fontina", []string{"cheese"}},
	{`fontina AND ("melted cheese")`, []string{"cheese"}},
	{"font*", []string{"cheese"}},
	{`"font*" AND "melted cheese"`, []string{"cheese"}},
	{`"spirits mizzenmast"~4`, []string{"pirate"}},
	{`"crow's nest"~4`, []string{"pirate"}},
	{`"spirits mizzenmast"~2`, []string{}},
	{"fontina OR mizzenmast", []string{"cheese", "pirate"}},
	{"fontina AND mizzenmast", []string{}},
	{"fontina mizzenmast", []string{}},
	{"ipsum AND NOT (fontina OR mizzenmast)", []string{"cupcake", "hipster", "office"}},
	{`"melted cheese"`, []string{"cheese"}},
	{`"cheese fontina"`, []string{}},
	{`"cheese fontina"~5`, []string{"cheese"}},
	{`"cheese fontina"~4`, []string{}},
	{"farm-to-table", []string{"hipster"}},
	{"FONTÏNA", []string{"cheese"}},
	{`“crow's nest”`, []string{"pirate"}},
	{`"jelly o"`, []string{"cupcake"}},
	{"chee*", []string{"cheese", "cupcake"}},
	{"", []string{"cheese", "cupcake", "hipster", "office", "pirate"}},
}

// MakeCorpusFile writes the corpus to a temporary YAML file and returns its path.
func MakeCorpusFile(t *testing.T, corpus Corpus) string {
	data, err := yaml.Marshal(corpus)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	err = PopulateFiles(map[string][]byte{path: data})
	if err != nil {
		t.Fatal(err)
	}
	return path
}

// PopulateFiles writes the provided content to files specified in the map.
// The map key is the file path and the value is the content to write.
func PopulateFiles(c map[string][]byte) error {
	for p, content := range c {
		err := os.WriteFile(p, content, 0644)
		if err != nil {
			return err
		}
	}
	return nil
}
