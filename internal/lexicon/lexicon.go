package lexicon

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Lexicon is a read-only word -> definition table with deterministic
// word listing.
type Lexicon struct {
	entries map[string]string
}

// Builtin returns the bundled lexicon of Oxford-paraphrase definitions.
func Builtin() *Lexicon {
	return &Lexicon{entries: builtinEntries()}
}

// FromEntries builds a lexicon from an in-memory map, mainly for tests.
func FromEntries(entries map[string]string) *Lexicon {
	copied := make(map[string]string, len(entries))
	for w, d := range entries {
		copied[w] = d
	}
	return &Lexicon{entries: copied}
}

// LoadFile reads a YAML word -> definition mapping from path.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("lexicon %s holds no entries", path)
	}
	return &Lexicon{entries: entries}, nil
}

// Lookup returns the definition for word and whether an entry exists.
func (l *Lexicon) Lookup(word string) (string, bool) {
	def, ok := l.entries[word]
	return def, ok
}

// Words lists every headword in sorted order.
func (l *Lexicon) Words() []string {
	words := make([]string, 0, len(l.entries))
	for w := range l.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Len returns the number of entries.
func (l *Lexicon) Len() int { return len(l.entries) }

func builtinEntries() map[string]string {
	return map[string]string{
		"antidisestablishmentarianism": "Oxford English Dictionary (paraphrased): opposition to the withdrawal of state support or recognition from an established church.",
		"hypermetamorphosis":           "Oxford English Dictionary (paraphrased): a kind of insect development marked by distinctly different successive larval stages.",
		"biblioklept":                  "Oxford English Dictionary (paraphrased): a person who steals books; a book thief.",
		"defenestration":               "Oxford English Dictionary (paraphrased): the act of throwing someone or something out of a window.",
		"absquatulate":                 "Oxford English Dictionary (paraphrased): to depart abruptly; to abscond with comic haste.",
		"cattywampus":                  "Oxford English Dictionary (paraphrased): askew or awry; positioned diagonally in a delightfully unruly fashion.",
		"transmogrification":           "Oxford English Dictionary (paraphrased): a transformation, especially one that is startling or magical.",
		"sesquipedalian":               "Oxford English Dictionary (paraphrased): characterized by or fond of using long words.",
		"kerfuffle":                    "Oxford English Dictionary (paraphrased): a commotion or fuss, especially one caused by conflicting opinions.",
	}
}
