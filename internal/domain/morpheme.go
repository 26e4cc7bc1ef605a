package domain

import "fmt"

// MorphemeKind classifies a morpheme's position class within a word.
// The declaration order is the sort order: Prefix < Root < Suffix.
type MorphemeKind int

const (
	Prefix MorphemeKind = iota
	Root
	Suffix
)

// Label returns the lowercase name of the kind.
func (k MorphemeKind) Label() string {
	switch k {
	case Prefix:
		return "prefix"
	case Root:
		return "root"
	case Suffix:
		return "suffix"
	default:
		return "unknown"
	}
}

// Morpheme is a tagged substring produced by segmentation.
type Morpheme struct {
	Kind MorphemeKind
	Text string
}

// String renders the morpheme as kind(text), e.g. prefix(anti).
func (m Morpheme) String() string {
	return fmt.Sprintf("%s(%s)", m.Kind.Label(), m.Text)
}

// Key derives the accumulator lookup key for this morpheme.
func (m Morpheme) Key() MorphemeKey {
	return MorphemeKey{Kind: m.Kind, Text: m.Text}
}

// MorphemeKey identifies one accumulator slot. Equality and ordering are
// by (Kind, Text), kind first, text lexicographic.
type MorphemeKey struct {
	Kind MorphemeKind
	Text string
}

// Less reports whether k sorts before other.
func (k MorphemeKey) Less(other MorphemeKey) bool {
	if k.Kind != other.Kind {
		return k.Kind < other.Kind
	}
	return k.Text < other.Text
}

// String renders the key as kind:text, e.g. "root:establish".
func (k MorphemeKey) String() string {
	return k.Kind.Label() + ":" + k.Text
}
