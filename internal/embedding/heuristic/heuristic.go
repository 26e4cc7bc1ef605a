// Package heuristic turns a dictionary definition into a fixed
// 5-dimensional feature vector: word count, average word length, sensory
// keyword ratio, abstract keyword ratio, and a combined lexical density
// (distinct-token ratio plus long-word ratio).
package heuristic

import "strings"

// FeatureDimension is the fixed length of every produced vector.
const FeatureDimension = 5

// longWordLength is the cutoff for the crude multi-syllable proxy folded
// into the lexical density dimension.
const longWordLength = 7

// Embedder computes definition feature vectors. It is stateless apart
// from its keyword sets and needs no corpus preparation.
type Embedder struct {
	sensory  map[string]struct{}
	abstract map[string]struct{}
}

// NewEmbedder creates an embedder using the bundled keyword sets.
func NewEmbedder() *Embedder {
	return NewEmbedderWithKeywords(defaultSensoryKeywords(), defaultAbstractKeywords())
}

// NewEmbedderWithKeywords creates an embedder over caller-supplied
// sensory and abstract vocabularies.
func NewEmbedderWithKeywords(sensory, abstract []string) *Embedder {
	return &Embedder{
		sensory:  toSet(sensory),
		abstract: toSet(abstract),
	}
}

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "heuristic" }

// Dimension returns the dimensionality of the produced vectors.
func (e *Embedder) Dimension() int { return FeatureDimension }

// Embed computes the feature vector for text. A text with no tokens maps
// to the zero vector; the error is always nil and exists to satisfy the
// Embedder contract.
func (e *Embedder) Embed(text string) ([]float64, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return make([]float64, FeatureDimension), nil
	}

	wordCount := float64(len(tokens))
	totalChars := 0
	sensoryHits := 0
	abstractHits := 0
	longWords := 0
	distinct := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		totalChars += len(tok)
		if _, ok := e.sensory[tok]; ok {
			sensoryHits++
		}
		if _, ok := e.abstract[tok]; ok {
			abstractHits++
		}
		if len(tok) >= longWordLength {
			longWords++
		}
		distinct[tok] = struct{}{}
	}

	return []float64{
		wordCount,
		float64(totalChars) / wordCount,
		float64(sensoryHits) / wordCount,
		float64(abstractHits) / wordCount,
		float64(len(distinct))/wordCount + float64(longWords)/wordCount,
	}, nil
}

// tokenize splits on any non-ASCII-letter character, lowercases, and
// drops empty tokens.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			flush()
		}
	}
	flush()
	return tokens
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func defaultSensoryKeywords() []string {
	return []string{
		"light", "bright", "glow", "sound", "tone", "taste", "touch",
		"smell", "colour", "color", "hear", "see",
	}
}

func defaultAbstractKeywords() []string {
	return []string{
		"state", "quality", "ability", "capacity", "process", "condition",
		"power", "toughness", "recovery", "change", "time", "action",
	}
}
