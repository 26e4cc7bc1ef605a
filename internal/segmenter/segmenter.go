package segmenter

import (
	"strings"

	"morphembed/internal/domain"
)

// Segmenter splits words into prefix/root/suffix morphemes by greedy
// first-match stripping against ordered literal tables.
type Segmenter struct {
	tables Tables
}

// New creates a segmenter over the given tables. A non-positive chunk
// size falls back to DefaultRootChunkSize.
func New(tables Tables) *Segmenter {
	if tables.ChunkSize <= 0 {
		tables.ChunkSize = DefaultRootChunkSize
	}
	return &Segmenter{tables: tables}
}

// Segment decomposes word into an ordered morpheme sequence: prefixes in
// strip order, then root segments, then suffixes emitted innermost first
// (the reverse of strip order). The word is cleaned first: every
// non-ASCII-letter character is dropped and the rest lowercased. A word
// that cleans to nothing yields nil; any other word yields at least one
// morpheme.
func (s *Segmenter) Segment(word string) []domain.Morpheme {
	cleaned := clean(word)
	if cleaned == "" {
		return nil
	}

	working := cleaned
	var prefixes []string
	for {
		p, ok := firstPrefix(s.tables.Prefixes, working)
		// a match consuming the whole remainder would leave no root
		if !ok || len(p) >= len(working) {
			break
		}
		prefixes = append(prefixes, p)
		working = working[len(p):]
	}

	core := working
	var suffixes []string
	for {
		suf, ok := firstSuffix(s.tables.Suffixes, core)
		if !ok || len(suf) >= len(core) {
			break
		}
		suffixes = append(suffixes, suf)
		core = core[:len(core)-len(suf)]
	}

	segments := make([]domain.Morpheme, 0, len(prefixes)+len(suffixes)+1)
	for _, p := range prefixes {
		segments = append(segments, domain.Morpheme{Kind: domain.Prefix, Text: p})
	}

	roots := s.decomposeRoots(core)
	if len(roots) == 0 {
		// defensive floor: the consume-all guards above keep the core
		// nonempty, but a nonempty cleaned word must yield a morpheme
		if core != "" {
			roots = append(roots, domain.Morpheme{Kind: domain.Root, Text: core})
		} else {
			roots = append(roots, domain.Morpheme{Kind: domain.Root, Text: cleaned})
		}
	}
	segments = append(segments, roots...)

	for i := len(suffixes) - 1; i >= 0; i-- {
		segments = append(segments, domain.Morpheme{Kind: domain.Suffix, Text: suffixes[i]})
	}
	return segments
}

// decomposeRoots splits the affix-stripped core into root segments:
// first-match root pattern from the front, otherwise fixed-size chunks,
// with a short tail kept whole.
func (s *Segmenter) decomposeRoots(core string) []domain.Morpheme {
	var roots []domain.Morpheme
	remainder := core
	for remainder != "" {
		if pat, ok := firstPrefix(s.tables.RootPatterns, remainder); ok && pat != "" {
			roots = append(roots, domain.Morpheme{Kind: domain.Root, Text: pat})
			remainder = remainder[len(pat):]
			continue
		}
		if len(remainder) <= s.tables.ChunkSize {
			roots = append(roots, domain.Morpheme{Kind: domain.Root, Text: remainder})
			break
		}
		roots = append(roots, domain.Morpheme{Kind: domain.Root, Text: remainder[:s.tables.ChunkSize]})
		remainder = remainder[s.tables.ChunkSize:]
	}
	return roots
}

// firstPrefix returns the first table entry s starts with. Empty entries
// never match; they would loop forever.
func firstPrefix(table []string, s string) (string, bool) {
	for _, candidate := range table {
		if candidate != "" && strings.HasPrefix(s, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// firstSuffix returns the first table entry s ends with.
func firstSuffix(table []string, s string) (string, bool) {
	for _, candidate := range table {
		if candidate != "" && strings.HasSuffix(s, candidate) {
			return candidate, true
		}
	}
	return "", false
}

func clean(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}
