package domain

// ReportStatus classifies the outcome of processing one input word.
type ReportStatus int

const (
	// ReportMatched means the word had a definition and segmented into
	// at least one morpheme.
	ReportMatched ReportStatus = iota
	// ReportUnmatched means the lexicon holds no entry for the word.
	ReportUnmatched
	// ReportUnsegmentable means the word cleaned to an empty string and
	// the segmenter produced nothing.
	ReportUnsegmentable
)

// WordReport is the per-word diagnostic surfaced to the caller. None of
// the statuses are errors; processing always continues past a bad word.
type WordReport struct {
	Word       string
	Status     ReportStatus
	Morphemes  []Morpheme
	Definition string
}

// Segmenter decomposes a word into an ordered sequence of morphemes.
type Segmenter interface {
	Segment(word string) []Morpheme
}

// Lexicon provides read-only word -> definition lookup.
type Lexicon interface {
	Lookup(word string) (string, bool)
	Words() []string
}
