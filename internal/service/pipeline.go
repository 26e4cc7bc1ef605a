package service

import (
	"fmt"
	"strings"

	"morphembed/internal/accumulator"
	"morphembed/internal/domain"
	"morphembed/internal/embedding"
	"morphembed/internal/logging"
)

// Pipeline ties the lexicon, segmenter and embedder together and folds
// every processed word into the per-morpheme accumulator table.
type Pipeline struct {
	lexicon   domain.Lexicon
	segmenter domain.Segmenter
	embedder  embedding.Embedder
	table     *accumulator.Table
	log       *logging.Logger

	processed     int
	matched       int
	unmatched     int
	unsegmentable int
}

// New creates a pipeline with an empty accumulator table.
func New(lex domain.Lexicon, seg domain.Segmenter, emb embedding.Embedder, log *logging.Logger) *Pipeline {
	return &Pipeline{
		lexicon:   lex,
		segmenter: seg,
		embedder:  emb,
		table:     accumulator.New(),
		log:       log,
	}
}

// Process runs every word through lookup, segmentation and embedding,
// returning one report per nonempty word. A lexicon miss or an
// unsegmentable word is a report, never an error, and never stops the
// remaining input. Duplicate words contribute independently, and a
// morpheme repeated within one word receives one add per occurrence.
func (p *Pipeline) Process(words []string) []domain.WordReport {
	reports := make([]domain.WordReport, 0, len(words))
	for _, raw := range words {
		word := strings.ToLower(strings.TrimSpace(raw))
		if word == "" {
			continue
		}
		p.processed++

		definition, ok := p.lexicon.Lookup(word)
		if !ok {
			p.unmatched++
			p.log.Debug("%s: no entry in the bundled lexicon", word)
			reports = append(reports, domain.WordReport{
				Word:   word,
				Status: domain.ReportUnmatched,
			})
			continue
		}

		morphemes := p.segmenter.Segment(word)
		if len(morphemes) == 0 {
			p.unsegmentable++
			p.log.Debug("%s: segmenter produced no morphemic chunks", word)
			reports = append(reports, domain.WordReport{
				Word:       word,
				Status:     domain.ReportUnsegmentable,
				Definition: definition,
			})
			continue
		}

		// one vector per word, added once per morpheme occurrence
		vector, err := p.embedder.Embed(definition)
		if err != nil {
			p.unsegmentable++
			p.log.Error("%s: embed failed: %v", word, err)
			reports = append(reports, domain.WordReport{
				Word:       word,
				Status:     domain.ReportUnsegmentable,
				Definition: definition,
			})
			continue
		}
		for _, m := range morphemes {
			p.table.Add(m.Key(), vector)
		}

		p.matched++
		reports = append(reports, domain.WordReport{
			Word:       word,
			Status:     domain.ReportMatched,
			Morphemes:  morphemes,
			Definition: definition,
		})
	}
	return reports
}

// Rows returns the accumulated (morpheme, mean vector) table sorted by
// morpheme key.
func (p *Pipeline) Rows() []accumulator.Row {
	return p.table.Rows()
}

// Lookup re-runs lookup and segmentation for a single word and returns
// its report plus the current accumulator row for each of its morphemes.
// It does not mutate the table.
func (p *Pipeline) Lookup(word string) (domain.WordReport, []accumulator.Row) {
	word = strings.ToLower(strings.TrimSpace(word))
	report := domain.WordReport{Word: word, Status: domain.ReportUnsegmentable}
	if word == "" {
		return report, nil
	}

	definition, ok := p.lexicon.Lookup(word)
	if !ok {
		report.Status = domain.ReportUnmatched
		return report, nil
	}
	report.Definition = definition

	morphemes := p.segmenter.Segment(word)
	if len(morphemes) == 0 {
		return report, nil
	}
	report.Status = domain.ReportMatched
	report.Morphemes = morphemes

	rows := make([]accumulator.Row, 0, len(morphemes))
	for _, m := range morphemes {
		key := m.Key()
		if mean, ok := p.table.Mean(key); ok {
			rows = append(rows, accumulator.Row{Key: key, Mean: mean})
		}
	}
	return report, rows
}

// Dimension exposes the embedder's fixed vector dimension.
func (p *Pipeline) Dimension() int { return p.embedder.Dimension() }

// Summary describes one run in a single line.
func (p *Pipeline) Summary() string {
	return fmt.Sprintf("processed %d words: %d matched, %d unmatched, %d unsegmentable; %d distinct morphemes",
		p.processed, p.matched, p.unmatched, p.unsegmentable, p.table.Len())
}
