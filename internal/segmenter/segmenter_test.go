package segmenter

import (
	"reflect"
	"strings"
	"testing"

	"morphembed/internal/domain"
)

func mor(kind domain.MorphemeKind, text string) domain.Morpheme {
	return domain.Morpheme{Kind: kind, Text: text}
}

func TestSegmentBundledWords(t *testing.T) {
	s := New(DefaultTables())

	cases := []struct {
		word string
		want []domain.Morpheme
	}{
		{
			word: "kerfuffle",
			want: []domain.Morpheme{mor(domain.Root, "kerfuffle")},
		},
		{
			word: "antidisestablishmentarianism",
			want: []domain.Morpheme{
				mor(domain.Prefix, "anti"),
				mor(domain.Prefix, "dis"),
				mor(domain.Root, "establish"),
				mor(domain.Suffix, "ment"),
				mor(domain.Suffix, "arianism"),
			},
		},
		{
			word: "hypermetamorphosis",
			want: []domain.Morpheme{
				mor(domain.Prefix, "hyper"),
				mor(domain.Root, "meta"),
				mor(domain.Root, "morph"),
				mor(domain.Suffix, "osis"),
			},
		},
		{
			word: "defenestration",
			want: []domain.Morpheme{
				mor(domain.Prefix, "de"),
				mor(domain.Root, "fenestr"),
				mor(domain.Suffix, "ation"),
			},
		},
		{
			word: "absquatulate",
			want: []domain.Morpheme{
				mor(domain.Prefix, "ab"),
				mor(domain.Root, "squat"),
				mor(domain.Suffix, "ulate"),
			},
		},
		{
			// "ification" precedes "mogrification" in the suffix table,
			// so first-match leaves the bare "mogr" root
			word: "transmogrification",
			want: []domain.Morpheme{
				mor(domain.Prefix, "trans"),
				mor(domain.Root, "mogr"),
				mor(domain.Suffix, "ification"),
			},
		},
		{
			word: "sesquipedalian",
			want: []domain.Morpheme{
				mor(domain.Prefix, "sesqui"),
				mor(domain.Root, "pedal"),
				mor(domain.Suffix, "ian"),
			},
		},
		{
			word: "biblioklept",
			want: []domain.Morpheme{
				mor(domain.Root, "biblio"),
				mor(domain.Root, "klept"),
			},
		},
		{
			word: "cattywampus",
			want: []domain.Morpheme{mor(domain.Root, "cattywampus")},
		},
	}

	for _, tc := range cases {
		got := s.Segment(tc.word)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Segment(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestSegmentCleansInput(t *testing.T) {
	s := New(DefaultTables())
	got := s.Segment("  Ker-Fuffle! ")
	want := []domain.Morpheme{mor(domain.Root, "kerfuffle")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment with punctuation/case = %v, want %v", got, want)
	}
}

func TestSegmentEmptyAfterCleaning(t *testing.T) {
	s := New(DefaultTables())
	for _, word := range []string{"", "  ", "1234", "!?-"} {
		if got := s.Segment(word); got != nil {
			t.Errorf("Segment(%q) = %v, want nil", word, got)
		}
	}
}

func TestSegmentGuardsAgainstConsumingEverything(t *testing.T) {
	s := New(DefaultTables())

	// "anti" is a prefix literal, but stripping it would leave nothing,
	// so it must fall through to the root stage whole.
	got := s.Segment("anti")
	want := []domain.Morpheme{mor(domain.Root, "anti")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment(%q) = %v, want %v", "anti", got, want)
	}

	// same guard on the suffix side: "ism" is a suffix literal
	got = s.Segment("ism")
	want = []domain.Morpheme{mor(domain.Root, "ism")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment(%q) = %v, want %v", "ism", got, want)
	}
}

func TestSegmentFallbackChunking(t *testing.T) {
	s := New(DefaultTables())
	got := s.Segment("zzzzzzzzzz") // ten letters, no pattern coverage
	want := []domain.Morpheme{
		mor(domain.Root, "zzzz"),
		mor(domain.Root, "zzzz"),
		mor(domain.Root, "zz"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment chunking = %v, want %v", got, want)
	}
}

func TestSegmentConfigurableChunkSize(t *testing.T) {
	tables := DefaultTables()
	tables.ChunkSize = 3
	s := New(tables)
	got := s.Segment("zzzzzzz")
	want := []domain.Morpheme{
		mor(domain.Root, "zzz"),
		mor(domain.Root, "zzz"),
		mor(domain.Root, "z"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment with ChunkSize=3 = %v, want %v", got, want)
	}
}

func TestSegmentSuffixOrder(t *testing.T) {
	// two stacked suffixes must come out innermost first even though
	// stripping found the outermost one first
	s := New(DefaultTables())
	got := s.Segment("antidisestablishmentarianism")
	if len(got) < 2 {
		t.Fatalf("Segment returned %v", got)
	}
	last, secondLast := got[len(got)-1], got[len(got)-2]
	if secondLast.Text != "ment" || last.Text != "arianism" {
		t.Errorf("suffix emission order = [%s %s], want [ment arianism]",
			secondLast.Text, last.Text)
	}
}

func TestSegmentTilesInput(t *testing.T) {
	s := New(DefaultTables())
	words := []string{
		"antidisestablishmentarianism", "hypermetamorphosis", "biblioklept",
		"defenestration", "absquatulate", "cattywampus", "transmogrification",
		"sesquipedalian", "kerfuffle", "xylophonically",
	}
	for _, word := range words {
		morphemes := s.Segment(word)
		if len(morphemes) == 0 {
			t.Errorf("Segment(%q) produced no morphemes", word)
			continue
		}
		// innermost-first suffix emission means straight concatenation
		// in emission order re-tiles the cleaned word
		var b strings.Builder
		for _, m := range morphemes {
			b.WriteString(m.Text)
		}
		if b.String() != word {
			t.Errorf("Segment(%q) tiles to %q", word, b.String())
		}
	}
}

func TestSegmentIgnoresEmptyTableEntries(t *testing.T) {
	tables := Tables{
		Prefixes:     []string{"", "un"},
		Suffixes:     []string{""},
		RootPatterns: []string{""},
		ChunkSize:    4,
	}
	s := New(tables)
	got := s.Segment("unable")
	want := []domain.Morpheme{
		mor(domain.Prefix, "un"),
		mor(domain.Root, "able"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment with empty table entries = %v, want %v", got, want)
	}
}

func TestSegmentFirstMatchWinsOverLongest(t *testing.T) {
	// "ped" before "pedal" in the table must win even though it is shorter
	tables := Tables{
		RootPatterns: []string{"ped", "pedal"},
		ChunkSize:    4,
	}
	s := New(tables)
	got := s.Segment("pedal")
	want := []domain.Morpheme{
		mor(domain.Root, "ped"),
		mor(domain.Root, "al"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("first-match-wins Segment = %v, want %v", got, want)
	}
}
