package segmenter

// DefaultRootChunkSize is the fallback chunk width used for root material
// not covered by any root pattern.
const DefaultRootChunkSize = 4

// Tables holds the ordered pattern lists driving segmentation. Order is
// significant: matching is first-match-wins, not longest-match, so the
// table order is part of the segmentation contract.
type Tables struct {
	Prefixes     []string
	Suffixes     []string
	RootPatterns []string
	ChunkSize    int
}

// DefaultTables returns the bundled pattern tables.
func DefaultTables() Tables {
	return Tables{
		Prefixes: []string{
			"hyper", "trans", "inter", "sesqui", "anti", "ab", "de", "dis",
			"ultra", "pseudo", "super",
		},
		Suffixes: []string{
			"arianism", "ification", "mogrification", "ulation", "arian",
			"ation", "mentation", "iasis", "iosis", "osis", "ulate", "icism",
			"ism", "ious", "ian", "ness", "ment",
		},
		RootPatterns: []string{
			"antidisestablish", "establish", "transmogr", "cattywampus",
			"sesquiped", "biblio", "bibli", "hyper", "mogr", "meta", "morph",
			"klept", "fenestr", "squat", "wampus", "pedal", "ped",
			"kerfuffle", "fic", "ruffle", "fuffle",
		},
		ChunkSize: DefaultRootChunkSize,
	}
}
