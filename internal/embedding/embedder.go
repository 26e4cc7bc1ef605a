package embedding

// Embedder converts free text into a numeric vector representation of a
// fixed dimension.
type Embedder interface {
	Name() string
	Dimension() int
	Embed(text string) ([]float64, error)
}
