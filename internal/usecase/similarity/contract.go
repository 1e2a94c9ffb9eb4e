package similarity

// Normalizer cleans raw text for vectorization.
type Normalizer interface {
	Normalize(text string) string
}
