// Package nlp provides text normalization for TF-IDF vectorization.
package nlp

import (
	"regexp"
	"strings"
)

var (
	urlRegex     = regexp.MustCompile(`http\S+|www\S+`)
	emailRegex   = regexp.MustCompile(`\S+@\S+`)
	specialRegex = regexp.MustCompile(`[^a-z0-9\s+\-#]`)
	spaceRegex   = regexp.MustCompile(`\s+`)
)

// Normalizer cleans raw text for vectorization. It is a pure transformer:
// no state is mutated by Normalize, so a single instance is safe for
// concurrent use.
type Normalizer struct {
	stopwords map[string]struct{}
}

// NewNormalizer creates a normalizer with the standard English stopword set.
func NewNormalizer() *Normalizer {
	return &Normalizer{stopwords: EnglishStopwords()}
}

// NewNormalizerWithStopwords creates a normalizer with a custom stopword set.
// An empty set disables stopword filtering: Normalize then returns the
// cleaned, whitespace-collapsed text as-is (the degraded mode for missing
// stopword data).
func NewNormalizerWithStopwords(words []string) *Normalizer {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Normalizer{stopwords: set}
}

// Normalize lowercases text, strips URLs, emails and special characters
// (keeping letters, digits, whitespace, '+', '-', '#' so tokens like "c++"
// and "c#" survive), collapses whitespace, and removes stopwords and
// single-character tokens. Empty input returns the empty string.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = urlRegex.ReplaceAllString(text, "")
	text = emailRegex.ReplaceAllString(text, "")
	text = specialRegex.ReplaceAllString(text, " ")
	text = strings.TrimSpace(spaceRegex.ReplaceAllString(text, " "))

	if len(n.stopwords) == 0 {
		return text
	}

	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if len(tok) <= 1 {
			continue
		}
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}
