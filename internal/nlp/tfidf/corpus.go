// Package tfidf builds corpus-scoped TF-IDF vector spaces.
//
// A Corpus is constructed once per analysis call from its full document set
// and discarded afterwards: IDF weights depend on corpus composition, so
// vocabularies must never be cached or shared between calls.
package tfidf

import (
	"math"
	"sort"
	"strings"
)

// DefaultMaxFeatures caps the vocabulary at the 8000 most informative terms.
const DefaultMaxFeatures = 8000

// Vector is a sparse L2-normalized term-weight vector.
type Vector map[string]float64

// Corpus holds the per-document TF-IDF vectors of one document set.
type Corpus struct {
	vectors []Vector
}

// NewCorpus vectorizes the given pre-normalized documents.
//
// The vocabulary is built from unigrams and bigrams across all documents.
// When it exceeds maxFeatures (<= 0 means DefaultMaxFeatures), the terms
// with the highest corpus-frequency x IDF score are kept, ties broken
// alphabetically for determinism.
//
// Weights follow the standard scheme with sublinear term frequency:
//
//	tf  = 1 + ln(count)
//	idf = ln((1+n)/(1+df)) + 1
//
// Each vector is L2-normalized so cosine similarity reduces to a dot
// product. A document with no vocabulary terms keeps an empty (zero)
// vector; Cosine defines similarity against it as 0.
func NewCorpus(documents []string, maxFeatures int) *Corpus {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}

	n := len(documents)
	counts := make([]map[string]int, n)
	docFreq := make(map[string]int)
	totalFreq := make(map[string]int)

	for i, doc := range documents {
		counts[i] = termCounts(doc)
		for term, c := range counts[i] {
			docFreq[term]++
			totalFreq[term] += c
		}
	}

	idf := make(map[string]float64, len(docFreq))
	for term, df := range docFreq {
		idf[term] = math.Log(float64(1+n)/float64(1+df)) + 1
	}

	vocab := selectVocabulary(totalFreq, idf, maxFeatures)

	c := &Corpus{vectors: make([]Vector, n)}
	for i := range documents {
		c.vectors[i] = vectorize(counts[i], vocab, idf)
	}
	return c
}

// Len returns the number of documents in the corpus.
func (c *Corpus) Len() int { return len(c.vectors) }

// Vector returns the L2-normalized vector of document i.
func (c *Corpus) Vector(i int) Vector { return c.vectors[i] }

// Cosine returns the cosine similarity of two L2-normalized vectors,
// clamped to [0, 1]. Zero vectors yield 0, never a division error.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Iterate the smaller vector.
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}

// termCounts counts unigrams and bigrams of a whitespace-tokenized document.
func termCounts(doc string) map[string]int {
	tokens := strings.Fields(doc)
	counts := make(map[string]int, len(tokens)*2)
	for i, tok := range tokens {
		counts[tok]++
		if i+1 < len(tokens) {
			counts[tok+" "+tokens[i+1]]++
		}
	}
	return counts
}

// selectVocabulary returns the term set to vectorize over. Terms are ranked
// by total corpus frequency weighted by rarity (IDF) when the cap applies.
func selectVocabulary(totalFreq map[string]int, idf map[string]float64, maxFeatures int) map[string]struct{} {
	vocab := make(map[string]struct{}, len(totalFreq))
	if len(totalFreq) <= maxFeatures {
		for term := range totalFreq {
			vocab[term] = struct{}{}
		}
		return vocab
	}

	type scoredTerm struct {
		term  string
		score float64
	}
	scored := make([]scoredTerm, 0, len(totalFreq))
	for term, freq := range totalFreq {
		scored = append(scored, scoredTerm{term: term, score: float64(freq) * idf[term]})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].term < scored[j].term
	})

	for _, st := range scored[:maxFeatures] {
		vocab[st.term] = struct{}{}
	}
	return vocab
}

// vectorize builds one document's L2-normalized TF-IDF vector.
func vectorize(counts map[string]int, vocab map[string]struct{}, idf map[string]float64) Vector {
	v := make(Vector, len(counts))
	var sumSquares float64
	for term, count := range counts {
		if _, ok := vocab[term]; !ok {
			continue
		}
		w := (1 + math.Log(float64(count))) * idf[term]
		v[term] = w
		sumSquares += w * w
	}
	if sumSquares == 0 {
		return Vector{}
	}
	norm := math.Sqrt(sumSquares)
	for term := range v {
		v[term] /= norm
	}
	return v
}
