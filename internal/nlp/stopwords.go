package nlp

// englishStopwords is the standard English stopword list (NLTK set).
// Single-letter entries are omitted: normalization drops tokens of length <= 1
// before the stopword filter runs.
var englishStopwords = []string{
	"about", "above", "after", "again", "against", "ain", "all", "am", "an",
	"and", "any", "are", "aren", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"couldn", "did", "didn", "do", "does", "doesn", "doing", "don", "down",
	"during", "each", "few", "for", "from", "further", "had", "hadn", "has",
	"hasn", "have", "haven", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "if", "in", "into", "is",
	"isn", "it", "its", "itself", "just", "ll", "ma", "me", "mightn",
	"more", "most", "mustn", "my", "myself", "needn", "no", "nor", "not",
	"now", "of", "off", "on", "once", "only", "or", "other", "our", "ours",
	"ourselves", "out", "over", "own", "re", "same", "shan", "she",
	"should", "shouldn", "so", "some", "such", "than", "that", "the",
	"their", "theirs", "them", "themselves", "then", "there", "these",
	"they", "this", "those", "through", "to", "too", "under", "until",
	"up", "ve", "very", "was", "wasn", "we", "were", "weren", "what",
	"when", "where", "which", "while", "who", "whom", "why", "will",
	"with", "won", "wouldn", "you", "your", "yours", "yourself",
	"yourselves",
}

// EnglishStopwords returns a lookup set of the standard English stopwords.
func EnglishStopwords() map[string]struct{} {
	set := make(map[string]struct{}, len(englishStopwords))
	for _, w := range englishStopwords {
		set[w] = struct{}{}
	}
	return set
}
