// Package matching holds the core pipeline: keyword extraction,
// compatibility scoring, and score-to-label formatting. Everything in it
// is pure and deterministic; persistence and HTTP stay out.
package matching

import (
	"regexp"
	"sort"
	"strings"
)

const maxKeywords = 10

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours",
		"yourself", "yourselves", "he", "him", "his", "himself", "she", "her", "hers",
		"herself", "it", "its", "itself", "they", "them", "their", "theirs", "themselves",
		"what", "which", "who", "whom", "this", "that", "these", "those", "am", "is", "are",
		"was", "were", "be", "been", "being", "have", "has", "had", "having", "do", "does",
		"did", "doing", "a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
		"while", "of", "at", "by", "for", "with", "about", "against", "between", "into",
		"through", "during", "before", "after", "above", "below", "to", "from", "up", "down",
		"in", "out", "on", "off", "over", "under", "again", "further", "then", "once", "here",
		"there", "when", "where", "why", "how", "all", "any", "both", "each", "few", "more",
		"most", "other", "some", "such", "no", "nor", "not", "only", "own", "same", "so",
		"than", "too", "very", "s", "t", "can", "will", "just", "don", "should", "now",
	} {
		stopWords[w] = struct{}{}
	}
}

// techVocabulary is the fixed set of known technical terms. Multi-word
// entries are matched by substring containment before tokenization so a
// phrase like "machine learning" survives as a single keyword.
var techVocabulary = []string{
	"mobile", "app", "web", "ai", "machine learning", "data science", "blockchain",
	"react", "python", "javascript", "mongodb", "fastapi", "flutter", "swift",
	"sustainability", "campus", "events", "social", "network",
}

// multiWordTerms holds the vocabulary phrases, longest first so a longer
// phrase is never shadowed by one of its sub-phrases.
var multiWordTerms = func() []string {
	var terms []string
	for _, kw := range techVocabulary {
		if strings.Contains(kw, " ") {
			terms = append(terms, kw)
		}
	}
	sort.SliceStable(terms, func(i, j int) bool { return len(terms[i]) > len(terms[j]) })
	return terms
}()

var wordPattern = regexp.MustCompile(`\b[a-z]+\b`)

// ExtractKeywords turns free intent text into an ordered, deduplicated
// list of at most 10 lowercase keyword tokens. Multi-word vocabulary
// matches come first, then single-word tokens that are at least 3 letters
// and not stop words. Blank input yields an empty list, never an error.
func ExtractKeywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	lower := strings.ToLower(text)
	keywords := make([]string, 0, maxKeywords)

	for _, term := range multiWordTerms {
		if strings.Contains(lower, term) {
			keywords = append(keywords, term)
		}
	}

	for _, w := range wordPattern.FindAllString(lower, -1) {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		keywords = append(keywords, w)
	}

	return dedupe(keywords, maxKeywords)
}

// dedupe removes duplicates preserving first-occurrence order and caps
// the result at limit entries.
func dedupe(tokens []string, limit int) []string {
	out := make([]string, 0, limit)
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out
}
