package matching

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractKeywords_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		got := ExtractKeywords(input)
		if len(got) != 0 {
			t.Errorf("ExtractKeywords(%q) = %v, want empty", input, got)
		}
	}
}

func TestExtractKeywords_FiltersStopWordsAndShortTokens(t *testing.T) {
	got := ExtractKeywords("I am looking for a React developer for machine learning project")

	want := map[string]bool{
		"machine learning": true,
		"react":            true,
		"developer":        true,
		"project":          true,
		"looking":          true,
	}
	for kw := range want {
		if !contains(got, kw) {
			t.Errorf("expected keyword %q in %v", kw, got)
		}
	}
	for _, stop := range []string{"i", "am", "for", "a"} {
		if contains(got, stop) {
			t.Errorf("stop word %q leaked into %v", stop, got)
		}
	}
	if len(got) > 10 {
		t.Errorf("got %d keywords, want at most 10", len(got))
	}
}

func TestExtractKeywords_MultiWordTermNotSplit(t *testing.T) {
	got := ExtractKeywords("we love data science here")
	if !contains(got, "data science") {
		t.Fatalf("expected %q as a single keyword, got %v", "data science", got)
	}
	// The phrase is first because vocabulary matches precede tokens.
	if got[0] != "data science" {
		t.Errorf("expected multi-word match first, got %v", got)
	}
}

func TestExtractKeywords_Properties(t *testing.T) {
	inputs := []string{
		"Building a blockchain app for campus events and sustainability!!!",
		"PYTHON and JavaScript and MongoDB and FastAPI and Flutter and Swift and React and more and more words here",
		"short ab cd ef gh",
		"machine learning machine learning machine learning",
		"web3 tokens 123 #!$",
	}
	for _, input := range inputs {
		got := ExtractKeywords(input)
		if len(got) > 10 {
			t.Errorf("input %q: %d keywords, want at most 10", input, len(got))
		}
		seen := map[string]bool{}
		for _, kw := range got {
			if seen[kw] {
				t.Errorf("input %q: duplicate keyword %q", input, kw)
			}
			seen[kw] = true
			if kw != strings.ToLower(kw) {
				t.Errorf("input %q: keyword %q is not lowercase", input, kw)
			}
			if !strings.Contains(kw, " ") {
				if len(kw) < 3 {
					t.Errorf("input %q: single-word keyword %q shorter than 3", input, kw)
				}
				if _, stop := stopWords[kw]; stop {
					t.Errorf("input %q: keyword %q is a stop word", input, kw)
				}
			}
		}
	}
}

func TestExtractKeywords_Deterministic(t *testing.T) {
	input := "Looking for a React developer interested in machine learning and data science for a campus app"
	first := ExtractKeywords(input)
	second := ExtractKeywords(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two extractions differ: %v vs %v", first, second)
	}
}

func TestExtractKeywords_DigitsBreakTokens(t *testing.T) {
	// Words glued to digits never form a pure-letter token.
	got := ExtractKeywords("web3 developer wanted")
	if contains(got, "web") {
		t.Errorf("did not expect %q from \"web3\", got %v", "web", got)
	}
	if !contains(got, "developer") {
		t.Errorf("expected %q, got %v", "developer", got)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
