package nlp

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestExtractKeywords(t *testing.T) {
	a := NewAnalyzer(nil)

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"empty", "", nil},
		{"all stop words", "the and are was", nil},
		{"all short tokens", "ok hi to at", nil},
		{
			"first occurrence order on ties",
			"excellent airport, very clean",
			[]string{"excellent", "airport", "very", "clean"},
		},
		{
			"frequency beats position",
			"airport clean clean staff",
			[]string{"clean", "airport", "staff"},
		},
		{
			"cyrillic keywords survive",
			"персонал грубый, персонал медленный",
			[]string{"персонал", "грубый", "медленный"},
		},
		{
			"stop words filtered across languages",
			"va xizmat bilan the queue и очередь",
			[]string{"xizmat", "queue", "очередь"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.ExtractKeywords(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestExtractKeywordsCapsAtTen(t *testing.T) {
	a := NewAnalyzer(nil)
	text := "alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima"
	got := a.ExtractKeywords(text)
	if len(got) != 10 {
		t.Fatalf("got %d keywords, want 10", len(got))
	}
	if got[0] != "alpha" || got[9] != "juliett" {
		t.Errorf("expected the first ten tokens in order, got %v", got)
	}
}

func TestExtractKeywordsNeverReturnsStopWordsOrShortTokens(t *testing.T) {
	a := NewAnalyzer(nil)
	got := a.ExtractKeywords("the gate at the gate is on time and the gate was ok")
	for _, kw := range got {
		if a.lex.IsStopword(kw) {
			t.Errorf("keyword %q is a stop word", kw)
		}
		if utf8.RuneCountInString(kw) < 3 {
			t.Errorf("keyword %q is shorter than 3 runes", kw)
		}
	}
}
