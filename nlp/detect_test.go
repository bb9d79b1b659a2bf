package nlp

import (
	"testing"

	"airfeedback/types"
)

func TestDetectLanguage(t *testing.T) {
	a := NewAnalyzer(nil)

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"empty defaults to english", "", types.LangEN},
		{"plain english", "excellent airport, very clean", types.LangEN},
		{"russian cyrillic", "ужасный персонал, грязно", types.LangRU},
		{"russian neutral text", "обычный день в аэропорту", types.LangRU},
		{"latin uzbek by word list", "xizmat juda yomon edi", types.LangUZ},
		{"uzbek apostrophe mark", "zo'r aeroport", types.LangUZ},
		{"uzbek modifier apostrophe", "aʼlo darajada", types.LangUZ},
		{"uzbek cyrillic letter", "ҳаммаси яхши", types.LangUZ},
		{"uzbek wins over cyrillic", "аэропорт тоза ва қулай", types.LangUZ},
		{"positive latin uzbek", "rahmat, hammasi yaxshi", types.LangUZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.DetectLanguage(tt.text); got != tt.expected {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestDetectLanguageDeterministic(t *testing.T) {
	a := NewAnalyzer(nil)
	inputs := []string{
		"excellent airport, very clean",
		"ужасный персонал, грязно",
		"xizmat juda yomon edi",
		"short",
		"",
	}
	for _, text := range inputs {
		first := a.DetectLanguage(text)
		for i := 0; i < 10; i++ {
			if got := a.DetectLanguage(text); got != first {
				t.Fatalf("DetectLanguage(%q) flapped: %q then %q", text, first, got)
			}
		}
	}
}
