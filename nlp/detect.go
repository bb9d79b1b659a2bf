package nlp

import (
	"strings"
	"unicode"

	"airfeedback/types"
)

// Apostrophe marks that only occur in Latin-script Uzbek input, and the
// Cyrillic letters that exist in Uzbek Cyrillic but not in Russian.
const uzApostrophes = "'ʻʼ’`´"
const uzCyrillicOnly = "қўғҳҚЎҒҲ"

// DetectLanguage classifies text as en, ru, or uz. The checks run in strict
// priority order and the first match wins:
//
//  1. Uzbek-only apostrophes or Uzbek-Cyrillic letters
//  2. curated Uzbek word appears as a substring of the normalized text
//  3. any Cyrillic letter (Russian)
//  4. curated Russian word appears as a substring
//  5. default English
//
// Character-set signals settle the unambiguous majority cheaply; the word
// lists catch Latin-script Uzbek. Deterministic, no I/O, and false positives
// on short mixed-language text are accepted.
func (a *Analyzer) DetectLanguage(text string) string {
	if text == "" {
		return types.LangEN
	}

	if strings.ContainsAny(text, uzApostrophes) || strings.ContainsAny(text, uzCyrillicOnly) {
		return types.LangUZ
	}

	norm := Normalize(text)
	for _, w := range a.uzWords {
		if strings.Contains(norm, w) {
			return types.LangUZ
		}
	}

	if containsCyrillic(text) {
		return types.LangRU
	}

	for _, w := range a.ruWords {
		if strings.Contains(norm, w) {
			return types.LangRU
		}
	}

	return types.LangEN
}

func containsCyrillic(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}

// normalizeDetectWords prepares a detector word list so its entries can match
// normalized text. Multi-word phrases keep their inner spaces.
func normalizeDetectWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		parts := strings.Fields(w)
		for i, p := range parts {
			parts[i] = Normalize(p)
		}
		if n := strings.Join(parts, " "); n != "" {
			out = append(out, n)
		}
	}
	return out
}
