package nlp

import "strings"

// stripped punctuation and quote variants, including the typographic ones
// that show up in copy-pasted mobile input.
const strippedRunes = "’'‘`´ʻʼ\"“”—–-.,:;!?()[]{}«»"

// cyrillicFolds maps letter variants to the base form used by the lexicons.
var cyrillicFolds = map[rune]rune{
	'ё': 'е',
	'ў': 'о',
	'ғ': 'г',
	'ҳ': 'х',
}

// Normalize lower-cases a word, strips punctuation and quote variants, and
// folds Cyrillic letter variants to their base form. The same normalization
// is applied to lexicon entries at load time, so lookups stay consistent
// across the detector, classifier, and keyword extractor. Empty input yields
// empty output.
func Normalize(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedRunes, r) {
			return -1
		}
		if folded, ok := cyrillicFolds[r]; ok {
			return folded
		}
		return r
	}, lower)
}

// tokenize splits text on whitespace and normalizes each token, dropping the
// ones that normalize to nothing.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := Normalize(f); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
