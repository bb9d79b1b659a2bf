package nlp

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxKeywords   = 10
	minTokenRunes = 3
)

// ExtractKeywords returns up to 10 keywords ordered by descending frequency,
// with ties broken by first occurrence. Tokens shorter than three runes and
// tokens in any supported language's stop list are dropped. Empty or
// all-stop-word input yields an empty result.
func (a *Analyzer) ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}

	clean := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, text)

	type entry struct {
		word  string
		count int
		first int
	}
	counts := make(map[string]*entry)
	order := []*entry{}

	for i, word := range strings.Fields(clean) {
		if utf8.RuneCountInString(word) < minTokenRunes {
			continue
		}
		if a.lex.IsStopword(word) {
			continue
		}
		if e, ok := counts[word]; ok {
			e.count++
			continue
		}
		e := &entry{word: word, count: 1, first: i}
		counts[word] = e
		order = append(order, e)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	keywords := make([]string, len(order))
	for i, e := range order {
		keywords[i] = e.word
	}
	return keywords
}
