package nlp

import "fmt"

type wordSet map[string]struct{}

func (s wordSet) has(w string) bool {
	_, ok := s[w]
	return ok
}

// Lexicon holds the per-language positive, negative, and stop-word sets.
// All entries are normalized at construction and the lexicon is never
// mutated afterwards, so a single instance can be shared by any number of
// goroutines without locking.
type Lexicon struct {
	positive  map[string]wordSet
	negative  map[string]wordSet
	stopwords map[string]wordSet
	stopUnion wordSet
}

// DefaultLexicon builds the lexicon from the curated word lists. Intended to
// be called once at process start.
func DefaultLexicon() *Lexicon {
	l := &Lexicon{
		positive:  buildSets(positiveWords),
		negative:  buildSets(negativeWords),
		stopwords: buildSets(stopWords),
		stopUnion: wordSet{},
	}
	for _, set := range l.stopwords {
		for w := range set {
			l.stopUnion[w] = struct{}{}
		}
	}
	return l
}

func buildSets(lists map[string][]string) map[string]wordSet {
	sets := make(map[string]wordSet, len(lists))
	for lang, words := range lists {
		set := make(wordSet, len(words))
		for _, w := range words {
			if n := Normalize(w); n != "" {
				set[n] = struct{}{}
			}
		}
		sets[lang] = set
	}
	return sets
}

// score counts how many of the normalized tokens hit the positive and
// negative sets of the given language. An unknown language code is an error
// so the caller can fall back instead of silently scoring against nothing.
func (l *Lexicon) score(lang string, tokens []string) (positive, negative int, err error) {
	pos, ok := l.positive[lang]
	if !ok {
		return 0, 0, fmt.Errorf("no lexicon for language %q", lang)
	}
	neg := l.negative[lang]
	for _, t := range tokens {
		if pos.has(t) {
			positive++
		}
		if neg.has(t) {
			negative++
		}
	}
	return positive, negative, nil
}

// IsStopword reports whether the normalized word appears in any supported
// language's stop list.
func (l *Lexicon) IsStopword(word string) bool {
	return l.stopUnion.has(word)
}
