// Package nlp implements the feedback classification pipeline: language
// detection, lexicon-based sentiment scoring, and keyword extraction over
// small curated word lists. Everything is deterministic and in-process; the
// same input always produces the same result and nothing here touches the
// network.
package nlp

import "airfeedback/types"

// Analyzer runs the classification pipeline. It holds only the read-only
// lexicon and detector word lists, so one instance serves all requests
// concurrently.
type Analyzer struct {
	lex     *Lexicon
	uzWords []string
	ruWords []string
}

// NewAnalyzer builds an analyzer around the given lexicon. A nil lexicon
// gets the default curated one.
func NewAnalyzer(lex *Lexicon) *Analyzer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Analyzer{
		lex:     lex,
		uzWords: normalizeDetectWords(uzDetectWords),
		ruWords: normalizeDetectWords(ruDetectWords),
	}
}

// Analyze runs the full ingest pipeline over one comment: detect the
// language once, classify sentiment with the resolved language, and extract
// keywords. Pure computation; persistence is the caller's responsibility.
func (a *Analyzer) Analyze(comment string) types.Classification {
	lang := a.DetectLanguage(comment)
	sentiment, score, lang := a.Classify(comment, lang)
	return types.Classification{
		Sentiment: sentiment,
		Score:     score,
		Language:  lang,
		Keywords:  a.ExtractKeywords(comment),
	}
}
