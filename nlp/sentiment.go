package nlp

import (
	"log"

	"airfeedback/types"
)

// Score thresholds for mixed-polarity comments. A comment whose positive
// ratio lands between the two stays neutral. Candidates for calibration once
// a labeled feedback set exists.
const (
	positiveThreshold = 0.6
	negativeThreshold = 0.4
	neutralScore      = 0.5
)

// LangAuto asks the classifier to resolve the language itself.
const LangAuto = "auto"

// classifyTokens is the fallible primary classifier: it tokenizes the text,
// scores tokens against the resolved language's lexicons, and applies the
// decision table. A single positive hit with zero negative hits is a
// full-confidence positive (score 1.0), and the mirror case a
// full-confidence negative (score 0.0): the lexicons are precision-biased
// and one hit is treated as conclusive regardless of comment length.
func (a *Analyzer) classifyTokens(text, lang string) (string, float64, error) {
	pos, neg, err := a.lex.score(lang, tokenize(text))
	if err != nil {
		return "", 0, err
	}

	switch {
	case pos > 0 && neg == 0:
		return types.SentimentPositive, 1.0, nil
	case neg > 0 && pos == 0:
		return types.SentimentNegative, 0.0, nil
	case pos > 0 && neg > 0:
		score := float64(pos) / float64(pos+neg)
		switch {
		case score > positiveThreshold:
			return types.SentimentPositive, score, nil
		case score < negativeThreshold:
			return types.SentimentNegative, score, nil
		default:
			return types.SentimentNeutral, score, nil
		}
	default:
		return types.SentimentNeutral, neutralScore, nil
	}
}

// Classify resolves the language (when lang is empty or "auto") and runs the
// primary classifier. Classification never fails: if the primary errors, the
// result degrades to neutral/0.5 with the originally supplied language, or
// "uz" when no language was ever resolved.
func (a *Analyzer) Classify(text, lang string) (sentiment string, score float64, language string) {
	resolved := lang
	if resolved == "" || resolved == LangAuto {
		resolved = a.DetectLanguage(text)
	}

	sentiment, score, err := a.classifyTokens(text, resolved)
	if err != nil {
		log.Printf("classification fell back to neutral: %v", err)
		fallback := lang
		if fallback == "" || fallback == LangAuto {
			fallback = types.LangUZ
		}
		return types.SentimentNeutral, neutralScore, fallback
	}
	return sentiment, score, resolved
}
