// Package sentiment scores video metadata text with a rule-based lexicon.
package sentiment

import (
	"strings"

	"tubelens/internal/core"
)

// entry is one lexicon word: signed polarity plus how opinion-laden the
// word is. Subjectivity 0 marks factual/reporting vocabulary.
type entry struct {
	polarity     float64
	subjectivity float64
}

// lexicon holds the scoring vocabulary. Polarity is in [-1, 1] and
// subjectivity in [0, 1].
var lexicon = map[string]entry{
	// Strong positive
	"excellent": {1.0, 1.0}, "amazing": {0.9, 1.0}, "outstanding": {0.9, 1.0},
	"fantastic": {0.8, 0.9}, "awesome": {0.8, 0.9}, "incredible": {0.8, 0.9},
	"perfect": {0.9, 0.9}, "best": {0.8, 0.8}, "love": {0.7, 0.8},
	// Moderate positive
	"great": {0.7, 0.8}, "good": {0.6, 0.7}, "easy": {0.4, 0.6},
	"helpful": {0.6, 0.7}, "useful": {0.5, 0.6}, "fun": {0.5, 0.8},
	"beautiful": {0.7, 0.9}, "success": {0.6, 0.4}, "win": {0.6, 0.5},
	"improve": {0.4, 0.4}, "simple": {0.3, 0.5}, "quick": {0.3, 0.4},
	"fast": {0.3, 0.4}, "free": {0.4, 0.3}, "breakthrough": {0.7, 0.5},
	"effective": {0.5, 0.5}, "powerful": {0.5, 0.6},
	// Strong negative
	"terrible": {-1.0, 1.0}, "awful": {-0.9, 1.0}, "horrible": {-0.9, 1.0},
	"worst": {-0.9, 0.9}, "disaster": {-0.8, 0.7}, "hate": {-0.8, 0.9},
	// Moderate negative
	"bad": {-0.6, 0.7}, "poor": {-0.6, 0.7}, "boring": {-0.5, 0.8},
	"hard": {-0.3, 0.5}, "difficult": {-0.3, 0.5}, "problem": {-0.4, 0.3},
	"fail": {-0.6, 0.5}, "failure": {-0.6, 0.5}, "wrong": {-0.4, 0.5},
	"broken": {-0.5, 0.4}, "scam": {-0.8, 0.6}, "waste": {-0.6, 0.7},
	"avoid": {-0.4, 0.5}, "mistake": {-0.4, 0.4}, "annoying": {-0.5, 0.8},
	// Opinionated but neutral in direction
	"honest": {0.2, 0.8}, "crazy": {0.0, 0.9}, "insane": {0.0, 0.9},
	"surprising": {0.1, 0.7}, "interesting": {0.3, 0.7},
	// Factual/reporting vocabulary, fully objective
	"update": {0.0, 0.0}, "report": {0.0, 0.0}, "analysis": {0.0, 0.1},
	"review": {0.0, 0.3}, "study": {0.0, 0.0}, "data": {0.0, 0.0},
	"research": {0.0, 0.0}, "results": {0.0, 0.1}, "facts": {0.0, 0.0},
}

// Analyzer scores text against the process-wide lexicon. The zero value is
// usable; New exists for symmetry with the other pipeline stages.
type Analyzer struct{}

// NewAnalyzer returns a lexicon-based sentiment analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// ScoreVideo scores a single video from its title and description. Text with
// no lexicon matches scores neutral (0, 0); the call never fails.
func (a *Analyzer) ScoreVideo(v core.VideoRecord) core.SentimentScore {
	return a.scoreText(v.Title + " " + v.Description)
}

// ScoreBatch returns the arithmetic mean of per-video scores. Zero videos
// yields the neutral score (0, 0).
func (a *Analyzer) ScoreBatch(videos []core.VideoRecord) core.SentimentScore {
	if len(videos) == 0 {
		return core.SentimentScore{}
	}

	var polaritySum, subjectivitySum float64
	for _, v := range videos {
		s := a.ScoreVideo(v)
		polaritySum += s.Polarity
		subjectivitySum += s.Subjectivity
	}

	n := float64(len(videos))
	return core.SentimentScore{
		Polarity:     polaritySum / n,
		Subjectivity: subjectivitySum / n,
	}
}

// scoreText averages the polarity and subjectivity of matched lexicon words.
// Averaging keeps both values inside their defined ranges without clamping.
func (a *Analyzer) scoreText(text string) core.SentimentScore {
	words := strings.Fields(strings.ToLower(text))

	var polaritySum, subjectivitySum float64
	matched := 0

	for _, word := range words {
		word = strings.Trim(word, ".,!?;:'\"()[]")
		e, ok := lexicon[word]
		if !ok {
			continue
		}
		polaritySum += e.polarity
		subjectivitySum += e.subjectivity
		matched++
	}

	if matched == 0 {
		return core.SentimentScore{}
	}

	n := float64(matched)
	return core.SentimentScore{
		Polarity:     polaritySum / n,
		Subjectivity: subjectivitySum / n,
	}
}
