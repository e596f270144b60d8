package sentiment

import (
	"math"
	"testing"

	"tubelens/internal/core"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestScoreVideoPositive(t *testing.T) {
	a := NewAnalyzer()
	score := a.ScoreVideo(core.VideoRecord{Title: "An excellent camera"})

	if !almostEqual(score.Polarity, 1.0) {
		t.Errorf("expected polarity 1.0, got %f", score.Polarity)
	}
	if !almostEqual(score.Subjectivity, 1.0) {
		t.Errorf("expected subjectivity 1.0, got %f", score.Subjectivity)
	}
}

func TestScoreVideoNegative(t *testing.T) {
	a := NewAnalyzer()
	score := a.ScoreVideo(core.VideoRecord{Title: "A terrible experience"})

	if !almostEqual(score.Polarity, -1.0) {
		t.Errorf("expected polarity -1.0, got %f", score.Polarity)
	}
}

func TestScoreVideoNoLexiconMatches(t *testing.T) {
	a := NewAnalyzer()
	score := a.ScoreVideo(core.VideoRecord{
		Title:       "Kubernetes deployment walkthrough",
		Description: "Installing the controller",
	})

	if score.Polarity != 0 || score.Subjectivity != 0 {
		t.Errorf("expected neutral (0, 0) for unmatched text, got (%f, %f)",
			score.Polarity, score.Subjectivity)
	}
}

func TestScoreVideoAveragesMatches(t *testing.T) {
	// good (0.6, 0.7) and bad (-0.6, 0.7) average to (0, 0.7).
	a := NewAnalyzer()
	score := a.ScoreVideo(core.VideoRecord{Title: "good bad"})

	if !almostEqual(score.Polarity, 0) {
		t.Errorf("expected averaged polarity 0, got %f", score.Polarity)
	}
	if !almostEqual(score.Subjectivity, 0.7) {
		t.Errorf("expected averaged subjectivity 0.7, got %f", score.Subjectivity)
	}
}

func TestScoreVideoStripsPunctuation(t *testing.T) {
	a := NewAnalyzer()
	score := a.ScoreVideo(core.VideoRecord{Title: "Excellent!"})

	if !almostEqual(score.Polarity, 1.0) {
		t.Errorf("expected punctuated word to match lexicon, got polarity %f", score.Polarity)
	}
}

func TestScoreVideoCaseInsensitive(t *testing.T) {
	a := NewAnalyzer()
	score := a.ScoreVideo(core.VideoRecord{Title: "TERRIBLE"})

	if !almostEqual(score.Polarity, -1.0) {
		t.Errorf("expected uppercase word to match lexicon, got polarity %f", score.Polarity)
	}
}

func TestScoreBatchMean(t *testing.T) {
	a := NewAnalyzer()
	// "excellent" scores (1.0, 1.0); unmatched text scores (0, 0).
	videos := []core.VideoRecord{
		{Title: "excellent"},
		{Title: "router configuration"},
	}

	score := a.ScoreBatch(videos)
	if !almostEqual(score.Polarity, 0.5) {
		t.Errorf("expected mean polarity 0.5, got %f", score.Polarity)
	}
	if !almostEqual(score.Subjectivity, 0.5) {
		t.Errorf("expected mean subjectivity 0.5, got %f", score.Subjectivity)
	}
}

func TestScoreBatchEmpty(t *testing.T) {
	a := NewAnalyzer()
	score := a.ScoreBatch(nil)

	if score.Polarity != 0 || score.Subjectivity != 0 {
		t.Errorf("expected zero score for empty batch, got (%f, %f)",
			score.Polarity, score.Subjectivity)
	}
}

func TestScoresStayInRange(t *testing.T) {
	a := NewAnalyzer()
	titles := []string{
		"excellent amazing perfect best",
		"terrible awful horrible worst",
		"good bad crazy honest review",
		"update report analysis data",
		"",
	}

	for _, title := range titles {
		score := a.ScoreVideo(core.VideoRecord{Title: title})
		if score.Polarity < -1 || score.Polarity > 1 {
			t.Errorf("polarity out of range for %q: %f", title, score.Polarity)
		}
		if score.Subjectivity < 0 || score.Subjectivity > 1 {
			t.Errorf("subjectivity out of range for %q: %f", title, score.Subjectivity)
		}
	}
}
