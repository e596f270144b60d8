// Package analyze orchestrates the keyword analysis pipeline.
package analyze

import (
	"sync"

	"tubelens/internal/categorize"
	"tubelens/internal/core"
	"tubelens/internal/keywords"
	"tubelens/internal/recommend"
	"tubelens/internal/sentiment"
)

// Analyzer runs the tokenize → rank → categorize/score → recommend pipeline.
// It holds no per-request state and is safe for concurrent use.
type Analyzer struct {
	topN      int
	sentiment *sentiment.Analyzer
}

// New returns an analyzer that keeps the topN highest-frequency keywords.
// topN <= 0 selects the default limit.
func New(topN int) *Analyzer {
	return &Analyzer{
		topN:      topN,
		sentiment: sentiment.NewAnalyzer(),
	}
}

// Analyze runs the full pipeline over a batch of videos. The result is a
// pure function of the input: no timestamps, ids, or randomness, so the
// same batch always yields an identical result.
func (a *Analyzer) Analyze(videos []core.VideoRecord) core.AnalysisResult {
	ranked := keywords.Rank(videos, a.topN)

	// Categorization and sentiment are independent of each other; run them
	// concurrently and join before generating recommendations.
	var (
		wg         sync.WaitGroup
		categories core.CategoryMap
		score      core.SentimentScore
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		categories = categorize.Keywords(ranked)
	}()
	go func() {
		defer wg.Done()
		score = a.sentiment.ScoreBatch(videos)
	}()
	wg.Wait()

	recommendations := recommend.Generate(ranked, categories, score, len(videos))

	return core.AnalysisResult{
		TopKeywords:         ranked,
		KeywordCategories:   categories,
		SentimentAnalysis:   score,
		TotalVideosAnalyzed: len(videos),
		Recommendations:     recommendations,
	}
}
