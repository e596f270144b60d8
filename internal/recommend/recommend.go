// Package recommend turns analysis output into optimization suggestions.
package recommend

import (
	"fmt"
	"strings"

	"tubelens/internal/categorize"
	"tubelens/internal/core"
)

// categoryTags suggests tags worth adding for each matched category.
var categoryTags = map[string][]string{
	"technology":    {"tech", "review", "explained"},
	"education":     {"tutorial", "how-to", "beginner"},
	"entertainment": {"funny", "highlights", "reaction"},
	"lifestyle":     {"daily", "routine", "tips"},
	"business":      {"strategy", "growth", "finance"},
	"gaming":        {"gameplay", "walkthrough", "gaming"},
}

// Sentiment thresholds for the framing rules.
const (
	negativePolarityLimit = -0.2
	highSubjectivityLimit = 0.7
)

// fallback is the single recommendation returned for an empty batch.
const fallback = "Add more video data to generate keyword recommendations"

// Generate applies each heuristic rule in a fixed order; every rule
// contributes at most one string, so output is deterministic for a given
// analysis. An empty batch returns exactly the fallback entry.
func Generate(ranked []core.KeywordCount, categories core.CategoryMap, score core.SentimentScore, totalVideos int) []string {
	if totalVideos == 0 {
		return []string{fallback}
	}

	recommendations := make([]string, 0, 4)

	// Rule 1: always surface the strongest keyword.
	if len(ranked) > 0 {
		top := ranked[0]
		recommendations = append(recommendations, fmt.Sprintf(
			"Focus on '%s' - it appears %d times across your videos, more than any other keyword",
			top.Keyword, top.Frequency))
	}

	// Rule 2: per-category tag suggestions, in the fixed category order.
	for _, name := range categorize.Order() {
		if _, matched := categories[name]; !matched {
			continue
		}
		tags, ok := categoryTags[name]
		if !ok {
			continue
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"Your %s content could reach more viewers with tags like %s",
			name, quoteJoin(tags)))
	}

	// Rule 3: negative framing warning.
	if score.Polarity < negativePolarityLimit {
		recommendations = append(recommendations,
			"Titles and descriptions lean negative; more positive framing tends to improve click-through")
	}

	// Rule 4: overly subjective language warning.
	if score.Subjectivity > highSubjectivityLimit {
		recommendations = append(recommendations,
			"Descriptions are heavily opinion-based; adding factual detail can build viewer trust")
	}

	return recommendations
}

func quoteJoin(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	return strings.Join(quoted, ", ")
}
