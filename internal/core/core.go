package core

import "encoding/json"

// VideoRecord holds the metadata submitted for a single video.
type VideoRecord struct {
	Title       string   `json:"title"`       // Video title
	Description string   `json:"description"` // Video description text
	Tags        []string `json:"tags"`        // Creator-curated tags
}

// KeywordCount is a keyword together with its aggregated frequency.
type KeywordCount struct {
	Keyword   string `json:"keyword"`   // Normalized keyword
	Frequency int    `json:"frequency"` // Weighted occurrence count, always >= 1
}

// SentimentScore holds the polarity/subjectivity pair for a piece of text
// or an aggregate over a batch of videos.
type SentimentScore struct {
	Polarity     float64 `json:"polarity"`     // -1.0 (negative) to 1.0 (positive)
	Subjectivity float64 `json:"subjectivity"` // 0.0 (objective) to 1.0 (subjective)
}

// CategoryMap maps a category name to the keywords that matched it, in rank
// order. Categories with no matches are absent from the map.
type CategoryMap map[string][]string

// AnalysisResult is the complete output of one keyword analysis request.
type AnalysisResult struct {
	TopKeywords         []KeywordCount `json:"top_keywords"`
	KeywordCategories   CategoryMap    `json:"keyword_categories"`
	SentimentAnalysis   SentimentScore `json:"sentiment_analysis"`
	TotalVideosAnalyzed int            `json:"total_videos_analyzed"`
	Recommendations     []string       `json:"recommendations"`
}

// Engagement type labels used when persisting analysis output.
const (
	EngagementKeywordAnalysis = "keyword_analysis"
	EngagementChannelStrategy = "channel_strategy"
)

// EngagementRecord is one stored payload keyed by channel and engagement type.
type EngagementRecord struct {
	ChannelID      string          `json:"channel_id"`
	EngagementType string          `json:"engagement_type"`
	Data           json.RawMessage `json:"data"`
}

// StrategicInsights groups the heuristic channel-strategy suggestions derived
// from a stored keyword analysis.
type StrategicInsights struct {
	TrendingTopics   []string            `json:"trending_topics"`
	KeywordGaps      []string            `json:"keyword_gaps"`
	TitleSuggestions []string            `json:"title_suggestions"`
	KeywordClusters  map[string][]string `json:"keyword_clusters"`
	ViewerQuestions  []string            `json:"viewer_questions"`
	RegionalKeywords []string            `json:"regional_keywords"`
}

// ChannelStrategy is the response payload of a channel strategy request.
type ChannelStrategy struct {
	ChannelID         string            `json:"channel_id"`
	Region            string            `json:"region"`
	Language          string            `json:"language"`
	StrategicInsights StrategicInsights `json:"strategic_insights"`
}
