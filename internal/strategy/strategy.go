// Package strategy derives channel-strategy suggestions from analyzed keywords.
package strategy

import (
	"fmt"
	"strings"
	"unicode"

	"tubelens/internal/core"
)

// Per-field caps on generated suggestions.
const (
	maxTopics    = 5
	maxGaps      = 5
	maxTitles    = 5
	maxClusters  = 6
	maxQuestions = 6
	maxRegional  = 5
)

// Static suggestions used when a channel has no usable keywords yet.
var (
	defaultTopics = []string{
		"AI Trends", "Digital Transformation", "Remote Work", "Sustainability", "Health Tech",
	}
	defaultGaps = []string{
		"Emerging Technology", "Industry Insights", "Best Practices", "Case Studies", "Expert Tips",
	}
	defaultTitles = []string{
		"Top 5 Trends This Year", "How to Master This Skill", "The Ultimate Guide",
		"Secrets Revealed", "What You Need to Know",
	}
	defaultQuestions = []string{
		"How do I get started?", "What are the best practices?", "How can I improve?",
		"What should I avoid?", "What are the latest trends?", "How do I succeed?",
	}
	defaultRegional = []string{
		"Local Trends", "Regional Insights", "Cultural Relevance", "Local Best Practices",
		"Regional Success Stories",
	}
)

// BuildInsights expands a channel's top keywords into the strategic insight
// groups using fixed templates. Output depends only on the inputs, so the
// same stored analysis always produces the same strategy.
func BuildInsights(topKeywords []string, region, language string) core.StrategicInsights {
	keywords := cleanKeywords(topKeywords)

	return core.StrategicInsights{
		TrendingTopics:   trendingTopics(keywords),
		KeywordGaps:      keywordGaps(keywords),
		TitleSuggestions: titleSuggestions(keywords),
		KeywordClusters:  keywordClusters(keywords),
		ViewerQuestions:  viewerQuestions(keywords),
		RegionalKeywords: regionalKeywords(keywords, region),
	}
}

func trendingTopics(keywords []string) []string {
	if len(keywords) == 0 {
		return defaultTopics[:maxTopics]
	}
	topics := make([]string, 0, maxTopics)
	for _, kw := range keywords {
		name := titleCase(kw)
		topics = append(topics,
			fmt.Sprintf("%s Trends", name),
			fmt.Sprintf("Latest %s News", name),
			fmt.Sprintf("%s Innovation", name))
	}
	return capList(topics, maxTopics)
}

func keywordGaps(keywords []string) []string {
	if len(keywords) == 0 {
		return defaultGaps[:maxGaps]
	}
	gaps := make([]string, 0, maxGaps)
	for _, kw := range keywords {
		name := titleCase(kw)
		gaps = append(gaps,
			fmt.Sprintf("Advanced %s", name),
			fmt.Sprintf("%s Best Practices", name),
			fmt.Sprintf("%s Case Studies", name))
	}
	return capList(gaps, maxGaps)
}

func titleSuggestions(keywords []string) []string {
	if len(keywords) == 0 {
		return defaultTitles[:maxTitles]
	}
	titles := make([]string, 0, maxTitles)
	for _, kw := range keywords {
		name := titleCase(kw)
		titles = append(titles,
			fmt.Sprintf("Top 5 %s Tips", name),
			fmt.Sprintf("How to Master %s", name),
			fmt.Sprintf("The Ultimate %s Guide", name))
	}
	return capList(titles, maxTitles)
}

func keywordClusters(keywords []string) map[string][]string {
	clusters := make(map[string][]string)
	if len(keywords) == 0 {
		clusters["beginner"] = []string{"basics", "introduction", "getting started"}
		clusters["advanced"] = []string{"expert tips", "advanced techniques", "pro strategies"}
		return clusters
	}
	for i, kw := range keywords {
		if i >= maxClusters {
			break
		}
		clusters[fmt.Sprintf("series%d", i+1)] = []string{kw, kw + " tips", kw + " guide"}
	}
	return clusters
}

func viewerQuestions(keywords []string) []string {
	if len(keywords) == 0 {
		return defaultQuestions
	}
	questions := make([]string, 0, maxQuestions)
	for _, kw := range keywords {
		questions = append(questions,
			fmt.Sprintf("How do I get started with %s?", kw),
			fmt.Sprintf("What are the best %s practices?", kw),
			fmt.Sprintf("How can I improve my %s skills?", kw))
	}
	return capList(questions, maxQuestions)
}

func regionalKeywords(keywords []string, region string) []string {
	if len(keywords) == 0 {
		return defaultRegional
	}
	regional := make([]string, 0, maxRegional)
	for _, kw := range keywords {
		name := titleCase(kw)
		if region != "" && region != "global" {
			regional = append(regional,
				fmt.Sprintf("%s in %s", name, titleCase(region)),
				fmt.Sprintf("%s %s", titleCase(region), name))
		} else {
			regional = append(regional,
				fmt.Sprintf("Local %s", name),
				fmt.Sprintf("Regional %s Trends", name))
		}
	}
	return capList(regional, maxRegional)
}

// cleanKeywords drops empties and duplicates while preserving order.
func cleanKeywords(keywords []string) []string {
	seen := make(map[string]bool)
	clean := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		clean = append(clean, kw)
	}
	return clean
}

func capList(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
