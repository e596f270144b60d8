// Package categorize buckets ranked keywords into fixed topical categories.
package categorize

import (
	"strings"

	"tubelens/internal/core"
)

// triggers maps each category to the terms that pull a keyword into it.
// A keyword matches when it equals a trigger or is a substring of one, so
// "machine" matches the trigger "machine learning". The table is constant
// data loaded once; never mutate it at runtime.
var triggers = map[string][]string{
	"technology": {
		"python", "javascript", "programming", "coding", "software", "developer",
		"tech", "computer", "ai", "machine learning", "data", "cloud", "api",
		"web", "app", "code", "linux", "database",
	},
	"education": {
		"tutorial", "learn", "course", "guide", "how-to", "howto", "lesson",
		"teach", "beginner", "tips", "training", "explained", "basics",
	},
	"entertainment": {
		"funny", "comedy", "music", "movie", "reaction", "vlog", "prank",
		"challenge", "trailer", "meme",
	},
	"lifestyle": {
		"travel", "food", "fitness", "health", "fashion", "beauty", "cooking",
		"workout", "recipe", "diet",
	},
	"business": {
		"marketing", "startup", "finance", "money", "invest", "entrepreneur",
		"business", "crypto", "trading", "ecommerce",
	},
	"gaming": {
		"gaming", "game", "gameplay", "minecraft", "fortnite", "esports",
		"stream", "playthrough", "speedrun",
	},
}

// categoryOrder fixes iteration order so downstream output is deterministic.
var categoryOrder = []string{
	"technology", "education", "entertainment", "lifestyle", "business", "gaming",
}

// Order returns the fixed category evaluation order.
func Order() []string {
	return categoryOrder
}

// Keywords groups the ranked keywords by category. A keyword may belong to
// several categories; categories with no matches are omitted entirely.
func Keywords(ranked []core.KeywordCount) core.CategoryMap {
	result := make(core.CategoryMap)

	for _, name := range categoryOrder {
		var matched []string
		for _, kc := range ranked {
			if matchesCategory(kc.Keyword, triggers[name]) {
				matched = append(matched, kc.Keyword)
			}
		}
		if len(matched) > 0 {
			result[name] = matched
		}
	}

	return result
}

// matchesCategory reports whether keyword equals or is a substring of any
// trigger term. Keywords arrive lowercased from the tokenizer; triggers are
// kept lowercase.
func matchesCategory(keyword string, terms []string) bool {
	kw := strings.ToLower(keyword)
	for _, term := range terms {
		if kw == term || strings.Contains(term, kw) {
			return true
		}
	}
	return false
}
