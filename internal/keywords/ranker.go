// Package keywords ranks keywords by weighted frequency across a video batch.
package keywords

import (
	"sort"

	"tubelens/internal/core"
	"tubelens/internal/tokenize"
)

const (
	// DefaultTopN is the number of keywords returned when no limit is given.
	DefaultTopN = 15

	// Curated tags count double so that a tag stays ahead of an incidental
	// free-text word with the same number of occurrences. Weights are
	// integral to keep the frequency field an exact count.
	tagWeight  = 2
	wordWeight = 1
)

// Rank aggregates token frequencies across all videos and returns the top
// keywords in descending frequency order. Ties keep first-seen order.
func Rank(videos []core.VideoRecord, topN int) []core.KeywordCount {
	if topN <= 0 {
		topN = DefaultTopN
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(videos)*4)

	add := func(keyword string, weight int) {
		if keyword == "" {
			return
		}
		if _, seen := counts[keyword]; !seen {
			order = append(order, keyword)
		}
		counts[keyword] += weight
	}

	for _, v := range videos {
		for _, w := range tokenize.Words(v.Title) {
			add(w, wordWeight)
		}
		for _, w := range tokenize.Words(v.Description) {
			add(w, wordWeight)
		}
		for _, t := range v.Tags {
			add(tokenize.Tag(t), tagWeight)
		}
	}

	ranked := make([]core.KeywordCount, 0, len(order))
	for _, kw := range order {
		ranked = append(ranked, core.KeywordCount{Keyword: kw, Frequency: counts[kw]})
	}

	// Stable sort preserves first-occurrence order among equal frequencies.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Frequency > ranked[j].Frequency
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
