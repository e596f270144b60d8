package recommend

import (
	"strings"
	"testing"

	"tubelens/internal/core"
)

func TestGenerateFallbackForEmptyBatch(t *testing.T) {
	recs := Generate(nil, nil, core.SentimentScore{}, 0)

	if len(recs) != 1 {
		t.Fatalf("expected exactly one fallback recommendation, got %d", len(recs))
	}
	if recs[0] != "Add more video data to generate keyword recommendations" {
		t.Errorf("unexpected fallback text: %q", recs[0])
	}
}

func TestGenerateTopKeywordRule(t *testing.T) {
	ranked := []core.KeywordCount{
		{Keyword: "python", Frequency: 5},
		{Keyword: "docker", Frequency: 2},
	}

	recs := Generate(ranked, nil, core.SentimentScore{}, 3)
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	if !strings.Contains(recs[0], "'python'") {
		t.Errorf("first recommendation should name the top keyword: %q", recs[0])
	}
	if !strings.Contains(recs[0], "5 times") {
		t.Errorf("first recommendation should include the frequency: %q", recs[0])
	}
}

func TestGenerateCategoryRuleOrder(t *testing.T) {
	categories := core.CategoryMap{
		"gaming":     {"fortnite"},
		"technology": {"python"},
	}

	recs := Generate(nil, categories, core.SentimentScore{}, 2)

	var techIdx, gamingIdx int
	for i, rec := range recs {
		if strings.Contains(rec, "technology content") {
			techIdx = i
		}
		if strings.Contains(rec, "gaming content") {
			gamingIdx = i
		}
	}
	if techIdx >= gamingIdx {
		t.Errorf("technology recommendation should precede gaming: %v", recs)
	}

	for _, rec := range recs {
		if strings.Contains(rec, "technology content") && !strings.Contains(rec, "'tech'") {
			t.Errorf("technology recommendation should suggest tags: %q", rec)
		}
	}
}

func TestGenerateNegativePolarityRule(t *testing.T) {
	recs := Generate(nil, nil, core.SentimentScore{Polarity: -0.5}, 1)

	if !containsSubstring(recs, "lean negative") {
		t.Errorf("expected negative framing warning, got %v", recs)
	}

	// The threshold is strict: exactly -0.2 does not trigger the rule.
	recs = Generate(nil, nil, core.SentimentScore{Polarity: -0.2}, 1)
	if containsSubstring(recs, "lean negative") {
		t.Errorf("polarity at the threshold should not warn, got %v", recs)
	}
}

func TestGenerateHighSubjectivityRule(t *testing.T) {
	recs := Generate(nil, nil, core.SentimentScore{Subjectivity: 0.8}, 1)

	if !containsSubstring(recs, "opinion-based") {
		t.Errorf("expected subjectivity warning, got %v", recs)
	}

	recs = Generate(nil, nil, core.SentimentScore{Subjectivity: 0.7}, 1)
	if containsSubstring(recs, "opinion-based") {
		t.Errorf("subjectivity at the threshold should not warn, got %v", recs)
	}
}

func TestGenerateAllRulesFire(t *testing.T) {
	ranked := []core.KeywordCount{{Keyword: "drama", Frequency: 4}}
	categories := core.CategoryMap{"entertainment": {"drama"}}
	score := core.SentimentScore{Polarity: -0.6, Subjectivity: 0.9}

	recs := Generate(ranked, categories, score, 2)
	if len(recs) != 4 {
		t.Errorf("expected 4 recommendations (one per rule), got %d: %v", len(recs), recs)
	}
}

func containsSubstring(items []string, substr string) bool {
	for _, item := range items {
		if strings.Contains(item, substr) {
			return true
		}
	}
	return false
}
