package categorize

import (
	"reflect"
	"testing"

	"tubelens/internal/core"
)

func kc(keywords ...string) []core.KeywordCount {
	ranked := make([]core.KeywordCount, len(keywords))
	for i, kw := range keywords {
		ranked[i] = core.KeywordCount{Keyword: kw, Frequency: len(keywords) - i}
	}
	return ranked
}

func TestKeywordsExactMatch(t *testing.T) {
	result := Keywords(kc("python", "tutorial", "fortnite"))

	tech, ok := result["technology"]
	if !ok || !reflect.DeepEqual(tech, []string{"python"}) {
		t.Errorf("expected technology=[python], got %v", tech)
	}
	edu, ok := result["education"]
	if !ok || !reflect.DeepEqual(edu, []string{"tutorial"}) {
		t.Errorf("expected education=[tutorial], got %v", edu)
	}
	gaming, ok := result["gaming"]
	if !ok || !reflect.DeepEqual(gaming, []string{"fortnite"}) {
		t.Errorf("expected gaming=[fortnite], got %v", gaming)
	}
}

func TestKeywordsSubstringMatch(t *testing.T) {
	// "fit" is a substring of the lifestyle trigger "fitness".
	result := Keywords(kc("fit"))

	lifestyle, ok := result["lifestyle"]
	if !ok {
		t.Fatalf("expected lifestyle category, got %v", result)
	}
	if !reflect.DeepEqual(lifestyle, []string{"fit"}) {
		t.Errorf("expected lifestyle=[fit], got %v", lifestyle)
	}
}

func TestKeywordsMultipleCategories(t *testing.T) {
	// "learn" matches education directly and technology via "machine learning".
	result := Keywords(kc("learn"))

	if _, ok := result["education"]; !ok {
		t.Errorf("expected 'learn' in education, got %v", result)
	}
	if _, ok := result["technology"]; !ok {
		t.Errorf("expected 'learn' in technology via 'machine learning', got %v", result)
	}
}

func TestKeywordsCaseInsensitive(t *testing.T) {
	result := Keywords(kc("Python"))

	tech, ok := result["technology"]
	if !ok || !reflect.DeepEqual(tech, []string{"Python"}) {
		t.Errorf("expected technology=[Python], got %v", tech)
	}
}

func TestKeywordsOmitsEmptyCategories(t *testing.T) {
	result := Keywords(kc("python"))

	if len(result) != 1 {
		t.Errorf("expected only matching categories, got %v", result)
	}
	if _, ok := result["entertainment"]; ok {
		t.Error("entertainment should be absent when nothing matched it")
	}
}

func TestKeywordsUnmatchedKeyword(t *testing.T) {
	result := Keywords(kc("zzqx"))
	if len(result) != 0 {
		t.Errorf("expected no categories for unmatched keyword, got %v", result)
	}
}

func TestKeywordsPreservesRankOrder(t *testing.T) {
	result := Keywords(kc("javascript", "python", "linux"))

	tech, ok := result["technology"]
	if !ok {
		t.Fatal("expected technology category")
	}
	expected := []string{"javascript", "python", "linux"}
	if !reflect.DeepEqual(tech, expected) {
		t.Errorf("expected rank order %v, got %v", expected, tech)
	}
}

func TestKeywordsEmptyInput(t *testing.T) {
	result := Keywords(nil)
	if result == nil {
		t.Fatal("expected non-nil map")
	}
	if len(result) != 0 {
		t.Errorf("expected empty map, got %v", result)
	}
}

func TestOrderIsStable(t *testing.T) {
	expected := []string{"technology", "education", "entertainment", "lifestyle", "business", "gaming"}
	if !reflect.DeepEqual(Order(), expected) {
		t.Errorf("unexpected category order: %v", Order())
	}
}
