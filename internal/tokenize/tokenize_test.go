package tokenize

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "simple title",
			text:     "Go tutorial for beginners",
			expected: []string{"go", "tutorial", "beginners"},
		},
		{
			name:     "lowercases input",
			text:     "PYTHON Programming",
			expected: []string{"python", "programming"},
		},
		{
			name:     "strips punctuation and symbols",
			text:     "docker, kubernetes & terraform!",
			expected: []string{"docker", "kubernetes", "terraform"},
		},
		{
			name:     "drops single-rune tokens",
			text:     "a b c python",
			expected: []string{"python"},
		},
		{
			name:     "removes stopwords",
			text:     "the best camera you can buy",
			expected: []string{"best", "camera", "buy"},
		},
		{
			name:     "removes domain filler words",
			text:     "subscribe to my channel for more videos",
			expected: []string{},
		},
		{
			name:     "empty input",
			text:     "",
			expected: nil,
		},
		{
			name:     "punctuation only",
			text:     "!!! ... ???",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.text)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Words(%q) = %v, expected %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		expected string
	}{
		{name: "single word", tag: "Python", expected: "python"},
		{name: "multi-word tag stays whole", tag: "Machine Learning", expected: "machine learning"},
		{name: "trims whitespace", tag: "  docker  ", expected: "docker"},
		{name: "too short", tag: "a", expected: ""},
		{name: "stopword dropped", tag: "the", expected: ""},
		{name: "empty", tag: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tag(tt.tag); got != tt.expected {
				t.Errorf("Tag(%q) = %q, expected %q", tt.tag, got, tt.expected)
			}
		})
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("the") {
		t.Error("expected 'the' to be a stopword")
	}
	if IsStopword("python") {
		t.Error("expected 'python' to not be a stopword")
	}
}
