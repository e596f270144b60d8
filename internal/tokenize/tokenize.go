// Package tokenize normalizes video metadata text into keyword tokens.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenRunes is the minimum length for a token to count as a keyword.
const minTokenRunes = 2

// Words splits free text (titles, descriptions) into normalized tokens:
// lowercase, alphanumeric-only, at least two runes, stopwords removed.
// Empty input yields an empty slice, never an error.
func Words(text string) []string {
	if text == "" {
		return nil
	}

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, w := range fields {
		if utf8.RuneCountInString(w) < minTokenRunes {
			continue
		}
		if IsStopword(w) {
			continue
		}
		tokens = append(tokens, w)
	}

	return tokens
}

// Tag normalizes a curated tag. Tags are pre-formed keyword candidates and
// bypass word-splitting: multi-word tags like "machine learning" stay whole.
// Returns the empty string when the tag should be dropped.
func Tag(tag string) string {
	t := strings.ToLower(strings.TrimSpace(tag))
	if utf8.RuneCountInString(t) < minTokenRunes {
		return ""
	}
	if IsStopword(t) {
		return ""
	}
	return t
}
