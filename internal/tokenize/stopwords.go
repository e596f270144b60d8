package tokenize

// stopwords contains common English function words and filler terms that
// carry no topical signal in video titles and descriptions.
var stopwords = map[string]struct{}{
	// Articles and determiners
	"a": {}, "an": {}, "the": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"each": {}, "every": {}, "some": {}, "any": {}, "no": {}, "all": {},
	// Pronouns
	"i": {}, "me": {}, "my": {}, "we": {}, "us": {}, "our": {}, "you": {}, "your": {},
	"he": {}, "him": {}, "his": {}, "she": {}, "her": {}, "it": {}, "its": {},
	"they": {}, "them": {}, "their": {}, "who": {}, "what": {}, "which": {},
	// Auxiliaries and modals
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "do": {}, "does": {}, "did": {}, "have": {}, "has": {}, "had": {},
	"will": {}, "would": {}, "can": {}, "could": {}, "should": {}, "shall": {},
	"may": {}, "might": {}, "must": {},
	// Prepositions
	"in": {}, "on": {}, "at": {}, "by": {}, "for": {}, "with": {}, "about": {},
	"against": {}, "between": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "above": {}, "below": {}, "to": {}, "from": {},
	"up": {}, "down": {}, "of": {}, "off": {}, "over": {}, "under": {},
	// Conjunctions
	"and": {}, "but": {}, "or": {}, "nor": {}, "so": {}, "if": {}, "then": {},
	"than": {}, "because": {}, "while": {}, "as": {},
	// Adverbs and filler
	"not": {}, "only": {}, "just": {}, "very": {}, "too": {}, "also": {},
	"here": {}, "there": {}, "when": {}, "where": {}, "why": {}, "how": {},
	"more": {}, "most": {}, "other": {}, "such": {}, "own": {}, "same": {},
	"out": {}, "again": {}, "once": {}, "now": {},
	// Common in video descriptions but not topical
	"video": {}, "videos": {}, "channel": {}, "subscribe": {}, "like": {},
	"comment": {}, "watch": {}, "check": {}, "dont": {}, "youre": {}, "well": {},
	"get": {}, "make": {}, "use": {}, "one": {}, "two": {}, "new": {},
}

// IsStopword reports whether word (already lowercased) is a stopword.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
