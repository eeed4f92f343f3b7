package textproc

import "strings"

// defaultStopwords is the fixed default English stopword list. Callers
// that need a different list supply one via WithStopwords.
var defaultStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "could",
	"did", "do", "does", "doing", "down", "during", "each", "few", "for",
	"from", "further", "had", "has", "have", "having", "he", "her", "here",
	"hers", "herself", "him", "himself", "his", "how", "i", "if", "in",
	"into", "is", "it", "its", "itself", "just", "me", "more", "most",
	"my", "myself", "no", "nor", "not", "now", "of", "off", "on", "once",
	"only", "or", "other", "our", "ours", "ourselves", "out", "over",
	"own", "same", "she", "should", "so", "some", "such", "than", "that",
	"the", "their", "theirs", "them", "themselves", "then", "there",
	"these", "they", "this", "those", "through", "to", "too", "under",
	"until", "up", "very", "was", "we", "were", "what", "when", "where",
	"which", "while", "who", "whom", "why", "will", "with", "would",
	"you", "your", "yours", "yourself", "yourselves",
}

func defaultStopwordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(defaultStopwords))
	for _, w := range defaultStopwords {
		set[w] = struct{}{}
	}
	return set
}

// DefaultStopwords returns a copy of the default stopword list.
func DefaultStopwords() []string {
	out := make([]string, len(defaultStopwords))
	copy(out, defaultStopwords)
	return out
}

// ParseStopwordList parses a stopword list from newline- or
// comma-separated text, ignoring blanks and comment lines.
func ParseStopwordList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ',' || r == '\r'
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || strings.HasPrefix(f, "#") {
			continue
		}
		words = append(words, strings.ToLower(f))
	}
	return words
}
