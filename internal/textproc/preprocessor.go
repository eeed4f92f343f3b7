// Package textproc normalizes raw document text into comparable token streams.
package textproc

import (
	"strings"
	"unicode"
)

// Preprocessor turns raw text into a normalized token sequence: lowercase,
// punctuation stripped, stopwords removed, and optionally suffix-stemmed.
// The same input always produces the same output, and running the output
// back through produces the same tokens again.
type Preprocessor struct {
	stopwords map[string]struct{}
	stemming  bool
}

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithStopwords replaces the default stopword list.
func WithStopwords(words []string) Option {
	return func(p *Preprocessor) {
		p.stopwords = make(map[string]struct{}, len(words))
		for _, w := range words {
			p.stopwords[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
		}
	}
}

// WithStemming enables or disables suffix stemming. Stemming is on by default.
func WithStemming(enabled bool) Option {
	return func(p *Preprocessor) {
		p.stemming = enabled
	}
}

// New creates a Preprocessor with the default English stopword list and
// stemming enabled.
func New(opts ...Option) *Preprocessor {
	p := &Preprocessor{
		stopwords: defaultStopwordSet(),
		stemming:  true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tokenize produces the normalized token sequence for text. Empty or
// entirely-stopword input yields an empty (non-nil) slice; emptiness is
// not an error at this layer.
func (p *Preprocessor) Tokenize(text string) []string {
	cleaned := normalize(text)

	tokens := make([]string, 0, 32)
	for _, field := range strings.Fields(cleaned) {
		if _, stop := p.stopwords[field]; stop {
			continue
		}
		if p.stemming {
			field = Stem(field)
		}
		if field == "" {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// normalize lowercases text and replaces every rune that is not a letter
// or digit with a space, collapsing punctuation and whitespace runs.
func normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
