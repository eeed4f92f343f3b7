package textproc

import "strings"

// Stem reduces a token to a canonical form using a small set of English
// suffix rules. It is intentionally lighter than a full Porter stemmer:
// the goal is that inflected variants of the same word collapse to one
// vocabulary entry, deterministically, without a dictionary. Stemming a
// stemmed token returns it unchanged.
func Stem(token string) string {
	if len(token) <= 4 {
		return token
	}

	switch {
	case strings.HasSuffix(token, "sses"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "ss"):
		return token
	case strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "us") && !strings.HasSuffix(token, "is"):
		return token[:len(token)-1]
	}

	if len(token) > 6 && strings.HasSuffix(token, "ing") {
		return token[:len(token)-3]
	}
	if len(token) > 5 && strings.HasSuffix(token, "ed") {
		return token[:len(token)-2]
	}

	return token
}
