package textproc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_LowercasesAndStripsPunctuation(t *testing.T) {
	p := New(WithStemming(false))

	tokens := p.Tokenize("Senior Backend Engineer -- Python, Distributed Systems!")

	assert.Equal(t, []string{"senior", "backend", "engineer", "python", "distributed", "systems"}, tokens)
}

func TestTokenize_RemovesStopwords(t *testing.T) {
	p := New(WithStemming(false))

	tokens := p.Tokenize("the quick fox and the lazy dog")

	assert.Equal(t, []string{"quick", "fox", "lazy", "dog"}, tokens)
}

func TestTokenize_EmptyAndStopwordOnlyInput(t *testing.T) {
	p := New()

	assert.Empty(t, p.Tokenize(""))
	assert.Empty(t, p.Tokenize("   \t\n  "))
	assert.Empty(t, p.Tokenize("the a of and or"))
	assert.Empty(t, p.Tokenize("!!! ... ---"))
}

func TestTokenize_Deterministic(t *testing.T) {
	p := New()
	input := "Built distributed systems in Go; designed APIs, led teams of 5 engineers."

	first := p.Tokenize(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.Tokenize(input))
	}
}

func TestTokenize_IdempotentOnNormalizedInput(t *testing.T) {
	p := New()

	first := p.Tokenize("Designing scalable microservices with Kubernetes and PostgreSQL databases")
	second := p.Tokenize(strings.Join(first, " "))

	assert.Equal(t, first, second)
}

func TestTokenize_CustomStopwords(t *testing.T) {
	p := New(WithStemming(false), WithStopwords([]string{"python"}))

	tokens := p.Tokenize("the python developer")

	// Only the custom list applies; "the" is no longer filtered.
	assert.Equal(t, []string{"the", "developer"}, tokens)
}

func TestTokenize_KeepsDigits(t *testing.T) {
	p := New(WithStemming(false))

	tokens := p.Tokenize("5 years experience with S3")

	assert.Contains(t, tokens, "5")
	assert.Contains(t, tokens, "s3")
}

func TestStem(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "plural", token: "systems", expected: "system"},
		{name: "ies plural", token: "ponies", expected: "pony"},
		{name: "double s kept", token: "business", expected: "business"},
		{name: "sses", token: "classes", expected: "class"},
		{name: "ing", token: "ranking", expected: "rank"},
		{name: "ed", token: "distributed", expected: "distribut"},
		{name: "short token untouched", token: "go", expected: "go"},
		{name: "us suffix kept", token: "campus", expected: "campus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Stem(tt.token))
		})
	}
}

func TestStem_Idempotent(t *testing.T) {
	for _, token := range []string{"systems", "ponies", "classes", "ranking", "distributed", "engineering"} {
		once := Stem(token)
		assert.Equal(t, once, Stem(once), "stemming %q twice changed the result", token)
	}
}

func TestParseStopwordList(t *testing.T) {
	raw := "alpha\nbeta, gamma\n# comment\n\nDelta"

	words := ParseStopwordList(raw)

	require.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, words)
}
