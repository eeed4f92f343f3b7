// Package similarity computes pairwise relevance between weight vectors.
package similarity

import "math"

// Cosine returns the cosine similarity between two non-negative weight
// vectors, clamped to [0,1] so floating-point rounding can never push a
// score past 1. If either vector is the zero vector (no vocabulary
// overlap at all) the similarity is exactly 0 — not NaN, not an error.
func Cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	for i := n; i < len(a); i++ {
		normA += a[i] * a[i]
	}
	for i := n; i < len(b); i++ {
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
