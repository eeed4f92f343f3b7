// Package ranking orders candidate resumes by relevance to a job
// description and computes pairwise comparison matrices.
package ranking

import (
	"sort"

	"github.com/Bharanieeswaran/RankRite/internal/similarity"
	"github.com/Bharanieeswaran/RankRite/internal/types"
	"github.com/Bharanieeswaran/RankRite/internal/vectorspace"
)

// DefaultMatchedTermCount is the number of matched terms extracted per
// resume when the caller does not configure one.
const DefaultMatchedTermCount = 5

// Candidate is one resume vector with its identifier and original
// submission order.
type Candidate struct {
	ResumeID string
	Order    int
	Vector   []float64
}

// Rank scores every candidate against the job vector and returns
// ScoreResults with ranks 1..N. The order is total: score descending,
// ties broken by submission order ascending, so two runs over the same
// input always produce the same ranking.
func Rank(space *vectorspace.VectorSpace, jobVector []float64, candidates []Candidate, topK int) []types.ScoreResult {
	if topK <= 0 {
		topK = DefaultMatchedTermCount
	}

	results := make([]types.ScoreResult, 0, len(candidates))
	orders := make(map[string]int, len(candidates))
	for _, cand := range candidates {
		results = append(results, types.ScoreResult{
			ResumeID:     cand.ResumeID,
			Score:        similarity.Cosine(jobVector, cand.Vector),
			MatchedTerms: matchedTerms(space, jobVector, cand.Vector, topK),
		})
		orders[cand.ResumeID] = cand.Order
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return orders[results[i].ResumeID] < orders[results[j].ResumeID]
	})

	for i := range results {
		results[i].Rank = i + 1
	}

	return results
}

// matchedTerms extracts the top-K terms present in both vectors, ordered
// by the product of their weights (highest joint contribution first).
// Equal products fall back to alphabetical order so extraction stays
// deterministic. Matched terms explain a score; they never influence it.
func matchedTerms(space *vectorspace.VectorSpace, jobVector, resumeVector []float64, topK int) []types.MatchedTerm {
	shared := make([]types.MatchedTerm, 0, topK)
	for i := range jobVector {
		if jobVector[i] > 0 && resumeVector[i] > 0 {
			shared = append(shared, types.MatchedTerm{
				Term:   space.Term(i),
				Weight: jobVector[i] * resumeVector[i],
			})
		}
	}

	sort.Slice(shared, func(i, j int) bool {
		if shared[i].Weight != shared[j].Weight {
			return shared[i].Weight > shared[j].Weight
		}
		return shared[i].Term < shared[j].Term
	})

	if len(shared) > topK {
		shared = shared[:topK]
	}
	return shared
}
