package ranking

import (
	"github.com/Bharanieeswaran/RankRite/internal/similarity"
	"github.com/Bharanieeswaran/RankRite/internal/types"
)

// Compare computes the full pairwise similarity matrix for the given
// resume vectors. Each off-diagonal cell is computed once and mirrored,
// so the matrix is exactly symmetric. The diagonal is forced to 1.0 by
// definition rather than computed, which keeps self-similarity free of
// floating-point drift.
func Compare(resumeIDs []string, vectors [][]float64) *types.ComparisonMatrix {
	n := len(resumeIDs)
	scores := make([][]float64, n)
	for i := range scores {
		scores[i] = make([]float64, n)
		scores[i][i] = 1.0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := similarity.Cosine(vectors[i], vectors[j])
			scores[i][j] = sim
			scores[j][i] = sim
		}
	}

	ids := make([]string, n)
	copy(ids, resumeIDs)

	return &types.ComparisonMatrix{
		ResumeIDs: ids,
		Scores:    scores,
	}
}
