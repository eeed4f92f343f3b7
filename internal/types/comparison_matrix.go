package types

// ComparisonMatrix holds pairwise cosine similarities among N resumes.
// Scores[i][j] == Scores[j][i] and the diagonal is exactly 1.0. The matrix
// imposes no ordering; display order is the caller's concern.
type ComparisonMatrix struct {
	ResumeIDs []string    `json:"resume_ids"`
	Scores    [][]float64 `json:"scores"`
}

// Size returns the number of resumes in the matrix.
func (m *ComparisonMatrix) Size() int {
	return len(m.ResumeIDs)
}

// At returns the similarity between resumes i and j.
func (m *ComparisonMatrix) At(i, j int) float64 {
	return m.Scores[i][j]
}
