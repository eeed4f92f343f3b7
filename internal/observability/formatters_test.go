package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bharanieeswaran/RankRite/internal/types"
)

func TestPrintRankedResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.RankedResume{
		{
			ScoreResult: types.ScoreResult{
				ResumeID: "alice",
				Score:    0.9231,
				Rank:     1,
				MatchedTerms: []types.MatchedTerm{
					{Term: "python", Weight: 1.2},
					{Term: "systems", Weight: 0.8},
				},
			},
			MatchLevel:    "Excellent Match",
			MatchedSkills: []string{"python", "sql"},
		},
		{
			ScoreResult: types.ScoreResult{ResumeID: "bob", Score: 0.1, Rank: 2},
			MatchLevel:  "Needs Improvement",
		},
	}

	p.PrintRankedResults(results)
	out := buf.String()

	assert.Contains(t, out, "RANKED RESUMES")
	assert.Contains(t, out, "#1  alice")
	assert.Contains(t, out, "0.9231")
	assert.Contains(t, out, "Excellent Match")
	assert.Contains(t, out, "python, sql")
	assert.Contains(t, out, "#2  bob")
}

func TestPrintRankedResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedResults(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRankedResults_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := make([]types.RankedResume, 8)
	for i := range results {
		results[i] = types.RankedResume{
			ScoreResult: types.ScoreResult{ResumeID: "r", Rank: i + 1},
		}
	}

	p.PrintRankedResults(results)
	assert.Contains(t, buf.String(), "and 3 more resumes")
}

func TestPrintComparisonMatrix(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matrix := &types.ComparisonMatrix{
		ResumeIDs: []string{"alice", "a-very-long-identifier"},
		Scores: [][]float64{
			{1.0, 0.25},
			{0.25, 1.0},
		},
	}

	p.PrintComparisonMatrix(matrix)
	out := buf.String()

	assert.Contains(t, out, "COMPARISON MATRIX")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "0.250")
	// Long IDs are shortened
	assert.Contains(t, out, "a-very...")
	assert.False(t, strings.Contains(out, "a-very-long-identifier"))
}

func TestPrintComparisonMatrix_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintComparisonMatrix(nil)
	assert.Empty(t, buf.String())
}
