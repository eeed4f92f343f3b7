package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_SymmetricWithUnitDiagonal(t *testing.T) {
	vs := buildSpace(t, [][]string{
		{"go", "backend", "api"},
		{"go", "frontend", "react"},
		{"accounting", "payroll"},
	})

	m := Compare([]string{"a", "b", "c"}, [][]float64{
		vs.Vector(0), vs.Vector(1), vs.Vector(2),
	})

	require.Equal(t, 3, m.Size())
	for i := 0; i < m.Size(); i++ {
		// Diagonal is 1.0 by definition, not a computed value.
		assert.Equal(t, 1.0, m.At(i, i))
		for j := 0; j < m.Size(); j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i))
			assert.GreaterOrEqual(t, m.At(i, j), 0.0)
			assert.LessOrEqual(t, m.At(i, j), 1.0)
		}
	}

	// "c" shares no vocabulary with "a" or "b".
	assert.Equal(t, 0.0, m.At(0, 2))
	assert.Equal(t, 0.0, m.At(1, 2))
}

func TestCompare_IdenticalResumesScoreOne(t *testing.T) {
	tokens := []string{"python", "django", "postgresql"}
	vs := buildSpace(t, [][]string{tokens, tokens})

	m := Compare([]string{"x", "y"}, [][]float64{vs.Vector(0), vs.Vector(1)})

	assert.InDelta(t, 1.0, m.At(0, 1), 1e-9)
	assert.InDelta(t, 1.0, m.At(1, 0), 1e-9)
}

func TestCompare_CopiesResumeIDs(t *testing.T) {
	ids := []string{"a", "b"}
	vs := buildSpace(t, [][]string{{"one"}, {"two"}})

	m := Compare(ids, [][]float64{vs.Vector(0), vs.Vector(1)})
	ids[0] = "mutated"

	assert.Equal(t, "a", m.ResumeIDs[0])
}
