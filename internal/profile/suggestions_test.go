package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bharanieeswaran/RankRite/internal/types"
)

func TestMatchLevel(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{score: 0.95, expected: "Excellent Match"},
		{score: 0.90, expected: "Excellent Match"},
		{score: 0.80, expected: "Strong Match"},
		{score: 0.50, expected: "Moderate Match"},
		{score: 0.10, expected: "Needs Improvement"},
		{score: 0.0, expected: "Needs Improvement"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MatchLevel(tt.score), "score %v", tt.score)
	}
}

func TestSkillGapSuggestions_NoGaps(t *testing.T) {
	suggestions := SkillGapSuggestions(nil, []string{"python"})

	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "all the required skills")
}

func TestSkillGapSuggestions_SplitsCriticalFromNiceToHave(t *testing.T) {
	suggestions := SkillGapSuggestions([]string{"python", "figma"}, nil)

	require.GreaterOrEqual(t, len(suggestions), 2)
	assert.Contains(t, suggestions[0], "critical")
	assert.Contains(t, suggestions[0], "python")
	assert.Contains(t, suggestions[1], "figma")
}

func TestImprovementSuggestions_CappedAtFive(t *testing.T) {
	suggestions := ImprovementSuggestions(0.1, []string{"go"}, []string{"java", "sql", "aws"})

	assert.LessOrEqual(t, len(suggestions), 5)
	assert.Contains(t, suggestions[0], "Skills Match")
}

func TestAnalyzeSkillTrends(t *testing.T) {
	records := []*types.HistoryRecord{
		{Ranked: []types.RankedSnapshot{
			{MatchedSkills: []string{"python", "docker"}},
			{MatchedSkills: []string{"python"}},
		}},
		{Ranked: []types.RankedSnapshot{
			{MatchedSkills: []string{"Python", "aws"}},
		}},
	}

	trends := AnalyzeSkillTrends(records)

	assert.Equal(t, 2, trends.TotalAnalyses)
	assert.Equal(t, 3, trends.UniqueSkills)
	require.NotEmpty(t, trends.TrendingSkills)
	assert.Equal(t, TrendingSkill{Skill: "python", Count: 3}, trends.TrendingSkills[0])
}

func TestAnalyzeSkillTrends_Empty(t *testing.T) {
	trends := AnalyzeSkillTrends(nil)

	assert.Zero(t, trends.TotalAnalyses)
	assert.Zero(t, trends.UniqueSkills)
	assert.Empty(t, trends.TrendingSkills)
}

func TestGetIndustryInsights(t *testing.T) {
	insights := GetIndustryInsights()

	assert.NotEmpty(t, insights.HighDemandSkills)
	assert.NotEmpty(t, insights.ResumeTips)
}
