package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_FindsKnownSkills(t *testing.T) {
	text := "Senior engineer with Python, Docker and PostgreSQL. Led agile teams."

	skills := ExtractSkills(text)

	names := make(map[string]string, len(skills))
	for _, s := range skills {
		names[s.Name] = s.Category
	}

	assert.Equal(t, "programming", names["python"])
	assert.Equal(t, "cloud", names["docker"])
	assert.Equal(t, "databases", names["postgresql"])
	assert.Equal(t, "soft_skills", names["agile"])
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	// "cargo" must not match the skill "go", "scalar" must not match "scala".
	skills := ExtractSkills("shipped cargo with a scalar field")

	assert.Empty(t, skills)
}

func TestExtractSkills_CaseInsensitiveAndDeterministic(t *testing.T) {
	text := "PYTHON and Kubernetes and python again"

	first := ExtractSkills(text)
	require.Len(t, first, 2)
	assert.Equal(t, "kubernetes", first[0].Name)
	assert.Equal(t, "python", first[1].Name)

	assert.Equal(t, first, ExtractSkills(text))
}

func TestExtractSkills_MultiWordPhrases(t *testing.T) {
	skills := ExtractSkills("Experienced in machine learning and project management")

	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "machine learning")
	assert.Contains(t, names, "project management")
}

func TestAnalyzeSkillMatch(t *testing.T) {
	resume := []Skill{{Name: "python"}, {Name: "docker"}}
	job := []Skill{{Name: "python"}, {Name: "kubernetes"}, {Name: "aws"}}

	matched, missing := AnalyzeSkillMatch(resume, job)

	assert.Equal(t, []string{"python"}, matched)
	assert.Equal(t, []string{"aws", "kubernetes"}, missing)
}

func TestAnalyzeSkillMatch_NoJobSkills(t *testing.T) {
	matched, missing := AnalyzeSkillMatch([]Skill{{Name: "go"}}, nil)

	assert.Empty(t, matched)
	assert.Empty(t, missing)
}
