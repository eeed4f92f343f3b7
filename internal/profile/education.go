package profile

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Bharanieeswaran/RankRite/internal/types"
)

var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "associate", "diploma", "certificate",
	"bs", "ba", "ms", "ma", "mba", "btech", "mtech", "bsc", "msc",
}

var educationFields = []string{
	"computer science", "software engineering", "information technology", "data science",
	"artificial intelligence", "machine learning", "cybersecurity", "business administration",
	"marketing", "finance", "accounting", "engineering", "mathematics", "statistics",
	"physics", "chemistry", "biology", "psychology", "economics",
}

var degreePattern = regexp.MustCompile(
	`(?i)\b(` + strings.Join(degreeKeywords, "|") + `)\b(?:\s+degree)?(?:\s+(?:of|in)\s+([a-z][a-z ]+))?`)

// ExtractEducation detects degrees (with fields when stated) and fields
// of study mentioned on their own. Duplicate degree/field pairs are
// removed and the result is sorted for determinism.
func ExtractEducation(text string) []types.Education {
	lower := strings.ToLower(text)
	found := make([]types.Education, 0, 4)

	for _, match := range degreePattern.FindAllStringSubmatch(lower, -1) {
		degree := strings.TrimSpace(match[1])
		field := "unknown"
		if len(match) > 2 && match[2] != "" {
			field = trimFieldPhrase(match[2])
		}
		found = append(found, types.Education{Degree: degree, Field: field, Confidence: 0.9})
	}

	for _, field := range educationFields {
		if strings.Contains(lower, field) {
			found = append(found, types.Education{Degree: "unknown", Field: field, Confidence: 0.7})
		}
	}

	seen := make(map[string]struct{}, len(found))
	unique := make([]types.Education, 0, len(found))
	for _, edu := range found {
		key := edu.Degree + "|" + edu.Field
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, edu)
	}

	sort.Slice(unique, func(i, j int) bool {
		if unique[i].Degree != unique[j].Degree {
			return unique[i].Degree < unique[j].Degree
		}
		return unique[i].Field < unique[j].Field
	})
	return unique
}

// trimFieldPhrase cuts a captured field phrase down to the known field
// it starts with, or its first three words otherwise.
func trimFieldPhrase(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, field := range educationFields {
		if strings.HasPrefix(raw, field) {
			return field
		}
	}
	words := strings.Fields(raw)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}
