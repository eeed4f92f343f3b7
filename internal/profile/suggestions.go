package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Bharanieeswaran/RankRite/internal/types"
)

// Match level thresholds over the relevance score.
const (
	excellentThreshold = 0.90
	strongThreshold    = 0.75
	moderateThreshold  = 0.50
)

// MatchLevel maps a relevance score in [0,1] to a display label.
func MatchLevel(score float64) string {
	switch {
	case score >= excellentThreshold:
		return "Excellent Match"
	case score >= strongThreshold:
		return "Strong Match"
	case score >= moderateThreshold:
		return "Moderate Match"
	default:
		return "Needs Improvement"
	}
}

// criticalSkillKeywords mark missing skills worth calling out first.
var criticalSkillKeywords = []string{"python", "java", "sql", "project management", "leadership"}

// SkillGapSuggestions builds guidance for closing the gap between a
// resume's skills and the job's requirements.
func SkillGapSuggestions(missingSkills, matchedSkills []string) []string {
	if len(missingSkills) == 0 {
		return []string{"Great! You have all the required skills for this position."}
	}

	critical := make([]string, 0, len(missingSkills))
	niceToHave := make([]string, 0, len(missingSkills))
	for _, skill := range missingSkills {
		lower := strings.ToLower(skill)
		isCritical := false
		for _, keyword := range criticalSkillKeywords {
			if strings.Contains(lower, keyword) {
				isCritical = true
				break
			}
		}
		if isCritical {
			critical = append(critical, skill)
		} else {
			niceToHave = append(niceToHave, skill)
		}
	}

	suggestions := make([]string, 0, 3)
	if len(critical) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Focus on learning these critical skills: %s", strings.Join(capList(critical, 3), ", ")))
	}
	if len(niceToHave) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Consider adding these skills to strengthen your profile: %s", strings.Join(capList(niceToHave, 3), ", ")))
	}
	suggestions = append(suggestions, "Consider online courses, certifications, or hands-on projects to develop these skills.")
	return suggestions
}

// ImprovementSuggestions builds resume advice from the relevance score
// and the skill match ratio, capped at five entries.
func ImprovementSuggestions(score float64, matchedSkills, missingSkills []string) []string {
	suggestions := make([]string, 0, 5)

	total := len(matchedSkills) + len(missingSkills)
	if total > 0 && float64(len(matchedSkills))/float64(total) < 0.6 {
		suggestions = append(suggestions, "Skills Match: Consider highlighting more relevant technical skills and tools mentioned in the job description.")
	}
	if score < 0.4 {
		suggestions = append(suggestions, "Content: Use more keywords from the job description and tailor your resume content to better match the role.")
	}

	suggestions = append(suggestions,
		"Use action verbs and quantify your accomplishments with specific numbers and results.",
		"Customize your resume for each application to better match the specific requirements.",
		"Consider adding a skills section that prominently features the most relevant technical skills.",
	)

	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}

func capList(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

// TrendingSkill is one skill with its occurrence count across analyses.
type TrendingSkill struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// SkillTrends summarizes how often skills matched across a user's past
// analyses.
type SkillTrends struct {
	TrendingSkills []TrendingSkill `json:"trending_skills"`
	TotalAnalyses  int             `json:"total_analyses"`
	UniqueSkills   int             `json:"unique_skills"`
}

// trendingSkillLimit caps the trending list, as the original reports the
// top 20 skills.
const trendingSkillLimit = 20

// AnalyzeSkillTrends aggregates matched skills across history records,
// newest or oldest first makes no difference to the counts.
func AnalyzeSkillTrends(records []*types.HistoryRecord) SkillTrends {
	frequency := make(map[string]int)
	for _, record := range records {
		for _, snapshot := range record.Ranked {
			for _, skill := range snapshot.MatchedSkills {
				frequency[strings.ToLower(skill)]++
			}
		}
	}

	trending := make([]TrendingSkill, 0, len(frequency))
	for skill, count := range frequency {
		trending = append(trending, TrendingSkill{Skill: skill, Count: count})
	}
	sort.Slice(trending, func(i, j int) bool {
		if trending[i].Count != trending[j].Count {
			return trending[i].Count > trending[j].Count
		}
		return trending[i].Skill < trending[j].Skill
	})
	if len(trending) > trendingSkillLimit {
		trending = trending[:trendingSkillLimit]
	}

	return SkillTrends{
		TrendingSkills: trending,
		TotalAnalyses:  len(records),
		UniqueSkills:   len(frequency),
	}
}

// IndustryInsights is the static tips payload served alongside analyses.
type IndustryInsights struct {
	HighDemandSkills     []string `json:"high_demand_skills"`
	EmergingTechnologies []string `json:"emerging_technologies"`
	SoftSkills           []string `json:"soft_skills_importance"`
	ResumeTips           []string `json:"resume_tips"`
}

// GetIndustryInsights returns predefined industry insights and resume tips.
func GetIndustryInsights() IndustryInsights {
	return IndustryInsights{
		HighDemandSkills: []string{
			"Python", "JavaScript", "React", "Node.js", "AWS", "Docker",
			"Kubernetes", "Machine Learning", "Data Analysis", "SQL",
		},
		EmergingTechnologies: []string{
			"Artificial Intelligence", "Blockchain", "IoT", "Edge Computing",
			"Quantum Computing", "AR/VR", "DevOps", "Microservices",
		},
		SoftSkills: []string{
			"Communication", "Leadership", "Problem Solving", "Adaptability",
			"Teamwork", "Critical Thinking", "Time Management", "Creativity",
		},
		ResumeTips: []string{
			"Use action verbs to start bullet points (e.g., 'Developed', 'Implemented', 'Led')",
			"Quantify achievements with specific numbers and percentages",
			"Tailor your resume for each job application",
			"Include relevant keywords from the job description",
			"Keep your resume concise (1-2 pages maximum)",
			"Use a clean, professional format",
			"Include a skills section with technical competencies",
			"Highlight recent and relevant experience first",
			"Proofread carefully for grammar and spelling errors",
			"Update your resume regularly with new achievements",
		},
	}
}
