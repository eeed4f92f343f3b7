// Package profile extracts lexical insight (skills, experience, education,
// contact details) from document text. Extraction is keyword-driven and
// deterministic; it explains and enriches ranking results but never feeds
// into the relevance score itself.
package profile

import (
	"regexp"
	"sort"
	"strings"
)

// Skill is one detected skill with its database category.
type Skill struct {
	Name       string  `json:"skill"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// skillsDatabase maps categories to known skill keywords. Multi-word
// entries are matched as phrases.
var skillsDatabase = map[string][]string{
	"programming": {
		"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "rust", "kotlin",
		"swift", "typescript", "scala", "r", "matlab", "sql", "nosql", "html", "css",
	},
	"frameworks": {
		"react", "angular", "vue", "django", "flask", "spring", "laravel", "nodejs",
		"express", "bootstrap", "tailwind", "jquery", "redux", "vuex", "nextjs", "nuxtjs",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "sqlite", "oracle",
		"cassandra", "dynamodb", "firebase", "mariadb", "couchdb",
	},
	"cloud": {
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab", "github",
		"terraform", "ansible", "vagrant", "heroku", "digitalocean", "cloudflare",
	},
	"data_science": {
		"machine learning", "deep learning", "data analysis", "pandas", "numpy", "scikit-learn",
		"tensorflow", "pytorch", "keras", "matplotlib", "seaborn", "plotly", "tableau",
		"power bi", "jupyter", "apache spark", "hadoop",
	},
	"tools": {
		"git", "jira", "confluence", "slack", "trello", "asana", "figma", "adobe xd",
		"photoshop", "illustrator", "sketch", "invision", "zeplin", "postman",
	},
	"soft_skills": {
		"leadership", "communication", "teamwork", "problem solving", "critical thinking",
		"time management", "project management", "agile", "scrum", "kanban", "analytical",
		"creative", "adaptable", "collaborative", "detail oriented",
	},
	"business": {
		"project management", "business analysis", "requirements gathering", "stakeholder management",
		"process improvement", "strategic planning", "budget management", "risk management",
		"quality assurance", "customer service", "sales", "marketing", "seo", "sem",
	},
}

// skillPatterns holds one word-boundary regexp per skill, compiled once.
var skillPatterns = buildSkillPatterns()

type skillPattern struct {
	skill    string
	category string
	re       *regexp.Regexp
}

func buildSkillPatterns() []skillPattern {
	categories := make([]string, 0, len(skillsDatabase))
	for category := range skillsDatabase {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	patterns := make([]skillPattern, 0, 128)
	for _, category := range categories {
		for _, skill := range skillsDatabase[category] {
			// Word boundaries avoid partial matches ("go" inside "cargo").
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
			patterns = append(patterns, skillPattern{skill: skill, category: category, re: re})
		}
	}
	return patterns
}

// ExtractSkills finds known skills in text. Duplicates across categories
// keep the first category in sorted-category order, and the result is
// sorted by skill name so extraction is deterministic.
func ExtractSkills(text string) []Skill {
	seen := make(map[string]Skill)
	for _, p := range skillPatterns {
		if _, ok := seen[p.skill]; ok {
			continue
		}
		if p.re.MatchString(text) {
			seen[p.skill] = Skill{Name: p.skill, Category: p.category, Confidence: 1.0}
		}
	}

	skills := make([]Skill, 0, len(seen))
	for _, s := range seen {
		skills = append(skills, s)
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills
}

// AnalyzeSkillMatch splits the job's skill requirements into those the
// resume covers and those it is missing. Both slices are sorted.
func AnalyzeSkillMatch(resumeSkills, jobSkills []Skill) (matched, missing []string) {
	resumeSet := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[strings.ToLower(s.Name)] = struct{}{}
	}

	matched = make([]string, 0, len(jobSkills))
	missing = make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		name := strings.ToLower(s.Name)
		if _, ok := resumeSet[name]; ok {
			matched = append(matched, name)
		} else {
			missing = append(missing, name)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}
