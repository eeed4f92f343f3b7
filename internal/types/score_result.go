package types

// MatchedTerm is a vocabulary term present in both the job vector and a
// resume vector, with the product of the two TF-IDF weights. The weight
// explains how much the term contributed to the match; it is not part of
// the score itself.
type MatchedTerm struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// ScoreResult is the outcome of comparing one resume to the job
// description. Immutable once produced by the ranking engine.
type ScoreResult struct {
	ResumeID     string        `json:"resume_id"`
	Score        float64       `json:"score"` // cosine similarity in [0,1]
	Rank         int           `json:"rank"`  // 1-based, unique within a request
	MatchedTerms []MatchedTerm `json:"matched_terms"`
}

// RankedResume pairs a ScoreResult with the lexical insight extracted for
// that resume. The insight fields explain the match; the ranking order is
// decided by ScoreResult alone.
type RankedResume struct {
	ScoreResult

	MatchLevel          string      `json:"match_level"`
	MatchedSkills       []string    `json:"matched_skills"`
	MissingSkills       []string    `json:"missing_skills"`
	Suggestions         []string    `json:"suggestions,omitempty"`
	SkillGapSuggestions []string    `json:"skill_gap_suggestions,omitempty"`
	ExperienceYears     int         `json:"experience_years"`
	Education           []Education `json:"education,omitempty"`
	ContactInfo         ContactInfo `json:"contact_info"`
}
