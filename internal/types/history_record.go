package types

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisMode is the kind of analysis a history record describes.
type AnalysisMode string

const (
	// ModeRank is resume-to-job ranking.
	ModeRank AnalysisMode = "rank"
	// ModeCompare is resume-to-resume comparison.
	ModeCompare AnalysisMode = "compare"
)

// RankedSnapshot is the persisted summary of one ranked resume. It carries
// scores, identifiers and matched terms only — never raw resume text.
type RankedSnapshot struct {
	ResumeID            string   `json:"resume_id"`
	Score               float64  `json:"score"`
	Rank                int      `json:"rank"`
	MatchLevel          string   `json:"match_level"`
	MatchedTerms        []string `json:"matched_terms,omitempty"`
	MatchedSkills       []string `json:"matched_skills,omitempty"`
	SkillGapSuggestions []string `json:"skill_gap_suggestions,omitempty"`
}

// MatrixSnapshot is the persisted summary of a comparison matrix.
type MatrixSnapshot struct {
	ResumeIDs []string    `json:"resume_ids"`
	Scores    [][]float64 `json:"scores"`
}

// HistoryRecord is the persisted summary of one completed analysis.
// Records are appended on completion and never mutated; exactly one of
// Ranked or Matrix is set depending on Mode.
type HistoryRecord struct {
	ID        uuid.UUID        `json:"id"`
	UserID    string           `json:"user_id"`
	Mode      AnalysisMode     `json:"mode"`
	CreatedAt time.Time        `json:"created_at"`
	Ranked    []RankedSnapshot `json:"ranked,omitempty"`
	Matrix    *MatrixSnapshot  `json:"matrix,omitempty"`
}
