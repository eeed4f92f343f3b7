// Package engine orchestrates one relevance analysis per request: it
// validates input, builds a fresh vector space, scores and ranks, and
// appends a summary to history. Every request constructs its own state
// from scratch and shares nothing mutable with concurrent requests; the
// history store is the only shared resource.
package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Bharanieeswaran/RankRite/internal/history"
	"github.com/Bharanieeswaran/RankRite/internal/profile"
	"github.com/Bharanieeswaran/RankRite/internal/ranking"
	"github.com/Bharanieeswaran/RankRite/internal/textproc"
	"github.com/Bharanieeswaran/RankRite/internal/types"
	"github.com/Bharanieeswaran/RankRite/internal/vectorspace"
)

// Analyzer runs ranking and comparison analyses. It is safe for
// concurrent use: its fields are read-only after construction.
type Analyzer struct {
	preprocessor *textproc.Preprocessor
	store        history.Store
	logger       *zap.Logger
	topK         int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMatchedTermCount sets how many matched terms are extracted per
// resume for explainability.
func WithMatchedTermCount(k int) Option {
	return func(a *Analyzer) {
		if k > 0 {
			a.topK = k
		}
	}
}

// NewAnalyzer creates an Analyzer. A nil logger is replaced with a no-op
// logger.
func NewAnalyzer(preprocessor *textproc.Preprocessor, store history.Store, logger *zap.Logger, opts ...Option) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Analyzer{
		preprocessor: preprocessor,
		store:        store,
		logger:       logger,
		topK:         ranking.DefaultMatchedTermCount,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RankResult is the outcome of one ranking analysis.
type RankResult struct {
	AnalysisID uuid.UUID            `json:"analysis_id"`
	Results    []types.RankedResume `json:"results"`
}

// CompareResult is the outcome of one comparison analysis. Stats carry
// the job-independent profile of each resume in submission order.
type CompareResult struct {
	AnalysisID uuid.UUID               `json:"analysis_id"`
	Matrix     *types.ComparisonMatrix `json:"matrix"`
	Stats      []types.ResumeStats     `json:"stats"`
}

// Rank scores every resume against the job description and returns them
// ranked. On success a history record is appended; if that append fails
// the result is still returned together with a *PersistenceError so the
// caller knows history was not saved. All other errors are terminal and
// no result is returned.
func (a *Analyzer) Rank(ctx context.Context, req *types.RankRequest) (*RankResult, error) {
	if err := validateRank(req); err != nil {
		return nil, err
	}

	docs, err := a.buildDocuments(ctx, req.JobDescription, req.Resumes)
	if err != nil {
		return nil, err
	}

	corpus := make([][]string, len(docs))
	for i, doc := range docs {
		corpus[i] = doc.Tokens
	}
	space, err := vectorspace.Build(corpus)
	if err != nil {
		return nil, err
	}

	candidates := make([]ranking.Candidate, 0, len(req.Resumes))
	for i := range req.Resumes {
		candidates = append(candidates, ranking.Candidate{
			ResumeID: docs[i+1].ID,
			Order:    docs[i+1].Order,
			Vector:   space.Vector(i + 1),
		})
	}

	scored := ranking.Rank(space, space.Vector(0), candidates, a.topK)
	results := a.enrich(req, scored)

	analysisID := uuid.New()
	record := rankHistoryRecord(analysisID, req.UserID, results)

	result := &RankResult{AnalysisID: analysisID, Results: results}
	if err := a.store.Append(ctx, record); err != nil {
		a.logger.Warn("analysis completed but history append failed",
			zap.String("user_id", req.UserID),
			zap.String("analysis_id", analysisID.String()),
			zap.Error(err))
		return result, &PersistenceError{Cause: err}
	}

	a.logger.Info("ranking analysis completed",
		zap.String("user_id", req.UserID),
		zap.String("analysis_id", analysisID.String()),
		zap.Int("resumes", len(req.Resumes)))
	return result, nil
}

// Compare computes the pairwise similarity matrix among the submitted
// resumes. Error semantics match Rank.
func (a *Analyzer) Compare(ctx context.Context, req *types.CompareRequest) (*CompareResult, error) {
	if err := validateCompare(req); err != nil {
		return nil, err
	}

	docs, err := a.buildDocuments(ctx, "", req.Resumes)
	if err != nil {
		return nil, err
	}

	corpus := make([][]string, len(docs))
	ids := make([]string, len(docs))
	for i, doc := range docs {
		corpus[i] = doc.Tokens
		ids[i] = doc.ID
	}
	space, err := vectorspace.Build(corpus)
	if err != nil {
		return nil, err
	}

	vectors := make([][]float64, len(docs))
	for i := range docs {
		vectors[i] = space.Vector(i)
	}
	matrix := ranking.Compare(ids, vectors)

	analysisID := uuid.New()
	record := &types.HistoryRecord{
		ID:        analysisID,
		UserID:    req.UserID,
		Mode:      types.ModeCompare,
		CreatedAt: time.Now().UTC(),
		Matrix: &types.MatrixSnapshot{
			ResumeIDs: matrix.ResumeIDs,
			Scores:    matrix.Scores,
		},
	}

	result := &CompareResult{
		AnalysisID: analysisID,
		Matrix:     matrix,
		Stats:      resumeStats(req.Resumes),
	}
	if err := a.store.Append(ctx, record); err != nil {
		a.logger.Warn("comparison completed but history append failed",
			zap.String("user_id", req.UserID),
			zap.String("analysis_id", analysisID.String()),
			zap.Error(err))
		return result, &PersistenceError{Cause: err}
	}

	a.logger.Info("comparison analysis completed",
		zap.String("user_id", req.UserID),
		zap.String("analysis_id", analysisID.String()),
		zap.Int("resumes", len(req.Resumes)))
	return result, nil
}

// History returns the user's past analyses, newest first.
func (a *Analyzer) History(ctx context.Context, userID string) ([]*types.HistoryRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, &InvalidInputError{Reason: "user id is required"}
	}
	return a.store.List(ctx, userID)
}

// Trends aggregates matched skills across the user's history.
func (a *Analyzer) Trends(ctx context.Context, userID string) (*profile.SkillTrends, error) {
	records, err := a.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	trends := profile.AnalyzeSkillTrends(records)
	return &trends, nil
}

// buildDocuments tokenizes the job description (when present) and every
// resume. Resume preprocessing runs concurrently; each goroutine writes
// only its own slot, so no locking is needed, and workers bail out once
// the context is cancelled. The returned slice has the job document at
// index 0 when jobText is non-empty.
func (a *Analyzer) buildDocuments(ctx context.Context, jobText string, resumes []types.ResumeInput) ([]types.Document, error) {
	offset := 0
	total := len(resumes)
	if jobText != "" {
		offset = 1
		total++
	}

	docs := make([]types.Document, total)
	if jobText != "" {
		docs[0] = types.Document{
			ID:     "job",
			Role:   types.RoleJob,
			Text:   jobText,
			Tokens: a.preprocessor.Tokenize(jobText),
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, resume := range resumes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			docs[offset+i] = types.Document{
				ID:     resume.ID,
				Role:   types.RoleResume,
				Order:  i,
				Text:   resume.Text,
				Tokens: a.preprocessor.Tokenize(resume.Text),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// enrich attaches lexical insight to each score result: skill match
// against the job description, a match level label, and suggestions.
func (a *Analyzer) enrich(req *types.RankRequest, scored []types.ScoreResult) []types.RankedResume {
	jobSkills := profile.ExtractSkills(req.JobDescription)

	textByID := make(map[string]string, len(req.Resumes))
	for _, resume := range req.Resumes {
		textByID[resume.ID] = resume.Text
	}

	results := make([]types.RankedResume, 0, len(scored))
	for _, score := range scored {
		text := textByID[score.ResumeID]
		resumeSkills := profile.ExtractSkills(text)
		matched, missing := profile.AnalyzeSkillMatch(resumeSkills, jobSkills)

		results = append(results, types.RankedResume{
			ScoreResult:         score,
			MatchLevel:          profile.MatchLevel(score.Score),
			MatchedSkills:       matched,
			MissingSkills:       missing,
			Suggestions:         profile.ImprovementSuggestions(score.Score, matched, missing),
			SkillGapSuggestions: profile.SkillGapSuggestions(missing, matched),
			ExperienceYears:     profile.ExtractExperienceYears(text),
			Education:           profile.ExtractEducation(text),
			ContactInfo:         profile.ExtractContactInfo(text),
		})
	}
	return results
}

// resumeStats extracts the job-independent profile for each resume, in
// submission order.
func resumeStats(resumes []types.ResumeInput) []types.ResumeStats {
	stats := make([]types.ResumeStats, 0, len(resumes))
	for _, resume := range resumes {
		skills := profile.ExtractSkills(resume.Text)
		names := make([]string, 0, len(skills))
		for _, skill := range skills {
			names = append(names, skill.Name)
		}
		stats = append(stats, types.ResumeStats{
			ResumeID:        resume.ID,
			WordCount:       profile.WordCount(resume.Text),
			ExperienceYears: profile.ExtractExperienceYears(resume.Text),
			Skills:          names,
			Education:       profile.ExtractEducation(resume.Text),
			ContactInfo:     profile.ExtractContactInfo(resume.Text),
		})
	}
	return stats
}

func rankHistoryRecord(analysisID uuid.UUID, userID string, results []types.RankedResume) *types.HistoryRecord {
	snapshots := make([]types.RankedSnapshot, 0, len(results))
	for _, result := range results {
		terms := make([]string, 0, len(result.MatchedTerms))
		for _, term := range result.MatchedTerms {
			terms = append(terms, term.Term)
		}
		snapshots = append(snapshots, types.RankedSnapshot{
			ResumeID:            result.ResumeID,
			Score:               result.Score,
			Rank:                result.Rank,
			MatchLevel:          result.MatchLevel,
			MatchedTerms:        terms,
			MatchedSkills:       result.MatchedSkills,
			SkillGapSuggestions: result.SkillGapSuggestions,
		})
	}
	return &types.HistoryRecord{
		ID:        analysisID,
		UserID:    userID,
		Mode:      types.ModeRank,
		CreatedAt: time.Now().UTC(),
		Ranked:    snapshots,
	}
}

func validateRank(req *types.RankRequest) error {
	if req == nil {
		return &InvalidInputError{Reason: "request is nil"}
	}
	if strings.TrimSpace(req.UserID) == "" {
		return &InvalidInputError{Reason: "user id is required"}
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return &InvalidInputError{Reason: "job description is required in ranking mode"}
	}
	if len(req.Resumes) < 1 {
		return &InvalidInputError{Reason: "at least one resume is required"}
	}
	return validateResumes(req.Resumes)
}

func validateCompare(req *types.CompareRequest) error {
	if req == nil {
		return &InvalidInputError{Reason: "request is nil"}
	}
	if strings.TrimSpace(req.UserID) == "" {
		return &InvalidInputError{Reason: "user id is required"}
	}
	if len(req.Resumes) < 2 {
		return &InvalidInputError{Reason: "comparison mode requires at least two resumes"}
	}
	return validateResumes(req.Resumes)
}

func validateResumes(resumes []types.ResumeInput) error {
	seen := make(map[string]struct{}, len(resumes))
	for _, resume := range resumes {
		if strings.TrimSpace(resume.ID) == "" {
			return &InvalidInputError{Reason: "resume identifiers must be non-empty"}
		}
		if _, dup := seen[resume.ID]; dup {
			return &InvalidInputError{Reason: "duplicate resume identifier: " + resume.ID}
		}
		seen[resume.ID] = struct{}{}
	}
	return nil
}
