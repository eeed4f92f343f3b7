package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Bharanieeswaran/RankRite/internal/engine"
	"github.com/Bharanieeswaran/RankRite/internal/profile"
	"github.com/Bharanieeswaran/RankRite/internal/types"
)

// rankResponse is the POST /rank payload. HistorySaved is false when the
// analysis succeeded but the snapshot could not be persisted.
type rankResponse struct {
	AnalysisID   string               `json:"analysis_id"`
	Results      []types.RankedResume `json:"results"`
	HistorySaved bool                 `json:"history_saved"`
}

// compareResponse is the POST /compare payload.
type compareResponse struct {
	AnalysisID   string                  `json:"analysis_id"`
	Matrix       *types.ComparisonMatrix `json:"matrix"`
	Stats        []types.ResumeStats     `json:"stats"`
	HistorySaved bool                    `json:"history_saved"`
}

// historyResponse is the GET /history payload, newest first.
type historyResponse struct {
	UserID  string                 `json:"user_id"`
	Records []*types.HistoryRecord `json:"records"`
}

// handleRank ranks the submitted resumes against the job description.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.analyzer.Rank(r.Context(), &req)

	var persistErr *engine.PersistenceError
	if errors.As(err, &persistErr) {
		s.logger.Warn("history not saved", zap.Error(persistErr))
		s.jsonResponse(w, http.StatusOK, rankResponse{
			AnalysisID: result.AnalysisID.String(),
			Results:    result.Results,
		})
		return
	}
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, rankResponse{
		AnalysisID:   result.AnalysisID.String(),
		Results:      result.Results,
		HistorySaved: true,
	})
}

// handleCompare builds the pairwise similarity matrix for the submitted
// resumes.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req types.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.analyzer.Compare(r.Context(), &req)

	var persistErr *engine.PersistenceError
	if errors.As(err, &persistErr) {
		s.logger.Warn("history not saved", zap.Error(persistErr))
		s.jsonResponse(w, http.StatusOK, compareResponse{
			AnalysisID: result.AnalysisID.String(),
			Matrix:     result.Matrix,
			Stats:      result.Stats,
		})
		return
	}
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, compareResponse{
		AnalysisID:   result.AnalysisID.String(),
		Matrix:       result.Matrix,
		Stats:        result.Stats,
		HistorySaved: true,
	})
}

// handleHistory lists a user's past analyses, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	records, err := s.analyzer.History(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, historyResponse{UserID: userID, Records: records})
}

// handleTrends aggregates matched skills across a user's history.
func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	trends, err := s.analyzer.Trends(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, trends)
}

// handleTips serves static industry insight data.
func (s *Server) handleTips(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, profile.GetIndustryInsights())
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
