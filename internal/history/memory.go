package history

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Bharanieeswaran/RankRite/internal/types"
)

// MemoryStore is an in-process Store for tests and single-node use.
// Appends are serialized by a mutex so concurrent completions never
// interleave within a record, and both Append and List work on copies so
// callers can never mutate what has been written.
type MemoryStore struct {
	mu      sync.Mutex
	records []*types.HistoryRecord
}

// NewMemoryStore creates an empty in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append implements Store.
func (s *MemoryStore) Append(_ context.Context, record *types.HistoryRecord) error {
	if record == nil {
		return fmt.Errorf("failed to append history record: record is nil")
	}
	if record.UserID == "" {
		return fmt.Errorf("failed to append history record: user id is empty")
	}

	stored := cloneRecord(record)
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, stored)
	return nil
}

// List implements Store. Records come back newest-first.
func (s *MemoryStore) List(_ context.Context, userID string) ([]*types.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.HistoryRecord, 0, 8)
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].UserID == userID {
			out = append(out, cloneRecord(s.records[i]))
		}
	}
	return out, nil
}

func cloneRecord(record *types.HistoryRecord) *types.HistoryRecord {
	clone := &types.HistoryRecord{
		ID:        record.ID,
		UserID:    record.UserID,
		Mode:      record.Mode,
		CreatedAt: record.CreatedAt,
	}
	if record.Ranked != nil {
		clone.Ranked = make([]types.RankedSnapshot, len(record.Ranked))
		for i, snap := range record.Ranked {
			clone.Ranked[i] = types.RankedSnapshot{
				ResumeID:            snap.ResumeID,
				Score:               snap.Score,
				Rank:                snap.Rank,
				MatchLevel:          snap.MatchLevel,
				MatchedTerms:        append([]string(nil), snap.MatchedTerms...),
				MatchedSkills:       append([]string(nil), snap.MatchedSkills...),
				SkillGapSuggestions: append([]string(nil), snap.SkillGapSuggestions...),
			}
		}
	}
	if record.Matrix != nil {
		matrix := &types.MatrixSnapshot{
			ResumeIDs: append([]string(nil), record.Matrix.ResumeIDs...),
			Scores:    make([][]float64, len(record.Matrix.Scores)),
		}
		for i, row := range record.Matrix.Scores {
			matrix.Scores[i] = append([]float64(nil), row...)
		}
		clone.Matrix = matrix
	}
	return clone
}
