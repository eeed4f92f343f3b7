package history

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bharanieeswaran/RankRite/internal/types"
)

func rankRecord(userID, resumeID string, score float64) *types.HistoryRecord {
	return &types.HistoryRecord{
		UserID: userID,
		Mode:   types.ModeRank,
		Ranked: []types.RankedSnapshot{
			{ResumeID: resumeID, Score: score, Rank: 1, MatchedSkills: []string{"go"}},
		},
	}
}

func TestMemoryStore_AppendAndList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, rankRecord("alice", "r1", 0.9)))
	require.NoError(t, store.Append(ctx, rankRecord("alice", "r2", 0.5)))
	require.NoError(t, store.Append(ctx, rankRecord("bob", "r3", 0.7)))

	records, err := store.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "r2", records[0].Ranked[0].ResumeID)
	assert.Equal(t, "r1", records[1].Ranked[0].ResumeID)

	for _, record := range records {
		assert.NotEqual(t, record.ID.String(), "00000000-0000-0000-0000-000000000000")
		assert.False(t, record.CreatedAt.IsZero())
	}
}

func TestMemoryStore_ListUnknownUser(t *testing.T) {
	store := NewMemoryStore()

	records, err := store.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMemoryStore_RejectsInvalidRecords(t *testing.T) {
	store := NewMemoryStore()

	assert.Error(t, store.Append(context.Background(), nil))
	assert.Error(t, store.Append(context.Background(), &types.HistoryRecord{Mode: types.ModeRank}))
}

func TestMemoryStore_StoredRecordsAreImmutable(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := rankRecord("alice", "r1", 0.9)
	require.NoError(t, store.Append(ctx, original))

	// Mutating the appended value must not reach the store.
	original.Ranked[0].ResumeID = "tampered"

	first, err := store.List(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "r1", first[0].Ranked[0].ResumeID)

	// Mutating a listed value must not reach the store either.
	first[0].Ranked[0].Score = 0.0

	second, err := store.List(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0.9, second[0].Ranked[0].Score)
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			record := rankRecord("alice", fmt.Sprintf("r%d", i), 0.5)
			record.CreatedAt = time.Now().UTC()
			assert.NoError(t, store.Append(ctx, record))
		}(i)
	}
	wg.Wait()

	records, err := store.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, records, n)
}
