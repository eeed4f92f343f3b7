package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Bharanieeswaran/RankRite/internal/types"
)

// PostgresStore persists history records in an insert-only Postgres
// table. Each Append is a single INSERT, so concurrent completions are
// serialized by the database and a record is either fully written or not
// written at all.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the history table if it does not exist. The table
// carries no UPDATE path; immutability is part of the schema contract.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analysis_history (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			snapshot JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_analysis_history_user
			ON analysis_history (user_id, created_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure history schema: %w", err)
	}
	return nil
}

// snapshotPayload is the JSON document stored per record. It holds score
// summaries and identifiers only, never raw resume text.
type snapshotPayload struct {
	Ranked []types.RankedSnapshot `json:"ranked,omitempty"`
	Matrix *types.MatrixSnapshot  `json:"matrix,omitempty"`
}

// Append implements Store.
func (s *PostgresStore) Append(ctx context.Context, record *types.HistoryRecord) error {
	if record == nil {
		return fmt.Errorf("failed to append history record: record is nil")
	}

	id := record.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	payload, err := json.Marshal(snapshotPayload{Ranked: record.Ranked, Matrix: record.Matrix})
	if err != nil {
		return fmt.Errorf("failed to marshal history snapshot: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analysis_history (id, user_id, mode, snapshot, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, record.UserID, string(record.Mode), payload, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append history record: %w", err)
	}
	return nil
}

// List implements Store. Records come back newest-first.
func (s *PostgresStore) List(ctx context.Context, userID string) ([]*types.HistoryRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, mode, snapshot, created_at
		 FROM analysis_history
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history records: %w", err)
	}
	defer rows.Close()

	records := make([]*types.HistoryRecord, 0, 16)
	for rows.Next() {
		var (
			record  types.HistoryRecord
			mode    string
			rawSnap []byte
		)
		if err := rows.Scan(&record.ID, &record.UserID, &mode, &rawSnap, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		record.Mode = types.AnalysisMode(mode)

		var payload snapshotPayload
		if err := json.Unmarshal(rawSnap, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode history snapshot %s: %w", record.ID, err)
		}
		record.Ranked = payload.Ranked
		record.Matrix = payload.Matrix

		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history records: %w", err)
	}
	return records, nil
}
