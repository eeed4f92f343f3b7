// Package history persists completed analyses as an append-only ledger
// keyed by user. Records are never updated or deleted after they are
// written; the Store interface deliberately has no mutation operations
// beyond Append so immutability is enforced by the interface, not by
// convention.
package history

import (
	"context"

	"github.com/Bharanieeswaran/RankRite/internal/types"
)

// Store is the persistence boundary for analysis history.
type Store interface {
	// Append persists one record. A failure is always returned to the
	// caller; appends are never silently dropped.
	Append(ctx context.Context, record *types.HistoryRecord) error

	// List returns the records for a user, newest first. It is read-only
	// and never mutates stored state.
	List(ctx context.Context, userID string) ([]*types.HistoryRecord, error)
}
