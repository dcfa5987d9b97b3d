package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
)

// PatternStatusStore defines the interface for the grammar ledger.
type PatternStatusStore interface {
	// Upsert saves a pattern status, replacing any existing status the
	// learner holds for the same pattern key. The most recent mark always wins.
	// Returns validation errors from the domain PatternStatus if data is invalid.
	Upsert(ctx context.Context, ps *domain.PatternStatus) error

	// Get retrieves the status row for a single pattern key.
	// Returns ErrPatternStatusNotFound if the learner has no mark for the key.
	Get(ctx context.Context, learnerID uuid.UUID, patternKey string) (*domain.PatternStatus, error)

	// List retrieves all of a learner's pattern rows, ordered by pattern key.
	List(ctx context.Context, learnerID uuid.UUID) ([]*domain.PatternStatus, error)

	// KeysByStatus retrieves just the pattern keys carrying the given status,
	// ordered by key.
	KeysByStatus(
		ctx context.Context,
		learnerID uuid.UUID,
		status domain.PatternStatusValue,
	) ([]string, error)

	// WithTx returns a new PatternStatusStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PatternStatusStore
}
