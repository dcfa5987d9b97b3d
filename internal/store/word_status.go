package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
)

// WordStatusStore defines the interface for the vocabulary ledger.
type WordStatusStore interface {
	// Upsert saves a word status, replacing any existing status the learner
	// holds for the same canonical word. The most recent mark always wins.
	// Returns validation errors from the domain WordStatus if data is invalid.
	Upsert(ctx context.Context, ws *domain.WordStatus) error

	// Get retrieves the status row for a single canonical word.
	// Returns ErrWordStatusNotFound if the learner has no mark for the word.
	Get(ctx context.Context, learnerID uuid.UUID, word string) (*domain.WordStatus, error)

	// ListByStatus retrieves all of a learner's word rows carrying the given
	// status, ordered by word for stable output.
	ListByStatus(
		ctx context.Context,
		learnerID uuid.UUID,
		status domain.WordStatusValue,
	) ([]*domain.WordStatus, error)

	// WordsByStatus retrieves just the canonical words carrying the given
	// status, ordered by word. This is the common read for set construction.
	WordsByStatus(
		ctx context.Context,
		learnerID uuid.UUID,
		status domain.WordStatusValue,
	) ([]string, error)

	// CountByStatus returns the number of distinct words with the given status.
	CountByStatus(
		ctx context.Context,
		learnerID uuid.UUID,
		status domain.WordStatusValue,
	) (int, error)

	// WordsSnapshot retrieves every word the learner has marked, grouped by
	// status. The grouping comes from a single query so the returned sets
	// reflect one consistent view of the ledger; a word can never appear
	// under two statuses.
	WordsSnapshot(
		ctx context.Context,
		learnerID uuid.UUID,
	) (map[domain.WordStatusValue][]string, error)

	// WithTx returns a new WordStatusStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) WordStatusStore
}
