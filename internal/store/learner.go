package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
)

// LearnerStore defines the interface for learner data persistence.
type LearnerStore interface {
	// Create saves a new learner to the store.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain Learner if data is invalid.
	Create(ctx context.Context, learner *domain.Learner) error

	// GetByID retrieves a learner by their unique ID.
	// Returns ErrLearnerNotFound if the learner does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Learner, error)

	// GetByUsername retrieves a learner by their username.
	// Returns ErrLearnerNotFound if the learner does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.Learner, error)

	// WithTx returns a new LearnerStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) LearnerStore
}
