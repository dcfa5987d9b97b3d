package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/logger"
	"github.com/guvenchemy/MerkutY-BTK/internal/store"
)

// PostgresLearnerStore implements the store.LearnerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLearnerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLearnerStore creates a new PostgreSQL implementation of the LearnerStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresLearnerStore(db store.DBTX, logger *slog.Logger) *PostgresLearnerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLearnerStore{
		db:     db,
		logger: logger.With(slog.String("component", "learner_store")),
	}
}

// Ensure PostgresLearnerStore implements store.LearnerStore interface
var _ store.LearnerStore = (*PostgresLearnerStore)(nil)

// Create implements store.LearnerStore.Create
func (s *PostgresLearnerStore) Create(ctx context.Context, learner *domain.Learner) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := learner.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO learners (id, username, native_language, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		learner.ID,
		learner.Username,
		learner.NativeLanguage,
		learner.CreatedAt,
		learner.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("username already taken",
				slog.String("username", learner.Username))
			return fmt.Errorf("%w: %v", store.ErrUsernameExists, err)
		}
		log.Error("failed to create learner",
			slog.String("learner_id", learner.ID.String()),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	return nil
}

// GetByID implements store.LearnerStore.GetByID
func (s *PostgresLearnerStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Learner, error) {
	query := `
		SELECT id, username, native_language, created_at, updated_at
		FROM learners
		WHERE id = $1
	`

	return s.scanLearner(s.db.QueryRowContext(ctx, query, id))
}

// GetByUsername implements store.LearnerStore.GetByUsername
func (s *PostgresLearnerStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.Learner, error) {
	query := `
		SELECT id, username, native_language, created_at, updated_at
		FROM learners
		WHERE username = $1
	`

	return s.scanLearner(s.db.QueryRowContext(ctx, query, username))
}

// WithTx implements store.LearnerStore.WithTx
func (s *PostgresLearnerStore) WithTx(tx *sql.Tx) store.LearnerStore {
	return &PostgresLearnerStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *PostgresLearnerStore) scanLearner(row *sql.Row) (*domain.Learner, error) {
	var learner domain.Learner
	err := row.Scan(
		&learner.ID,
		&learner.Username,
		&learner.NativeLanguage,
		&learner.CreatedAt,
		&learner.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrLearnerNotFound
		}
		return nil, MapError(err)
	}
	return &learner, nil
}
