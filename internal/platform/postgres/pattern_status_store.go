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

// PostgresPatternStatusStore implements the store.PatternStatusStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPatternStatusStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPatternStatusStore creates a new PostgreSQL implementation of the
// PatternStatusStore interface. If logger is nil, a default logger will be used.
func NewPostgresPatternStatusStore(
	db store.DBTX,
	logger *slog.Logger,
) *PostgresPatternStatusStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPatternStatusStore{
		db:     db,
		logger: logger.With(slog.String("component", "pattern_status_store")),
	}
}

// Ensure PostgresPatternStatusStore implements store.PatternStatusStore interface
var _ store.PatternStatusStore = (*PostgresPatternStatusStore)(nil)

// Upsert implements store.PatternStatusStore.Upsert
// The unique constraint on (learner_id, pattern_key) makes the latest mark win.
func (s *PostgresPatternStatusStore) Upsert(ctx context.Context, ps *domain.PatternStatus) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ps.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO pattern_statuses (id, learner_id, pattern_key, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (learner_id, pattern_key)
		DO UPDATE SET status = EXCLUDED.status,
		              updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		ps.ID,
		ps.LearnerID,
		ps.PatternKey,
		ps.Status,
		ps.CreatedAt,
		ps.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert pattern status",
			slog.String("learner_id", ps.LearnerID.String()),
			slog.String("pattern_key", ps.PatternKey),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	return nil
}

// Get implements store.PatternStatusStore.Get
func (s *PostgresPatternStatusStore) Get(
	ctx context.Context,
	learnerID uuid.UUID,
	patternKey string,
) (*domain.PatternStatus, error) {
	query := `
		SELECT id, learner_id, pattern_key, status, created_at, updated_at
		FROM pattern_statuses
		WHERE learner_id = $1 AND pattern_key = $2
	`

	var ps domain.PatternStatus
	err := s.db.QueryRowContext(ctx, query, learnerID, patternKey).Scan(
		&ps.ID,
		&ps.LearnerID,
		&ps.PatternKey,
		&ps.Status,
		&ps.CreatedAt,
		&ps.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrPatternStatusNotFound
		}
		return nil, MapError(err)
	}
	return &ps, nil
}

// List implements store.PatternStatusStore.List
func (s *PostgresPatternStatusStore) List(
	ctx context.Context,
	learnerID uuid.UUID,
) ([]*domain.PatternStatus, error) {
	query := `
		SELECT id, learner_id, pattern_key, status, created_at, updated_at
		FROM pattern_statuses
		WHERE learner_id = $1
		ORDER BY pattern_key ASC
	`

	rows, err := s.db.QueryContext(ctx, query, learnerID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var statuses []*domain.PatternStatus
	for rows.Next() {
		var ps domain.PatternStatus
		if err := rows.Scan(
			&ps.ID,
			&ps.LearnerID,
			&ps.PatternKey,
			&ps.Status,
			&ps.CreatedAt,
			&ps.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pattern status row: %w", err)
		}
		statuses = append(statuses, &ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pattern status rows: %w", err)
	}

	return statuses, nil
}

// KeysByStatus implements store.PatternStatusStore.KeysByStatus
func (s *PostgresPatternStatusStore) KeysByStatus(
	ctx context.Context,
	learnerID uuid.UUID,
	status domain.PatternStatusValue,
) ([]string, error) {
	query := `
		SELECT pattern_key
		FROM pattern_statuses
		WHERE learner_id = $1 AND status = $2
		ORDER BY pattern_key ASC
	`

	rows, err := s.db.QueryContext(ctx, query, learnerID, status)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan pattern key row: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pattern key rows: %w", err)
	}

	return keys, nil
}

// WithTx implements store.PatternStatusStore.WithTx
func (s *PostgresPatternStatusStore) WithTx(tx *sql.Tx) store.PatternStatusStore {
	return &PostgresPatternStatusStore{
		db:     tx,
		logger: s.logger,
	}
}
