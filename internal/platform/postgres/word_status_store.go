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

// PostgresWordStatusStore implements the store.WordStatusStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWordStatusStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordStatusStore creates a new PostgreSQL implementation of the
// WordStatusStore interface. If logger is nil, a default logger will be used.
func NewPostgresWordStatusStore(db store.DBTX, logger *slog.Logger) *PostgresWordStatusStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordStatusStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_status_store")),
	}
}

// Ensure PostgresWordStatusStore implements store.WordStatusStore interface
var _ store.WordStatusStore = (*PostgresWordStatusStore)(nil)

// Upsert implements store.WordStatusStore.Upsert
// The unique constraint on (learner_id, word) makes the latest mark win.
func (s *PostgresWordStatusStore) Upsert(ctx context.Context, ws *domain.WordStatus) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ws.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO word_statuses (id, learner_id, word, status, translation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (learner_id, word)
		DO UPDATE SET status = EXCLUDED.status,
		              translation = EXCLUDED.translation,
		              updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		ws.ID,
		ws.LearnerID,
		ws.Word,
		ws.Status,
		ws.Translation,
		ws.CreatedAt,
		ws.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert word status",
			slog.String("learner_id", ws.LearnerID.String()),
			slog.String("word", ws.Word),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	return nil
}

// Get implements store.WordStatusStore.Get
func (s *PostgresWordStatusStore) Get(
	ctx context.Context,
	learnerID uuid.UUID,
	word string,
) (*domain.WordStatus, error) {
	query := `
		SELECT id, learner_id, word, status, translation, created_at, updated_at
		FROM word_statuses
		WHERE learner_id = $1 AND word = $2
	`

	var ws domain.WordStatus
	err := s.db.QueryRowContext(ctx, query, learnerID, domain.CanonicalWord(word)).Scan(
		&ws.ID,
		&ws.LearnerID,
		&ws.Word,
		&ws.Status,
		&ws.Translation,
		&ws.CreatedAt,
		&ws.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrWordStatusNotFound
		}
		return nil, MapError(err)
	}
	return &ws, nil
}

// ListByStatus implements store.WordStatusStore.ListByStatus
func (s *PostgresWordStatusStore) ListByStatus(
	ctx context.Context,
	learnerID uuid.UUID,
	status domain.WordStatusValue,
) ([]*domain.WordStatus, error) {
	query := `
		SELECT id, learner_id, word, status, translation, created_at, updated_at
		FROM word_statuses
		WHERE learner_id = $1 AND status = $2
		ORDER BY word ASC
	`

	rows, err := s.db.QueryContext(ctx, query, learnerID, status)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var statuses []*domain.WordStatus
	for rows.Next() {
		var ws domain.WordStatus
		if err := rows.Scan(
			&ws.ID,
			&ws.LearnerID,
			&ws.Word,
			&ws.Status,
			&ws.Translation,
			&ws.CreatedAt,
			&ws.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan word status row: %w", err)
		}
		statuses = append(statuses, &ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating word status rows: %w", err)
	}

	return statuses, nil
}

// WordsByStatus implements store.WordStatusStore.WordsByStatus
func (s *PostgresWordStatusStore) WordsByStatus(
	ctx context.Context,
	learnerID uuid.UUID,
	status domain.WordStatusValue,
) ([]string, error) {
	query := `
		SELECT word
		FROM word_statuses
		WHERE learner_id = $1 AND status = $2
		ORDER BY word ASC
	`

	rows, err := s.db.QueryContext(ctx, query, learnerID, status)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan word row: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating word rows: %w", err)
	}

	return words, nil
}

// WordsSnapshot implements store.WordStatusStore.WordsSnapshot.
// A single statement reads under one snapshot, so the grouped sets are
// mutually consistent even against concurrent re-marks.
func (s *PostgresWordStatusStore) WordsSnapshot(
	ctx context.Context,
	learnerID uuid.UUID,
) (map[domain.WordStatusValue][]string, error) {
	query := `
		SELECT word, status
		FROM word_statuses
		WHERE learner_id = $1
		ORDER BY word ASC
	`

	rows, err := s.db.QueryContext(ctx, query, learnerID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	snapshot := make(map[domain.WordStatusValue][]string)
	for rows.Next() {
		var (
			word   string
			status domain.WordStatusValue
		)
		if err := rows.Scan(&word, &status); err != nil {
			return nil, fmt.Errorf("failed to scan word row: %w", err)
		}
		snapshot[status] = append(snapshot[status], word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating word rows: %w", err)
	}

	return snapshot, nil
}

// CountByStatus implements store.WordStatusStore.CountByStatus
func (s *PostgresWordStatusStore) CountByStatus(
	ctx context.Context,
	learnerID uuid.UUID,
	status domain.WordStatusValue,
) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM word_statuses
		WHERE learner_id = $1 AND status = $2
	`

	var count int
	if err := s.db.QueryRowContext(ctx, query, learnerID, status).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// WithTx implements store.WordStatusStore.WithTx
func (s *PostgresWordStatusStore) WithTx(tx *sql.Tx) store.WordStatusStore {
	return &PostgresWordStatusStore{
		db:     tx,
		logger: s.logger,
	}
}
