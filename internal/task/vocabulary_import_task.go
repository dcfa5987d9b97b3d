package task

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/guvenchemy/MerkutY-BTK/internal/importer"
)

// VocabularyApplier writes extracted vocabulary entries into a learner's
// ledger. Implemented by the vocabulary service.
type VocabularyApplier interface {
	ApplyImport(ctx context.Context, learnerID uuid.UUID, entries []importer.Entry) (int, error)
}

// VocabularyImportTask marks every entry extracted from an uploaded
// workbook as known vocabulary for one learner.
type VocabularyImportTask struct {
	id        uuid.UUID
	learnerID uuid.UUID
	entries   []importer.Entry
	applier   VocabularyApplier
	logger    *slog.Logger
}

// NewVocabularyImportTask creates a vocabulary import task.
func NewVocabularyImportTask(
	learnerID uuid.UUID,
	entries []importer.Entry,
	applier VocabularyApplier,
	logger *slog.Logger,
) (*VocabularyImportTask, error) {
	if learnerID == uuid.Nil {
		return nil, errors.New("learner ID cannot be empty")
	}
	if applier == nil {
		return nil, errors.New("applier cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &VocabularyImportTask{
		id:        uuid.New(),
		learnerID: learnerID,
		entries:   entries,
		applier:   applier,
		logger:    logger.With(slog.String("component", "vocabulary_import_task")),
	}, nil
}

// ID implements Task.ID
func (t *VocabularyImportTask) ID() uuid.UUID {
	return t.id
}

// Type implements Task.Type
func (t *VocabularyImportTask) Type() string {
	return TaskTypeVocabularyImport
}

// Execute implements Task.Execute
func (t *VocabularyImportTask) Execute(ctx context.Context) error {
	applied, err := t.applier.ApplyImport(ctx, t.learnerID, t.entries)
	if err != nil {
		return err
	}

	t.logger.Info("vocabulary import applied",
		slog.String("learner_id", t.learnerID.String()),
		slog.Int("entries", len(t.entries)),
		slog.Int("applied", applied))
	return nil
}
