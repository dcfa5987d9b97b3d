package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/guvenchemy/MerkutY-BTK/internal/analysis"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain/morph"
	"github.com/guvenchemy/MerkutY-BTK/internal/importer"
	"github.com/guvenchemy/MerkutY-BTK/internal/store"
	"github.com/guvenchemy/MerkutY-BTK/internal/task"
)

// TaskRunner defines the interface for submitting background tasks
type TaskRunner interface {
	// Submit adds a task to the processing queue
	Submit(t task.Task) error
}

// ImportReceipt reports an accepted bulk import: the background task ID and
// how many entries were extracted from the workbook.
type ImportReceipt struct {
	TaskID  uuid.UUID `json:"task_id"`
	Entries int       `json:"entries"`
	Skipped int       `json:"skipped"`
}

// VocabularyService manages the vocabulary ledger.
type VocabularyService interface {
	// SetWordStatus marks a word as known, unknown, or ignored for a learner.
	// Re-marking an already marked word updates the row, latest mark wins.
	SetWordStatus(
		ctx context.Context,
		username, word string,
		status domain.WordStatusValue,
		translation string,
	) (*domain.WordStatus, error)

	// ListWords returns a learner's ledger rows with the given status.
	ListWords(
		ctx context.Context,
		username string,
		status domain.WordStatusValue,
	) ([]*domain.WordStatus, error)

	// ImportWorkbook extracts vocabulary from an uploaded xlsx workbook and
	// enqueues a background task marking every entry as known.
	ImportWorkbook(ctx context.Context, username string, r io.Reader) (*ImportReceipt, error)

	// ApplyImport writes extracted entries into the ledger as known words.
	// It is called by the background import task.
	ApplyImport(ctx context.Context, learnerID uuid.UUID, entries []importer.Entry) (int, error)

	// Knowledge assembles the learner's word sets for a classification pass:
	// known words expanded with morphological variants, plus the ignored and
	// explicitly unknown sets.
	Knowledge(ctx context.Context, learnerID uuid.UUID) (analysis.Knowledge, error)
}

// vocabularyServiceImpl implements the VocabularyService interface
type vocabularyServiceImpl struct {
	learnerStore store.LearnerStore
	wordStore    store.WordStatusStore
	importer     *importer.Importer
	taskRunner   TaskRunner
	logger       *slog.Logger
}

// NewVocabularyService creates a new VocabularyService.
// It returns an error if any of the required dependencies are nil.
func NewVocabularyService(
	learnerStore store.LearnerStore,
	wordStore store.WordStatusStore,
	imp *importer.Importer,
	taskRunner TaskRunner,
	logger *slog.Logger,
) (VocabularyService, error) {
	if learnerStore == nil {
		return nil, &ServiceError{
			Service:   "vocabulary",
			Operation: "create_service",
			Message:   "learnerStore cannot be nil",
		}
	}
	if wordStore == nil {
		return nil, &ServiceError{
			Service:   "vocabulary",
			Operation: "create_service",
			Message:   "wordStore cannot be nil",
		}
	}
	if imp == nil {
		return nil, &ServiceError{
			Service:   "vocabulary",
			Operation: "create_service",
			Message:   "importer cannot be nil",
		}
	}
	if taskRunner == nil {
		return nil, &ServiceError{
			Service:   "vocabulary",
			Operation: "create_service",
			Message:   "taskRunner cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &vocabularyServiceImpl{
		learnerStore: learnerStore,
		wordStore:    wordStore,
		importer:     imp,
		taskRunner:   taskRunner,
		logger:       logger.With("component", "vocabulary_service"),
	}, nil
}

// SetWordStatus marks a word for a learner, replacing any previous mark.
func (s *vocabularyServiceImpl) SetWordStatus(
	ctx context.Context,
	username, word string,
	status domain.WordStatusValue,
	translation string,
) (*domain.WordStatus, error) {
	learner, err := s.requireLearner(ctx, username)
	if err != nil {
		return nil, err
	}

	ws, err := domain.NewWordStatus(learner.ID, word, status, translation)
	if err != nil {
		return nil, newServiceError("vocabulary", "set_word_status", "invalid word status", err)
	}

	if err := s.wordStore.Upsert(ctx, ws); err != nil {
		s.logger.Error("failed to upsert word status",
			"error", err,
			"learner_id", learner.ID,
			"word", ws.Word)
		return nil, newServiceError("vocabulary", "set_word_status", "failed to save word status", err)
	}

	s.logger.Debug("word status saved",
		"learner_id", learner.ID,
		"word", ws.Word,
		"status", ws.Status)
	return ws, nil
}

// ListWords returns a learner's ledger rows with the given status.
func (s *vocabularyServiceImpl) ListWords(
	ctx context.Context,
	username string,
	status domain.WordStatusValue,
) ([]*domain.WordStatus, error) {
	learner, err := s.requireLearner(ctx, username)
	if err != nil {
		return nil, err
	}

	if !status.IsValid() {
		return nil, newServiceError(
			"vocabulary", "list_words", "invalid status filter", domain.ErrInvalidWordStatus)
	}

	statuses, err := s.wordStore.ListByStatus(ctx, learner.ID, status)
	if err != nil {
		return nil, newServiceError("vocabulary", "list_words", "failed to list words", err)
	}
	return statuses, nil
}

// ImportWorkbook extracts entries and enqueues the background import task.
func (s *vocabularyServiceImpl) ImportWorkbook(
	ctx context.Context,
	username string,
	r io.Reader,
) (*ImportReceipt, error) {
	learner, err := s.requireLearner(ctx, username)
	if err != nil {
		return nil, err
	}

	extracted, err := s.importer.Extract(r)
	if err != nil {
		return nil, newServiceError("vocabulary", "import_workbook", "failed to read workbook", err)
	}

	importTask, err := task.NewVocabularyImportTask(learner.ID, extracted.Entries, s, s.logger)
	if err != nil {
		return nil, newServiceError("vocabulary", "import_workbook", "failed to create import task", err)
	}

	if err := s.taskRunner.Submit(importTask); err != nil {
		if errors.Is(err, task.ErrQueueFull) {
			return nil, ErrImportQueueFull
		}
		return nil, newServiceError("vocabulary", "import_workbook", "failed to enqueue import task", err)
	}

	s.logger.Info("vocabulary import enqueued",
		"learner_id", learner.ID,
		"task_id", importTask.ID(),
		"entries", len(extracted.Entries))

	return &ImportReceipt{
		TaskID:  importTask.ID(),
		Entries: len(extracted.Entries),
		Skipped: extracted.RowsSkipped,
	}, nil
}

// ApplyImport marks every extracted entry as known. Invalid entries are
// skipped rather than failing the whole import.
func (s *vocabularyServiceImpl) ApplyImport(
	ctx context.Context,
	learnerID uuid.UUID,
	entries []importer.Entry,
) (int, error) {
	applied := 0
	for _, entry := range entries {
		ws, err := domain.NewWordStatus(learnerID, entry.Word, domain.WordStatusKnown, entry.Translation)
		if err != nil {
			s.logger.Warn("skipping invalid import entry",
				"learner_id", learnerID,
				"word", entry.Word,
				"error", err)
			continue
		}
		if err := s.wordStore.Upsert(ctx, ws); err != nil {
			return applied, newServiceError(
				"vocabulary", "apply_import", "failed to save imported word", err)
		}
		applied++
	}
	return applied, nil
}

// Knowledge assembles the three word sets the classifier consumes. The
// ledger is read in one snapshot so a concurrent re-mark can never place a
// word in two sets. Ignored words join the morphological expansion: a
// learner who dismisses "run" has dismissed "runs" too, while the exact
// ignored forms still classify as excluded rather than known.
func (s *vocabularyServiceImpl) Knowledge(
	ctx context.Context,
	learnerID uuid.UUID,
) (analysis.Knowledge, error) {
	snapshot, err := s.wordStore.WordsSnapshot(ctx, learnerID)
	if err != nil {
		return analysis.Knowledge{}, newServiceError(
			"vocabulary", "knowledge", "failed to load word ledger", err)
	}

	known := snapshot[domain.WordStatusKnown]
	ignored := snapshot[domain.WordStatusIgnored]
	unknown := snapshot[domain.WordStatusUnknown]

	expandable := make([]string, 0, len(known)+len(ignored))
	expandable = append(expandable, known...)
	expandable = append(expandable, ignored...)

	return analysis.Knowledge{
		KnownExpanded:   morph.Expand(expandable),
		Ignored:         wordSet(ignored),
		ExplicitUnknown: wordSet(unknown),
	}, nil
}

// requireLearner resolves a username to a learner, mapping the store's
// not found error to the service sentinel.
func (s *vocabularyServiceImpl) requireLearner(
	ctx context.Context,
	username string,
) (*domain.Learner, error) {
	learner, err := s.learnerStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrLearnerNotFound) {
			return nil, ErrLearnerNotFound
		}
		return nil, newServiceError("vocabulary", "get_learner", "failed to retrieve learner", err)
	}
	return learner, nil
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
