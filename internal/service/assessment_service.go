package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar/progress"
	"github.com/guvenchemy/MerkutY-BTK/internal/store"
)

// AssessmentService computes CEFR level assessments from ledger state.
type AssessmentService interface {
	// AssessLevel computes the learner's current level, scores, balance,
	// and recommendations. The ledger is read inside one transaction so the
	// assessment sees a consistent snapshot.
	AssessLevel(ctx context.Context, username string) (*domain.LevelAssessment, error)
}

// assessmentServiceImpl implements the AssessmentService interface
type assessmentServiceImpl struct {
	db           *sql.DB
	learnerStore store.LearnerStore
	wordStore    store.WordStatusStore
	patternStore store.PatternStatusStore
	calculator   *progress.Calculator
	logger       *slog.Logger
}

// NewAssessmentService creates a new AssessmentService.
// It returns an error if any of the required dependencies are nil.
func NewAssessmentService(
	db *sql.DB,
	learnerStore store.LearnerStore,
	wordStore store.WordStatusStore,
	patternStore store.PatternStatusStore,
	calculator *progress.Calculator,
	logger *slog.Logger,
) (AssessmentService, error) {
	if db == nil {
		return nil, &ServiceError{
			Service:   "assessment",
			Operation: "create_service",
			Message:   "db cannot be nil",
		}
	}
	if learnerStore == nil {
		return nil, &ServiceError{
			Service:   "assessment",
			Operation: "create_service",
			Message:   "learnerStore cannot be nil",
		}
	}
	if wordStore == nil {
		return nil, &ServiceError{
			Service:   "assessment",
			Operation: "create_service",
			Message:   "wordStore cannot be nil",
		}
	}
	if patternStore == nil {
		return nil, &ServiceError{
			Service:   "assessment",
			Operation: "create_service",
			Message:   "patternStore cannot be nil",
		}
	}
	if calculator == nil {
		return nil, &ServiceError{
			Service:   "assessment",
			Operation: "create_service",
			Message:   "calculator cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &assessmentServiceImpl{
		db:           db,
		learnerStore: learnerStore,
		wordStore:    wordStore,
		patternStore: patternStore,
		calculator:   calculator,
		logger:       logger.With("component", "assessment_service"),
	}, nil
}

// AssessLevel reads the ledger snapshot and runs the level calculator.
func (s *assessmentServiceImpl) AssessLevel(
	ctx context.Context,
	username string,
) (*domain.LevelAssessment, error) {
	var vocabCount int
	var knownPatterns []string

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		learner, err := s.learnerStore.WithTx(tx).GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, store.ErrLearnerNotFound) {
				return ErrLearnerNotFound
			}
			return newServiceError("assessment", "assess_level", "failed to retrieve learner", err)
		}

		vocabCount, err = s.wordStore.WithTx(tx).
			CountByStatus(ctx, learner.ID, domain.WordStatusKnown)
		if err != nil {
			return newServiceError("assessment", "assess_level", "failed to count known words", err)
		}

		knownPatterns, err = s.patternStore.WithTx(tx).
			KeysByStatus(ctx, learner.ID, domain.PatternStatusKnown)
		if err != nil {
			return newServiceError("assessment", "assess_level", "failed to load known patterns", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	assessment, err := s.calculator.Assess(vocabCount, knownPatterns)
	if err != nil {
		s.logger.Error("level calculation failed",
			"error", err,
			"username", username,
			"vocabulary_count", vocabCount)
		return nil, newServiceError("assessment", "assess_level", "level calculation failed", err)
	}

	s.logger.Debug("level assessed",
		"username", username,
		"current_level", assessment.CurrentLevel,
		"vocabulary_count", vocabCount,
		"known_patterns", len(knownPatterns))
	return assessment, nil
}
