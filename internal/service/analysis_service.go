package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/guvenchemy/MerkutY-BTK/internal/analysis"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar"
	"github.com/guvenchemy/MerkutY-BTK/internal/store"
)

// DetectedPattern is one grammar pattern found in a text.
type DetectedPattern struct {
	Key         string       `json:"key"`
	Level       domain.Level `json:"level"`
	Description string       `json:"description"`
}

// AnalysisService classifies texts against a learner's knowledge and
// detects grammar patterns.
type AnalysisService interface {
	// ClassifyText labels every word of a text against the learner's ledger
	// and computes the i+1 readiness verdict.
	ClassifyText(ctx context.Context, username, text string) (*domain.TextClassification, error)

	// DetectPatterns scans a text for grammar patterns in catalog priority
	// order. It needs no learner context.
	DetectPatterns(ctx context.Context, text string) ([]DetectedPattern, error)
}

// analysisServiceImpl implements the AnalysisService interface
type analysisServiceImpl struct {
	learnerStore store.LearnerStore
	vocabulary   VocabularyService
	classifier   *analysis.Classifier
	detector     *grammar.Detector
	catalog      *grammar.Catalog
	logger       *slog.Logger
}

// NewAnalysisService creates a new AnalysisService.
// It returns an error if any of the required dependencies are nil.
func NewAnalysisService(
	learnerStore store.LearnerStore,
	vocabulary VocabularyService,
	classifier *analysis.Classifier,
	detector *grammar.Detector,
	catalog *grammar.Catalog,
	logger *slog.Logger,
) (AnalysisService, error) {
	if learnerStore == nil {
		return nil, &ServiceError{
			Service:   "analysis",
			Operation: "create_service",
			Message:   "learnerStore cannot be nil",
		}
	}
	if vocabulary == nil {
		return nil, &ServiceError{
			Service:   "analysis",
			Operation: "create_service",
			Message:   "vocabulary service cannot be nil",
		}
	}
	if classifier == nil {
		return nil, &ServiceError{
			Service:   "analysis",
			Operation: "create_service",
			Message:   "classifier cannot be nil",
		}
	}
	if detector == nil {
		return nil, &ServiceError{
			Service:   "analysis",
			Operation: "create_service",
			Message:   "detector cannot be nil",
		}
	}
	if catalog == nil {
		return nil, &ServiceError{
			Service:   "analysis",
			Operation: "create_service",
			Message:   "catalog cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &analysisServiceImpl{
		learnerStore: learnerStore,
		vocabulary:   vocabulary,
		classifier:   classifier,
		detector:     detector,
		catalog:      catalog,
		logger:       logger.With("component", "analysis_service"),
	}, nil
}

// ClassifyText loads the learner's knowledge sets and runs the classifier.
func (s *analysisServiceImpl) ClassifyText(
	ctx context.Context,
	username, text string,
) (*domain.TextClassification, error) {
	learner, err := s.learnerStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrLearnerNotFound) {
			return nil, ErrLearnerNotFound
		}
		return nil, newServiceError("analysis", "classify_text", "failed to retrieve learner", err)
	}

	knowledge, err := s.vocabulary.Knowledge(ctx, learner.ID)
	if err != nil {
		return nil, newServiceError("analysis", "classify_text", "failed to load knowledge", err)
	}

	classification, err := s.classifier.Classify(ctx, text, knowledge)
	if err != nil {
		return nil, newServiceError("analysis", "classify_text", "classification failed", err)
	}

	s.logger.Debug("text classified",
		"username", username,
		"total_words", classification.TotalWords,
		"unknown_percentage", classification.UnknownPercentage,
		"readiness", classification.Readiness)
	return classification, nil
}

// DetectPatterns runs the detector and resolves catalog metadata for every
// detected key.
func (s *analysisServiceImpl) DetectPatterns(
	ctx context.Context,
	text string,
) ([]DetectedPattern, error) {
	keys := s.detector.Detect(text)

	detected := make([]DetectedPattern, 0, len(keys))
	for _, key := range keys {
		pattern, ok := s.catalog.Lookup(key)
		if !ok {
			continue
		}
		detected = append(detected, DetectedPattern{
			Key:         key,
			Level:       pattern.Level,
			Description: pattern.Description,
		})
	}
	return detected, nil
}
