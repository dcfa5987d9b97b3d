package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/guvenchemy/MerkutY-BTK/internal/adaptation"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/store"
)

// AdaptationResult is the outcome of rewriting a text one level above the
// learner's current level. Classification reports how the original text
// measured against the learner's ledger before the rewrite.
type AdaptationResult struct {
	OriginalText string       `json:"original_text"`
	AdaptedText  string       `json:"adapted_text"`
	CurrentLevel domain.Level `json:"current_level"`
	TargetLevel  domain.Level `json:"target_level"`

	Classification *domain.TextClassification `json:"classification,omitempty"`
}

// AdaptationService rewrites texts for comprehensible input through the
// external rewriting collaborator.
type AdaptationService interface {
	// AdaptText assesses the learner, plans a rewrite one level above their
	// current level, and calls the rewriter. Returns ErrAdaptationUnavailable
	// when no rewriter is configured.
	AdaptText(ctx context.Context, username, text string) (*AdaptationResult, error)
}

// adaptationServiceImpl implements the AdaptationService interface
type adaptationServiceImpl struct {
	learnerStore store.LearnerStore
	wordStore    store.WordStatusStore
	patternStore store.PatternStatusStore
	assessment   AssessmentService
	analysis     AnalysisService
	planner      *adaptation.Planner
	rewriter     adaptation.Rewriter
	logger       *slog.Logger
}

// NewAdaptationService creates a new AdaptationService.
// The rewriter may be nil when no LLM is configured; AdaptText then returns
// ErrAdaptationUnavailable. All other dependencies are required.
func NewAdaptationService(
	learnerStore store.LearnerStore,
	wordStore store.WordStatusStore,
	patternStore store.PatternStatusStore,
	assessment AssessmentService,
	analysis AnalysisService,
	planner *adaptation.Planner,
	rewriter adaptation.Rewriter,
	logger *slog.Logger,
) (AdaptationService, error) {
	if learnerStore == nil {
		return nil, &ServiceError{
			Service:   "adaptation",
			Operation: "create_service",
			Message:   "learnerStore cannot be nil",
		}
	}
	if wordStore == nil {
		return nil, &ServiceError{
			Service:   "adaptation",
			Operation: "create_service",
			Message:   "wordStore cannot be nil",
		}
	}
	if patternStore == nil {
		return nil, &ServiceError{
			Service:   "adaptation",
			Operation: "create_service",
			Message:   "patternStore cannot be nil",
		}
	}
	if assessment == nil {
		return nil, &ServiceError{
			Service:   "adaptation",
			Operation: "create_service",
			Message:   "assessment service cannot be nil",
		}
	}
	if analysis == nil {
		return nil, &ServiceError{
			Service:   "adaptation",
			Operation: "create_service",
			Message:   "analysis service cannot be nil",
		}
	}
	if planner == nil {
		return nil, &ServiceError{
			Service:   "adaptation",
			Operation: "create_service",
			Message:   "planner cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &adaptationServiceImpl{
		learnerStore: learnerStore,
		wordStore:    wordStore,
		patternStore: patternStore,
		assessment:   assessment,
		analysis:     analysis,
		planner:      planner,
		rewriter:     rewriter,
		logger:       logger.With("component", "adaptation_service"),
	}, nil
}

// AdaptText plans and executes a rewrite one level above the learner.
func (s *adaptationServiceImpl) AdaptText(
	ctx context.Context,
	username, text string,
) (*AdaptationResult, error) {
	if s.rewriter == nil {
		return nil, ErrAdaptationUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return nil, newServiceError("adaptation", "adapt_text", "empty text", domain.ErrEmptyText)
	}

	learner, err := s.learnerStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrLearnerNotFound) {
			return nil, ErrLearnerNotFound
		}
		return nil, newServiceError("adaptation", "adapt_text", "failed to retrieve learner", err)
	}

	assessment, err := s.assessment.AssessLevel(ctx, username)
	if err != nil {
		return nil, err
	}

	classification, err := s.analysis.ClassifyText(ctx, username, text)
	if err != nil {
		return nil, err
	}

	knownWords, err := s.wordStore.WordsByStatus(ctx, learner.ID, domain.WordStatusKnown)
	if err != nil {
		return nil, newServiceError("adaptation", "adapt_text", "failed to load known words", err)
	}
	knownPatterns, err := s.patternStore.KeysByStatus(ctx, learner.ID, domain.PatternStatusKnown)
	if err != nil {
		return nil, newServiceError("adaptation", "adapt_text", "failed to load known patterns", err)
	}

	req := s.planner.Plan(text, assessment, knownWords, knownPatterns)

	adapted, err := s.rewriter.Rewrite(ctx, req)
	if err != nil {
		s.logger.Error("rewrite failed",
			"error", err,
			"username", username,
			"target_level", req.TargetLevel)
		return nil, newServiceError("adaptation", "adapt_text", "rewrite failed", err)
	}

	s.logger.Info("text adapted",
		"username", username,
		"current_level", req.CurrentLevel,
		"target_level", req.TargetLevel,
		"original_length", len(text),
		"adapted_length", len(adapted))

	return &AdaptationResult{
		OriginalText:   text,
		AdaptedText:    adapted,
		CurrentLevel:   req.CurrentLevel,
		TargetLevel:    req.TargetLevel,
		Classification: classification,
	}, nil
}
