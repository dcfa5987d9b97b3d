package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar"
	"github.com/guvenchemy/MerkutY-BTK/internal/store"
)

// PatternOverview is one catalog pattern with the learner's current status.
type PatternOverview struct {
	Key         string                    `json:"key"`
	Description string                    `json:"description"`
	Status      domain.PatternStatusValue `json:"status"`
}

// LevelOverview groups a level's patterns for the grammar overview.
type LevelOverview struct {
	Level    domain.Level      `json:"level"`
	Patterns []PatternOverview `json:"patterns"`
	Known    int               `json:"known"`
	Total    int               `json:"total"`
}

// GrammarService manages the grammar ledger against the pattern catalog.
type GrammarService interface {
	// SetPatternStatus marks a catalog pattern as known, practice, or
	// unknown for a learner. Returns ErrUnknownPattern for keys not in the
	// catalog.
	SetPatternStatus(
		ctx context.Context,
		username, patternKey string,
		status domain.PatternStatusValue,
	) (*domain.PatternStatus, error)

	// Overview returns every catalog pattern grouped by level with the
	// learner's status. Patterns with no ledger row report as unknown.
	Overview(ctx context.Context, username string) ([]LevelOverview, error)
}

// grammarServiceImpl implements the GrammarService interface
type grammarServiceImpl struct {
	learnerStore store.LearnerStore
	patternStore store.PatternStatusStore
	catalog      *grammar.Catalog
	logger       *slog.Logger
}

// NewGrammarService creates a new GrammarService.
// It returns an error if any of the required dependencies are nil.
func NewGrammarService(
	learnerStore store.LearnerStore,
	patternStore store.PatternStatusStore,
	catalog *grammar.Catalog,
	logger *slog.Logger,
) (GrammarService, error) {
	if learnerStore == nil {
		return nil, &ServiceError{
			Service:   "grammar",
			Operation: "create_service",
			Message:   "learnerStore cannot be nil",
		}
	}
	if patternStore == nil {
		return nil, &ServiceError{
			Service:   "grammar",
			Operation: "create_service",
			Message:   "patternStore cannot be nil",
		}
	}
	if catalog == nil {
		return nil, &ServiceError{
			Service:   "grammar",
			Operation: "create_service",
			Message:   "catalog cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &grammarServiceImpl{
		learnerStore: learnerStore,
		patternStore: patternStore,
		catalog:      catalog,
		logger:       logger.With("component", "grammar_service"),
	}, nil
}

// SetPatternStatus marks a pattern for a learner, replacing any previous mark.
func (s *grammarServiceImpl) SetPatternStatus(
	ctx context.Context,
	username, patternKey string,
	status domain.PatternStatusValue,
) (*domain.PatternStatus, error) {
	learner, err := s.requireLearner(ctx, username)
	if err != nil {
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(patternKey))
	if _, ok := s.catalog.Lookup(key); !ok {
		return nil, ErrUnknownPattern
	}

	ps, err := domain.NewPatternStatus(learner.ID, key, status)
	if err != nil {
		return nil, newServiceError("grammar", "set_pattern_status", "invalid pattern status", err)
	}

	if err := s.patternStore.Upsert(ctx, ps); err != nil {
		s.logger.Error("failed to upsert pattern status",
			"error", err,
			"learner_id", learner.ID,
			"pattern_key", key)
		return nil, newServiceError(
			"grammar", "set_pattern_status", "failed to save pattern status", err)
	}

	s.logger.Debug("pattern status saved",
		"learner_id", learner.ID,
		"pattern_key", key,
		"status", status)
	return ps, nil
}

// Overview builds the per-level pattern status report.
func (s *grammarServiceImpl) Overview(
	ctx context.Context,
	username string,
) ([]LevelOverview, error) {
	learner, err := s.requireLearner(ctx, username)
	if err != nil {
		return nil, err
	}

	rows, err := s.patternStore.List(ctx, learner.ID)
	if err != nil {
		return nil, newServiceError("grammar", "overview", "failed to load pattern statuses", err)
	}

	statusByKey := make(map[string]domain.PatternStatusValue, len(rows))
	for _, row := range rows {
		statusByKey[row.PatternKey] = row.Status
	}

	overview := make([]LevelOverview, 0, len(domain.Levels()))
	for _, level := range domain.Levels() {
		keys := s.catalog.PatternsOf(level)
		lo := LevelOverview{
			Level:    level,
			Patterns: make([]PatternOverview, 0, len(keys)),
			Total:    len(keys),
		}
		for _, key := range keys {
			pattern, _ := s.catalog.Lookup(key)
			status, marked := statusByKey[key]
			if !marked {
				status = domain.PatternStatusUnknown
			}
			if status == domain.PatternStatusKnown {
				lo.Known++
			}
			lo.Patterns = append(lo.Patterns, PatternOverview{
				Key:         key,
				Description: pattern.Description,
				Status:      status,
			})
		}
		overview = append(overview, lo)
	}

	return overview, nil
}

func (s *grammarServiceImpl) requireLearner(
	ctx context.Context,
	username string,
) (*domain.Learner, error) {
	learner, err := s.learnerStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrLearnerNotFound) {
			return nil, ErrLearnerNotFound
		}
		return nil, newServiceError("grammar", "get_learner", "failed to retrieve learner", err)
	}
	return learner, nil
}
