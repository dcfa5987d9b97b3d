package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/store"
)

// LearnerService provides learner registration and lookup.
type LearnerService interface {
	// Register creates a new learner.
	// Returns ErrUsernameTaken if the username is already in use.
	Register(ctx context.Context, username, nativeLanguage string) (*domain.Learner, error)

	// GetByUsername retrieves a learner by username.
	// Returns ErrLearnerNotFound if the learner does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.Learner, error)
}

// learnerServiceImpl implements the LearnerService interface
type learnerServiceImpl struct {
	learnerStore store.LearnerStore
	logger       *slog.Logger
}

// NewLearnerService creates a new LearnerService.
// It returns an error if any of the required dependencies are nil.
func NewLearnerService(
	learnerStore store.LearnerStore,
	logger *slog.Logger,
) (LearnerService, error) {
	if learnerStore == nil {
		return nil, &ServiceError{
			Service:   "learner",
			Operation: "create_service",
			Message:   "learnerStore cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &learnerServiceImpl{
		learnerStore: learnerStore,
		logger:       logger.With("component", "learner_service"),
	}, nil
}

// Register creates a new learner with a validated username.
func (s *learnerServiceImpl) Register(
	ctx context.Context,
	username, nativeLanguage string,
) (*domain.Learner, error) {
	learner, err := domain.NewLearner(username, nativeLanguage)
	if err != nil {
		return nil, newServiceError("learner", "register", "invalid learner data", err)
	}

	if err := s.learnerStore.Create(ctx, learner); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("failed to create learner",
			"error", err,
			"username", learner.Username)
		return nil, newServiceError("learner", "register", "failed to save learner", err)
	}

	s.logger.Info("learner registered",
		"learner_id", learner.ID,
		"username", learner.Username)
	return learner, nil
}

// GetByUsername retrieves a learner by username.
func (s *learnerServiceImpl) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.Learner, error) {
	learner, err := s.learnerStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrLearnerNotFound) {
			return nil, ErrLearnerNotFound
		}
		return nil, newServiceError("learner", "get_by_username", "failed to retrieve learner", err)
	}
	return learner, nil
}
