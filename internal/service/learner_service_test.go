package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guvenchemy/MerkutY-BTK/internal/platform/logger"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
)

func TestLearnerServiceRegisterAndGet(t *testing.T) {
	t.Parallel()

	svc, err := service.NewLearnerService(newFakeLearnerStore(), logger.NewTestLogger())
	require.NoError(t, err)

	ctx := context.Background()

	learner, err := svc.Register(ctx, "ayse", "tr")
	require.NoError(t, err)
	assert.Equal(t, "ayse", learner.Username)
	assert.Equal(t, "tr", learner.NativeLanguage)

	got, err := svc.GetByUsername(ctx, "ayse")
	require.NoError(t, err)
	assert.Equal(t, learner.ID, got.ID)
}

func TestLearnerServiceDuplicateUsername(t *testing.T) {
	t.Parallel()

	svc, err := service.NewLearnerService(newFakeLearnerStore(), logger.NewTestLogger())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = svc.Register(ctx, "ayse", "tr")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ayse", "de")
	assert.ErrorIs(t, err, service.ErrUsernameTaken)
}

func TestLearnerServiceNotFound(t *testing.T) {
	t.Parallel()

	svc, err := service.NewLearnerService(newFakeLearnerStore(), logger.NewTestLogger())
	require.NoError(t, err)

	_, err = svc.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, service.ErrLearnerNotFound)
}

func TestNewLearnerServiceValidation(t *testing.T) {
	t.Parallel()

	_, err := service.NewLearnerService(nil, logger.NewTestLogger())
	assert.Error(t, err)
}
