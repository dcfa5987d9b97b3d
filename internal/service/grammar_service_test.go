package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/logger"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
)

func newGrammarService(t *testing.T) service.GrammarService {
	t.Helper()

	learners := newFakeLearnerStore()
	learner, err := domain.NewLearner("ayse", "tr")
	require.NoError(t, err)
	require.NoError(t, learners.Create(context.Background(), learner))

	catalog, err := grammar.NewDefaultCatalog(logger.NewTestLogger())
	require.NoError(t, err)

	svc, err := service.NewGrammarService(
		learners, newFakePatternStatusStore(), catalog, logger.NewTestLogger())
	require.NoError(t, err)
	return svc
}

func TestSetPatternStatus(t *testing.T) {
	t.Parallel()

	svc := newGrammarService(t)
	ctx := context.Background()

	ps, err := svc.SetPatternStatus(ctx, "ayse", " Present_Simple ", domain.PatternStatusKnown)
	require.NoError(t, err)
	assert.Equal(t, "present_simple", ps.PatternKey, "key is canonicalized")
	assert.Equal(t, domain.PatternStatusKnown, ps.Status)
}

func TestSetPatternStatusRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	svc := newGrammarService(t)

	_, err := svc.SetPatternStatus(
		context.Background(), "ayse", "no_such_pattern", domain.PatternStatusKnown)
	assert.ErrorIs(t, err, service.ErrUnknownPattern)
}

func TestGrammarOverview(t *testing.T) {
	t.Parallel()

	svc := newGrammarService(t)
	ctx := context.Background()

	_, err := svc.SetPatternStatus(ctx, "ayse", "present_simple", domain.PatternStatusKnown)
	require.NoError(t, err)
	_, err = svc.SetPatternStatus(ctx, "ayse", "articles", domain.PatternStatusPractice)
	require.NoError(t, err)

	overview, err := svc.Overview(ctx, "ayse")
	require.NoError(t, err)
	require.Len(t, overview, 6, "one group per CEFR level")

	a1 := overview[0]
	assert.Equal(t, domain.LevelA1, a1.Level)
	assert.Equal(t, 1, a1.Known)
	assert.Equal(t, len(a1.Patterns), a1.Total)

	statuses := make(map[string]domain.PatternStatusValue)
	for _, p := range a1.Patterns {
		statuses[p.Key] = p.Status
	}
	assert.Equal(t, domain.PatternStatusKnown, statuses["present_simple"])
	assert.Equal(t, domain.PatternStatusPractice, statuses["articles"])
	assert.Equal(t, domain.PatternStatusUnknown, statuses["basic_questions"],
		"unmarked patterns report as unknown")
}
