package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guvenchemy/MerkutY-BTK/internal/analysis"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar"
	"github.com/guvenchemy/MerkutY-BTK/internal/importer"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/logger"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
)

func newAnalysisService(t *testing.T) (service.AnalysisService, service.VocabularyService) {
	t.Helper()

	learners := newFakeLearnerStore()
	learner, err := domain.NewLearner("ayse", "tr")
	require.NoError(t, err)
	require.NoError(t, learners.Create(context.Background(), learner))

	vocab, err := service.NewVocabularyService(
		learners, newFakeWordStatusStore(),
		importer.NewImporter(logger.NewTestLogger()), &fakeTaskRunner{}, logger.NewTestLogger())
	require.NoError(t, err)

	catalog, err := grammar.NewDefaultCatalog(logger.NewTestLogger())
	require.NoError(t, err)
	detector, err := grammar.NewDetector(catalog, logger.NewTestLogger())
	require.NoError(t, err)

	svc, err := service.NewAnalysisService(
		learners, vocab,
		analysis.NewClassifier(nil, logger.NewTestLogger()),
		detector, catalog, logger.NewTestLogger())
	require.NoError(t, err)
	return svc, vocab
}

func TestClassifyTextUsesLedger(t *testing.T) {
	t.Parallel()

	svc, vocab := newAnalysisService(t)
	ctx := context.Background()

	for _, word := range []string{"i", "like", "apple", "and", "banana"} {
		_, err := vocab.SetWordStatus(ctx, "ayse", word, domain.WordStatusKnown, "")
		require.NoError(t, err)
	}

	result, err := svc.ClassifyText(ctx, "ayse", "I like apples and bananas today")
	require.NoError(t, err)

	assert.Equal(t, 6, result.TotalWords)
	assert.Equal(t, 5, result.KnownCount, "plural inflections of known words count as known")
	assert.Equal(t, 1, result.UnknownCount)
	assert.Contains(t, result.UnknownWords, "today")
}

func TestClassifyTextIgnoredWordVariants(t *testing.T) {
	t.Parallel()

	svc, vocab := newAnalysisService(t)
	ctx := context.Background()

	_, err := vocab.SetWordStatus(ctx, "ayse", "run", domain.WordStatusIgnored, "")
	require.NoError(t, err)

	result, err := svc.ClassifyText(ctx, "ayse", "she runs and they run")
	require.NoError(t, err)

	labels := make(map[string]domain.TokenLabel)
	for _, tok := range result.Tokens {
		labels[tok.Word] = tok.Label
	}

	assert.Equal(t, domain.TokenExcluded, labels["run"], "the ignored form itself is excluded")
	assert.Equal(t, domain.TokenKnown, labels["runs"],
		"an inflection of an ignored word does not count against the unknown percentage")
	assert.NotContains(t, result.UnknownWords, "runs")
}

func TestClassifyTextUnknownLearner(t *testing.T) {
	t.Parallel()

	svc, _ := newAnalysisService(t)

	_, err := svc.ClassifyText(context.Background(), "ghost", "Hello there")
	assert.ErrorIs(t, err, service.ErrLearnerNotFound)
}

func TestDetectPatternsResolvesMetadata(t *testing.T) {
	t.Parallel()

	svc, _ := newAnalysisService(t)

	detected, err := svc.DetectPatterns(context.Background(), "I have been working here for five years.")
	require.NoError(t, err)
	require.NotEmpty(t, detected)

	byKey := make(map[string]service.DetectedPattern)
	for _, d := range detected {
		byKey[d.Key] = d
	}
	pattern, ok := byKey["present_perfect_continuous"]
	require.True(t, ok)
	assert.Equal(t, domain.LevelB1, pattern.Level)
	assert.NotEmpty(t, pattern.Description)
}
