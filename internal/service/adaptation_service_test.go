package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guvenchemy/MerkutY-BTK/internal/adaptation"
	"github.com/guvenchemy/MerkutY-BTK/internal/analysis"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar"
	"github.com/guvenchemy/MerkutY-BTK/internal/importer"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/logger"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
)

// fakeAssessment returns a fixed assessment.
type fakeAssessment struct {
	assessment *domain.LevelAssessment
}

func (f *fakeAssessment) AssessLevel(
	ctx context.Context,
	username string,
) (*domain.LevelAssessment, error) {
	return f.assessment, nil
}

// fakeRewriter records the request and returns a canned rewrite.
type fakeRewriter struct {
	req adaptation.RewriteRequest
	out string
	err error
}

func (f *fakeRewriter) Rewrite(
	ctx context.Context,
	req adaptation.RewriteRequest,
) (string, error) {
	f.req = req
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func newAdaptationService(
	t *testing.T,
	rewriter adaptation.Rewriter,
) (service.AdaptationService, *domain.Learner, *fakeWordStatusStore) {
	t.Helper()

	learners := newFakeLearnerStore()
	learner, err := domain.NewLearner("ayse", "tr")
	require.NoError(t, err)
	require.NoError(t, learners.Create(context.Background(), learner))

	words := newFakeWordStatusStore()
	patterns := newFakePatternStatusStore()

	catalog, err := grammar.NewDefaultCatalog(logger.NewTestLogger())
	require.NoError(t, err)
	planner, err := adaptation.NewPlanner(catalog, logger.NewTestLogger())
	require.NoError(t, err)
	detector, err := grammar.NewDetector(catalog, logger.NewTestLogger())
	require.NoError(t, err)

	vocab, err := service.NewVocabularyService(
		learners, words,
		importer.NewImporter(logger.NewTestLogger()), &fakeTaskRunner{}, logger.NewTestLogger())
	require.NoError(t, err)

	analysisSvc, err := service.NewAnalysisService(
		learners, vocab,
		analysis.NewClassifier(nil, logger.NewTestLogger()),
		detector, catalog, logger.NewTestLogger())
	require.NoError(t, err)

	assessment := &fakeAssessment{
		assessment: &domain.LevelAssessment{
			CurrentLevel: domain.LevelA2,
			NextLevel:    domain.LevelB1,
		},
	}

	svc, err := service.NewAdaptationService(
		learners, words, patterns, assessment, analysisSvc,
		planner, rewriter, logger.NewTestLogger())
	require.NoError(t, err)
	return svc, learner, words
}

func TestAdaptTextPlansOneLevelUp(t *testing.T) {
	t.Parallel()

	rewriter := &fakeRewriter{out: "Simple text."}
	svc, learner, words := newAdaptationService(t, rewriter)
	ctx := context.Background()

	ws, err := domain.NewWordStatus(learner.ID, "cat", domain.WordStatusKnown, "")
	require.NoError(t, err)
	require.NoError(t, words.Upsert(ctx, ws))

	result, err := svc.AdaptText(ctx, "ayse", "A complicated original text.")
	require.NoError(t, err)

	assert.Equal(t, "A complicated original text.", result.OriginalText)
	assert.Equal(t, "Simple text.", result.AdaptedText)
	assert.Equal(t, domain.LevelA2, result.CurrentLevel)
	assert.Equal(t, domain.LevelB1, result.TargetLevel)

	assert.Equal(t, domain.LevelB1, rewriter.req.TargetLevel)
	assert.Contains(t, rewriter.req.KnownWordsSample, "cat")

	require.NotNil(t, result.Classification)
	assert.Equal(t, 4, result.Classification.TotalWords)
}

func TestAdaptTextWithoutRewriter(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAdaptationService(t, nil)

	_, err := svc.AdaptText(context.Background(), "ayse", "Some text.")
	assert.ErrorIs(t, err, service.ErrAdaptationUnavailable)
}

func TestAdaptTextRejectsEmptyText(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAdaptationService(t, &fakeRewriter{out: "x"})

	_, err := svc.AdaptText(context.Background(), "ayse", "   ")
	assert.Error(t, err)
}
