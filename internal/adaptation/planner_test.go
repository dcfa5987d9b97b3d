package adaptation_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/guvenchemy/MerkutY-BTK/internal/adaptation"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanner(t *testing.T) *adaptation.Planner {
	t.Helper()

	catalog, err := grammar.NewDefaultCatalog(logger.NewTestLogger())
	require.NoError(t, err)

	planner, err := adaptation.NewPlanner(catalog, logger.NewTestLogger())
	require.NoError(t, err)

	return planner
}

func assessmentAt(level domain.Level, vocabCount int) *domain.LevelAssessment {
	return &domain.LevelAssessment{
		CurrentLevel: level,
		NextLevel:    level.Next(),
		CurrentProgress: domain.LevelProgress{
			VocabularyCount: vocabCount,
		},
	}
}

func TestPlanTargetsOneLevelUp(t *testing.T) {
	t.Parallel()

	planner := newPlanner(t)

	tests := []struct {
		current domain.Level
		want    domain.Level
	}{
		{current: domain.LevelA1, want: domain.LevelA2},
		{current: domain.LevelB1, want: domain.LevelB2},
		{current: domain.LevelC1, want: domain.LevelC2},
		{current: domain.LevelC2, want: domain.LevelC2},
	}

	for _, tc := range tests {
		req := planner.Plan("text", assessmentAt(tc.current, 500), nil, []string{"articles"})
		assert.Equal(t, tc.want, req.TargetLevel, "target for current level %s", tc.current)
	}
}

func TestPlanSamplesAreBoundedAndDeterministic(t *testing.T) {
	t.Parallel()

	planner := newPlanner(t)

	words := make([]string, 250)
	for i := range words {
		words[i] = fmt.Sprintf("word%03d", i)
	}
	patterns := make([]string, 30)
	for i := range patterns {
		patterns[i] = fmt.Sprintf("pattern_%02d", i)
	}

	first := planner.Plan("text", assessmentAt(domain.LevelB1, 3000), words, patterns)
	second := planner.Plan("text", assessmentAt(domain.LevelB1, 3000), words, patterns)

	assert.Len(t, first.KnownWordsSample, adaptation.MaxKnownWordsSample)
	assert.Len(t, first.KnownPatternsSample, adaptation.MaxKnownPatternsSample)
	assert.Equal(t, first, second)
}

func TestPlanAssumesPatternsFromVocabularyOnly(t *testing.T) {
	t.Parallel()

	planner := newPlanner(t)

	// No marks and little vocabulary: nothing assumed.
	small := planner.Plan("text", assessmentAt(domain.LevelA1, 800), nil, nil)
	assert.Empty(t, small.KnownPatternsSample)

	// No marks but substantial vocabulary: a plausible set is assumed.
	large := planner.Plan("text", assessmentAt(domain.LevelA1, 4500), nil, nil)
	assert.Contains(t, large.KnownPatternsSample, "past_simple")
	assert.Contains(t, large.KnownPatternsSample, "present_perfect")

	// Explicit marks always win over the heuristic.
	marked := planner.Plan("text", assessmentAt(domain.LevelA1, 4500), nil, []string{"articles"})
	assert.Equal(t, []string{"articles"}, marked.KnownPatternsSample)
}

func TestPlanAvoidPatternsAreAboveNextLevel(t *testing.T) {
	t.Parallel()

	planner := newPlanner(t)

	req := planner.Plan("text", assessmentAt(domain.LevelB2, 6000), nil, []string{"articles"})

	assert.NotEmpty(t, req.AvoidPatterns)
	assert.LessOrEqual(t, len(req.AvoidPatterns), adaptation.MaxAvoidPatternsSample)
	assert.Contains(t, req.AvoidPatterns, "mixed_conditionals")
	assert.NotContains(t, req.AvoidPatterns, "conditionals_type3")
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	prompt := adaptation.BuildPrompt(adaptation.RewriteRequest{
		Text:                "The cat sat on the mat.",
		CurrentLevel:        domain.LevelA2,
		TargetLevel:         domain.LevelB1,
		KnownWordsSample:    []string{"cat", "mat"},
		KnownPatternsSample: []string{"present_simple"},
		AvoidPatterns:       []string{"inversion"},
	})

	assert.Contains(t, prompt, "exactly at B1 CEFR level")
	assert.Contains(t, prompt, "cat, mat")
	assert.Contains(t, prompt, "present_simple")
	assert.Contains(t, prompt, "inversion")
	assert.True(t, strings.Contains(prompt, "The cat sat on the mat."))
}
