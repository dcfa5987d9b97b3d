package progress_test

import (
	"testing"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar/progress"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalculator(t *testing.T) (*progress.Calculator, *grammar.Catalog) {
	t.Helper()

	catalog, err := grammar.NewDefaultCatalog(logger.NewTestLogger())
	require.NoError(t, err)

	calc, err := progress.NewCalculator(catalog)
	require.NoError(t, err)

	return calc, catalog
}

// patternsThrough returns every pattern key of all levels up to and
// including the given level.
func patternsThrough(catalog *grammar.Catalog, level domain.Level) []string {
	var keys []string
	for _, l := range domain.Levels() {
		keys = append(keys, catalog.PatternsOf(l)...)
		if l == level {
			break
		}
	}
	return keys
}

func TestAssessLevelBoundaries(t *testing.T) {
	t.Parallel()

	calc, catalog := newCalculator(t)

	tests := []struct {
		name     string
		vocab    int
		patterns []string
		want     domain.Level
	}{
		{
			name:  "empty ledger starts at A1",
			vocab: 0,
			want:  domain.LevelA1,
		},
		{
			name:     "threshold inclusive: 1000 words with full A1 grammar reaches A2",
			vocab:    1000,
			patterns: catalog.PatternsOf(domain.LevelA1),
			want:     domain.LevelA2,
		},
		{
			name:     "vocabulary alone is not enough",
			vocab:    5000,
			patterns: nil,
			want:     domain.LevelA1,
		},
		{
			name:     "grammar alone is not enough",
			vocab:    999,
			patterns: patternsThrough(catalog, domain.LevelC2),
			want:     domain.LevelA1,
		},
		{
			name:     "12000 words with A1 through C1 grammar reaches C2",
			vocab:    12000,
			patterns: patternsThrough(catalog, domain.LevelC1),
			want:     domain.LevelC2,
		},
		{
			name:     "missing one B1 pattern holds the learner at B1",
			vocab:    12000,
			patterns: dropOne(patternsThrough(catalog, domain.LevelC1), catalog.PatternsOf(domain.LevelB1)[0]),
			want:     domain.LevelB1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assessment, err := calc.Assess(tc.vocab, tc.patterns)
			require.NoError(t, err)
			assert.Equal(t, tc.want, assessment.CurrentLevel)
		})
	}
}

func dropOne(keys []string, exclude string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != exclude {
			out = append(out, k)
		}
	}
	return out
}

func TestAssessEmptyLedgerProgress(t *testing.T) {
	t.Parallel()

	calc, _ := newCalculator(t)

	assessment, err := calc.Assess(0, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.LevelA1, assessment.CurrentLevel)
	assert.Equal(t, domain.LevelA2, assessment.NextLevel)
	assert.Equal(t, 0.0, assessment.CurrentProgress.VocabularyProgress)
	assert.Equal(t, 0.0, assessment.ProgressToNext)
	assert.Equal(t, 1000, assessment.CurrentProgress.VocabularyRequired)
}

func TestAssessMonotonicity(t *testing.T) {
	t.Parallel()

	calc, catalog := newCalculator(t)

	vocabSteps := []int{0, 500, 1000, 2000, 5000, 7500, 10000, 15000}
	previous := domain.LevelA1
	known := []string{}

	for i, level := range domain.Levels() {
		known = append(known, catalog.PatternsOf(level)...)
		assessment, err := calc.Assess(vocabSteps[min(i+2, len(vocabSteps)-1)], known)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, assessment.CurrentLevel.Index(), previous.Index(),
			"level must never decrease as knowledge grows")
		previous = assessment.CurrentLevel
	}
}

func TestVocabularyScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		words int
		want  float64
	}{
		{words: 0, want: 0},
		{words: 1000, want: 16.67},
		{words: 2000, want: 33.33},
		{words: 5000, want: 50.0},
		{words: 7500, want: 66.67},
		{words: 10000, want: 83.33},
		{words: 15000, want: 100},
		{words: 50000, want: 100},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.want, progress.VocabularyScore(tc.words), 0.01,
			"score for %d words", tc.words)
	}
}

func TestAssessGrammarScoreFullMastery(t *testing.T) {
	t.Parallel()

	calc, catalog := newCalculator(t)

	assessment, err := calc.Assess(15000, patternsThrough(catalog, domain.LevelC2))
	require.NoError(t, err)

	assert.Equal(t, 100.0, assessment.GrammarScore)
	assert.Equal(t, 100.0, assessment.VocabularyScore)
	assert.Equal(t, domain.BalanceBalanced, assessment.Balance)
	assert.Equal(t, domain.LevelC2, assessment.CurrentLevel)
	assert.Equal(t, 100.0, assessment.ProgressToNext)
}

func TestAssessBalance(t *testing.T) {
	t.Parallel()

	calc, catalog := newCalculator(t)

	vocabHeavy, err := calc.Assess(10000, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BalanceVocabularyStrong, vocabHeavy.Balance)

	grammarHeavy, err := calc.Assess(0, patternsThrough(catalog, domain.LevelC2))
	require.NoError(t, err)
	assert.Equal(t, domain.BalanceGrammarStrong, grammarHeavy.Balance)
}

func TestAssessRecommendations(t *testing.T) {
	t.Parallel()

	calc, catalog := newCalculator(t)

	// Know all A1 patterns except two; A1 should be the first suggestion.
	a1 := catalog.PatternsOf(domain.LevelA1)
	known := a1[:len(a1)-2]

	assessment, err := calc.Assess(500, known)
	require.NoError(t, err)

	require.NotEmpty(t, assessment.Recommendations)
	assert.Equal(t, domain.LevelA1, assessment.Recommendations[0].Level)
	assert.ElementsMatch(t, a1[len(a1)-2:], assessment.Recommendations[0].MissingPatterns)
	assert.LessOrEqual(t, len(assessment.Recommendations), 3)
}

func TestAssessIgnoresUnrecognizedPatternKeys(t *testing.T) {
	t.Parallel()

	calc, catalog := newCalculator(t)

	known := append(catalog.PatternsOf(domain.LevelA1), "definitely_not_a_pattern")
	assessment, err := calc.Assess(1000, known)
	require.NoError(t, err)

	assert.Equal(t, domain.LevelA2, assessment.CurrentLevel)
}
