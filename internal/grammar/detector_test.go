package grammar_test

import (
	"testing"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetector(t *testing.T) *grammar.Detector {
	t.Helper()

	catalog, err := grammar.NewDefaultCatalog(logger.NewTestLogger())
	require.NoError(t, err)

	detector, err := grammar.NewDetector(catalog, logger.NewTestLogger())
	require.NoError(t, err)

	return detector
}

func TestDetectPerfectContinuousSuppressesSimplerTenses(t *testing.T) {
	t.Parallel()

	detector := newDetector(t)
	keys := detector.Detect("I have been working here for five years")

	assert.Contains(t, keys, "present_perfect_continuous")
	assert.NotContains(t, keys, "present_perfect")
	assert.NotContains(t, keys, "present_continuous")
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		contains    []string
		notContains []string
	}{
		{
			name:     "present continuous",
			text:     "She is working on a new project",
			contains: []string{"present_continuous"},
		},
		{
			name:        "advanced modal suppresses basic modal",
			text:        "You should have called me",
			contains:    []string{"modal_verbs_advanced"},
			notContains: []string{"modal_verbs_basic"},
		},
		{
			name:        "past perfect suppresses past simple",
			text:        "They had finished before noon",
			contains:    []string{"past_perfect"},
			notContains: []string{"past_simple"},
		},
		{
			name:     "first conditional",
			text:     "If it rains, we will stay home",
			contains: []string{"conditionals_type1"},
		},
		{
			name:     "comparatives",
			text:     "My house is bigger than yours",
			contains: []string{"basic_comparatives"},
		},
		{
			name:     "case insensitive",
			text:     "SHE IS WORKING",
			contains: []string{"present_continuous"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			keys := newDetector(t).Detect(tc.text)
			for _, key := range tc.contains {
				assert.Contains(t, keys, key)
			}
			for _, key := range tc.notContains {
				assert.NotContains(t, keys, key)
			}
		})
	}
}

func TestDetectDeterministic(t *testing.T) {
	t.Parallel()

	detector := newDetector(t)
	text := "If I had known, I would have visited the museum that everyone loves"

	first := detector.Detect(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, detector.Detect(text))
	}
}

func TestDetectEmptyText(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newDetector(t).Detect(""))
}

func TestCatalogLevelOf(t *testing.T) {
	t.Parallel()

	catalog, err := grammar.NewDefaultCatalog(logger.NewTestLogger())
	require.NoError(t, err)

	assert.Equal(t, "B1", catalog.LevelOf("present_perfect_continuous"))
	assert.Equal(t, "A1", catalog.LevelOf("articles"))
	assert.Equal(t, "C2", catalog.LevelOf("cleft_sentences"))
	assert.Equal(t, grammar.LevelUnknown, catalog.LevelOf("no_such_pattern"))
}

func TestCatalogPatternsOf(t *testing.T) {
	t.Parallel()

	catalog, err := grammar.NewDefaultCatalog(logger.NewTestLogger())
	require.NoError(t, err)

	a1 := catalog.PatternsOf(domain.LevelA1)
	assert.Len(t, a1, 6)
	assert.Contains(t, a1, "present_simple")
	assert.Contains(t, a1, "articles")

	c2 := catalog.PatternsOf(domain.LevelC2)
	assert.Len(t, c2, 4)
}
