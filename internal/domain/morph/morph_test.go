package morph_test

import (
	"testing"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain/morph"
	"github.com/stretchr/testify/assert"
)

func TestVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
		want []string
	}{
		{
			name: "regular verb",
			word: "work",
			want: []string{"work", "working", "worked", "works"},
		},
		{
			name: "trailing e drops before ing",
			word: "use",
			want: []string{"use", "using", "used", "uses"},
		},
		{
			name: "sibilant ending takes es",
			word: "watch",
			want: []string{"watch", "watching", "watched", "watches"},
		},
		{
			name: "o ending takes es",
			word: "go",
			want: []string{"go", "going", "goed", "goes"},
		},
		{
			name: "consonant plus y becomes ies",
			word: "try",
			want: []string{"try", "trying", "tryed", "tries"},
		},
		{
			name: "vowel plus y takes plain s",
			word: "play",
			want: []string{"play", "playing", "played", "plays"},
		},
		{
			name: "infinitive prefix expands bare verb too",
			word: "to speak",
			want: []string{
				"to speak", "to speaking", "to speaked", "to speaks",
				"speak", "speaking", "speaked", "speaks",
			},
		},
		{
			name: "single letter returned as-is",
			word: "a",
			want: []string{"a"},
		},
		{
			name: "input is canonicalized",
			word: "  Work ",
			want: []string{"work", "working", "worked", "works"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, morph.Variants(tc.word))
		})
	}
}

func TestVariantsDeterministic(t *testing.T) {
	t.Parallel()

	first := morph.Variants("to use")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, morph.Variants("to use"))
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	expanded := morph.Expand([]string{"work", "use"})

	for _, form := range []string{"work", "working", "worked", "works", "use", "using", "used", "uses"} {
		assert.Contains(t, expanded, form)
	}
	assert.NotContains(t, expanded, "workes")
}

func TestRoots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{name: "ing strip", token: "working", want: []string{"work", "worke"}},
		{name: "ing strip restores e candidate", token: "using", want: []string{"us", "use"}},
		{name: "ed strip", token: "visited", want: []string{"visit", "visite"}},
		{name: "ies restores y", token: "flies", want: []string{"fly", "fli", "flie"}},
		{name: "es strip", token: "watches", want: []string{"watch", "watche"}},
		{name: "no recognized suffix", token: "cat", want: nil},
		{name: "suffix equals token", token: "ing", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, morph.Roots(tc.token))
		})
	}
}
