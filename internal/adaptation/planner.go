// Package adaptation turns level assessments into rewriting directives for
// the external LLM collaborator. The engine treats the rewriter's output as
// an opaque string.
package adaptation

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar"
)

// Sampling limits keep rewrite prompts bounded for large ledgers.
const (
	MaxKnownWordsSample    = 100
	MaxKnownPatternsSample = 20
	MaxAvoidPatternsSample = 15
)

// RewriteRequest is the directive handed to the rewriting collaborator.
type RewriteRequest struct {
	Text                string
	CurrentLevel        domain.Level
	TargetLevel         domain.Level
	KnownWordsSample    []string
	KnownPatternsSample []string
	AvoidPatterns       []string
}

// Rewriter is the external rewriting collaborator boundary. Implementations
// carry their own timeout and retry policy.
type Rewriter interface {
	Rewrite(ctx context.Context, req RewriteRequest) (string, error)
}

// Planner selects the target level and knowledge samples for a rewrite.
//
// Target policy is i+1: the text is rewritten one level above the learner's
// current level, capped at C2, so adapted input stays mostly comprehensible
// with a small novel fraction.
type Planner struct {
	catalog *grammar.Catalog
	logger  *slog.Logger
}

// NewPlanner creates a Planner over the given catalog.
func NewPlanner(catalog *grammar.Catalog, logger *slog.Logger) (*Planner, error) {
	if catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		catalog: catalog,
		logger:  logger.With("component", "adaptation_planner"),
	}, nil
}

// Plan builds the rewrite directive for a text given the learner's
// assessment and ledger samples. Known words are sorted before sampling so
// identical ledger state yields identical plans.
func (p *Planner) Plan(
	text string,
	assessment *domain.LevelAssessment,
	knownWords []string,
	knownPatterns []string,
) RewriteRequest {
	current := assessment.CurrentLevel
	target := current.Next()

	words := make([]string, len(knownWords))
	copy(words, knownWords)
	sort.Strings(words)
	if len(words) > MaxKnownWordsSample {
		words = words[:MaxKnownWordsSample]
	}

	patterns := knownPatterns
	if len(patterns) == 0 {
		patterns = p.assumedPatterns(assessment.CurrentProgress.VocabularyCount)
	}
	if len(patterns) > MaxKnownPatternsSample {
		patterns = patterns[:MaxKnownPatternsSample]
	}

	return RewriteRequest{
		Text:                text,
		CurrentLevel:        current,
		TargetLevel:         target,
		KnownWordsSample:    words,
		KnownPatternsSample: patterns,
		AvoidPatterns:       p.avoidPatterns(current),
	}
}

// assumedPatterns is a heuristic default for learners with vocabulary but
// no explicit grammar marks: vocabulary size suggests a plausible pattern
// set. It only shapes the rewrite prompt; it is never written to the ledger
// and never feeds the level calculator.
func (p *Planner) assumedPatterns(vocabCount int) []string {
	if vocabCount <= 1000 {
		return nil
	}

	patterns := []string{"present_simple", "past_simple", "future_will", "basic_questions"}
	if vocabCount >= 2000 {
		patterns = append(patterns,
			"present_continuous", "conditionals_type1", "basic_comparatives", "modal_verbs_basic")
	}
	if vocabCount >= 4000 {
		patterns = append(patterns,
			"present_perfect", "passive_voice_simple", "past_continuous",
			"relative_clauses_basic", "reported_speech")
	}

	p.logger.Info("assuming grammar patterns from vocabulary size",
		"vocabulary_count", vocabCount,
		"assumed_patterns", len(patterns))
	return patterns
}

// avoidPatterns lists every catalog pattern more than one level above the
// learner, truncated for the prompt.
func (p *Planner) avoidPatterns(current domain.Level) []string {
	var avoid []string
	for _, level := range domain.Levels() {
		if level.Index() > current.Index()+1 {
			avoid = append(avoid, p.catalog.PatternsOf(level)...)
		}
	}
	if len(avoid) > MaxAvoidPatternsSample {
		avoid = avoid[:MaxAvoidPatternsSample]
	}
	return avoid
}
