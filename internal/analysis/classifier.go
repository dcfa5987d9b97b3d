// Package analysis classifies text word by word against a learner's
// knowledge state and computes the i+1 readiness verdict. The classifier is
// pure given its input sets: it never writes to the ledger.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain/morph"
	"github.com/guvenchemy/MerkutY-BTK/internal/ner"
)

// tokenPattern extracts alphabetic runs including internal apostrophes, so
// contractions stay single tokens.
var tokenPattern = regexp.MustCompile(`[a-zA-Z]+(?:'[a-zA-Z]+)?`)

// commonCapitalized are sentence-initial words that capitalization alone
// must not turn into proper nouns.
var commonCapitalized = map[string]struct{}{
	"the": {}, "this": {}, "that": {}, "there": {}, "then": {}, "they": {},
	"them": {}, "these": {}, "those": {}, "when": {}, "where": {}, "what": {},
	"who": {}, "why": {}, "how": {}, "which": {}, "while": {}, "with": {},
	"will": {}, "would": {}, "was": {}, "were": {}, "are": {}, "and": {},
	"but": {}, "for": {}, "not": {}, "all": {},
}

// Knowledge carries the learner's word sets for one classification pass.
// KnownExpanded must already include morphological variants; Ignored and
// ExplicitUnknown hold canonical ledger entries and may contain multi-word
// phrases.
type Knowledge struct {
	KnownExpanded   map[string]struct{}
	Ignored         map[string]struct{}
	ExplicitUnknown map[string]struct{}
}

// Classifier labels every token of a text as known, unknown or excluded.
type Classifier struct {
	tagger ner.Tagger
	logger *slog.Logger
}

// NewClassifier creates a Classifier. A nil tagger selects the no-op
// implementation, degrading proper-noun detection to surface heuristics.
func NewClassifier(tagger ner.Tagger, logger *slog.Logger) *Classifier {
	if tagger == nil {
		tagger = ner.NoopTagger{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		tagger: tagger,
		logger: logger.With("component", "text_classifier"),
	}
}

// Classify tokenizes text and labels each token by the override precedence:
// explicitly unknown wins, then ignored, then known (directly or through a
// morphological root), then the proper-noun exclusion, otherwise unknown.
// It honors ctx cancellation, returning a typed cancelled error instead of
// partial output.
func (c *Classifier) Classify(
	ctx context.Context,
	text string,
	know Knowledge,
) (*domain.TextClassification, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyText
	}

	tokens := tokenPattern.FindAllString(text, -1)

	wordsInText := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		wordsInText[strings.ToLower(tok)] = struct{}{}
	}

	unknownSet := effectiveSet(know.ExplicitUnknown, wordsInText)
	ignoredSet := effectiveSet(know.Ignored, wordsInText)

	entities := c.tagEntities(ctx, text)

	result := &domain.TextClassification{
		Tokens:     make([]domain.ClassifiedToken, 0, len(tokens)),
		TotalWords: len(tokens),
	}

	seen := make(map[string]struct{}, len(tokens))
	seenByLabel := make(map[domain.TokenLabel]map[string]struct{})
	for _, label := range []domain.TokenLabel{domain.TokenKnown, domain.TokenUnknown, domain.TokenExcluded} {
		seenByLabel[label] = make(map[string]struct{})
	}

	for _, tok := range tokens {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCancelled, err)
		}

		word := strings.ToLower(tok)
		label := c.classifyToken(tok, word, know, unknownSet, ignoredSet, entities)

		result.Tokens = append(result.Tokens, domain.ClassifiedToken{
			Text:  tok,
			Word:  word,
			Label: label,
		})

		if _, dup := seen[word]; !dup {
			seen[word] = struct{}{}
			result.UniqueWords++
		}

		if _, dup := seenByLabel[label][word]; !dup {
			seenByLabel[label][word] = struct{}{}
			switch label {
			case domain.TokenKnown:
				result.KnownWords = append(result.KnownWords, word)
			case domain.TokenUnknown:
				result.UnknownWords = append(result.UnknownWords, word)
			case domain.TokenExcluded:
				result.ExcludedWords = append(result.ExcludedWords, word)
			}
		}

		switch label {
		case domain.TokenKnown:
			result.KnownCount++
		case domain.TokenUnknown:
			result.UnknownCount++
		case domain.TokenExcluded:
			result.ExcludedCount++
		}
	}

	// Excluded tokens stay out of the denominator.
	counted := result.KnownCount + result.UnknownCount
	if counted > 0 {
		result.UnknownPercentage = float64(result.UnknownCount) / float64(counted) * 100
	}

	result.Readiness = readiness(result.UnknownPercentage)
	result.Ready = result.Readiness == domain.ReadinessIdeal

	return result, nil
}

// classifyToken applies the per-token priority order; first match wins.
func (c *Classifier) classifyToken(
	tok, word string,
	know Knowledge,
	unknownSet, ignoredSet map[string]struct{},
	entities map[string]ner.Label,
) domain.TokenLabel {
	if _, ok := unknownSet[word]; ok {
		return domain.TokenUnknown
	}

	if _, ok := ignoredSet[word]; ok {
		return domain.TokenExcluded
	}

	if isKnown(word, know.KnownExpanded) {
		return domain.TokenKnown
	}

	if c.isProperNoun(tok, word, entities) {
		return domain.TokenExcluded
	}

	return domain.TokenUnknown
}

// isKnown checks the expanded known set directly, through the "to " verb
// notation, and through suffix-stripped roots.
func isKnown(word string, knownExpanded map[string]struct{}) bool {
	if _, ok := knownExpanded[word]; ok {
		return true
	}
	if _, ok := knownExpanded[morph.InfinitivePrefix+word]; ok {
		return true
	}

	for _, root := range morph.Roots(word) {
		if _, ok := knownExpanded[root]; ok {
			return true
		}
		if _, ok := knownExpanded[morph.InfinitivePrefix+root]; ok {
			return true
		}
	}

	return false
}

// isProperNoun applies the surface heuristics: CamelCase, or a capitalized
// non-common word (all-caps acronyms are exempt), or an NER proper-noun tag.
func (c *Classifier) isProperNoun(tok, word string, entities map[string]ner.Label) bool {
	runes := []rune(tok)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		if label, ok := entities[word]; ok && ner.IsProperNounLabel(label) {
			return true
		}
		return false
	}

	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			// CamelCase unless the whole token is an acronym.
			if !isAllUpper(runes) {
				return true
			}
			break
		}
	}

	if len(runes) > 2 && !isAllUpper(runes) {
		if _, common := commonCapitalized[word]; !common {
			return true
		}
	}

	if label, ok := entities[word]; ok && ner.IsProperNounLabel(label) {
		return true
	}

	return false
}

// tagEntities asks the optional NER collaborator for proper-noun spans.
// Failures degrade to surface heuristics, never fail classification.
func (c *Classifier) tagEntities(ctx context.Context, text string) map[string]ner.Label {
	entities, err := c.tagger.TagEntities(ctx, text)
	if err != nil {
		c.logger.Warn("entity tagging unavailable, using surface heuristics only",
			"error", err)
		return nil
	}
	if len(entities) == 0 {
		return nil
	}

	byWord := make(map[string]ner.Label, len(entities))
	for _, e := range entities {
		for _, tok := range tokenPattern.FindAllString(e.Text, -1) {
			byWord[strings.ToLower(tok)] = e.Label
		}
	}
	return byWord
}

// effectiveSet expands a ledger word set for one text: single words pass
// through, the bare form of "to " entries is added, and a multi-word phrase
// contributes its constituent words when every one of them appears in the
// text.
func effectiveSet(marked, wordsInText map[string]struct{}) map[string]struct{} {
	if len(marked) == 0 {
		return nil
	}

	out := make(map[string]struct{}, len(marked))
	for entry := range marked {
		if bare, ok := strings.CutPrefix(entry, morph.InfinitivePrefix); ok {
			out[bare] = struct{}{}
			continue
		}

		if !strings.Contains(entry, " ") {
			out[entry] = struct{}{}
			continue
		}

		parts := strings.Fields(entry)
		all := true
		for _, p := range parts {
			if _, ok := wordsInText[p]; !ok {
				all = false
				break
			}
		}
		if all {
			for _, p := range parts {
				out[p] = struct{}{}
			}
		}
	}
	return out
}

// readiness buckets the unknown percentage per the i+1 principle.
func readiness(unknownPct float64) domain.Readiness {
	switch {
	case unknownPct < 5:
		return domain.ReadinessTooEasy
	case unknownPct <= 15:
		return domain.ReadinessIdeal
	case unknownPct <= 25:
		return domain.ReadinessChallenging
	default:
		return domain.ReadinessTooHard
	}
}

func isAllUpper(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
