// Package progress derives CEFR level assessments from ledger counts. It is
// pure: given a vocabulary count and the set of known pattern keys it
// computes the same assessment every time, with no I/O.
package progress

import (
	"errors"
	"fmt"
	"math"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar"
)

// requirement is what a learner must satisfy to currently be "in" a level:
// a minimum known-vocabulary count and full mastery of the prerequisite
// levels' patterns.
type requirement struct {
	vocab   int
	prereqs []domain.Level
}

// requirementFor returns the entry requirement for each CEFR level. A1 is
// vacuous, which guarantees the level scan terminates.
func requirementFor(level domain.Level) requirement {
	switch level {
	case domain.LevelA2:
		return requirement{vocab: 1000, prereqs: []domain.Level{domain.LevelA1}}
	case domain.LevelB1:
		return requirement{vocab: 2000, prereqs: []domain.Level{domain.LevelA1, domain.LevelA2}}
	case domain.LevelB2:
		return requirement{
			vocab:   5000,
			prereqs: []domain.Level{domain.LevelA1, domain.LevelA2, domain.LevelB1},
		}
	case domain.LevelC1:
		return requirement{
			vocab:   7500,
			prereqs: []domain.Level{domain.LevelA1, domain.LevelA2, domain.LevelB1, domain.LevelB2},
		}
	case domain.LevelC2:
		return requirement{
			vocab: 10000,
			prereqs: []domain.Level{
				domain.LevelA1, domain.LevelA2, domain.LevelB1, domain.LevelB2, domain.LevelC1,
			},
		}
	default:
		return requirement{}
	}
}

// grammarWeight is each level's share of the 0-100 grammar score.
func grammarWeight(level domain.Level) float64 {
	switch level {
	case domain.LevelA1:
		return 10
	case domain.LevelA2:
		return 15
	case domain.LevelB1:
		return 20
	case domain.LevelB2:
		return 25
	case domain.LevelC1:
		return 15
	case domain.LevelC2:
		return 15
	}
	return 0
}

// Calculator computes level assessments against one pattern catalog.
type Calculator struct {
	catalog *grammar.Catalog
}

// NewCalculator creates a Calculator over the given catalog.
func NewCalculator(catalog *grammar.Catalog) (*Calculator, error) {
	if catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}
	return &Calculator{catalog: catalog}, nil
}

// Assess derives the learner's current CEFR level and progress metrics from
// the known-vocabulary count and the known pattern keys. An unexpected
// internal fault is caught at this boundary and reported as a computation
// error, never as a panic.
func (c *Calculator) Assess(vocabCount int, knownPatterns []string) (assessment *domain.LevelAssessment, err error) {
	defer func() {
		if p := recover(); p != nil {
			assessment = nil
			err = fmt.Errorf("%w: %v", domain.ErrComputation, p)
		}
	}()

	if vocabCount < 0 {
		vocabCount = 0
	}

	knownByLevel := c.partitionKnown(knownPatterns)

	// Scan from C2 down: the learner's current level is the highest whose
	// vocabulary threshold is met and whose prerequisite levels are fully
	// mastered.
	current := domain.LevelA1
	levels := domain.Levels()
	for i := len(levels) - 1; i >= 0; i-- {
		level := levels[i]
		req := requirementFor(level)

		if vocabCount < req.vocab {
			continue
		}

		met := true
		for _, prereq := range req.prereqs {
			total := len(c.catalog.PatternsOf(prereq))
			if total > 0 && len(knownByLevel[prereq]) < total {
				met = false
				break
			}
		}

		if met {
			current = level
			break
		}
	}

	next := current.Next()

	currentTotal := len(c.catalog.PatternsOf(current))
	currentKnown := len(knownByLevel[current])

	grammarProgress := 100.0
	if currentTotal > 0 {
		grammarProgress = float64(currentKnown) / float64(currentTotal) * 100
	}

	vocabTarget := vocabCount
	vocabProgress := 100.0
	progressToNext := 100.0
	if next != current {
		nextReq := requirementFor(next)
		vocabTarget = nextReq.vocab
		vocabProgress = math.Min(100, float64(vocabCount)/float64(nextReq.vocab)*100)

		// Grammar progress toward the next level spans the union of its
		// prerequisite levels.
		totalRequired := 0
		totalKnown := 0
		for _, prereq := range nextReq.prereqs {
			totalRequired += len(c.catalog.PatternsOf(prereq))
			totalKnown += len(knownByLevel[prereq])
		}
		grammarProgressNext := 100.0
		if totalRequired > 0 {
			grammarProgressNext = float64(totalKnown) / float64(totalRequired) * 100
		}

		// An AND, not an average: both components must independently
		// reach 100 before the level advances.
		progressToNext = math.Min(vocabProgress, grammarProgressNext)
	}

	vocabScore := VocabularyScore(vocabCount)
	grammarScore := c.grammarScore(knownByLevel)

	assessment = &domain.LevelAssessment{
		CurrentLevel: current,
		NextLevel:    next,
		CurrentProgress: domain.LevelProgress{
			VocabularyCount:     vocabCount,
			VocabularyRequired:  vocabTarget,
			VocabularyProgress:  round1(vocabProgress),
			VocabularyRemaining: max(0, vocabTarget-vocabCount),
			GrammarKnown:        currentKnown,
			GrammarRequired:     currentTotal,
			GrammarProgress:     round1(grammarProgress),
			OverallProgress:     round1(math.Min(vocabProgress, grammarProgress)),
		},
		ProgressToNext:  round1(progressToNext),
		VocabularyScore: round1(vocabScore),
		GrammarScore:    round1(grammarScore),
		TotalScore:      round1((vocabScore + grammarScore) / 2),
		Balance:         analyzeBalance(vocabScore, grammarScore),
		Recommendations: c.recommendations(knownByLevel),
	}
	return assessment, nil
}

// partitionKnown groups the known pattern keys by their catalog level.
// Keys the catalog does not recognize are dropped; LevelOf already logs the
// data-quality warning for them.
func (c *Calculator) partitionKnown(knownPatterns []string) map[domain.Level]map[string]struct{} {
	byLevel := make(map[domain.Level]map[string]struct{})
	for _, key := range knownPatterns {
		level := c.catalog.LevelOf(key)
		if level == grammar.LevelUnknown {
			continue
		}
		l := domain.Level(level)
		if byLevel[l] == nil {
			byLevel[l] = make(map[string]struct{})
		}
		byLevel[l][key] = struct{}{}
	}
	return byLevel
}

// VocabularyScore maps a known-word count onto a continuous 0-100 scale by
// piecewise-linear interpolation across the CEFR vocabulary bins
// (1000 -> 16.67, 2000 -> 33.33, 5000 -> 50, 7500 -> 66.67, 10000 -> 83.33,
// 15000+ -> 100).
func VocabularyScore(knownWords int) float64 {
	switch {
	case knownWords <= 0:
		return 0
	case knownWords <= 1000:
		return float64(knownWords) / 1000 * 16.67
	case knownWords <= 2000:
		return 16.67 + float64(knownWords-1000)/1000*16.66
	case knownWords <= 5000:
		return 33.33 + float64(knownWords-2000)/3000*16.67
	case knownWords <= 7500:
		return 50.0 + float64(knownWords-5000)/2500*16.67
	case knownWords <= 10000:
		return 66.67 + float64(knownWords-7500)/2500*16.66
	default:
		return 83.33 + math.Min(16.67, float64(knownWords-10000)/5000*16.67)
	}
}

// grammarScore sums each level's weight scaled by its completion fraction,
// capped at 100.
func (c *Calculator) grammarScore(knownByLevel map[domain.Level]map[string]struct{}) float64 {
	total := 0.0
	for _, level := range domain.Levels() {
		patterns := c.catalog.PatternsOf(level)
		if len(patterns) == 0 {
			continue
		}
		completion := float64(len(knownByLevel[level])) / float64(len(patterns))
		total += grammarWeight(level) * completion
	}
	return math.Min(100, total)
}

// analyzeBalance compares the two scores; within 10 points they count as
// balanced.
func analyzeBalance(vocabScore, grammarScore float64) domain.Balance {
	diff := math.Abs(vocabScore - grammarScore)
	switch {
	case diff < 10:
		return domain.BalanceBalanced
	case vocabScore > grammarScore:
		return domain.BalanceVocabularyStrong
	default:
		return domain.BalanceGrammarStrong
	}
}

// recommendations scans levels in ascending order and suggests levels that
// are almost complete (one or two patterns missing), up to three entries.
func (c *Calculator) recommendations(knownByLevel map[domain.Level]map[string]struct{}) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, 3)
	for _, level := range domain.Levels() {
		known := knownByLevel[level]
		var missing []string
		for _, key := range c.catalog.PatternsOf(level) {
			if _, ok := known[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 && len(missing) <= 2 {
			recs = append(recs, domain.Recommendation{Level: level, MissingPatterns: missing})
			if len(recs) == 3 {
				break
			}
		}
	}
	return recs
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
