package domain

// Balance describes the relationship between a learner's vocabulary and
// grammar scores.
type Balance string

// Balance values. Scores within 10 points of each other are balanced.
const (
	BalanceBalanced         Balance = "balanced"
	BalanceVocabularyStrong Balance = "vocabulary_strong"
	BalanceGrammarStrong    Balance = "grammar_strong"
)

// Recommendation suggests the next grammar patterns a learner should study.
type Recommendation struct {
	Level           Level    `json:"level"`
	MissingPatterns []string `json:"missing_patterns"`
}

// LevelProgress describes how far a learner has come within one level's
// requirements.
type LevelProgress struct {
	VocabularyCount     int     `json:"vocabulary_count"`
	VocabularyRequired  int     `json:"vocabulary_required"`
	VocabularyProgress  float64 `json:"vocabulary_progress"`
	VocabularyRemaining int     `json:"vocabulary_remaining"`

	GrammarKnown    int     `json:"grammar_known"`
	GrammarRequired int     `json:"grammar_required"`
	GrammarProgress float64 `json:"grammar_progress"`

	OverallProgress float64 `json:"overall_progress"`
}

// LevelAssessment is the derived view of a learner's proficiency. It is
// computed fresh from current ledger state and never persisted.
type LevelAssessment struct {
	CurrentLevel Level `json:"current_level"`
	NextLevel    Level `json:"next_level"`

	CurrentProgress LevelProgress `json:"current_progress"`

	// ProgressToNext is the minimum of the vocabulary and grammar progress
	// toward the next level's requirements. Both must independently reach
	// 100 before the level advances.
	ProgressToNext float64 `json:"progress_to_next"`

	VocabularyScore float64 `json:"vocabulary_score"`
	GrammarScore    float64 `json:"grammar_score"`
	TotalScore      float64 `json:"total_score"`
	Balance         Balance `json:"balance"`

	Recommendations []Recommendation `json:"recommendations"`
}
