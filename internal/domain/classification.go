package domain

// TokenLabel is the tri-state classification of a single text token
// relative to a learner's knowledge state.
type TokenLabel string

// Token labels. Excluded tokens (ignored words, proper nouns) do not count
// toward the unknown percentage.
const (
	TokenKnown    TokenLabel = "known"
	TokenUnknown  TokenLabel = "unknown"
	TokenExcluded TokenLabel = "excluded"
)

// Readiness is the qualitative i+1 verdict derived from a text's unknown
// word percentage.
type Readiness string

// Readiness buckets. The 5-15% band is the optimal comprehensible-input
// range.
const (
	ReadinessTooEasy     Readiness = "too_easy"
	ReadinessIdeal       Readiness = "ideal"
	ReadinessChallenging Readiness = "challenging"
	ReadinessTooHard     Readiness = "too_hard"
)

// ClassifiedToken is one token of the input text with its label. Text keeps
// its original casing; Word is the lowercased comparison form.
type ClassifiedToken struct {
	Text  string     `json:"text"`
	Word  string     `json:"word"`
	Label TokenLabel `json:"label"`
}

// TextClassification is the derived, ephemeral result of classifying a text
// against a learner's knowledge state.
type TextClassification struct {
	Tokens []ClassifiedToken `json:"tokens"`

	KnownWords    []string `json:"known_words"`
	UnknownWords  []string `json:"unknown_words"`
	ExcludedWords []string `json:"excluded_words"`

	TotalWords  int `json:"total_words"`
	UniqueWords int `json:"unique_words"`

	KnownCount    int `json:"known_count"`
	UnknownCount  int `json:"unknown_count"`
	ExcludedCount int `json:"excluded_count"`

	// UnknownPercentage = unknown / (known + unknown) * 100. Excluded
	// tokens are omitted from the denominator.
	UnknownPercentage float64 `json:"unknown_percentage"`

	Ready     bool      `json:"ready"`
	Readiness Readiness `json:"readiness"`
}
