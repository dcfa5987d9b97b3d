package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// WordStatusValue is the learner-declared status of a vocabulary item.
type WordStatusValue string

// Possible word status values. "ignored" means the word is excluded from
// difficulty counting without being actively learned.
const (
	WordStatusKnown   WordStatusValue = "known"
	WordStatusUnknown WordStatusValue = "unknown"
	WordStatusIgnored WordStatusValue = "ignored"
)

// IsValid reports whether v is a recognized word status value.
func (v WordStatusValue) IsValid() bool {
	switch v {
	case WordStatusKnown, WordStatusUnknown, WordStatusIgnored:
		return true
	}
	return false
}

// CanonicalWord normalizes a word for ledger storage and comparison:
// lowercase, surrounding whitespace trimmed. Multi-word phrases keep their
// internal spaces.
func CanonicalWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// WordStatus is a ledger row recording a learner's status for one canonical
// word. There is exactly one row per (learner, word); re-marks update the
// row in place.
type WordStatus struct {
	ID          uuid.UUID       `json:"id"`
	LearnerID   uuid.UUID       `json:"learner_id"`
	Word        string          `json:"word"`
	Status      WordStatusValue `json:"status"`
	Translation string          `json:"translation,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewWordStatus creates a new WordStatus for the given learner and word.
// The word is canonicalized before storage. Returns an error if validation
// fails.
func NewWordStatus(
	learnerID uuid.UUID,
	word string,
	status WordStatusValue,
	translation string,
) (*WordStatus, error) {
	ws := &WordStatus{
		ID:          uuid.New(),
		LearnerID:   learnerID,
		Word:        CanonicalWord(word),
		Status:      status,
		Translation: strings.TrimSpace(translation),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := ws.Validate(); err != nil {
		return nil, err
	}

	return ws, nil
}

// Validate checks if the WordStatus has valid data.
func (ws *WordStatus) Validate() error {
	if ws.LearnerID == uuid.Nil {
		return ErrLearnerIDEmpty
	}

	if ws.Word == "" {
		return ErrEmptyWord
	}

	if !ws.Status.IsValid() {
		return ErrInvalidWordStatus
	}

	return nil
}
