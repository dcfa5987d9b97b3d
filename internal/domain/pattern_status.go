package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PatternStatusValue is the learner-declared status of a grammar pattern.
type PatternStatusValue string

// Possible pattern status values. A pattern with no ledger row at all is
// implicitly unknown.
const (
	PatternStatusKnown    PatternStatusValue = "known"
	PatternStatusPractice PatternStatusValue = "practice"
	PatternStatusUnknown  PatternStatusValue = "unknown"
)

// IsValid reports whether v is a recognized pattern status value.
func (v PatternStatusValue) IsValid() bool {
	switch v {
	case PatternStatusKnown, PatternStatusPractice, PatternStatusUnknown:
		return true
	}
	return false
}

// PatternStatus is a ledger row recording a learner's status for one grammar
// pattern key. There is exactly one row per (learner, pattern_key).
type PatternStatus struct {
	ID         uuid.UUID          `json:"id"`
	LearnerID  uuid.UUID          `json:"learner_id"`
	PatternKey string             `json:"pattern_key"`
	Status     PatternStatusValue `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// NewPatternStatus creates a new PatternStatus for the given learner and
// pattern key. Returns an error if validation fails.
func NewPatternStatus(
	learnerID uuid.UUID,
	patternKey string,
	status PatternStatusValue,
) (*PatternStatus, error) {
	ps := &PatternStatus{
		ID:         uuid.New(),
		LearnerID:  learnerID,
		PatternKey: strings.ToLower(strings.TrimSpace(patternKey)),
		Status:     status,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := ps.Validate(); err != nil {
		return nil, err
	}

	return ps, nil
}

// Validate checks if the PatternStatus has valid data.
func (ps *PatternStatus) Validate() error {
	if ps.LearnerID == uuid.Nil {
		return ErrLearnerIDEmpty
	}

	if ps.PatternKey == "" {
		return ErrEmptyPatternKey
	}

	if !ps.Status.IsValid() {
		return ErrInvalidPatternStatus
	}

	return nil
}
