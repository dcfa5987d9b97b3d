package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Learner-specific validation errors
var (
	// ErrLearnerIDEmpty is returned when a learner ID is empty or nil.
	ErrLearnerIDEmpty = errors.New("learner ID cannot be empty")

	// ErrLearnerUsernameEmpty is returned when a learner's username is empty.
	ErrLearnerUsernameEmpty = errors.New("learner username cannot be empty")
)

// Learner owns all vocabulary and grammar ledger rows. It is identified
// externally by username and internally by UUID.
type Learner struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	NativeLanguage string    `json:"native_language,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewLearner creates a new Learner with the given username.
// It generates a new UUID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewLearner(username, nativeLanguage string) (*Learner, error) {
	learner := &Learner{
		ID:             uuid.New(),
		Username:       strings.TrimSpace(username),
		NativeLanguage: strings.TrimSpace(nativeLanguage),
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := learner.Validate(); err != nil {
		return nil, err
	}

	return learner, nil
}

// Validate checks if the Learner has valid data.
func (l *Learner) Validate() error {
	if l.ID == uuid.Nil {
		return ErrLearnerIDEmpty
	}

	if l.Username == "" {
		return ErrLearnerUsernameEmpty
	}

	return nil
}
