package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidLevel is returned when a string is not one of the six
	// CEFR levels.
	ErrInvalidLevel = errors.New("invalid CEFR level")

	// ErrInvalidWordStatus is returned when a word status value is not
	// one of known, unknown or ignored.
	ErrInvalidWordStatus = errors.New("invalid word status")

	// ErrInvalidPatternStatus is returned when a pattern status value is
	// not one of known, practice or unknown.
	ErrInvalidPatternStatus = errors.New("invalid pattern status")

	// ErrEmptyWord is returned when a ledger write names an empty word.
	ErrEmptyWord = errors.New("word cannot be empty")

	// ErrEmptyPatternKey is returned when a ledger write names an empty
	// pattern key.
	ErrEmptyPatternKey = errors.New("pattern key cannot be empty")

	// ErrEmptyText is returned when an analysis operation receives no text.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrComputation is returned when a derived calculation fails
	// unexpectedly, for example on a malformed catalog entry.
	ErrComputation = errors.New("computation failed")

	// ErrCancelled is returned when a long-running computation is cut
	// short by context cancellation.
	ErrCancelled = errors.New("computation cancelled")
)
