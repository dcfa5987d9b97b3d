package gemini

import "errors"

var (
	// ErrInvalidConfig indicates the rewriter was constructed with missing
	// or invalid configuration (API key, model name).
	ErrInvalidConfig = errors.New("invalid rewriter configuration")

	// ErrEmptyText indicates a rewrite was requested for empty text.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrInvalidResponse indicates the API returned a response with no
	// usable text. Not retried.
	ErrInvalidResponse = errors.New("invalid response from Gemini API")

	// ErrContentBlocked indicates the API refused the content on safety
	// grounds. Not retried.
	ErrContentBlocked = errors.New("content blocked by safety filters")

	// ErrTransientFailure indicates the API call failed after exhausting
	// all retry attempts.
	ErrTransientFailure = errors.New("transient failure calling Gemini API")
)
