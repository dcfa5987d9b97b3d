package api

import (
	"errors"
	"net/http"

	"github.com/guvenchemy/MerkutY-BTK/internal/api/shared"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
	"github.com/guvenchemy/MerkutY-BTK/internal/store"
)

// MapErrorToStatusCode maps domain, store and service errors to HTTP status
// codes. Unrecognized errors map to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, service.ErrLearnerNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, service.ErrUnknownPattern),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyText),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrImportQueueFull):
		return http.StatusTooManyRequests

	case errors.Is(err, service.ErrAdaptationUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for the error. Details
// that could leak internals stay in the logs; the client gets a stable,
// human-readable summary.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrLearnerNotFound):
		return "Learner not found"
	case errors.Is(err, service.ErrUsernameTaken):
		return "Username is already taken"
	case errors.Is(err, service.ErrUnknownPattern):
		return "Unknown grammar pattern key"
	case errors.Is(err, service.ErrImportQueueFull):
		return "Import queue is full, try again later"
	case errors.Is(err, service.ErrAdaptationUnavailable):
		return "Text adaptation is not available"
	case errors.Is(err, domain.ErrEmptyText):
		return "Text must not be empty"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	default:
		return "An internal error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message, logs the
// redacted detail, and writes the JSON error response. The optional message
// overrides the default safe message for the mapped status.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)

	if message == "" {
		message = GetSafeErrorMessage(err)
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
