package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers map these to HTTP
// status codes.
var (
	// ErrLearnerNotFound indicates that the learner does not exist.
	ErrLearnerNotFound = errors.New("learner not found")

	// ErrUsernameTaken indicates that a learner with the username already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUnknownPattern indicates a grammar pattern key that is not in the catalog.
	ErrUnknownPattern = errors.New("unknown grammar pattern")

	// ErrAdaptationUnavailable indicates text adaptation is disabled because
	// no rewriter is configured.
	ErrAdaptationUnavailable = errors.New("text adaptation is not configured")

	// ErrImportQueueFull indicates the background import queue has no room.
	ErrImportQueueFull = errors.New("import queue is full, try again later")
)

// ServiceError wraps errors from a service with operation context.
type ServiceError struct {
	// Service is the service that failed (e.g., "vocabulary", "assessment")
	Service string
	// Operation is the operation that failed (e.g., "set_word_status")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError wraps err with context. Service sentinel errors pass
// through unwrapped so callers can match them with errors.Is.
func newServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range []error{
		ErrLearnerNotFound,
		ErrUsernameTaken,
		ErrUnknownPattern,
		ErrAdaptationUnavailable,
		ErrImportQueueFull,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
