package movies

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input the store refuses to accept.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a lookup for an identifier that is not in the collection.
	ErrNotFound = errors.New("movie not found")
)

// ValidationError describes why a field was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ErrorKind classifies the error for transports that map kinds to status codes.
func (e *ValidationError) ErrorKind() string {
	return "validation"
}

// ErrorClassifier allows errors to declare their classification.
type ErrorClassifier interface {
	ErrorKind() string
}

// Kind returns the classification for err: "validation", "not_found", or
// "internal" for anything else.
func Kind(err error) string {
	var classifier ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind()
	}
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
