package application

import "errors"

// ErrorKind classifies a failed Result
type ErrorKind string

const (
	KindNotFound       ErrorKind = "not_found"
	KindNotInitialized ErrorKind = "not_initialized"
	KindPersistence    ErrorKind = "persistence"
	KindValidation     ErrorKind = "validation"
	KindInternal       ErrorKind = "internal"
)

// Result is the envelope every public operation returns. Exactly one of
// Data (Success true) or Error (Success false) is meaningful.
type Result[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data,omitzero"`
	Error   string    `json:"error,omitempty"`
	Kind    ErrorKind `json:"errorKind,omitempty"`
}

// Ok wraps a successful value
func Ok[T any](v T) Result[T] {
	return Result[T]{Success: true, Data: v}
}

// Fail converts an error into a failed Result
func Fail[T any](err error) Result[T] {
	return Result[T]{Success: false, Error: err.Error(), Kind: Classify(err)}
}

// Unwrap returns the value or an error carrying the failure message
func (r Result[T]) Unwrap() (T, error) {
	if !r.Success {
		var zero T
		return zero, errors.New(r.Error)
	}
	return r.Data, nil
}

// Classify maps an error onto its ErrorKind
func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrNotInitialized):
		return KindNotInitialized
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	default:
		return KindInternal
	}
}
