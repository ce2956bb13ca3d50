package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = errors.New("not found")
	ErrNotInitialized = errors.New("not initialized")
	ErrPersistence    = errors.New("persistence failure")
	ErrInvalidInput   = errors.New("invalid input")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError reports a seminar id outside the catalog
type NotFoundError struct {
	SeminarID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("seminar %d not found", e.SeminarID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotInitializedError reports an operation that needs a folder or record
// that has not been created yet
type NotInitializedError struct {
	What   string // e.g. "folder EDET_Seminario_03"
	Reason string
}

func (e *NotInitializedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s not initialized", e.What)
	}
	return fmt.Sprintf("%s not initialized: %s", e.What, e.Reason)
}

func (e *NotInitializedError) Is(target error) bool {
	return target == ErrNotInitialized
}

// PersistenceError wraps a failure of the key-value store
type PersistenceError struct {
	Op   string // "get" or "set"
	Keys []string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store %s %v: %v", e.Op, e.Keys, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
