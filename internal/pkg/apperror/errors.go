// Package apperror holds the error kinds shared by the service and transport layers.
package apperror

import "errors"

var (
	// ErrValidation marks client input that violates the required-field contract.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateQuestionId marks an append whose question id already exists in the target sub-topic.
	ErrDuplicateQuestionId = errors.New("question id already exists in this sub-topic")

	// ErrStorageUnavailable wraps any failure coming from the document store.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrVersionConflict is returned by repositories when a compare-and-swap write loses a race.
	ErrVersionConflict = errors.New("note was modified concurrently")
)
