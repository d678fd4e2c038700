package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("conflict")
	ErrValidation       = errors.New("validation failed")
)

var ErrDuplicateHabitDate = fmt.Errorf("%w: a log for this habit and date already exists", ErrConflict)

const (
	msgRequired    = "This field is required."
	msgNotNull     = "This field may not be null."
	msgBlank       = "This field may not be blank."
	msgDateFormat  = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	msgNonNegative = "Ensure this value is greater than or equal to 0."
	msgMaxLength   = "Ensure this field has no more than %d characters."
	msgInvalidPK   = "Invalid pk \"%d\" - object does not exist."
	msgInvalidPick = "\"%s\" is not a valid choice."
)

// ValidationError carries human readable messages keyed by input field.
type ValidationError struct {
	Fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (validation *ValidationError) Add(field string, message string) {
	validation.Fields[field] = append(validation.Fields[field], message)
}

func (validation *ValidationError) HasErrors() bool {
	return len(validation.Fields) > 0
}

// Err returns nil when no field failed, so callers never hold a typed nil.
func (validation *ValidationError) Err() error {
	if !validation.HasErrors() {
		return nil
	}
	return validation
}

func (validation *ValidationError) Error() string {
	keys := make([]string, 0, len(validation.Fields))
	for key := range validation.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+strings.Join(validation.Fields[key], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (validation *ValidationError) Unwrap() error {
	return ErrValidation
}

func fieldError(field string, message string) error {
	validation := newValidationError()
	validation.Add(field, message)
	return validation
}
