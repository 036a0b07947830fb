package models

import (
	"errors"
)

var (
	// ErrGeneral is wrapped by all errors that we cannot give the user more details about
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrResourceNotFound is wrapped by all errors where a queried resource does not exist.
	// The per-entity errors complete the sentence, e.g. "there is no fund matching your query".
	ErrResourceNotFound = errors.New("there is no")

	// ErrMissingField is wrapped by all errors where a required field is not set
	ErrMissingField = errors.New("you must set")

	// ErrAmountNegative is wrapped by all errors where a monetary amount is negative
	ErrAmountNegative = errors.New("must not be negative")

	// ErrNotUnique is wrapped by all errors where a caller-supplied code collides
	// with a code that already exists for the same entity
	ErrNotUnique = errors.New("must be unique")
)
