package repository

import "errors"

var (
	// ErrPropertyNotFound is returned by by-id operations when no row matches.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrUnsupportedPredicate is returned when a predicate names a field or
	// operator the store cannot translate.
	ErrUnsupportedPredicate = errors.New("unsupported predicate")

	// ErrEmptyPatch is returned when an update carries no fields.
	ErrEmptyPatch = errors.New("empty patch")
)
