// Package common defines shared sentinel errors used across the
// repository and store layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Constraint errors surfaced by defensive pre-checks in the store.
	ErrDuplicateUsername = errors.New("username already taken")
	ErrUnknownOwner      = errors.New("lesson owner does not exist")
)
