// Package repository holds the store-agnostic sentinel errors shared by the
// concrete repositories. Services translate these into their own typed
// failures at the boundary.
package repository

import "errors"

var (
	// ErrNotFound marks a referenced document missing at read time.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a write refused because it would overcommit a slot
	// or violate a status precondition.
	ErrConflict = errors.New("conflict")
)
