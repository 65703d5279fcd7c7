package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrStoreUnavailable is returned when an operation runs before the
	// database handle has been wired up.
	ErrStoreUnavailable = errors.New("store unavailable: database not connected")

	// ErrDuplicateKey is returned when an insert violates a unique
	// constraint (consumerNo, email, or a record id).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned by updates whose target does not exist.
	// Lookups report absence with a nil record instead.
	ErrNotFound = errors.New("record not found")
)

// classify maps driver-level errors onto the store taxonomy. Validation
// errors raised by model hooks pass through untouched.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}
