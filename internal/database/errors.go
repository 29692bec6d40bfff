package database

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by repositories when a primary-key lookup misses.
// Callers must never treat a miss on a required parent entity as an empty
// success.
var ErrNotFound = errors.New("record not found")

// WrapNotFound maps GORM's record-not-found error to ErrNotFound so that
// callers don't depend on the ORM.
func WrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// IsNotFound reports whether err is a not-found condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
