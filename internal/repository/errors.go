// Package repository contains the gorm stores. Sentinel errors defined
// here let the service layer distinguish failure modes without knowing
// about gorm: ErrNotFound covers rows that are absent or invisible to
// the calling tenant, ErrDuplicateKey surfaces unique-index violations.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the query predicates.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateKey is returned when an insert or update violates a
// unique index. The database constraint is the source of truth for
// uniqueness; stores never pre-check.
var ErrDuplicateKey = errors.New("duplicate key")

// translate maps gorm errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	default:
		return err
	}
}
