package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository errors returned alongside gorm.ErrRecordNotFound
var (
	// ErrDuplicateEntry means an insert or update violated a unique constraint
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
	// ErrForeignKeyViolation means a referenced row does not exist
	ErrForeignKeyViolation = errors.New("repository: referenced row does not exist")
)

// translateError maps driver-level constraint errors onto the repository
// sentinels, keeping the original error in the chain.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicateEntry, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	default:
		return err
	}
}
