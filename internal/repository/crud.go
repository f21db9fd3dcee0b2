package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// The helpers below hold the id-keyed CRUD contract shared by every
// entity repository. Each mutation runs in its own transaction.

func listAll[T any](ctx context.Context, db *gorm.DB) ([]*T, error) {
	var rows []*T
	if err := db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// findByID returns gorm.ErrRecordNotFound when no row has the id.
func findByID[T any](ctx context.Context, db *gorm.DB, id int64) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func createRow[T any](ctx context.Context, db *gorm.DB, row *T) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	})
	return translateError(err)
}

// updateRow applies fields to the row with the given id and returns the
// reloaded row. It returns (nil, nil) when no row matched.
func updateRow[T any](ctx context.Context, db *gorm.DB, id int64, fields map[string]interface{}) (*T, error) {
	var updated *T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		if err := tx.First(&row, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if len(fields) > 0 {
			if err := tx.Model(&row).Updates(fields).Error; err != nil {
				return err
			}
		}
		if err := tx.First(&row, id).Error; err != nil {
			return err
		}
		updated = &row
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return updated, nil
}

// deleteRow removes the row with the given id and returns it as it was
// before deletion. It returns (nil, nil) when no row matched.
func deleteRow[T any](ctx context.Context, db *gorm.DB, id int64) (*T, error) {
	var deleted *T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		if err := tx.First(&row, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&row).Error; err != nil {
			return err
		}
		deleted = &row
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return deleted, nil
}
