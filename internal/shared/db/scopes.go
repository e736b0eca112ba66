// Package db provides shared GORM query scopes.
package db

import (
	"gorm.io/gorm"
)

// NotDeleted is a GORM scope that filters out soft-deleted records.
// Soft deletion is a plain boolean flag here, not gorm.DeletedAt: deleted
// rows stay visible to schema-level constraints and history queries.
//
// Example usage:
//
//	db.Model(&Model{}).Scopes(db.NotDeleted()).Where("name = ?", name).Count(&count)
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("was_deleted = ?", false)
	}
}

// NotDeletedWithAlias is the same filter with a table qualifier, for
// queries that join another soft-deletable table and would otherwise
// hit an ambiguous column.
func NotDeletedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias+".was_deleted = ?", false)
	}
}
