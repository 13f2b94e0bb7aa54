// Package search builds the partial-match filters shared by every entity search.
//
// Each filter is a case-insensitive substring match; an empty value matches
// every row, NULL columns included. Column names are always code constants.
package search

import (
	"strings"

	"gorm.io/gorm"
)

// Pattern turns a user value into a lower-case LIKE pattern.
func Pattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

// Like filters a text column by substring.
func Like(db *gorm.DB, column, value string) *gorm.DB {
	return db.Where("LOWER(COALESCE("+column+", '')) LIKE ?", Pattern(value))
}

// LikeNumber filters an integer column by substring of its decimal form.
func LikeNumber(db *gorm.DB, column, value string) *gorm.DB {
	return db.Where("COALESCE(CAST("+column+" AS TEXT), '') LIKE ?", Pattern(value))
}

// LikeNullableNumber is LikeNumber except that NULL always matches.
// Unplayed fixtures have NULL scores and must show up whatever the score filter.
func LikeNullableNumber(db *gorm.DB, column, value string) *gorm.DB {
	return db.Where("("+column+" IS NULL OR CAST("+column+" AS TEXT) LIKE ?)", Pattern(value))
}
