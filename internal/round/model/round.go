// Package model provides domain models and DTOs for round module.
package model

// Round is a named scheduling round ("Matchday 1"). The label is its primary key.
// The source schema calls this table "match".
type Round struct {
	MatchName string `gorm:"primaryKey;column:match_name" json:"match_name"`
}

// TableName specifies the table name for GORM.
func (Round) TableName() string {
	return "match"
}
