// Package model provides domain models and DTOs for league module.
package model

// League is a named competition. The name is its primary key.
type League struct {
	LeagueName string `gorm:"primaryKey;column:league_name" json:"league_name"`
}

// TableName specifies the table name for GORM.
func (League) TableName() string {
	return "league"
}
