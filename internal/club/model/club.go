// Package model provides domain models and DTOs for club module.
package model

// Club is a team with a season-independent identity.
// ID comes from the feed and is unique across all leagues.
type Club struct {
	ID         string `gorm:"primaryKey;column:id" json:"id"`
	ClubName   string `gorm:"column:club_name" json:"club_name"`
	Abbr       string `gorm:"column:abbr" json:"abbr"`
	LeagueName string `gorm:"column:league_name" json:"league_name"`
}

// TableName specifies the table name for GORM.
func (Club) TableName() string {
	return "club"
}

// ClubYear records that a club took part in a season.
type ClubYear struct {
	ClubKey  string `gorm:"primaryKey;column:club_key" json:"club_key"`
	ClubYear int    `gorm:"primaryKey;autoIncrement:false;column:club_year" json:"club_year"`
}

// TableName specifies the table name for GORM.
func (ClubYear) TableName() string {
	return "club_year"
}
