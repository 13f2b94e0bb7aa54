// Package model provides domain models and DTOs for game module.
package model

// Game is one fixture between two clubs within a round and season.
// Scores are nil until the fixture has been played.
type Game struct {
	ID         int64  `gorm:"primaryKey;column:id" json:"id"`
	MatchName  string `gorm:"column:match_name" json:"match_name"`
	TeamOne    string `gorm:"column:team_one" json:"team_one"`
	TeamTwo    string `gorm:"column:team_two" json:"team_two"`
	ScoreOne   *int   `gorm:"column:score_one" json:"score_one"`
	ScoreTwo   *int   `gorm:"column:score_two" json:"score_two"`
	GameDate   string `gorm:"column:game_date" json:"game_date"`
	SeasonYear int    `gorm:"column:season_year" json:"season_year"`
	LeagueName string `gorm:"column:league_name" json:"league_name"`
}

// TableName specifies the table name for GORM.
func (Game) TableName() string {
	return "game"
}

// Played reports whether both scores are known.
func (g Game) Played() bool {
	return g.ScoreOne != nil && g.ScoreTwo != nil
}
