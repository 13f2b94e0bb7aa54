package model

// SearchRequest holds the partial-match filters for a game search.
// All filters are text; numeric columns are matched on their decimal form.
// A NULL score matches any score filter.
type SearchRequest struct {
	MatchName  string `form:"match_name" json:"match_name"`
	GameDate   string `form:"game_date" json:"game_date"`
	TeamOne    string `form:"team_one" json:"team_one"`
	TeamTwo    string `form:"team_two" json:"team_two"`
	ScoreOne   string `form:"score_one" json:"score_one"`
	ScoreTwo   string `form:"score_two" json:"score_two"`
	SeasonYear string `form:"season_year" json:"season_year"`
	LeagueName string `form:"league_name" json:"league_name"`
}

// AddGameRequest represents the request to add a game.
// Scores may be omitted for an unplayed fixture; every other field is required.
type AddGameRequest struct {
	MatchName  string `json:"match_name"`
	GameDate   string `json:"game_date"`
	TeamOne    string `json:"team_one"`
	TeamTwo    string `json:"team_two"`
	ScoreOne   *int   `json:"score_one"`
	ScoreTwo   *int   `json:"score_two"`
	SeasonYear int    `json:"season_year"`
	LeagueName string `json:"league_name"`
}

// UpdateGameRequest rewrites the game selected by Key.
type UpdateGameRequest struct {
	Key int64 `json:"key"`
	AddGameRequest
}

// DeleteGameRequest represents the request to delete a game by id.
type DeleteGameRequest struct {
	ID int64 `json:"id"`
}

// DeleteFixtureRequest deletes games by round, date and both teams.
type DeleteFixtureRequest struct {
	MatchName string `json:"match_name"`
	GameDate  string `json:"game_date"`
	TeamOne   string `json:"team_one"`
	TeamTwo   string `json:"team_two"`
}

// SearchResponse lists the games matching a search.
type SearchResponse struct {
	Games []Game `json:"games"`
}
