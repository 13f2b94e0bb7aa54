package model

// SearchRequest holds the partial-match filter for a league search.
type SearchRequest struct {
	LeagueName string `form:"league_name" json:"league_name"`
}

// AddLeagueRequest represents the request to add a league.
type AddLeagueRequest struct {
	LeagueName string `json:"league_name"`
}

// DeleteLeagueRequest represents the request to delete a league by name.
type DeleteLeagueRequest struct {
	LeagueName string `json:"league_name"`
}

// UpdateLeagueRequest renames the league selected by Key.
type UpdateLeagueRequest struct {
	Key        string `json:"key"`
	LeagueName string `json:"league_name"`
}

// SearchResponse lists the leagues matching a search.
type SearchResponse struct {
	Leagues []League `json:"leagues"`
}
