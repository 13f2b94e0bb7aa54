package model

// SearchRequest holds the partial-match filters for a club search.
// Empty fields match every club.
type SearchRequest struct {
	ID         string `form:"id" json:"id"`
	ClubName   string `form:"club_name" json:"club_name"`
	Abbr       string `form:"abbr" json:"abbr"`
	LeagueName string `form:"league_name" json:"league_name"`
}

// AddClubRequest represents the request to add a club. Every field is required.
type AddClubRequest struct {
	ID         string `json:"id"`
	ClubName   string `json:"club_name"`
	Abbr       string `json:"abbr"`
	LeagueName string `json:"league_name"`
}

// DeleteClubRequest represents the request to delete a club by id.
type DeleteClubRequest struct {
	ID string `json:"id"`
}

// UpdateClubRequest rewrites the club selected by Key.
type UpdateClubRequest struct {
	Key        string `json:"key"`
	ID         string `json:"id"`
	ClubName   string `json:"club_name"`
	Abbr       string `json:"abbr"`
	LeagueName string `json:"league_name"`
}

// SeasonRequest selects the clubs that played a season, optionally within one league.
type SeasonRequest struct {
	Year       int    `form:"year" json:"year"`
	LeagueName string `form:"league_name" json:"league_name"`
}

// AddSeasonRequest records a club's participation in a season.
type AddSeasonRequest struct {
	ClubKey string `json:"club_key"`
	Year    int    `json:"year"`
}

// SearchResponse lists the clubs matching a search.
type SearchResponse struct {
	Clubs []Club `json:"clubs"`
}
