package feed

// ClubsDocument is the openfootball clubs listing of one league season.
type ClubsDocument struct {
	Name  string `json:"name" validate:"required"`
	Clubs []Club `json:"clubs" validate:"required,dive"`
}

// Club is a single entry of a clubs listing.
type Club struct {
	Key  string `json:"key" validate:"required"`
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// MatchesDocument is the openfootball fixture list of one league season.
type MatchesDocument struct {
	Name   string  `json:"name" validate:"required"`
	Rounds []Round `json:"rounds" validate:"required,dive"`
}

// Round groups the matches of one matchday.
type Round struct {
	Name    string  `json:"name" validate:"required"`
	Matches []Match `json:"matches" validate:"dive"`
}

// Match is a single fixture. Scores are nil for unplayed matches.
type Match struct {
	Date   string  `json:"date" validate:"required"`
	Score1 *int    `json:"score1"`
	Score2 *int    `json:"score2"`
	Team1  TeamRef `json:"team1"`
	Team2  TeamRef `json:"team2"`
}

// TeamRef points at a club by its key.
type TeamRef struct {
	Key  string `json:"key" validate:"required"`
	Name string `json:"name"`
	Code string `json:"code"`
}
