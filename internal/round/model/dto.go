package model

// SearchRequest holds the partial-match filter for a round search.
type SearchRequest struct {
	MatchName string `form:"match_name" json:"match_name"`
}

// AddRoundRequest represents the request to add a round.
type AddRoundRequest struct {
	MatchName string `json:"match_name"`
}

// DeleteRoundRequest represents the request to delete a round by label.
type DeleteRoundRequest struct {
	MatchName string `json:"match_name"`
}

// UpdateRoundRequest relabels the round selected by Key.
type UpdateRoundRequest struct {
	Key       string `json:"key"`
	MatchName string `json:"match_name"`
}

// SearchResponse lists the rounds matching a search.
type SearchResponse struct {
	Rounds []Round `json:"rounds"`
}
