package model

import "errors"

var (
	// ErrGameNotFound indicates that no game matched the key.
	ErrGameNotFound = errors.New("game not found")
	// ErrInvalidGameID indicates a game id that is not positive.
	ErrInvalidGameID = errors.New("invalid game id")
	// ErrMissingFields indicates that a required game field is empty.
	ErrMissingFields = errors.New("match_name, game_date, team_one, team_two, season_year and league_name are required")
	// ErrMissingFixtureFields indicates an incomplete fixture key.
	ErrMissingFixtureFields = errors.New("match_name, game_date, team_one and team_two are required")
	// ErrUnknownReference indicates that a team, round or league of the game does not exist.
	ErrUnknownReference = errors.New("team, round or league does not exist")
)
