package model

import "errors"

var (
	// ErrLeagueExists indicates that a league with the given name already exists.
	ErrLeagueExists = errors.New("league already exists")
	// ErrLeagueNotFound indicates that the requested league does not exist.
	ErrLeagueNotFound = errors.New("league not found")
	// ErrLeagueInUse indicates that clubs or games still reference the league.
	ErrLeagueInUse = errors.New("league is referenced by clubs or games")
	// ErrInvalidLeagueName indicates that the league name is empty.
	ErrInvalidLeagueName = errors.New("league name cannot be empty")
)
