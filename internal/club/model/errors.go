package model

import "errors"

var (
	// ErrClubExists indicates that a club with the given id already exists.
	ErrClubExists = errors.New("club already exists")
	// ErrClubNotFound indicates that the requested club does not exist.
	ErrClubNotFound = errors.New("club not found")
	// ErrClubInUse indicates that games still reference the club.
	ErrClubInUse = errors.New("club is referenced by games")
	// ErrUnknownLeague indicates that the club's league does not exist.
	ErrUnknownLeague = errors.New("league does not exist")
	// ErrReferenceViolation indicates that an update broke a foreign key in either direction.
	ErrReferenceViolation = errors.New("club update violates a reference")
	// ErrMissingFields indicates that a required club field is empty.
	ErrMissingFields = errors.New("id, club_name, abbr and league_name are required")
	// ErrInvalidClubID indicates that the club id is empty.
	ErrInvalidClubID = errors.New("club id cannot be empty")
	// ErrInvalidYear indicates a season year that is not positive.
	ErrInvalidYear = errors.New("season year must be positive")
)
