package model

import "errors"

var (
	// ErrRoundExists indicates that a round with the given label already exists.
	ErrRoundExists = errors.New("round already exists")
	// ErrRoundNotFound indicates that the requested round does not exist.
	ErrRoundNotFound = errors.New("round not found")
	// ErrRoundInUse indicates that games still reference the round.
	ErrRoundInUse = errors.New("round is referenced by games")
	// ErrInvalidRoundName indicates that the round label is empty.
	ErrInvalidRoundName = errors.New("round label cannot be empty")
)
