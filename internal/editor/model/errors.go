package model

import "errors"

var (
	// ErrSessionNotFound indicates that the session id is unknown.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidState indicates an operation not allowed in the session's current state.
	ErrInvalidState = errors.New("operation not allowed in current session state")
	// ErrUnknownSection indicates a section name that is not editable.
	ErrUnknownSection = errors.New("unknown section")
	// ErrRowOutOfRange indicates a selected row index outside the search results.
	ErrRowOutOfRange = errors.New("row index out of range")
	// ErrInvalidField indicates a form field that cannot be parsed.
	ErrInvalidField = errors.New("invalid field value")
)
