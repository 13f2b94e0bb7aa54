// Package model provides editor session state and DTOs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Section names an editable entity.
type Section string

// Editable sections.
const (
	SectionLeague Section = "league"
	SectionRound  Section = "round"
	SectionClub   Section = "club"
	SectionGame   Section = "game"
)

// State is the mode of an editor session.
type State string

// Session states.
const (
	StateIdle     State = "idle"
	StateSearched State = "searched"
	StateEditing  State = "editing"
)

// Row is one record rendered as form text fields.
type Row map[string]string

// Session tracks one user's browsing and editing context.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Section   Section   `json:"section,omitempty"`
	State     State     `json:"state"`
	Results   []Row     `json:"results"`
	EditKey   string    `json:"edit_key,omitempty"`
	Fields    Row       `json:"fields,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession returns an idle session with a fresh id.
func NewSession(now time.Time) Session {
	return Session{
		ID:        uuid.New(),
		State:     StateIdle,
		Results:   []Row{},
		UpdatedAt: now,
	}
}

// Reset returns the session to idle, forgetting results and the selected row.
func (s *Session) Reset() {
	s.State = StateIdle
	s.Results = []Row{}
	s.EditKey = ""
	s.Fields = nil
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	out := s
	out.Results = make([]Row, len(s.Results))
	for i, r := range s.Results {
		out.Results[i] = r.Clone()
	}
	out.Fields = s.Fields.Clone()
	return out
}

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
