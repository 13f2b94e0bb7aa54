package model

// SessionRequest addresses an existing session.
type SessionRequest struct {
	SessionID string `form:"session_id" json:"session_id"`
}

// SearchRequest runs a search in a section.
type SearchRequest struct {
	SessionID string  `json:"session_id"`
	Section   Section `json:"section"`
	Fields    Row     `json:"fields"`
}

// SelectRequest picks a search result for editing.
type SelectRequest struct {
	SessionID string `json:"session_id"`
	Index     int    `json:"index"`
}

// AddRequest adds a record to a section.
type AddRequest struct {
	SessionID string  `json:"session_id"`
	Section   Section `json:"section"`
	Fields    Row     `json:"fields"`
}

// UpdateRequest rewrites the selected record.
type UpdateRequest struct {
	SessionID string `json:"session_id"`
	Fields    Row    `json:"fields"`
}

// SessionResponse wraps a session.
type SessionResponse struct {
	Session Session `json:"session"`
}

// AddResponse returns the added record and the unchanged session.
type AddResponse struct {
	Row     Row     `json:"row"`
	Session Session `json:"session"`
}
