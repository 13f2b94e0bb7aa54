// Package store keeps editor sessions in process memory.
package store

import (
	"sync"

	"github.com/google/uuid"

	editorModel "github.com/festy23/footballdb/internal/editor/model"
)

type entry struct {
	mu      sync.Mutex
	session editorModel.Session
}

// Store holds sessions by id. Operations on one session are serialized.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
}

// New creates an empty store.
func New() *Store {
	return &Store{sessions: make(map[uuid.UUID]*entry)}
}

// Put stores a session, replacing any session with the same id.
func (s *Store) Put(session editorModel.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = &entry{session: session.Clone()}
}

// Get returns a copy of a session.
func (s *Store) Get(id uuid.UUID) (editorModel.Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return editorModel.Session{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone(), nil
}

// Update runs fn on the session while holding its lock. Changes made by fn are
// kept whether or not it returns an error. The updated session is returned.
func (s *Store) Update(id uuid.UUID, fn func(*editorModel.Session) error) (editorModel.Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return editorModel.Session{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.session.Clone()
	err = fn(&working)
	e.session = working
	return working.Clone(), err
}

// Delete removes a session.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) lookup(id uuid.UUID) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, editorModel.ErrSessionNotFound
	}
	return e, nil
}
