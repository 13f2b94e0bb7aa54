// Package service implements the editor session state machine.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/footballdb/internal/editor/form"
	editorModel "github.com/festy23/footballdb/internal/editor/model"
	"github.com/festy23/footballdb/internal/editor/store"
)

// Service defines the interface for editor session operations.
type Service interface {
	// Create opens a new idle session.
	Create(ctx context.Context) (editorModel.Session, error)

	// Get returns a session.
	Get(ctx context.Context, id string) (editorModel.Session, error)

	// Search runs a section search and moves the session to searched.
	Search(ctx context.Context, req *editorModel.SearchRequest) (editorModel.Session, error)

	// Select picks a search result and moves the session to editing.
	Select(ctx context.Context, req *editorModel.SelectRequest) (editorModel.Session, error)

	// Add stores a new record without changing the session state.
	Add(ctx context.Context, req *editorModel.AddRequest) (editorModel.Row, editorModel.Session, error)

	// Update rewrites the selected record and returns to idle on success.
	Update(ctx context.Context, req *editorModel.UpdateRequest) (editorModel.Session, error)

	// Delete removes the selected record and returns to idle on success.
	Delete(ctx context.Context, id string) (editorModel.Session, error)

	// Cancel abandons the search or edit and returns to idle.
	Cancel(ctx context.Context, id string) (editorModel.Session, error)
}

type service struct {
	forms  form.Registry
	store  *store.Store
	logger *zap.SugaredLogger
	now    func() time.Time
}

// New creates a new editor service instance.
func New(forms form.Registry, st *store.Store, logger *zap.SugaredLogger) Service {
	return &service{
		forms:  forms,
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, editorModel.ErrSessionNotFound
	}
	return parsed, nil
}

func (s *service) Create(_ context.Context) (editorModel.Session, error) {
	session := editorModel.NewSession(s.now())
	s.store.Put(session)
	s.logger.Infow("editor session created", "session_id", session.ID)
	return session, nil
}

func (s *service) Get(_ context.Context, id string) (editorModel.Session, error) {
	sid, err := parseID(id)
	if err != nil {
		return editorModel.Session{}, err
	}
	return s.store.Get(sid)
}

func (s *service) Search(ctx context.Context, req *editorModel.SearchRequest) (editorModel.Session, error) {
	sid, err := parseID(req.SessionID)
	if err != nil {
		return editorModel.Session{}, err
	}
	f, err := s.forms.Get(req.Section)
	if err != nil {
		return editorModel.Session{}, err
	}

	return s.store.Update(sid, func(session *editorModel.Session) error {
		if session.State == editorModel.StateEditing {
			return fmt.Errorf("%w: finish or cancel the edit before searching", editorModel.ErrInvalidState)
		}

		rows, err := f.Search(ctx, req.Fields)
		if err != nil {
			return err
		}

		session.Section = req.Section
		session.State = editorModel.StateSearched
		session.Results = rows
		session.Fields = req.Fields.Clone()
		session.UpdatedAt = s.now()
		return nil
	})
}

func (s *service) Select(_ context.Context, req *editorModel.SelectRequest) (editorModel.Session, error) {
	sid, err := parseID(req.SessionID)
	if err != nil {
		return editorModel.Session{}, err
	}

	return s.store.Update(sid, func(session *editorModel.Session) error {
		if session.State != editorModel.StateSearched {
			return fmt.Errorf("%w: search before selecting a row", editorModel.ErrInvalidState)
		}
		if req.Index < 0 || req.Index >= len(session.Results) {
			return editorModel.ErrRowOutOfRange
		}

		f, err := s.forms.Get(session.Section)
		if err != nil {
			return err
		}

		row := session.Results[req.Index]
		session.EditKey = f.Key(row)
		session.Fields = row.Clone()
		session.State = editorModel.StateEditing
		session.UpdatedAt = s.now()
		return nil
	})
}

func (s *service) Add(ctx context.Context, req *editorModel.AddRequest) (editorModel.Row, editorModel.Session, error) {
	sid, err := parseID(req.SessionID)
	if err != nil {
		return nil, editorModel.Session{}, err
	}
	f, err := s.forms.Get(req.Section)
	if err != nil {
		return nil, editorModel.Session{}, err
	}

	var added editorModel.Row
	session, err := s.store.Update(sid, func(session *editorModel.Session) error {
		if session.State == editorModel.StateEditing {
			return fmt.Errorf("%w: finish or cancel the edit before adding", editorModel.ErrInvalidState)
		}

		row, err := f.Add(ctx, req.Fields)
		if err != nil {
			return err
		}
		added = row
		session.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, session, err
	}
	return added, session, nil
}

func (s *service) Update(ctx context.Context, req *editorModel.UpdateRequest) (editorModel.Session, error) {
	sid, err := parseID(req.SessionID)
	if err != nil {
		return editorModel.Session{}, err
	}

	return s.store.Update(sid, func(session *editorModel.Session) error {
		if session.State != editorModel.StateEditing {
			return fmt.Errorf("%w: select a row before updating", editorModel.ErrInvalidState)
		}
		f, err := s.forms.Get(session.Section)
		if err != nil {
			return err
		}

		session.Fields = req.Fields.Clone()
		session.UpdatedAt = s.now()
		if _, err := f.Update(ctx, session.EditKey, req.Fields); err != nil {
			return err
		}

		s.logger.Infow("record updated", "session_id", session.ID, "section", session.Section, "key", session.EditKey)
		session.Reset()
		return nil
	})
}

func (s *service) Delete(ctx context.Context, id string) (editorModel.Session, error) {
	sid, err := parseID(id)
	if err != nil {
		return editorModel.Session{}, err
	}

	return s.store.Update(sid, func(session *editorModel.Session) error {
		if session.State != editorModel.StateEditing {
			return fmt.Errorf("%w: select a row before deleting", editorModel.ErrInvalidState)
		}
		f, err := s.forms.Get(session.Section)
		if err != nil {
			return err
		}

		session.UpdatedAt = s.now()
		if err := f.Delete(ctx, session.EditKey); err != nil {
			return err
		}

		s.logger.Infow("record deleted", "session_id", session.ID, "section", session.Section, "key", session.EditKey)
		session.Reset()
		return nil
	})
}

func (s *service) Cancel(_ context.Context, id string) (editorModel.Session, error) {
	sid, err := parseID(id)
	if err != nil {
		return editorModel.Session{}, err
	}

	return s.store.Update(sid, func(session *editorModel.Session) error {
		session.Reset()
		session.UpdatedAt = s.now()
		return nil
	})
}
