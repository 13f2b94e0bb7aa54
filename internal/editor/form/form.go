// Package form adapts entity services to text-field forms.
package form

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	editorModel "github.com/festy23/footballdb/internal/editor/model"
)

// Form is an editable section backed by an entity service.
// Field values are plain text, the way they are typed into a form.
type Form interface {
	// Section returns the section the form edits.
	Section() editorModel.Section

	// Fields returns the editable field names in display order.
	Fields() []string

	// Search returns the records matching every non-empty field.
	Search(ctx context.Context, fields editorModel.Row) ([]editorModel.Row, error)

	// Add stores a new record built from the fields.
	Add(ctx context.Context, fields editorModel.Row) (editorModel.Row, error)

	// Delete removes the record identified by key.
	Delete(ctx context.Context, key string) error

	// Update rewrites the record identified by key.
	Update(ctx context.Context, key string, fields editorModel.Row) (editorModel.Row, error)

	// Key returns the identifier of a record row.
	Key(row editorModel.Row) string
}

// Registry looks up forms by section.
type Registry map[editorModel.Section]Form

// NewRegistry indexes the given forms by their section.
func NewRegistry(forms ...Form) Registry {
	r := make(Registry, len(forms))
	for _, f := range forms {
		r[f.Section()] = f
	}
	return r
}

// Get returns the form of a section.
func (r Registry) Get(section editorModel.Section) (Form, error) {
	f, ok := r[section]
	if !ok {
		return nil, fmt.Errorf("%w: %q", editorModel.ErrUnknownSection, section)
	}
	return f, nil
}

func field(fields editorModel.Row, name string) string {
	return strings.TrimSpace(fields[name])
}

// intField parses an integer field. An empty field yields zero.
func intField(fields editorModel.Row, name string) (int, error) {
	v := field(fields, name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number", editorModel.ErrInvalidField, name)
	}
	return n, nil
}

// optionalIntField parses an integer field. An empty field yields nil.
func optionalIntField(fields editorModel.Row, name string) (*int, error) {
	if field(fields, name) == "" {
		return nil, nil
	}
	n, err := intField(fields, name)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
