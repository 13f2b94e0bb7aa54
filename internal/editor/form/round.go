package form

import (
	"context"

	editorModel "github.com/festy23/footballdb/internal/editor/model"
	roundModel "github.com/festy23/footballdb/internal/round/model"
	roundService "github.com/festy23/footballdb/internal/round/service"
)

type roundForm struct {
	service roundService.Service
}

// NewRound returns the round form.
func NewRound(svc roundService.Service) Form {
	return &roundForm{service: svc}
}

func (f *roundForm) Section() editorModel.Section { return editorModel.SectionRound }

func (f *roundForm) Fields() []string { return []string{"match_name"} }

func (f *roundForm) Key(row editorModel.Row) string { return row["match_name"] }

func (f *roundForm) Search(ctx context.Context, fields editorModel.Row) ([]editorModel.Row, error) {
	rounds, err := f.service.Search(ctx, &roundModel.SearchRequest{
		MatchName: field(fields, "match_name"),
	})
	if err != nil {
		return nil, err
	}

	rows := make([]editorModel.Row, 0, len(rounds))
	for _, r := range rounds {
		rows = append(rows, roundRow(r))
	}
	return rows, nil
}

func (f *roundForm) Add(ctx context.Context, fields editorModel.Row) (editorModel.Row, error) {
	round, err := f.service.Add(ctx, &roundModel.AddRoundRequest{
		MatchName: field(fields, "match_name"),
	})
	if err != nil {
		return nil, err
	}
	return roundRow(*round), nil
}

func (f *roundForm) Delete(ctx context.Context, key string) error {
	return f.service.Delete(ctx, key)
}

func (f *roundForm) Update(ctx context.Context, key string, fields editorModel.Row) (editorModel.Row, error) {
	round, err := f.service.Update(ctx, &roundModel.UpdateRoundRequest{
		Key:       key,
		MatchName: field(fields, "match_name"),
	})
	if err != nil {
		return nil, err
	}
	return roundRow(*round), nil
}

func roundRow(r roundModel.Round) editorModel.Row {
	return editorModel.Row{"match_name": r.MatchName}
}
