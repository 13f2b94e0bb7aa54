package form

import (
	"context"

	editorModel "github.com/festy23/footballdb/internal/editor/model"
	leagueModel "github.com/festy23/footballdb/internal/league/model"
	leagueService "github.com/festy23/footballdb/internal/league/service"
)

type leagueForm struct {
	service leagueService.Service
}

// NewLeague returns the league form.
func NewLeague(svc leagueService.Service) Form {
	return &leagueForm{service: svc}
}

func (f *leagueForm) Section() editorModel.Section { return editorModel.SectionLeague }

func (f *leagueForm) Fields() []string { return []string{"league_name"} }

func (f *leagueForm) Key(row editorModel.Row) string { return row["league_name"] }

func (f *leagueForm) Search(ctx context.Context, fields editorModel.Row) ([]editorModel.Row, error) {
	leagues, err := f.service.Search(ctx, &leagueModel.SearchRequest{
		LeagueName: field(fields, "league_name"),
	})
	if err != nil {
		return nil, err
	}

	rows := make([]editorModel.Row, 0, len(leagues))
	for _, l := range leagues {
		rows = append(rows, leagueRow(l))
	}
	return rows, nil
}

func (f *leagueForm) Add(ctx context.Context, fields editorModel.Row) (editorModel.Row, error) {
	league, err := f.service.Add(ctx, &leagueModel.AddLeagueRequest{
		LeagueName: field(fields, "league_name"),
	})
	if err != nil {
		return nil, err
	}
	return leagueRow(*league), nil
}

func (f *leagueForm) Delete(ctx context.Context, key string) error {
	return f.service.Delete(ctx, key)
}

func (f *leagueForm) Update(ctx context.Context, key string, fields editorModel.Row) (editorModel.Row, error) {
	league, err := f.service.Update(ctx, &leagueModel.UpdateLeagueRequest{
		Key:        key,
		LeagueName: field(fields, "league_name"),
	})
	if err != nil {
		return nil, err
	}
	return leagueRow(*league), nil
}

func leagueRow(l leagueModel.League) editorModel.Row {
	return editorModel.Row{"league_name": l.LeagueName}
}
