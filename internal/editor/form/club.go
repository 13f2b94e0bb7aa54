package form

import (
	"context"

	clubModel "github.com/festy23/footballdb/internal/club/model"
	clubService "github.com/festy23/footballdb/internal/club/service"
	editorModel "github.com/festy23/footballdb/internal/editor/model"
)

type clubForm struct {
	service clubService.Service
}

// NewClub returns the club form.
func NewClub(svc clubService.Service) Form {
	return &clubForm{service: svc}
}

func (f *clubForm) Section() editorModel.Section { return editorModel.SectionClub }

func (f *clubForm) Fields() []string {
	return []string{"id", "club_name", "abbr", "league_name"}
}

func (f *clubForm) Key(row editorModel.Row) string { return row["id"] }

func (f *clubForm) Search(ctx context.Context, fields editorModel.Row) ([]editorModel.Row, error) {
	clubs, err := f.service.Search(ctx, &clubModel.SearchRequest{
		ID:         field(fields, "id"),
		ClubName:   field(fields, "club_name"),
		Abbr:       field(fields, "abbr"),
		LeagueName: field(fields, "league_name"),
	})
	if err != nil {
		return nil, err
	}

	rows := make([]editorModel.Row, 0, len(clubs))
	for _, c := range clubs {
		rows = append(rows, clubRow(c))
	}
	return rows, nil
}

func (f *clubForm) Add(ctx context.Context, fields editorModel.Row) (editorModel.Row, error) {
	club, err := f.service.Add(ctx, &clubModel.AddClubRequest{
		ID:         field(fields, "id"),
		ClubName:   field(fields, "club_name"),
		Abbr:       field(fields, "abbr"),
		LeagueName: field(fields, "league_name"),
	})
	if err != nil {
		return nil, err
	}
	return clubRow(*club), nil
}

func (f *clubForm) Delete(ctx context.Context, key string) error {
	return f.service.Delete(ctx, key)
}

func (f *clubForm) Update(ctx context.Context, key string, fields editorModel.Row) (editorModel.Row, error) {
	club, err := f.service.Update(ctx, &clubModel.UpdateClubRequest{
		Key:        key,
		ID:         field(fields, "id"),
		ClubName:   field(fields, "club_name"),
		Abbr:       field(fields, "abbr"),
		LeagueName: field(fields, "league_name"),
	})
	if err != nil {
		return nil, err
	}
	return clubRow(*club), nil
}

func clubRow(c clubModel.Club) editorModel.Row {
	return editorModel.Row{
		"id":          c.ID,
		"club_name":   c.ClubName,
		"abbr":        c.Abbr,
		"league_name": c.LeagueName,
	}
}
