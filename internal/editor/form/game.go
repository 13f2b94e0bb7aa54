package form

import (
	"context"
	"fmt"
	"strconv"

	editorModel "github.com/festy23/footballdb/internal/editor/model"
	gameModel "github.com/festy23/footballdb/internal/game/model"
	gameService "github.com/festy23/footballdb/internal/game/service"
)

type gameForm struct {
	service gameService.Service
}

// NewGame returns the game form. Rows carry the surrogate "id" next to the editable fields.
func NewGame(svc gameService.Service) Form {
	return &gameForm{service: svc}
}

func (f *gameForm) Section() editorModel.Section { return editorModel.SectionGame }

func (f *gameForm) Fields() []string {
	return []string{
		"match_name", "game_date", "team_one", "team_two",
		"score_one", "score_two", "season_year", "league_name",
	}
}

func (f *gameForm) Key(row editorModel.Row) string { return row["id"] }

func (f *gameForm) Search(ctx context.Context, fields editorModel.Row) ([]editorModel.Row, error) {
	games, err := f.service.Search(ctx, &gameModel.SearchRequest{
		MatchName:  field(fields, "match_name"),
		GameDate:   field(fields, "game_date"),
		TeamOne:    field(fields, "team_one"),
		TeamTwo:    field(fields, "team_two"),
		ScoreOne:   field(fields, "score_one"),
		ScoreTwo:   field(fields, "score_two"),
		SeasonYear: field(fields, "season_year"),
		LeagueName: field(fields, "league_name"),
	})
	if err != nil {
		return nil, err
	}

	rows := make([]editorModel.Row, 0, len(games))
	for _, g := range games {
		rows = append(rows, gameRow(g))
	}
	return rows, nil
}

func (f *gameForm) Add(ctx context.Context, fields editorModel.Row) (editorModel.Row, error) {
	req, err := parseGame(fields)
	if err != nil {
		return nil, err
	}

	game, err := f.service.Add(ctx, req)
	if err != nil {
		return nil, err
	}
	return gameRow(*game), nil
}

func (f *gameForm) Delete(ctx context.Context, key string) error {
	id, err := parseGameKey(key)
	if err != nil {
		return err
	}
	return f.service.Delete(ctx, id)
}

func (f *gameForm) Update(ctx context.Context, key string, fields editorModel.Row) (editorModel.Row, error) {
	id, err := parseGameKey(key)
	if err != nil {
		return nil, err
	}

	req, err := parseGame(fields)
	if err != nil {
		return nil, err
	}

	game, err := f.service.Update(ctx, &gameModel.UpdateGameRequest{Key: id, AddGameRequest: *req})
	if err != nil {
		return nil, err
	}
	return gameRow(*game), nil
}

func parseGame(fields editorModel.Row) (*gameModel.AddGameRequest, error) {
	scoreOne, err := optionalIntField(fields, "score_one")
	if err != nil {
		return nil, err
	}
	scoreTwo, err := optionalIntField(fields, "score_two")
	if err != nil {
		return nil, err
	}
	season, err := intField(fields, "season_year")
	if err != nil {
		return nil, err
	}

	return &gameModel.AddGameRequest{
		MatchName:  field(fields, "match_name"),
		GameDate:   field(fields, "game_date"),
		TeamOne:    field(fields, "team_one"),
		TeamTwo:    field(fields, "team_two"),
		ScoreOne:   scoreOne,
		ScoreTwo:   scoreTwo,
		SeasonYear: season,
		LeagueName: field(fields, "league_name"),
	}, nil
}

func parseGameKey(key string) (int64, error) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: game id %q", editorModel.ErrInvalidField, key)
	}
	return id, nil
}

func gameRow(g gameModel.Game) editorModel.Row {
	return editorModel.Row{
		"id":          strconv.FormatInt(g.ID, 10),
		"match_name":  g.MatchName,
		"game_date":   g.GameDate,
		"team_one":    g.TeamOne,
		"team_two":    g.TeamTwo,
		"score_one":   formatOptionalInt(g.ScoreOne),
		"score_two":   formatOptionalInt(g.ScoreTwo),
		"season_year": strconv.Itoa(g.SeasonYear),
		"league_name": g.LeagueName,
	}
}
