package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/festy23/footballdb/internal/database/dbtest"
	roundModel "github.com/festy23/footballdb/internal/round/model"
	"github.com/festy23/footballdb/internal/round/repository"
)

func setupService(t *testing.T) Service {
	t.Helper()
	db := dbtest.New(t)
	dbtest.Exec(t, db,
		`INSERT INTO league (league_name) VALUES ('La Liga')`,
		`INSERT INTO club (id, club_name, abbr, league_name) VALUES ('sevilla', 'Sevilla FC', 'SEV', 'La Liga')`,
		`INSERT INTO club (id, club_name, abbr, league_name) VALUES ('malaga', 'Málaga CF', 'MAL', 'La Liga')`,
		`INSERT INTO "match" (match_name) VALUES ('Jornada 1'), ('Jornada 2')`,
		`INSERT INTO game (match_name, team_one, team_two, game_date, season_year, league_name)
		 VALUES ('Jornada 1', 'malaga', 'sevilla', '2015-08-22', 2015, 'La Liga')`,
	)
	return New(repository.New(db), zaptest.NewLogger(t).Sugar())
}

func TestService_Search(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	rounds, err := svc.Search(ctx, &roundModel.SearchRequest{})
	require.NoError(t, err)
	assert.Len(t, rounds, 2)

	rounds, err = svc.Search(ctx, &roundModel.SearchRequest{MatchName: "ADA 2"})
	require.NoError(t, err)
	assert.Equal(t, []roundModel.Round{{MatchName: "Jornada 2"}}, rounds)
}

func TestService_Add(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	round, err := svc.Add(ctx, &roundModel.AddRoundRequest{MatchName: "  Jornada 3 "})
	require.NoError(t, err)
	assert.Equal(t, "Jornada 3", round.MatchName)

	_, err = svc.Add(ctx, &roundModel.AddRoundRequest{MatchName: "Jornada 3"})
	assert.ErrorIs(t, err, roundModel.ErrRoundExists)

	_, err = svc.Add(ctx, &roundModel.AddRoundRequest{MatchName: "   "})
	assert.ErrorIs(t, err, roundModel.ErrInvalidRoundName)
}

func TestService_Delete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, ""), roundModel.ErrInvalidRoundName)
	assert.ErrorIs(t, svc.Delete(ctx, "Jornada 1"), roundModel.ErrRoundInUse)
	assert.ErrorIs(t, svc.Delete(ctx, "Jornada 9"), roundModel.ErrRoundNotFound)
	require.NoError(t, svc.Delete(ctx, "Jornada 2"))

	rounds, err := svc.Search(ctx, &roundModel.SearchRequest{})
	require.NoError(t, err)
	assert.Equal(t, []roundModel.Round{{MatchName: "Jornada 1"}}, rounds)
}

func TestService_Update(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	round, err := svc.Update(ctx, &roundModel.UpdateRoundRequest{Key: "Jornada 2", MatchName: "Jornada 02"})
	require.NoError(t, err)
	assert.Equal(t, "Jornada 02", round.MatchName)

	_, err = svc.Update(ctx, &roundModel.UpdateRoundRequest{Key: "Jornada 02", MatchName: ""})
	assert.ErrorIs(t, err, roundModel.ErrInvalidRoundName)

	_, err = svc.Update(ctx, &roundModel.UpdateRoundRequest{Key: "Jornada 1", MatchName: "Jornada 01"})
	assert.ErrorIs(t, err, roundModel.ErrRoundInUse)

	_, err = svc.Update(ctx, &roundModel.UpdateRoundRequest{Key: "Jornada 02", MatchName: "Jornada 1"})
	assert.ErrorIs(t, err, roundModel.ErrRoundExists)

	_, err = svc.Update(ctx, &roundModel.UpdateRoundRequest{Key: "Jornada 7", MatchName: "Jornada 8"})
	assert.ErrorIs(t, err, roundModel.ErrRoundNotFound)
}
