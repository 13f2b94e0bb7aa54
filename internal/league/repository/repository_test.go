package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/footballdb/internal/database/dbtest"
	leagueModel "github.com/festy23/footballdb/internal/league/model"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := New(dbtest.New(t))

		league, err := repo.Create(ctx, "Premier League")
		require.NoError(t, err)
		assert.Equal(t, "Premier League", league.LeagueName)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := New(dbtest.New(t))
		_, err := repo.Create(ctx, "Premier League")
		require.NoError(t, err)

		_, err = repo.Create(ctx, "Premier League")
		assert.ErrorIs(t, err, leagueModel.ErrLeagueExists)
	})
}

func TestRepository_CreateIfMissing(t *testing.T) {
	ctx := context.Background()
	repo := New(dbtest.New(t))

	require.NoError(t, repo.CreateIfMissing(ctx, "Serie A"))
	require.NoError(t, repo.CreateIfMissing(ctx, "Serie A"))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := New(dbtest.New(t))
	for _, name := range []string{"Serie A", "Premier League", "1. Bundesliga"} {
		require.NoError(t, repo.CreateIfMissing(ctx, name))
	}

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{name: "empty matches all ordered", filter: "", want: []string{"1. Bundesliga", "Premier League", "Serie A"}},
		{name: "case insensitive substring", filter: "LEAGUE", want: []string{"Premier League"}},
		{name: "lower case matches mixed case", filter: "liga", want: []string{"1. Bundesliga"}},
		{name: "no match", filter: "Ligue", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leagues, err := repo.Search(ctx, leagueModel.SearchRequest{LeagueName: tt.filter})
			require.NoError(t, err)

			names := make([]string, 0, len(leagues))
			for _, l := range leagues {
				names = append(names, l.LeagueName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := New(dbtest.New(t))
		require.NoError(t, repo.CreateIfMissing(ctx, "Serie A"))

		require.NoError(t, repo.Delete(ctx, "Serie A"))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("not found", func(t *testing.T) {
		repo := New(dbtest.New(t))
		assert.ErrorIs(t, repo.Delete(ctx, "Serie A"), leagueModel.ErrLeagueNotFound)
	})

	t.Run("referenced league is kept", func(t *testing.T) {
		db := dbtest.New(t)
		repo := New(db)
		require.NoError(t, repo.CreateIfMissing(ctx, "Serie A"))
		dbtest.Exec(t, db, `INSERT INTO club (id, club_name, abbr, league_name) VALUES ('juventus', 'Juventus', 'JUV', 'Serie A')`)

		assert.ErrorIs(t, repo.Delete(ctx, "Serie A"), leagueModel.ErrLeagueInUse)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		var clubs int64
		require.NoError(t, db.Table("club").Count(&clubs).Error)
		assert.Equal(t, int64(1), clubs)
	})
}

func TestRepository_Rename(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := New(dbtest.New(t))
		require.NoError(t, repo.CreateIfMissing(ctx, "Primera Division"))

		require.NoError(t, repo.Rename(ctx, "Primera Division", "La Liga"))

		leagues, err := repo.Search(ctx, leagueModel.SearchRequest{})
		require.NoError(t, err)
		require.Len(t, leagues, 1)
		assert.Equal(t, "La Liga", leagues[0].LeagueName)
	})

	t.Run("not found", func(t *testing.T) {
		repo := New(dbtest.New(t))
		assert.ErrorIs(t, repo.Rename(ctx, "Primera Division", "La Liga"), leagueModel.ErrLeagueNotFound)
	})

	t.Run("target exists", func(t *testing.T) {
		repo := New(dbtest.New(t))
		require.NoError(t, repo.CreateIfMissing(ctx, "Serie A"))
		require.NoError(t, repo.CreateIfMissing(ctx, "Serie B"))

		assert.ErrorIs(t, repo.Rename(ctx, "Serie B", "Serie A"), leagueModel.ErrLeagueExists)
	})

	t.Run("referenced league", func(t *testing.T) {
		db := dbtest.New(t)
		repo := New(db)
		require.NoError(t, repo.CreateIfMissing(ctx, "Serie A"))
		dbtest.Exec(t, db, `INSERT INTO club (id, club_name, abbr, league_name) VALUES ('juventus', 'Juventus', 'JUV', 'Serie A')`)

		assert.ErrorIs(t, repo.Rename(ctx, "Serie A", "Serie A TIM"), leagueModel.ErrLeagueInUse)
	})
}
