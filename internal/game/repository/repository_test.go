package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/festy23/footballdb/internal/database/dbtest"
	gameModel "github.com/festy23/footballdb/internal/game/model"
)

func intPtr(v int) *int { return &v }

func setupTestDB(t *testing.T) *gorm.DB {
	db := dbtest.New(t)
	dbtest.Exec(t, db,
		`INSERT INTO league (league_name) VALUES ('Premier League'), ('Serie A')`,
		`INSERT INTO "match" (match_name) VALUES ('Matchday 1'), ('Matchday 2')`,
		`INSERT INTO club (id, club_name, abbr, league_name) VALUES
			('chelsea', 'Chelsea FC', 'CHE', 'Premier League'),
			('arsenal', 'Arsenal FC', 'ARS', 'Premier League'),
			('juventus', 'Juventus', 'JUV', 'Serie A')`,
	)
	return db
}

func played(t *testing.T, repo Repository) *gameModel.Game {
	t.Helper()
	g := &gameModel.Game{
		MatchName:  "Matchday 1",
		TeamOne:    "chelsea",
		TeamTwo:    "arsenal",
		ScoreOne:   intPtr(2),
		ScoreTwo:   intPtr(0),
		GameDate:   "2015-08-08",
		SeasonYear: 2015,
		LeagueName: "Premier League",
	}
	require.NoError(t, repo.Create(context.Background(), g))
	return g
}

func unplayed(t *testing.T, repo Repository) *gameModel.Game {
	t.Helper()
	g := &gameModel.Game{
		MatchName:  "Matchday 2",
		TeamOne:    "arsenal",
		TeamTwo:    "chelsea",
		GameDate:   "2016-05-15",
		SeasonYear: 2016,
		LeagueName: "Premier League",
	}
	require.NoError(t, repo.Create(context.Background(), g))
	return g
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns increasing ids", func(t *testing.T) {
		repo := New(setupTestDB(t))
		first := played(t, repo)
		second := played(t, repo)

		assert.Greater(t, first.ID, int64(0))
		assert.Greater(t, second.ID, first.ID)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("unknown club", func(t *testing.T) {
		repo := New(setupTestDB(t))
		err := repo.Create(ctx, &gameModel.Game{
			MatchName:  "Matchday 1",
			TeamOne:    "chelsea",
			TeamTwo:    "nobody",
			GameDate:   "2015-08-08",
			SeasonYear: 2015,
			LeagueName: "Premier League",
		})
		assert.ErrorIs(t, err, gameModel.ErrUnknownReference)
	})

	t.Run("unknown round", func(t *testing.T) {
		repo := New(setupTestDB(t))
		err := repo.Create(ctx, &gameModel.Game{
			MatchName:  "Matchday 99",
			TeamOne:    "chelsea",
			TeamTwo:    "arsenal",
			GameDate:   "2015-08-08",
			SeasonYear: 2015,
			LeagueName: "Premier League",
		})
		assert.ErrorIs(t, err, gameModel.ErrUnknownReference)
	})
}

func TestRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t))
	p := played(t, repo)
	u := unplayed(t, repo)

	tests := []struct {
		name    string
		filter  gameModel.SearchRequest
		wantIDs []int64
	}{
		{name: "empty filter matches all", filter: gameModel.SearchRequest{}, wantIDs: []int64{p.ID, u.ID}},
		{name: "team is case insensitive", filter: gameModel.SearchRequest{TeamOne: "CHEL"}, wantIDs: []int64{p.ID}},
		{name: "season as text", filter: gameModel.SearchRequest{SeasonYear: "2016"}, wantIDs: []int64{u.ID}},
		{name: "season substring", filter: gameModel.SearchRequest{SeasonYear: "201"}, wantIDs: []int64{p.ID, u.ID}},
		{name: "score filter keeps unplayed games", filter: gameModel.SearchRequest{ScoreOne: "2"}, wantIDs: []int64{p.ID, u.ID}},
		{name: "score filter drops other scores", filter: gameModel.SearchRequest{ScoreTwo: "3"}, wantIDs: []int64{u.ID}},
		{name: "date substring", filter: gameModel.SearchRequest{GameDate: "2015-08"}, wantIDs: []int64{p.ID}},
		{name: "no match", filter: gameModel.SearchRequest{LeagueName: "Bundesliga"}, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]int64, 0, len(games))
			for _, g := range games {
				ids = append(ids, g.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRepository_Search_NullScoresRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t))
	u := unplayed(t, repo)

	games, err := repo.Search(ctx, gameModel.SearchRequest{TeamOne: "arsenal"})
	require.NoError(t, err)
	require.Len(t, games, 1)

	assert.Equal(t, u.ID, games[0].ID)
	assert.Nil(t, games[0].ScoreOne)
	assert.Nil(t, games[0].ScoreTwo)
	assert.False(t, games[0].Played())
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := New(setupTestDB(t))
		g := played(t, repo)

		require.NoError(t, repo.Delete(ctx, g.ID))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("not found", func(t *testing.T) {
		repo := New(setupTestDB(t))
		assert.ErrorIs(t, repo.Delete(ctx, 42), gameModel.ErrGameNotFound)
	})
}

func TestRepository_DeleteFixture(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t))
	played(t, repo)
	played(t, repo)
	unplayed(t, repo)

	deleted, err := repo.DeleteFixture(ctx, gameModel.DeleteFixtureRequest{
		MatchName: "Matchday 1",
		GameDate:  "2015-08-08",
		TeamOne:   "chelsea",
		TeamTwo:   "arsenal",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = repo.DeleteFixture(ctx, gameModel.DeleteFixtureRequest{
		MatchName: "Matchday 1",
		GameDate:  "2015-08-08",
		TeamOne:   "chelsea",
		TeamTwo:   "arsenal",
	})
	assert.ErrorIs(t, err, gameModel.ErrGameNotFound)
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites every column", func(t *testing.T) {
		repo := New(setupTestDB(t))
		g := played(t, repo)

		updated := &gameModel.Game{
			MatchName:  "Matchday 2",
			TeamOne:    "arsenal",
			TeamTwo:    "chelsea",
			GameDate:   "2015-08-09",
			SeasonYear: 2015,
			LeagueName: "Premier League",
		}
		require.NoError(t, repo.Update(ctx, g.ID, updated))
		assert.Equal(t, g.ID, updated.ID)

		games, err := repo.Search(ctx, gameModel.SearchRequest{})
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "arsenal", games[0].TeamOne)
		assert.Equal(t, "Matchday 2", games[0].MatchName)
		assert.Nil(t, games[0].ScoreOne)
	})

	t.Run("unknown reference leaves row unchanged", func(t *testing.T) {
		repo := New(setupTestDB(t))
		g := played(t, repo)

		err := repo.Update(ctx, g.ID, &gameModel.Game{
			MatchName:  "Matchday 1",
			TeamOne:    "chelsea",
			TeamTwo:    "arsenal",
			GameDate:   "2015-08-08",
			SeasonYear: 2015,
			LeagueName: "Ligue 1",
		})
		assert.ErrorIs(t, err, gameModel.ErrUnknownReference)

		games, err := repo.Search(ctx, gameModel.SearchRequest{})
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "Premier League", games[0].LeagueName)
	})

	t.Run("not found", func(t *testing.T) {
		repo := New(setupTestDB(t))
		err := repo.Update(ctx, 7, &gameModel.Game{
			MatchName:  "Matchday 1",
			TeamOne:    "chelsea",
			TeamTwo:    "arsenal",
			GameDate:   "2015-08-08",
			SeasonYear: 2015,
			LeagueName: "Premier League",
		})
		assert.ErrorIs(t, err, gameModel.ErrGameNotFound)
	})
}
