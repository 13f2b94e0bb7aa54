// Package service provides business logic layer for game module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	gameModel "github.com/festy23/footballdb/internal/game/model"
	"github.com/festy23/footballdb/internal/game/repository"
)

// Service defines the interface for game business logic operations.
type Service interface {
	// Search returns games matching the partial-match filters.
	Search(ctx context.Context, req *gameModel.SearchRequest) ([]gameModel.Game, error)

	// Add creates a game referencing existing clubs, round and league.
	Add(ctx context.Context, req *gameModel.AddGameRequest) (*gameModel.Game, error)

	// Delete removes a game by id.
	Delete(ctx context.Context, id int64) error

	// DeleteFixture removes games by round, date and both teams.
	DeleteFixture(ctx context.Context, req *gameModel.DeleteFixtureRequest) (int64, error)

	// Update rewrites the game identified by req.Key.
	Update(ctx context.Context, req *gameModel.UpdateGameRequest) (*gameModel.Game, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new game service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Search(ctx context.Context, req *gameModel.SearchRequest) ([]gameModel.Game, error) {
	return s.repo.Search(ctx, *req)
}

// build trims the request and reports whether every required field is set.
func build(req *gameModel.AddGameRequest) (*gameModel.Game, bool) {
	game := &gameModel.Game{
		MatchName:  strings.TrimSpace(req.MatchName),
		TeamOne:    strings.TrimSpace(req.TeamOne),
		TeamTwo:    strings.TrimSpace(req.TeamTwo),
		ScoreOne:   req.ScoreOne,
		ScoreTwo:   req.ScoreTwo,
		GameDate:   strings.TrimSpace(req.GameDate),
		SeasonYear: req.SeasonYear,
		LeagueName: strings.TrimSpace(req.LeagueName),
	}
	ok := game.MatchName != "" && game.TeamOne != "" && game.TeamTwo != "" &&
		game.GameDate != "" && game.SeasonYear > 0 && game.LeagueName != ""
	return game, ok
}

func (s *service) Add(ctx context.Context, req *gameModel.AddGameRequest) (*gameModel.Game, error) {
	game, ok := build(req)
	if !ok {
		return nil, gameModel.ErrMissingFields
	}

	if err := s.repo.Create(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Infow("game added", "id", game.ID, "team_one", game.TeamOne, "team_two", game.TeamTwo)
	return game, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return gameModel.ErrInvalidGameID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("game deleted", "id", id)
	return nil
}

func (s *service) DeleteFixture(ctx context.Context, req *gameModel.DeleteFixtureRequest) (int64, error) {
	key := gameModel.DeleteFixtureRequest{
		MatchName: strings.TrimSpace(req.MatchName),
		GameDate:  strings.TrimSpace(req.GameDate),
		TeamOne:   strings.TrimSpace(req.TeamOne),
		TeamTwo:   strings.TrimSpace(req.TeamTwo),
	}
	if key.MatchName == "" || key.GameDate == "" || key.TeamOne == "" || key.TeamTwo == "" {
		return 0, gameModel.ErrMissingFixtureFields
	}

	deleted, err := s.repo.DeleteFixture(ctx, key)
	if err != nil {
		return 0, err
	}

	s.logger.Infow("fixture deleted", "match_name", key.MatchName, "game_date", key.GameDate, "rows", deleted)
	return deleted, nil
}

func (s *service) Update(ctx context.Context, req *gameModel.UpdateGameRequest) (*gameModel.Game, error) {
	if req.Key <= 0 {
		return nil, gameModel.ErrInvalidGameID
	}
	game, ok := build(&req.AddGameRequest)
	if !ok {
		return nil, gameModel.ErrMissingFields
	}

	if err := s.repo.Update(ctx, req.Key, game); err != nil {
		return nil, err
	}

	s.logger.Infow("game updated", "id", req.Key)
	return game, nil
}
