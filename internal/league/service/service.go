// Package service provides business logic layer for league module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	leagueModel "github.com/festy23/footballdb/internal/league/model"
	"github.com/festy23/footballdb/internal/league/repository"
)

// Service defines the interface for league business logic operations.
type Service interface {
	// Search returns leagues matching the partial-match filter.
	Search(ctx context.Context, req *leagueModel.SearchRequest) ([]leagueModel.League, error)

	// Add creates a league.
	Add(ctx context.Context, req *leagueModel.AddLeagueRequest) (*leagueModel.League, error)

	// Delete removes a league that nothing references.
	Delete(ctx context.Context, leagueName string) error

	// Update renames the league identified by req.Key.
	Update(ctx context.Context, req *leagueModel.UpdateLeagueRequest) (*leagueModel.League, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new league service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Search(ctx context.Context, req *leagueModel.SearchRequest) ([]leagueModel.League, error) {
	return s.repo.Search(ctx, *req)
}

func (s *service) Add(ctx context.Context, req *leagueModel.AddLeagueRequest) (*leagueModel.League, error) {
	name := strings.TrimSpace(req.LeagueName)
	if name == "" {
		return nil, leagueModel.ErrInvalidLeagueName
	}

	league, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("league added", "league_name", name)
	return league, nil
}

func (s *service) Delete(ctx context.Context, leagueName string) error {
	name := strings.TrimSpace(leagueName)
	if name == "" {
		return leagueModel.ErrInvalidLeagueName
	}

	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}

	s.logger.Infow("league deleted", "league_name", name)
	return nil
}

func (s *service) Update(ctx context.Context, req *leagueModel.UpdateLeagueRequest) (*leagueModel.League, error) {
	key := strings.TrimSpace(req.Key)
	name := strings.TrimSpace(req.LeagueName)
	if key == "" || name == "" {
		return nil, leagueModel.ErrInvalidLeagueName
	}

	if err := s.repo.Rename(ctx, key, name); err != nil {
		return nil, err
	}

	s.logger.Infow("league renamed", "from", key, "to", name)
	return &leagueModel.League{LeagueName: name}, nil
}
