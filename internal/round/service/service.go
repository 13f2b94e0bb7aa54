// Package service provides business logic layer for round module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	roundModel "github.com/festy23/footballdb/internal/round/model"
	"github.com/festy23/footballdb/internal/round/repository"
)

// Service defines the interface for round business logic operations.
type Service interface {
	// Search returns rounds matching the partial-match filter.
	Search(ctx context.Context, req *roundModel.SearchRequest) ([]roundModel.Round, error)

	// Add creates a round.
	Add(ctx context.Context, req *roundModel.AddRoundRequest) (*roundModel.Round, error)

	// Delete removes a round that no game references.
	Delete(ctx context.Context, matchName string) error

	// Update relabels the round identified by req.Key.
	Update(ctx context.Context, req *roundModel.UpdateRoundRequest) (*roundModel.Round, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new round service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Search(ctx context.Context, req *roundModel.SearchRequest) ([]roundModel.Round, error) {
	return s.repo.Search(ctx, *req)
}

func (s *service) Add(ctx context.Context, req *roundModel.AddRoundRequest) (*roundModel.Round, error) {
	name := strings.TrimSpace(req.MatchName)
	if name == "" {
		return nil, roundModel.ErrInvalidRoundName
	}

	round, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("round added", "match_name", name)
	return round, nil
}

func (s *service) Delete(ctx context.Context, matchName string) error {
	name := strings.TrimSpace(matchName)
	if name == "" {
		return roundModel.ErrInvalidRoundName
	}

	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}

	s.logger.Infow("round deleted", "match_name", name)
	return nil
}

func (s *service) Update(ctx context.Context, req *roundModel.UpdateRoundRequest) (*roundModel.Round, error) {
	key := strings.TrimSpace(req.Key)
	name := strings.TrimSpace(req.MatchName)
	if key == "" || name == "" {
		return nil, roundModel.ErrInvalidRoundName
	}

	if err := s.repo.Rename(ctx, key, name); err != nil {
		return nil, err
	}

	s.logger.Infow("round relabeled", "from", key, "to", name)
	return &roundModel.Round{MatchName: name}, nil
}
