// Package service provides business logic layer for club module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	clubModel "github.com/festy23/footballdb/internal/club/model"
	"github.com/festy23/footballdb/internal/club/repository"
)

// Service defines the interface for club business logic operations.
type Service interface {
	// Search returns clubs matching the partial-match filters.
	Search(ctx context.Context, req *clubModel.SearchRequest) ([]clubModel.Club, error)

	// Add creates a club in an existing league.
	Add(ctx context.Context, req *clubModel.AddClubRequest) (*clubModel.Club, error)

	// Delete removes a club that no game references, including its season
	// (club_year) rows.
	Delete(ctx context.Context, id string) error

	// Update rewrites the club identified by req.Key.
	Update(ctx context.Context, req *clubModel.UpdateClubRequest) (*clubModel.Club, error)

	// ListBySeason returns the clubs that played a season.
	ListBySeason(ctx context.Context, req *clubModel.SeasonRequest) ([]clubModel.Club, error)

	// AddSeason records a club's participation in a season.
	AddSeason(ctx context.Context, req *clubModel.AddSeasonRequest) (*clubModel.ClubYear, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new club service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Search(ctx context.Context, req *clubModel.SearchRequest) ([]clubModel.Club, error) {
	return s.repo.Search(ctx, *req)
}

// normalize trims every field and reports whether all of them are set.
func normalize(id, name, abbr, league string) (*clubModel.Club, bool) {
	club := &clubModel.Club{
		ID:         strings.TrimSpace(id),
		ClubName:   strings.TrimSpace(name),
		Abbr:       strings.TrimSpace(abbr),
		LeagueName: strings.TrimSpace(league),
	}
	ok := club.ID != "" && club.ClubName != "" && club.Abbr != "" && club.LeagueName != ""
	return club, ok
}

func (s *service) Add(ctx context.Context, req *clubModel.AddClubRequest) (*clubModel.Club, error) {
	club, ok := normalize(req.ID, req.ClubName, req.Abbr, req.LeagueName)
	if !ok {
		return nil, clubModel.ErrMissingFields
	}

	if err := s.repo.Create(ctx, club); err != nil {
		return nil, err
	}

	s.logger.Infow("club added", "id", club.ID, "league_name", club.LeagueName)
	return club, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return clubModel.ErrInvalidClubID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("club deleted", "id", id)
	return nil
}

func (s *service) Update(ctx context.Context, req *clubModel.UpdateClubRequest) (*clubModel.Club, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return nil, clubModel.ErrInvalidClubID
	}
	club, ok := normalize(req.ID, req.ClubName, req.Abbr, req.LeagueName)
	if !ok {
		return nil, clubModel.ErrMissingFields
	}

	if err := s.repo.Update(ctx, key, club); err != nil {
		return nil, err
	}

	s.logger.Infow("club updated", "key", key, "id", club.ID)
	return club, nil
}

func (s *service) ListBySeason(ctx context.Context, req *clubModel.SeasonRequest) ([]clubModel.Club, error) {
	if req.Year <= 0 {
		return nil, clubModel.ErrInvalidYear
	}
	return s.repo.ListBySeason(ctx, req.Year, strings.TrimSpace(req.LeagueName))
}

func (s *service) AddSeason(ctx context.Context, req *clubModel.AddSeasonRequest) (*clubModel.ClubYear, error) {
	key := strings.TrimSpace(req.ClubKey)
	if key == "" {
		return nil, clubModel.ErrInvalidClubID
	}
	if req.Year <= 0 {
		return nil, clubModel.ErrInvalidYear
	}

	if err := s.repo.AddSeason(ctx, key, req.Year); err != nil {
		return nil, err
	}
	return &clubModel.ClubYear{ClubKey: key, ClubYear: req.Year}, nil
}
