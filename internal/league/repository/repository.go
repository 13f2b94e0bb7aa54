// Package repository provides data access layer for league module.
package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/footballdb/internal/database/dberr"
	"github.com/festy23/footballdb/internal/database/search"
	leagueModel "github.com/festy23/footballdb/internal/league/model"
)

// Repository defines the interface for league data access operations.
type Repository interface {
	// Search returns leagues whose name contains the filter.
	Search(ctx context.Context, filter leagueModel.SearchRequest) ([]leagueModel.League, error)

	// Create inserts a league and fails if it already exists.
	Create(ctx context.Context, leagueName string) (*leagueModel.League, error)

	// CreateIfMissing inserts a league, silently ignoring an existing one.
	CreateIfMissing(ctx context.Context, leagueName string) error

	// Delete removes a league by name.
	Delete(ctx context.Context, leagueName string) error

	// Rename changes the name of an existing league.
	Rename(ctx context.Context, oldName, newName string) error

	// Count returns the number of stored leagues.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new league repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Search(ctx context.Context, filter leagueModel.SearchRequest) ([]leagueModel.League, error) {
	var leagues []leagueModel.League

	q := r.db.WithContext(ctx).Model(&leagueModel.League{})
	q = search.Like(q, "league_name", filter.LeagueName)
	if err := q.Order("league_name ASC").Find(&leagues).Error; err != nil {
		return nil, err
	}

	if leagues == nil {
		return []leagueModel.League{}, nil
	}
	return leagues, nil
}

func (r *repository) Create(ctx context.Context, leagueName string) (*leagueModel.League, error) {
	league := &leagueModel.League{LeagueName: leagueName}

	if err := r.db.WithContext(ctx).Create(league).Error; err != nil {
		if dberr.IsDuplicate(err) {
			return nil, leagueModel.ErrLeagueExists
		}
		return nil, err
	}
	return league, nil
}

func (r *repository) CreateIfMissing(ctx context.Context, leagueName string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&leagueModel.League{LeagueName: leagueName}).Error
}

func (r *repository) Delete(ctx context.Context, leagueName string) error {
	result := r.db.WithContext(ctx).
		Where("league_name = ?", leagueName).
		Delete(&leagueModel.League{})

	if result.Error != nil {
		if dberr.IsForeignKey(result.Error) {
			return leagueModel.ErrLeagueInUse
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return leagueModel.ErrLeagueNotFound
	}
	return nil
}

func (r *repository) Rename(ctx context.Context, oldName, newName string) error {
	result := r.db.WithContext(ctx).
		Model(&leagueModel.League{}).
		Where("league_name = ?", oldName).
		Update("league_name", newName)

	if result.Error != nil {
		switch {
		case dberr.IsDuplicate(result.Error):
			return leagueModel.ErrLeagueExists
		case dberr.IsForeignKey(result.Error):
			return leagueModel.ErrLeagueInUse
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return leagueModel.ErrLeagueNotFound
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&leagueModel.League{}).Count(&count).Error
	return count, err
}
