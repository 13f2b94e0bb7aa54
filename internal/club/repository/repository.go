// Package repository provides data access layer for club module.
package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	clubModel "github.com/festy23/footballdb/internal/club/model"
	"github.com/festy23/footballdb/internal/database/dberr"
	"github.com/festy23/footballdb/internal/database/search"
)

// Repository defines the interface for club data access operations.
type Repository interface {
	// Search returns clubs matching every partial-match filter.
	Search(ctx context.Context, filter clubModel.SearchRequest) ([]clubModel.Club, error)

	// Create inserts a club and fails if the id is taken.
	Create(ctx context.Context, club *clubModel.Club) error

	// CreateIfMissing inserts a club, silently ignoring an existing id.
	CreateIfMissing(ctx context.Context, club *clubModel.Club) error

	// Delete removes a club together with every club_year row naming it, so
	// a club that ingestion attached to seasons can still be deleted. Games
	// referencing the club roll the whole delete back with ErrClubInUse,
	// leaving the season rows in place.
	Delete(ctx context.Context, id string) error

	// Update rewrites every column of the club identified by key.
	Update(ctx context.Context, key string, club *clubModel.Club) error

	// AddSeason records a season for a club, silently ignoring an existing record.
	AddSeason(ctx context.Context, clubKey string, year int) error

	// ListBySeason returns clubs that played the season, optionally filtered by league.
	ListBySeason(ctx context.Context, year int, leagueName string) ([]clubModel.Club, error)

	// Count returns the number of stored clubs.
	Count(ctx context.Context) (int64, error)

	// CountSeasons returns the number of stored club seasons.
	CountSeasons(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new club repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Search(ctx context.Context, filter clubModel.SearchRequest) ([]clubModel.Club, error) {
	var clubs []clubModel.Club

	q := r.db.WithContext(ctx).Model(&clubModel.Club{})
	q = search.Like(q, "id", filter.ID)
	q = search.Like(q, "club_name", filter.ClubName)
	q = search.Like(q, "abbr", filter.Abbr)
	q = search.Like(q, "league_name", filter.LeagueName)

	if err := q.Order("id ASC").Find(&clubs).Error; err != nil {
		return nil, err
	}
	if clubs == nil {
		return []clubModel.Club{}, nil
	}
	return clubs, nil
}

func (r *repository) Create(ctx context.Context, club *clubModel.Club) error {
	err := r.db.WithContext(ctx).Create(club).Error
	switch {
	case err == nil:
		return nil
	case dberr.IsDuplicate(err):
		return clubModel.ErrClubExists
	case dberr.IsForeignKey(err):
		return clubModel.ErrUnknownLeague
	}
	return err
}

func (r *repository) CreateIfMissing(ctx context.Context, club *clubModel.Club) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(club).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_key = ?", id).Delete(&clubModel.ClubYear{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&clubModel.Club{})
		if result.Error != nil {
			if dberr.IsForeignKey(result.Error) {
				return clubModel.ErrClubInUse
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			return clubModel.ErrClubNotFound
		}
		return nil
	})
}

func (r *repository) Update(ctx context.Context, key string, club *clubModel.Club) error {
	result := r.db.WithContext(ctx).
		Model(&clubModel.Club{}).
		Where("id = ?", key).
		Updates(map[string]interface{}{
			"id":          club.ID,
			"club_name":   club.ClubName,
			"abbr":        club.Abbr,
			"league_name": club.LeagueName,
		})

	if result.Error != nil {
		switch {
		case dberr.IsDuplicate(result.Error):
			return clubModel.ErrClubExists
		case dberr.IsForeignKey(result.Error):
			return clubModel.ErrReferenceViolation
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return clubModel.ErrClubNotFound
	}
	return nil
}

func (r *repository) AddSeason(ctx context.Context, clubKey string, year int) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&clubModel.ClubYear{ClubKey: clubKey, ClubYear: year}).Error
	if dberr.IsForeignKey(err) {
		return clubModel.ErrClubNotFound
	}
	return err
}

func (r *repository) ListBySeason(ctx context.Context, year int, leagueName string) ([]clubModel.Club, error) {
	var clubs []clubModel.Club

	q := r.db.WithContext(ctx).
		Model(&clubModel.Club{}).
		Select("club.*").
		Joins("JOIN club_year ON club_year.club_key = club.id").
		Where("club_year.club_year = ?", year)
	if leagueName != "" {
		q = q.Where("club.league_name = ?", leagueName)
	}

	if err := q.Order("club.id ASC").Find(&clubs).Error; err != nil {
		return nil, err
	}
	if clubs == nil {
		return []clubModel.Club{}, nil
	}
	return clubs, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&clubModel.Club{}).Count(&count).Error
	return count, err
}

func (r *repository) CountSeasons(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&clubModel.ClubYear{}).Count(&count).Error
	return count, err
}
