// Package repository provides data access layer for round module.
package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/footballdb/internal/database/dberr"
	"github.com/festy23/footballdb/internal/database/search"
	roundModel "github.com/festy23/footballdb/internal/round/model"
)

// Repository defines the interface for round data access operations.
type Repository interface {
	// Search returns rounds whose label contains the filter.
	Search(ctx context.Context, filter roundModel.SearchRequest) ([]roundModel.Round, error)

	// Create inserts a round and fails if it already exists.
	Create(ctx context.Context, matchName string) (*roundModel.Round, error)

	// CreateIfMissing inserts a round, silently ignoring an existing one.
	CreateIfMissing(ctx context.Context, matchName string) error

	// Delete removes a round by label.
	Delete(ctx context.Context, matchName string) error

	// Rename changes the label of an existing round.
	Rename(ctx context.Context, oldName, newName string) error

	// Count returns the number of stored rounds.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new round repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Search(ctx context.Context, filter roundModel.SearchRequest) ([]roundModel.Round, error) {
	var rounds []roundModel.Round

	q := r.db.WithContext(ctx).Model(&roundModel.Round{})
	q = search.Like(q, "match_name", filter.MatchName)
	if err := q.Order("match_name ASC").Find(&rounds).Error; err != nil {
		return nil, err
	}

	if rounds == nil {
		return []roundModel.Round{}, nil
	}
	return rounds, nil
}

func (r *repository) Create(ctx context.Context, matchName string) (*roundModel.Round, error) {
	round := &roundModel.Round{MatchName: matchName}

	if err := r.db.WithContext(ctx).Create(round).Error; err != nil {
		if dberr.IsDuplicate(err) {
			return nil, roundModel.ErrRoundExists
		}
		return nil, err
	}
	return round, nil
}

func (r *repository) CreateIfMissing(ctx context.Context, matchName string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&roundModel.Round{MatchName: matchName}).Error
}

func (r *repository) Delete(ctx context.Context, matchName string) error {
	result := r.db.WithContext(ctx).
		Where("match_name = ?", matchName).
		Delete(&roundModel.Round{})

	if result.Error != nil {
		if dberr.IsForeignKey(result.Error) {
			return roundModel.ErrRoundInUse
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return roundModel.ErrRoundNotFound
	}
	return nil
}

func (r *repository) Rename(ctx context.Context, oldName, newName string) error {
	result := r.db.WithContext(ctx).
		Model(&roundModel.Round{}).
		Where("match_name = ?", oldName).
		Update("match_name", newName)

	if result.Error != nil {
		switch {
		case dberr.IsDuplicate(result.Error):
			return roundModel.ErrRoundExists
		case dberr.IsForeignKey(result.Error):
			return roundModel.ErrRoundInUse
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return roundModel.ErrRoundNotFound
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&roundModel.Round{}).Count(&count).Error
	return count, err
}
