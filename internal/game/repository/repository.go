// Package repository provides data access layer for game module.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/festy23/footballdb/internal/database/dberr"
	"github.com/festy23/footballdb/internal/database/search"
	gameModel "github.com/festy23/footballdb/internal/game/model"
)

// Repository defines the interface for game data access operations.
type Repository interface {
	// Search returns games matching every partial-match filter.
	Search(ctx context.Context, filter gameModel.SearchRequest) ([]gameModel.Game, error)

	// Create inserts a new game row. Identical fixtures are not detected.
	Create(ctx context.Context, game *gameModel.Game) error

	// Delete removes a game by id.
	Delete(ctx context.Context, id int64) error

	// DeleteFixture removes every game with the given round, date and teams.
	DeleteFixture(ctx context.Context, req gameModel.DeleteFixtureRequest) (int64, error)

	// Update rewrites every column of the game identified by id.
	Update(ctx context.Context, id int64, game *gameModel.Game) error

	// Count returns the number of stored games.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new game repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Search(ctx context.Context, filter gameModel.SearchRequest) ([]gameModel.Game, error) {
	var games []gameModel.Game

	q := r.db.WithContext(ctx).Model(&gameModel.Game{})
	q = search.Like(q, "match_name", filter.MatchName)
	q = search.Like(q, "team_one", filter.TeamOne)
	q = search.Like(q, "team_two", filter.TeamTwo)
	q = search.LikeNullableNumber(q, "score_one", filter.ScoreOne)
	q = search.LikeNullableNumber(q, "score_two", filter.ScoreTwo)
	q = search.Like(q, "game_date", filter.GameDate)
	q = search.LikeNumber(q, "season_year", filter.SeasonYear)
	q = search.Like(q, "league_name", filter.LeagueName)

	if err := q.Order("id ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	if games == nil {
		return []gameModel.Game{}, nil
	}
	return games, nil
}

func (r *repository) Create(ctx context.Context, game *gameModel.Game) error {
	err := r.db.WithContext(ctx).Create(game).Error
	if dberr.IsForeignKey(err) {
		return gameModel.ErrUnknownReference
	}
	return err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&gameModel.Game{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gameModel.ErrGameNotFound
	}
	return nil
}

func (r *repository) DeleteFixture(ctx context.Context, req gameModel.DeleteFixtureRequest) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("match_name = ? AND game_date = ? AND team_one = ? AND team_two = ?",
			req.MatchName, req.GameDate, req.TeamOne, req.TeamTwo).
		Delete(&gameModel.Game{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gameModel.ErrGameNotFound
	}
	return result.RowsAffected, nil
}

// nullable converts an optional score into a value the driver writes as NULL.
func nullable(score *int) interface{} {
	if score == nil {
		return nil
	}
	return *score
}

func (r *repository) Update(ctx context.Context, id int64, game *gameModel.Game) error {
	result := r.db.WithContext(ctx).
		Model(&gameModel.Game{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"match_name":  game.MatchName,
			"team_one":    game.TeamOne,
			"team_two":    game.TeamTwo,
			"score_one":   nullable(game.ScoreOne),
			"score_two":   nullable(game.ScoreTwo),
			"game_date":   game.GameDate,
			"season_year": game.SeasonYear,
			"league_name": game.LeagueName,
		})

	if result.Error != nil {
		if dberr.IsForeignKey(result.Error) {
			return gameModel.ErrUnknownReference
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gameModel.ErrGameNotFound
	}
	game.ID = id
	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gameModel.Game{}).Count(&count).Error
	return count, err
}
