// Package ingestion loads openfootball feeds into the store.
package ingestion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	clubModel "github.com/festy23/footballdb/internal/club/model"
	gameModel "github.com/festy23/footballdb/internal/game/model"
	"github.com/festy23/footballdb/internal/ingestion/feed"
)

// seasonSuffixLen is the length of the " 2015/16" suffix of feed names.
const seasonSuffixLen = 8

// Fetcher downloads feed documents.
type Fetcher interface {
	FetchClubs(ctx context.Context, url string) (*feed.ClubsDocument, error)
	FetchMatches(ctx context.Context, url string) (*feed.MatchesDocument, error)
}

// LeagueStore is the league storage used by the loader.
type LeagueStore interface {
	CreateIfMissing(ctx context.Context, leagueName string) error
}

// RoundStore is the round storage used by the loader.
type RoundStore interface {
	CreateIfMissing(ctx context.Context, matchName string) error
}

// ClubStore is the club storage used by the loader.
type ClubStore interface {
	CreateIfMissing(ctx context.Context, club *clubModel.Club) error
	AddSeason(ctx context.Context, clubKey string, year int) error
}

// GameStore is the game storage used by the loader.
type GameStore interface {
	Create(ctx context.Context, game *gameModel.Game) error
}

// ClubsResult reports what a clubs load processed.
type ClubsResult struct {
	LeagueName string
	Clubs      int
}

// MatchesResult reports what a matches load processed.
type MatchesResult struct {
	LeagueName string
	Rounds     int
	Games      int
}

// Summary totals a catalog run.
type Summary struct {
	Feeds  int
	Clubs  int
	Rounds int
	Games  int
}

// Loader writes feed documents into the store.
type Loader struct {
	fetcher Fetcher
	leagues LeagueStore
	rounds  RoundStore
	clubs   ClubStore
	games   GameStore
	logger  *zap.SugaredLogger
}

// NewLoader creates a loader.
func NewLoader(fetcher Fetcher, leagues LeagueStore, rounds RoundStore, clubs ClubStore, games GameStore, logger *zap.SugaredLogger) *Loader {
	return &Loader{
		fetcher: fetcher,
		leagues: leagues,
		rounds:  rounds,
		clubs:   clubs,
		games:   games,
		logger:  logger,
	}
}

// LeagueName strips the trailing season suffix from a feed name.
// Names shorter than the suffix yield an empty string.
func LeagueName(raw string) string {
	runes := []rune(raw)
	if len(runes) < seasonSuffixLen {
		return ""
	}
	return string(runes[:len(runes)-seasonSuffixLen])
}

// LoadClubs inserts the league, its clubs and their season membership.
// Existing rows are left untouched, so repeated loads are no-ops.
func (l *Loader) LoadClubs(ctx context.Context, url string, season int) (ClubsResult, error) {
	doc, err := l.fetcher.FetchClubs(ctx, url)
	if err != nil {
		return ClubsResult{}, err
	}

	leagueName := LeagueName(doc.Name)
	if err := l.leagues.CreateIfMissing(ctx, leagueName); err != nil {
		return ClubsResult{}, fmt.Errorf("insert league %q: %w", leagueName, err)
	}

	for _, c := range doc.Clubs {
		club := &clubModel.Club{
			ID:         c.Key,
			ClubName:   c.Name,
			Abbr:       c.Code,
			LeagueName: leagueName,
		}
		if err := l.clubs.CreateIfMissing(ctx, club); err != nil {
			return ClubsResult{}, fmt.Errorf("insert club %q: %w", c.Key, err)
		}
		if err := l.clubs.AddSeason(ctx, c.Key, season); err != nil {
			return ClubsResult{}, fmt.Errorf("insert season %d of club %q: %w", season, c.Key, err)
		}
	}

	return ClubsResult{LeagueName: leagueName, Clubs: len(doc.Clubs)}, nil
}

// LoadMatches inserts the rounds and one game per fixture.
// Games are always inserted, so loading the same document twice duplicates them.
func (l *Loader) LoadMatches(ctx context.Context, url string, season int) (MatchesResult, error) {
	doc, err := l.fetcher.FetchMatches(ctx, url)
	if err != nil {
		return MatchesResult{}, err
	}

	result := MatchesResult{LeagueName: LeagueName(doc.Name)}
	for _, round := range doc.Rounds {
		if err := l.rounds.CreateIfMissing(ctx, round.Name); err != nil {
			return result, fmt.Errorf("insert round %q: %w", round.Name, err)
		}
		result.Rounds++

		for _, m := range round.Matches {
			game := &gameModel.Game{
				MatchName:  round.Name,
				TeamOne:    m.Team1.Key,
				TeamTwo:    m.Team2.Key,
				ScoreOne:   m.Score1,
				ScoreTwo:   m.Score2,
				GameDate:   m.Date,
				SeasonYear: season,
				LeagueName: result.LeagueName,
			}
			if err := l.games.Create(ctx, game); err != nil {
				return result, fmt.Errorf("insert game %s %s-%s: %w", m.Date, m.Team1.Key, m.Team2.Key, err)
			}
			result.Games++
		}
	}

	return result, nil
}

// Run ingests the catalog league by league. Within a league every clubs document
// is loaded before any matches document. The first error stops the run; rows
// written before it are kept.
func (l *Loader) Run(ctx context.Context, catalog Catalog) (Summary, error) {
	var summary Summary

	for _, group := range catalog.groups() {
		for _, f := range group {
			res, err := l.LoadClubs(ctx, f.ClubsURL, f.Season)
			if err != nil {
				return summary, fmt.Errorf("load clubs %s %d: %w", f.League, f.Season, err)
			}
			summary.Clubs += res.Clubs
			l.logger.Infow("clubs loaded", "league", res.LeagueName, "season", f.Season, "clubs", res.Clubs)
		}

		for _, f := range group {
			res, err := l.LoadMatches(ctx, f.MatchesURL, f.Season)
			if err != nil {
				return summary, fmt.Errorf("load matches %s %d: %w", f.League, f.Season, err)
			}
			summary.Rounds += res.Rounds
			summary.Games += res.Games
			summary.Feeds++
			l.logger.Infow("matches loaded", "league", res.LeagueName, "season", f.Season, "rounds", res.Rounds, "games", res.Games)
		}
	}

	return summary, nil
}
