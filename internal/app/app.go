// Package app wires repositories, services and routes together.
package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	clubRepository "github.com/festy23/footballdb/internal/club/repository"
	clubRouter "github.com/festy23/footballdb/internal/club/router"
	clubService "github.com/festy23/footballdb/internal/club/service"
	"github.com/festy23/footballdb/internal/config"
	"github.com/festy23/footballdb/internal/editor/form"
	editorRouter "github.com/festy23/footballdb/internal/editor/router"
	editorService "github.com/festy23/footballdb/internal/editor/service"
	"github.com/festy23/footballdb/internal/editor/store"
	gameRepository "github.com/festy23/footballdb/internal/game/repository"
	gameRouter "github.com/festy23/footballdb/internal/game/router"
	gameService "github.com/festy23/footballdb/internal/game/service"
	"github.com/festy23/footballdb/internal/health"
	"github.com/festy23/footballdb/internal/ingestion"
	"github.com/festy23/footballdb/internal/ingestion/feed"
	leagueRepository "github.com/festy23/footballdb/internal/league/repository"
	leagueRouter "github.com/festy23/footballdb/internal/league/router"
	leagueService "github.com/festy23/footballdb/internal/league/service"
	"github.com/festy23/footballdb/internal/middleware"
	roundRepository "github.com/festy23/footballdb/internal/round/repository"
	roundRouter "github.com/festy23/footballdb/internal/round/router"
	roundService "github.com/festy23/footballdb/internal/round/service"
)

// Repositories groups the entity repositories of one store.
type Repositories struct {
	Leagues leagueRepository.Repository
	Rounds  roundRepository.Repository
	Clubs   clubRepository.Repository
	Games   gameRepository.Repository
}

// NewRepositories creates the entity repositories over db.
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Leagues: leagueRepository.New(db),
		Rounds:  roundRepository.New(db),
		Clubs:   clubRepository.New(db),
		Games:   gameRepository.New(db),
	}
}

// Services groups the entity and editor services.
type Services struct {
	Leagues leagueService.Service
	Rounds  roundService.Service
	Clubs   clubService.Service
	Games   gameService.Service
	Editor  editorService.Service
}

// NewServices creates the services over the repositories.
func NewServices(repos Repositories, logger *zap.SugaredLogger) Services {
	svcs := Services{
		Leagues: leagueService.New(repos.Leagues, logger),
		Rounds:  roundService.New(repos.Rounds, logger),
		Clubs:   clubService.New(repos.Clubs, logger),
		Games:   gameService.New(repos.Games, logger),
	}

	forms := form.NewRegistry(
		form.NewLeague(svcs.Leagues),
		form.NewRound(svcs.Rounds),
		form.NewClub(svcs.Clubs),
		form.NewGame(svcs.Games),
	)
	svcs.Editor = editorService.New(forms, store.New(), logger)
	return svcs
}

// NewLoader creates the feed loader writing through the repositories.
func NewLoader(repos Repositories, cfg config.IngestConfig, logger *zap.SugaredLogger) *ingestion.Loader {
	client := feed.NewClient(feed.ClientConfig{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	})
	return ingestion.NewLoader(client, repos.Leagues, repos.Rounds, repos.Clubs, repos.Games, logger)
}

// NewRouter builds the HTTP engine with middleware and every route.
func NewRouter(db *gorm.DB, svcs Services, logger *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	health.RegisterRoutes(r, db, logger)
	leagueRouter.RegisterRoutes(r, svcs.Leagues, logger)
	roundRouter.RegisterRoutes(r, svcs.Rounds, logger)
	clubRouter.RegisterRoutes(r, svcs.Clubs, logger)
	gameRouter.RegisterRoutes(r, svcs.Games, logger)
	editorRouter.RegisterRoutes(r, svcs.Editor, logger)

	return r
}
