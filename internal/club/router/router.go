// Package router provides club module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/footballdb/internal/club/handler"
	"github.com/festy23/footballdb/internal/club/service"
)

// RegisterRoutes registers club module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/club/search", h.Search)
	r.POST("/club/add", h.Add)
	r.POST("/club/delete", h.Delete)
	r.POST("/club/update", h.Update)
	r.GET("/club/season", h.Season)
	r.POST("/club/season/add", h.AddSeason)
}
