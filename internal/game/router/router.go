// Package router provides game module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/footballdb/internal/game/handler"
	"github.com/festy23/footballdb/internal/game/service"
)

// RegisterRoutes registers game module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/game/search", h.Search)
	r.POST("/game/add", h.Add)
	r.POST("/game/delete", h.Delete)
	r.POST("/game/deleteFixture", h.DeleteFixture)
	r.POST("/game/update", h.Update)
}
