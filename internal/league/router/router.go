// Package router provides league module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/footballdb/internal/league/handler"
	"github.com/festy23/footballdb/internal/league/service"
)

// RegisterRoutes registers league module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/league/search", h.Search)
	r.POST("/league/add", h.Add)
	r.POST("/league/delete", h.Delete)
	r.POST("/league/update", h.Update)
}
