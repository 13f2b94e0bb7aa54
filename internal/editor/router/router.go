// Package router provides editor session routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/footballdb/internal/editor/handler"
	"github.com/festy23/footballdb/internal/editor/service"
)

// RegisterRoutes registers editor session routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.POST("/session/create", h.Create)
	r.GET("/session/get", h.Get)
	r.POST("/session/search", h.Search)
	r.POST("/session/select", h.Select)
	r.POST("/session/add", h.Add)
	r.POST("/session/update", h.Update)
	r.POST("/session/delete", h.Delete)
	r.POST("/session/cancel", h.Cancel)
}
