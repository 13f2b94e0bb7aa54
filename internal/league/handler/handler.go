// Package handler provides HTTP handlers for league endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	leagueModel "github.com/festy23/footballdb/internal/league/model"
	"github.com/festy23/footballdb/internal/league/service"
	"github.com/festy23/footballdb/internal/response"
)

// Handler handles HTTP requests for league endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new league handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Search handles GET /league/search.
func (h *Handler) Search(c *gin.Context) {
	var req leagueModel.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.InvalidRequest(c, "invalid query parameters")
		return
	}

	leagues, err := h.service.Search(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error searching leagues", err)
		return
	}

	c.JSON(http.StatusOK, leagueModel.SearchResponse{Leagues: leagues})
}

// Add handles POST /league/add.
func (h *Handler) Add(c *gin.Context) {
	var req leagueModel.AddLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	league, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error adding league", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"league": league})
}

// Delete handles POST /league/delete.
func (h *Handler) Delete(c *gin.Context) {
	var req leagueModel.DeleteLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.LeagueName); err != nil {
		h.writeError(c, "error deleting league", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": req.LeagueName})
}

// Update handles POST /league/update.
func (h *Handler) Update(c *gin.Context) {
	var req leagueModel.UpdateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	league, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error updating league", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"league": league})
}

func (h *Handler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, leagueModel.ErrInvalidLeagueName):
		response.InvalidRequest(c, "league_name is required")
	case errors.Is(err, leagueModel.ErrLeagueNotFound):
		response.NotFound(c, "league not found")
	case errors.Is(err, leagueModel.ErrLeagueExists):
		response.Conflict(c, response.CodeAlreadyExists, "league_name already exists")
	case errors.Is(err, leagueModel.ErrLeagueInUse):
		response.Conflict(c, response.CodeInUse, "league is referenced by clubs or games")
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
