// Package handler provides HTTP handlers for game endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	gameModel "github.com/festy23/footballdb/internal/game/model"
	"github.com/festy23/footballdb/internal/game/service"
	"github.com/festy23/footballdb/internal/response"
)

// Handler handles HTTP requests for game endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new game handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Search handles GET /game/search.
func (h *Handler) Search(c *gin.Context) {
	var req gameModel.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.InvalidRequest(c, "invalid query parameters")
		return
	}

	games, err := h.service.Search(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error searching games", err)
		return
	}

	c.JSON(http.StatusOK, gameModel.SearchResponse{Games: games})
}

// Add handles POST /game/add.
func (h *Handler) Add(c *gin.Context) {
	var req gameModel.AddGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	game, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error adding game", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"game": game})
}

// Delete handles POST /game/delete.
func (h *Handler) Delete(c *gin.Context) {
	var req gameModel.DeleteGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		h.writeError(c, "error deleting game", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": req.ID})
}

// DeleteFixture handles POST /game/deleteFixture.
func (h *Handler) DeleteFixture(c *gin.Context) {
	var req gameModel.DeleteFixtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	deleted, err := h.service.DeleteFixture(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error deleting fixture", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// Update handles POST /game/update.
func (h *Handler) Update(c *gin.Context) {
	var req gameModel.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	game, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error updating game", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": game})
}

func (h *Handler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, gameModel.ErrMissingFields),
		errors.Is(err, gameModel.ErrMissingFixtureFields),
		errors.Is(err, gameModel.ErrInvalidGameID):
		response.InvalidRequest(c, err.Error())
	case errors.Is(err, gameModel.ErrGameNotFound):
		response.NotFound(c, "game not found")
	case errors.Is(err, gameModel.ErrUnknownReference):
		response.Conflict(c, response.CodeReferenceNotFound, err.Error())
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
