// Package handler provides HTTP handlers for round endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/footballdb/internal/response"
	roundModel "github.com/festy23/footballdb/internal/round/model"
	"github.com/festy23/footballdb/internal/round/service"
)

// Handler handles HTTP requests for round endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new round handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Search handles GET /round/search.
func (h *Handler) Search(c *gin.Context) {
	var req roundModel.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.InvalidRequest(c, "invalid query parameters")
		return
	}

	rounds, err := h.service.Search(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error searching rounds", err)
		return
	}

	c.JSON(http.StatusOK, roundModel.SearchResponse{Rounds: rounds})
}

// Add handles POST /round/add.
func (h *Handler) Add(c *gin.Context) {
	var req roundModel.AddRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	round, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error adding round", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"round": round})
}

// Delete handles POST /round/delete.
func (h *Handler) Delete(c *gin.Context) {
	var req roundModel.DeleteRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.MatchName); err != nil {
		h.writeError(c, "error deleting round", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": req.MatchName})
}

// Update handles POST /round/update.
func (h *Handler) Update(c *gin.Context) {
	var req roundModel.UpdateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	round, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error updating round", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"round": round})
}

func (h *Handler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, roundModel.ErrInvalidRoundName):
		response.InvalidRequest(c, "match_name is required")
	case errors.Is(err, roundModel.ErrRoundNotFound):
		response.NotFound(c, "round not found")
	case errors.Is(err, roundModel.ErrRoundExists):
		response.Conflict(c, response.CodeAlreadyExists, "match_name already exists")
	case errors.Is(err, roundModel.ErrRoundInUse):
		response.Conflict(c, response.CodeInUse, "round is referenced by games")
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
