// Package handler provides HTTP handlers for club endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	clubModel "github.com/festy23/footballdb/internal/club/model"
	"github.com/festy23/footballdb/internal/club/service"
	"github.com/festy23/footballdb/internal/response"
)

// Handler handles HTTP requests for club endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new club handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Search handles GET /club/search.
func (h *Handler) Search(c *gin.Context) {
	var req clubModel.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.InvalidRequest(c, "invalid query parameters")
		return
	}

	clubs, err := h.service.Search(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error searching clubs", err)
		return
	}

	c.JSON(http.StatusOK, clubModel.SearchResponse{Clubs: clubs})
}

// Add handles POST /club/add.
func (h *Handler) Add(c *gin.Context) {
	var req clubModel.AddClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	club, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error adding club", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"club": club})
}

// Delete handles POST /club/delete.
func (h *Handler) Delete(c *gin.Context) {
	var req clubModel.DeleteClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		h.writeError(c, "error deleting club", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": req.ID})
}

// Update handles POST /club/update.
func (h *Handler) Update(c *gin.Context) {
	var req clubModel.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	club, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error updating club", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"club": club})
}

// Season handles GET /club/season.
func (h *Handler) Season(c *gin.Context) {
	var req clubModel.SeasonRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.InvalidRequest(c, "year must be an integer")
		return
	}

	clubs, err := h.service.ListBySeason(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error listing season clubs", err)
		return
	}

	c.JSON(http.StatusOK, clubModel.SearchResponse{Clubs: clubs})
}

// AddSeason handles POST /club/season/add.
func (h *Handler) AddSeason(c *gin.Context) {
	var req clubModel.AddSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	season, err := h.service.AddSeason(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error adding club season", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"club_year": season})
}

func (h *Handler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, clubModel.ErrMissingFields),
		errors.Is(err, clubModel.ErrInvalidClubID),
		errors.Is(err, clubModel.ErrInvalidYear):
		response.InvalidRequest(c, err.Error())
	case errors.Is(err, clubModel.ErrClubNotFound):
		response.NotFound(c, "club not found")
	case errors.Is(err, clubModel.ErrClubExists):
		response.Conflict(c, response.CodeAlreadyExists, "club id already exists")
	case errors.Is(err, clubModel.ErrClubInUse):
		response.Conflict(c, response.CodeInUse, "club is referenced by games")
	case errors.Is(err, clubModel.ErrUnknownLeague):
		response.Conflict(c, response.CodeReferenceNotFound, "league does not exist")
	case errors.Is(err, clubModel.ErrReferenceViolation):
		response.Conflict(c, response.CodeConflict, err.Error())
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
