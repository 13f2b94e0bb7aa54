// Package handler provides HTTP handlers for editor session endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	clubModel "github.com/festy23/footballdb/internal/club/model"
	editorModel "github.com/festy23/footballdb/internal/editor/model"
	"github.com/festy23/footballdb/internal/editor/service"
	gameModel "github.com/festy23/footballdb/internal/game/model"
	leagueModel "github.com/festy23/footballdb/internal/league/model"
	"github.com/festy23/footballdb/internal/response"
	roundModel "github.com/festy23/footballdb/internal/round/model"
)

// Handler handles HTTP requests for editor session endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new editor handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /session/create.
func (h *Handler) Create(c *gin.Context) {
	session, err := h.service.Create(c.Request.Context())
	if err != nil {
		h.writeError(c, "error creating session", err)
		return
	}

	c.JSON(http.StatusCreated, editorModel.SessionResponse{Session: session})
}

// Get handles GET /session/get.
func (h *Handler) Get(c *gin.Context) {
	var req editorModel.SessionRequest
	if err := c.ShouldBindQuery(&req); err != nil || req.SessionID == "" {
		response.InvalidRequest(c, "session_id is required")
		return
	}

	session, err := h.service.Get(c.Request.Context(), req.SessionID)
	if err != nil {
		h.writeError(c, "error getting session", err)
		return
	}

	c.JSON(http.StatusOK, editorModel.SessionResponse{Session: session})
}

// Search handles POST /session/search.
func (h *Handler) Search(c *gin.Context) {
	var req editorModel.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	session, err := h.service.Search(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error searching records", err)
		return
	}

	c.JSON(http.StatusOK, editorModel.SessionResponse{Session: session})
}

// Select handles POST /session/select.
func (h *Handler) Select(c *gin.Context) {
	var req editorModel.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	session, err := h.service.Select(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error selecting record", err)
		return
	}

	c.JSON(http.StatusOK, editorModel.SessionResponse{Session: session})
}

// Add handles POST /session/add.
func (h *Handler) Add(c *gin.Context) {
	var req editorModel.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	row, session, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error adding record", err)
		return
	}

	c.JSON(http.StatusCreated, editorModel.AddResponse{Row: row, Session: session})
}

// Update handles POST /session/update.
func (h *Handler) Update(c *gin.Context) {
	var req editorModel.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	session, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error updating record", err)
		return
	}

	c.JSON(http.StatusOK, editorModel.SessionResponse{Session: session})
}

// Delete handles POST /session/delete.
func (h *Handler) Delete(c *gin.Context) {
	var req editorModel.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	session, err := h.service.Delete(c.Request.Context(), req.SessionID)
	if err != nil {
		h.writeError(c, "error deleting record", err)
		return
	}

	c.JSON(http.StatusOK, editorModel.SessionResponse{Session: session})
}

// Cancel handles POST /session/cancel.
func (h *Handler) Cancel(c *gin.Context) {
	var req editorModel.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	session, err := h.service.Cancel(c.Request.Context(), req.SessionID)
	if err != nil {
		h.writeError(c, "error cancelling edit", err)
		return
	}

	c.JSON(http.StatusOK, editorModel.SessionResponse{Session: session})
}

func isAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

func (h *Handler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, editorModel.ErrSessionNotFound):
		response.NotFound(c, "session not found")
	case errors.Is(err, editorModel.ErrInvalidState):
		response.Conflict(c, response.CodeConflict, err.Error())
	case isAny(err,
		editorModel.ErrUnknownSection,
		editorModel.ErrRowOutOfRange,
		editorModel.ErrInvalidField,
		leagueModel.ErrInvalidLeagueName,
		roundModel.ErrInvalidRoundName,
		clubModel.ErrMissingFields,
		clubModel.ErrInvalidClubID,
		gameModel.ErrMissingFields,
		gameModel.ErrInvalidGameID):
		response.InvalidRequest(c, err.Error())
	case isAny(err,
		leagueModel.ErrLeagueNotFound,
		roundModel.ErrRoundNotFound,
		clubModel.ErrClubNotFound,
		gameModel.ErrGameNotFound):
		response.NotFound(c, err.Error())
	case isAny(err,
		leagueModel.ErrLeagueExists,
		roundModel.ErrRoundExists,
		clubModel.ErrClubExists):
		response.Conflict(c, response.CodeAlreadyExists, err.Error())
	case isAny(err,
		leagueModel.ErrLeagueInUse,
		roundModel.ErrRoundInUse,
		clubModel.ErrClubInUse):
		response.Conflict(c, response.CodeInUse, err.Error())
	case isAny(err,
		clubModel.ErrUnknownLeague,
		gameModel.ErrUnknownReference):
		response.Conflict(c, response.CodeReferenceNotFound, err.Error())
	case errors.Is(err, clubModel.ErrReferenceViolation):
		response.Conflict(c, response.CodeConflict, err.Error())
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
