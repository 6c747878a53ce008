// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clubhq/membership/internal/render"
	teamModel "github.com/clubhq/membership/internal/team/model"
	"github.com/clubhq/membership/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /api/teams.
func (h *Handler) List(c *gin.Context) {
	filters := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	refs, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, teamModel.ErrUnknownField) {
			render.Error(c, http.StatusForbidden, "FORBIDDEN_FIELD", err.Error())
			return
		}
		h.internalError(c, "error listing teams", err)
		return
	}

	if len(refs) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	render.Collection(c, http.StatusOK, "teams", "team", refs)
}

// Get handles GET /api/teams/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.teamID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			render.NotFoundID(c, "team", id)
			return
		}
		h.internalError(c, "error getting team", err)
		return
	}

	render.Entity(c, http.StatusOK, "team", resp)
}

// Create handles POST /api/teams.
func (h *Handler) Create(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrInvalidTeam) {
			render.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
		if errors.Is(err, teamModel.ErrTeamExists) {
			render.Error(c, http.StatusConflict, "TEAM_EXISTS", "a team with this name already exists")
			return
		}
		h.internalError(c, "error creating team", err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", service.TeamURIPrefix, resp.ID))
	render.Entity(c, http.StatusCreated, "team", resp)
}

// Update handles PATCH /api/teams/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.teamID(c)
	if !ok {
		return
	}

	var req teamModel.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			render.NotFoundID(c, "team", id)
			return
		}
		if errors.Is(err, teamModel.ErrInvalidTeam) {
			render.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
		if errors.Is(err, teamModel.ErrTeamExists) {
			render.Error(c, http.StatusConflict, "TEAM_EXISTS", "a team with this name already exists")
			return
		}
		h.internalError(c, "error updating team", err)
		return
	}

	render.Entity(c, http.StatusOK, "team", resp)
}

// Delete handles DELETE /api/teams/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.teamID(c)
	if !ok {
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			render.NotFoundID(c, "team", id)
			return
		}
		h.internalError(c, "error deleting team", err)
		return
	}

	render.Entity(c, http.StatusOK, "team", resp)
}

func (h *Handler) teamID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		render.NotFound(c, fmt.Sprintf("team %s not found", raw))
		return 0, false
	}
	return id, true
}

func (h *Handler) internalError(c *gin.Context, message string, err error) {
	h.logger.Errorw(message, "error", err)
	render.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
