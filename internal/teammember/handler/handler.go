// Package handler provides HTTP handlers for team-membership endpoints.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clubhq/membership/internal/render"
	tmModel "github.com/clubhq/membership/internal/teammember/model"
	"github.com/clubhq/membership/internal/teammember/service"
)

// Handler handles HTTP requests for team-membership endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new membership handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /api/team-members. Query parameters filter on the
// member_id and team_id fields; an empty result is 204 with no body.
func (h *Handler) List(c *gin.Context) {
	filters := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	refs, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, tmModel.ErrUnknownField) {
			render.Error(c, http.StatusForbidden, "FORBIDDEN_FIELD", err.Error())
			return
		}
		h.internalError(c, "error listing team memberships", err)
		return
	}

	if len(refs) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	render.Collection(c, http.StatusOK, "team_members", "team_member", refs)
}

// Get handles GET /api/team-members/:member_id/:team_id.
func (h *Handler) Get(c *gin.Context) {
	memberID, teamID, ok := h.pairID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), memberID, teamID)
	if err != nil {
		if errors.Is(err, tmModel.ErrMembershipNotFound) {
			h.notFound(c, memberID, teamID)
			return
		}
		h.internalError(c, "error getting team membership", err)
		return
	}

	render.Entity(c, http.StatusOK, "team_member", resp)
}

// Create handles POST /api/team-members. The admin-role gate runs in
// middleware before this handler.
func (h *Handler) Create(c *gin.Context) {
	var req tmModel.CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, tmModel.ErrInvalidMembership) {
			render.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
		if errors.Is(err, tmModel.ErrMembershipExists) {
			render.Error(c, http.StatusConflict, "MEMBERSHIP_EXISTS", "this member is already on the team")
			return
		}
		h.internalError(c, "error creating team membership", err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d/%d", service.MembershipURIPrefix, resp.MemberID, resp.TeamID))
	render.Entity(c, http.StatusCreated, "team_member", resp)
}

// Delete handles DELETE /api/team-members/:member_id/:team_id and returns
// the deleted representation.
func (h *Handler) Delete(c *gin.Context) {
	memberID, teamID, ok := h.pairID(c)
	if !ok {
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), memberID, teamID)
	if err != nil {
		if errors.Is(err, tmModel.ErrMembershipNotFound) {
			h.notFound(c, memberID, teamID)
			return
		}
		h.internalError(c, "error deleting team membership", err)
		return
	}

	render.Entity(c, http.StatusOK, "team_member", resp)
}

// pairID parses the :member_id/:team_id path parameters; a non-numeric pair
// is a 404 naming the requested values.
func (h *Handler) pairID(c *gin.Context) (int64, int64, bool) {
	rawMember := c.Param("member_id")
	rawTeam := c.Param("team_id")

	memberID, memberErr := strconv.ParseInt(rawMember, 10, 64)
	teamID, teamErr := strconv.ParseInt(rawTeam, 10, 64)
	if memberErr != nil || teamErr != nil {
		render.NotFound(c, fmt.Sprintf("team membership %s/%s not found", rawMember, rawTeam))
		return 0, 0, false
	}
	return memberID, teamID, true
}

func (h *Handler) notFound(c *gin.Context, memberID, teamID int64) {
	render.NotFound(c, fmt.Sprintf("team membership %d/%d not found", memberID, teamID))
}

func (h *Handler) internalError(c *gin.Context, message string, err error) {
	h.logger.Errorw(message, "error", err)
	render.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
