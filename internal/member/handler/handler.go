// Package handler provides HTTP handlers for member endpoints.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	memberModel "github.com/clubhq/membership/internal/member/model"
	"github.com/clubhq/membership/internal/member/service"
	"github.com/clubhq/membership/internal/render"
)

// Handler handles HTTP requests for member endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new member handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /api/members. Query parameters filter on allow-listed
// fields; an empty result is 204 with no body.
func (h *Handler) List(c *gin.Context) {
	filters := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	refs, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, memberModel.ErrUnknownField) {
			render.Error(c, http.StatusForbidden, "FORBIDDEN_FIELD", err.Error())
			return
		}
		if errors.Is(err, memberModel.ErrInvalidFilter) {
			render.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
		h.internalError(c, "error listing members", err)
		return
	}

	if len(refs) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	render.Collection(c, http.StatusOK, "members", "member", refs)
}

// Get handles GET /api/members/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.memberID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, memberModel.ErrMemberNotFound) {
			render.NotFoundID(c, "member", id)
			return
		}
		h.internalError(c, "error getting member", err)
		return
	}

	render.Entity(c, http.StatusOK, "member", resp)
}

// Create handles POST /api/members. The admin-role gate runs in middleware
// before this handler.
func (h *Handler) Create(c *gin.Context) {
	var req memberModel.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, memberModel.ErrInvalidMember) {
			render.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
		if errors.Is(err, memberModel.ErrMemberExists) {
			render.Error(c, http.StatusConflict, "MEMBER_EXISTS", "a member with this email already exists")
			return
		}
		h.internalError(c, "error creating member", err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", service.MemberURIPrefix, resp.ID))
	render.Entity(c, http.StatusCreated, "member", resp)
}

// Update handles PATCH /api/members/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.memberID(c)
	if !ok {
		return
	}

	var req memberModel.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, memberModel.ErrMemberNotFound) {
			render.NotFoundID(c, "member", id)
			return
		}
		if errors.Is(err, memberModel.ErrMemberExists) {
			render.Error(c, http.StatusConflict, "MEMBER_EXISTS", "a member with this email already exists")
			return
		}
		h.internalError(c, "error updating member", err)
		return
	}

	render.Entity(c, http.StatusOK, "member", resp)
}

// Delete handles DELETE /api/members/:id and returns the deleted
// representation.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.memberID(c)
	if !ok {
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, memberModel.ErrMemberNotFound) {
			render.NotFoundID(c, "member", id)
			return
		}
		h.internalError(c, "error deleting member", err)
		return
	}

	render.Entity(c, http.StatusOK, "member", resp)
}

// memberID parses the :id path parameter; a non-numeric id is a 404 naming
// the requested value.
func (h *Handler) memberID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		render.NotFound(c, fmt.Sprintf("member %s not found", raw))
		return 0, false
	}
	return id, true
}

func (h *Handler) internalError(c *gin.Context, message string, err error) {
	h.logger.Errorw(message, "error", err)
	render.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
