// Package admin provides the server-rendered back-office: list, view, add,
// edit, and delete pages per entity, driven by the same services as the API.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	memberRepository "github.com/clubhq/membership/internal/member/repository"
	memberService "github.com/clubhq/membership/internal/member/service"
	teamRepository "github.com/clubhq/membership/internal/team/repository"
	teamService "github.com/clubhq/membership/internal/team/service"
	tmRepository "github.com/clubhq/membership/internal/teammember/repository"
	tmService "github.com/clubhq/membership/internal/teammember/service"
)

// Handler serves the back-office pages. Listing pages read full rows from the
// repositories; mutations go through the services so validation and error
// semantics match the API.
type Handler struct {
	members     memberService.Service
	memberRepo  memberRepository.Repository
	teams       teamService.Service
	teamRepo    teamRepository.Repository
	memberships tmService.Service
	tmRepo      tmRepository.Repository
	logger      *zap.SugaredLogger
}

// New creates a new back-office handler instance.
func New(
	members memberService.Service, memberRepo memberRepository.Repository,
	teams teamService.Service, teamRepo teamRepository.Repository,
	memberships tmService.Service, tmRepo tmRepository.Repository,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		members:     members,
		memberRepo:  memberRepo,
		teams:       teams,
		teamRepo:    teamRepo,
		memberships: memberships,
		tmRepo:      tmRepo,
		logger:      logger,
	}
}

// Home handles GET /admin.
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title": "Back office",
		"Flash": takeFlash(c),
	})
}

func (h *Handler) notFoundPage(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"Title":   "Not found",
		"Message": message,
	})
}

func (h *Handler) errorPage(c *gin.Context, message string, err error) {
	h.logger.Errorw(message, "error", err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Title":   "Something went wrong",
		"Message": "An unexpected error occurred.",
	})
}
