package admin

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	memberRepository "github.com/clubhq/membership/internal/member/repository"
	memberService "github.com/clubhq/membership/internal/member/service"
	teamRepository "github.com/clubhq/membership/internal/team/repository"
	teamService "github.com/clubhq/membership/internal/team/service"
	tmRepository "github.com/clubhq/membership/internal/teammember/repository"
	tmService "github.com/clubhq/membership/internal/teammember/service"
)

// RegisterRoutes registers the back-office under /admin. Each entity gets
// paired GET/POST routes for add, edit, and delete.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	memberRepo := memberRepository.New(db)
	teamRepo := teamRepository.New(db)
	tmRepo := tmRepository.New(db)

	h := New(
		memberService.New(memberRepo, logger), memberRepo,
		teamService.New(teamRepo, logger), teamRepo,
		tmService.New(tmRepo, logger), tmRepo,
		logger,
	)

	g := r.Group("/admin")
	g.GET("", h.Home)

	g.GET("/members", h.MembersList)
	g.GET("/members/add", h.MemberAddForm)
	g.POST("/members/add", h.MemberAdd)
	g.GET("/members/:id", h.MemberView)
	g.GET("/members/:id/edit", h.MemberEditForm)
	g.POST("/members/:id/edit", h.MemberEdit)
	g.GET("/members/:id/delete", h.MemberDeleteForm)
	g.POST("/members/:id/delete", h.MemberDelete)

	g.GET("/teams", h.TeamsList)
	g.GET("/teams/add", h.TeamAddForm)
	g.POST("/teams/add", h.TeamAdd)
	g.GET("/teams/:id", h.TeamView)
	g.GET("/teams/:id/edit", h.TeamEditForm)
	g.POST("/teams/:id/edit", h.TeamEdit)
	g.GET("/teams/:id/delete", h.TeamDeleteForm)
	g.POST("/teams/:id/delete", h.TeamDelete)

	g.GET("/team-members", h.TeamMembersList)
	g.GET("/team-members/add", h.TeamMemberAddForm)
	g.POST("/team-members/add", h.TeamMemberAdd)
	g.POST("/team-members/:member_id/:team_id/delete", h.TeamMemberDelete)
}
