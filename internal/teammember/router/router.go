// Package router provides team-member module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/clubhq/membership/internal/middleware"
	"github.com/clubhq/membership/internal/teammember/handler"
	"github.com/clubhq/membership/internal/teammember/repository"
	"github.com/clubhq/membership/internal/teammember/service"
)

// RegisterRoutes registers team-membership API routes on the given group.
// Mutations sit behind the bearer-token admin gate.
func RegisterRoutes(api *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger, jwtSecret string) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	api.GET("/team-members", h.List)
	api.GET("/team-members/:member_id/:team_id", h.Get)

	admin := api.Group("", middleware.RequireAuth(jwtSecret), middleware.RequireAdmin())
	admin.POST("/team-members", h.Create)
	admin.DELETE("/team-members/:member_id/:team_id", h.Delete)
}
