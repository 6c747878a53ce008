// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/clubhq/membership/internal/middleware"
	"github.com/clubhq/membership/internal/team/handler"
	"github.com/clubhq/membership/internal/team/repository"
	"github.com/clubhq/membership/internal/team/service"
)

// RegisterRoutes registers team API routes on the given group.
func RegisterRoutes(api *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger, jwtSecret string) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	api.GET("/teams", h.List)
	api.GET("/teams/:id", h.Get)

	admin := api.Group("", middleware.RequireAuth(jwtSecret), middleware.RequireAdmin())
	admin.POST("/teams", h.Create)
	admin.PATCH("/teams/:id", h.Update)
	admin.DELETE("/teams/:id", h.Delete)
}
