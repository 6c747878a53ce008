// Package router provides member module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/clubhq/membership/internal/member/handler"
	"github.com/clubhq/membership/internal/member/repository"
	"github.com/clubhq/membership/internal/member/service"
	"github.com/clubhq/membership/internal/middleware"
)

// RegisterRoutes registers member API routes on the given group. Mutations
// sit behind the bearer-token admin gate.
func RegisterRoutes(api *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger, jwtSecret string) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	api.GET("/members", h.List)
	api.GET("/members/:id", h.Get)

	admin := api.Group("", middleware.RequireAuth(jwtSecret), middleware.RequireAdmin())
	admin.POST("/members", h.Create)
	admin.PATCH("/members/:id", h.Update)
	admin.DELETE("/members/:id", h.Delete)
}
