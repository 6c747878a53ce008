package ajax

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appConfig "github.com/clubhq/membership/internal/config"
)

// RegisterRoutes registers the passthrough on every method under /ajax.
func RegisterRoutes(r *gin.Engine, security appConfig.SecurityConfig, logger *zap.SugaredLogger) {
	h := New(security, logger)
	r.Any("/ajax/*path", h.Passthrough)
}
