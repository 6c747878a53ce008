package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery returns the top-level error boundary: any panic below it becomes
// a 500 response. The stack trace is logged but never written to the
// response; outside production the response carries the panic message,
// in production only a generic one.
func Recovery(logger *zap.SugaredLogger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorw("panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"client_ip", c.ClientIP(),
					"stack", string(debug.Stack()),
				)

				message := "internal server error"
				if !production {
					message = fmt.Sprintf("internal server error: %v", err)
				}

				c.JSON(http.StatusInternalServerError, gin.H{
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": message,
					},
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
