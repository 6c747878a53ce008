package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticCache sets Cache-Control on static asset responses: a long max-age
// in production, no-cache otherwise so local edits show up immediately.
func StaticCache(prefix string, production bool) gin.HandlerFunc {
	value := "no-cache"
	if production {
		value = "public, max-age=86400"
	}

	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, prefix) {
			c.Header("Cache-Control", value)
		}
		c.Next()
	}
}
