package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	appConfig "github.com/clubhq/membership/internal/config"
)

// ForceSSL enforces HTTPS before route dispatch. When enabled, plaintext
// GET/HEAD requests are 301-redirected to the https equivalent and every
// other method on plaintext is rejected with 403. With TrustProxy set, an
// X-Forwarded-Proto header of "https" counts as secure transport.
func ForceSSL(cfg appConfig.SecurityConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.ForceSSL || isSecure(c, cfg.TrustProxy) {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead:
			target := httpsURL(c.Request, cfg.SSLHost)
			c.Redirect(http.StatusMovedPermanently, target)
		default:
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"code":    "SSL_REQUIRED",
					"message": "this endpoint requires an encrypted connection",
				},
			})
		}
		c.Abort()
	}
}

func isSecure(c *gin.Context, trustProxy bool) bool {
	if c.Request.TLS != nil {
		return true
	}
	if trustProxy && c.GetHeader("X-Forwarded-Proto") == "https" {
		return true
	}
	return false
}

func httpsURL(r *http.Request, hostOverride string) string {
	host := r.Host
	if hostOverride != "" {
		host = hostOverride
	}

	u := url.URL{
		Scheme:   "https",
		Host:     host,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
	}
	return u.String()
}
