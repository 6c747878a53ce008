// Package ajax provides the admin-to-API passthrough proxy. Browser code on
// the admin pages calls /ajax/<path>; the proxy forwards the request to the
// API host and relays the response unchanged.
package ajax

import (
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	appConfig "github.com/clubhq/membership/internal/config"
)

// Handler forwards /ajax requests to the API host.
type Handler struct {
	client     *resty.Client
	trustProxy bool
	logger     *zap.SugaredLogger
}

// New creates a new passthrough handler instance.
func New(security appConfig.SecurityConfig, logger *zap.SugaredLogger) *Handler {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetDoNotParseResponse(true)
	return &Handler{client: client, trustProxy: security.TrustProxy, logger: logger}
}

// Passthrough forwards the inbound request verbatim: method, body, and bearer
// token. The target host is the inbound host with "admin" replaced by "api"
// in the first hostname label. Every failure path, network errors included,
// becomes a 500 with the error text as body rather than a broken HTML page.
func (h *Handler) Passthrough(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.fail(c, err)
		return
	}

	target := targetURL(c.Request, h.trustProxy)

	req := h.client.R().
		SetContext(c.Request.Context()).
		SetBody(body)
	if ct := c.GetHeader("Content-Type"); ct != "" {
		req.SetHeader("Content-Type", ct)
	}
	if auth := c.GetHeader("Authorization"); auth != "" {
		req.SetHeader("Authorization", auth)
	}
	if accept := c.GetHeader("Accept"); accept != "" {
		req.SetHeader("Accept", accept)
	}

	resp, err := req.Execute(c.Request.Method, target)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer resp.RawBody().Close()

	payload, err := io.ReadAll(resp.RawBody())
	if err != nil {
		h.fail(c, err)
		return
	}

	contentType := resp.Header().Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		c.Data(resp.StatusCode(), "application/json; charset=utf-8", payload)
		return
	}
	c.Data(resp.StatusCode(), "text/plain; charset=utf-8", payload)
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.logger.Warnw("ajax passthrough failed", "error", err)
	c.String(http.StatusInternalServerError, err.Error())
}

// targetURL maps the inbound request onto the API host. The path after the
// /ajax prefix and the query string carry over unchanged. The forwarded
// protocol header only counts behind a trusted proxy, matching the force-SSL
// middleware.
func targetURL(r *http.Request, trustProxy bool) string {
	scheme := "http"
	if r.TLS != nil || (trustProxy && r.Header.Get("X-Forwarded-Proto") == "https") {
		scheme = "https"
	}

	path := strings.TrimPrefix(r.URL.Path, "/ajax")
	url := scheme + "://" + apiHost(r.Host) + path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	return url
}

// apiHost rewrites the first hostname label, admin.example.org becoming
// api.example.org. Hosts without an admin label pass through unchanged.
func apiHost(host string) string {
	hostname, port, err := net.SplitHostPort(host)
	if err != nil {
		hostname, port = host, ""
	}
	// IPv6 literals have no dotted labels to rewrite.
	if ip := net.ParseIP(hostname); ip != nil && ip.To4() == nil {
		return host
	}

	labels := strings.SplitN(hostname, ".", 2)
	labels[0] = strings.Replace(labels[0], "admin", "api", 1)
	rewritten := strings.Join(labels, ".")
	if port != "" {
		return net.JoinHostPort(rewritten, port)
	}
	return rewritten
}
