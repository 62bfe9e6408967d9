package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Blog pages sit behind login, so crawlers only get the landing and login pages.
const robotsTxt = `User-agent: *
Allow: /$
Allow: /login
Disallow: /blogs/
Disallow: /auth/
Disallow: /logout
Disallow: /metrics
Disallow: /healthz
`

type SEOHandler struct{}

func NewSEOHandler() *SEOHandler {
	return &SEOHandler{}
}

func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, robotsTxt)
}
