package middleware

import "github.com/gin-gonic/gin"

const (
	headerXContentTypeOptions     = "X-Content-Type-Options"
	headerXFrameOptions           = "X-Frame-Options"
	headerReferrerPolicy          = "Referrer-Policy"
	headerContentSecurityPolicy   = "Content-Security-Policy"
	headerStrictTransportSecurity = "Strict-Transport-Security"
)

// Scripts and styles only come from /static. Rendered Markdown may reference remote images.
const contentSecurityPolicy = "default-src 'self'; img-src 'self' https: data:; object-src 'none'; frame-ancestors 'none'; base-uri 'self'; form-action 'self'"

// SecurityHeaders sets security-related response headers. HSTS is only sent in production.
func SecurityHeaders(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set(headerXContentTypeOptions, "nosniff")
		h.Set(headerXFrameOptions, "DENY")
		h.Set(headerReferrerPolicy, "same-origin")
		h.Set(headerContentSecurityPolicy, contentSecurityPolicy)
		if production {
			h.Set(headerStrictTransportSecurity, "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}
