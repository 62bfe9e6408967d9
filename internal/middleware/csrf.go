package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	CSRFFormField = "_csrf"
	CSRFHeader    = "X-CSRF-Token"

	csrfSessionKey = "csrf_token"
	csrfContextKey = "csrf_token"
)

// RandomToken returns 32 random bytes, URL-safe base64 encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// CSRF issues one token per session and rejects unsafe requests that do not echo it back.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		token, _ := session.Get(csrfSessionKey).(string)
		if token == "" {
			var err error
			token, err = RandomToken()
			if err != nil {
				slog.Error("csrf token generation failed", "error", err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			session.Set(csrfSessionKey, token)
			if err := session.Save(); err != nil {
				slog.Error("csrf session save failed", "error", err)
			}
		}
		c.Set(csrfContextKey, token)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		sent := c.GetHeader(CSRFHeader)
		if sent == "" {
			sent = c.PostForm(CSRFFormField)
		}
		if subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
			slog.Warn("csrf token mismatch", "method", c.Request.Method, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status": "NG",
				"errors": []gin.H{{"msg": "invalid CSRF token"}},
			})
			return
		}
		c.Next()
	}
}

// CSRFToken returns the token templates embed in forms.
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}
