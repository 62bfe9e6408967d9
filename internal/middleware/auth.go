package middleware

import (
	"net/http"
	"strings"

	"bloghub/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	PrincipalKey = "principal"

	// LoginFromCookie remembers where an anonymous visitor was headed before login.
	LoginFromCookie = "loginFrom"

	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
	loginFromMaxAge    = 10 * 60
)

// SetPrincipal stores the signed-in user in the session. The caller saves the session.
func SetPrincipal(session sessions.Session, p models.Principal) {
	session.Set(sessionUserIDKey, p.ID)
	session.Set(sessionUsernameKey, p.Username)
}

// LoadPrincipal puts the session principal, if any, into the gin context.
func LoadPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		id, idOK := session.Get(sessionUserIDKey).(int64)
		username, nameOK := session.Get(sessionUsernameKey).(string)
		if idOK && nameOK {
			c.Set(PrincipalKey, models.Principal{ID: id, Username: username})
		}
		c.Next()
	}
}

// CurrentPrincipal reports the caller loaded by LoadPrincipal.
func CurrentPrincipal(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}

// AuthRequired sends anonymous callers to /login, remembering the page they asked for.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(LoginFromCookie, c.Request.URL.RequestURI(), loginFromMaxAge, "/", "", c.Request.TLS != nil, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SafeRedirectTarget returns target when it is a local path and "/" otherwise.
func SafeRedirectTarget(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
