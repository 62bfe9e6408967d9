package handlers

import (
	"log/slog"
	"net/http"

	"bloghub/internal/middleware"
	"bloghub/internal/models"
	"bloghub/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const oauthStateKey = "oauth_state"

type AuthHandler struct {
	users         *services.UserService
	provider      services.IdentityProvider
	secureCookies bool
}

func NewAuthHandler(users *services.UserService, provider services.IdentityProvider, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		users:         users,
		provider:      provider,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "login.html", nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		slog.Error("session save failed", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// GitHubLogin starts the OAuth flow with a fresh state stored in the session.
func (h *AuthHandler) GitHubLogin(c *gin.Context) {
	state, err := middleware.RandomToken()
	if err != nil {
		RespondError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(oauthStateKey, state)
	if err := session.Save(); err != nil {
		RespondError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.provider.AuthCodeURL(state))
}

// GitHubCallback finishes the OAuth flow, records the user and signs them in.
func (h *AuthHandler) GitHubCallback(c *gin.Context) {
	session := sessions.Default(c)
	savedState, _ := session.Get(oauthStateKey).(string)
	if savedState == "" || c.Query("state") != savedState {
		Render(c, http.StatusBadRequest, "login.html", gin.H{"Error": "Invalid login state, please try again."})
		return
	}
	session.Delete(oauthStateKey)

	code := c.Query("code")
	if code == "" {
		session.Save()
		Render(c, http.StatusBadRequest, "login.html", gin.H{"Error": "GitHub did not return an authorization code."})
		return
	}

	identity, err := h.provider.Identify(c.Request.Context(), code)
	if err != nil {
		session.Save()
		slog.Error("github identify failed", "error", err)
		Render(c, http.StatusBadGateway, "login.html", gin.H{"Error": "Could not sign in with GitHub."})
		return
	}

	if _, err := h.users.Upsert(c.Request.Context(), identity.ID, identity.Username); err != nil {
		RespondError(c, err)
		return
	}

	middleware.SetPrincipal(session, models.Principal{ID: identity.ID, Username: identity.Username})
	if err := session.Save(); err != nil {
		RespondError(c, err)
		return
	}
	slog.Info("user signed in", "user_id", identity.ID, "username", identity.Username)

	target := "/"
	if from, err := c.Cookie(middleware.LoginFromCookie); err == nil {
		target = middleware.SafeRedirectTarget(from)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.LoginFromCookie, "", -1, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, target)
}
