package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"bloghub/internal/middleware"
	"bloghub/internal/models"
	"bloghub/internal/services"
	"bloghub/internal/validation"

	"github.com/gin-gonic/gin"
)

// Render injects the values every page needs: the signed-in user and the CSRF token.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	var current *models.Principal
	if p, ok := middleware.CurrentPrincipal(c); ok {
		current = &p
	}
	obj["CurrentUser"] = current
	obj["CSRFToken"] = middleware.CSRFToken(c)
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError shows the error page with a single message.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Status": code, "Error": message})
}

// RespondError answers with the status matching err, as JSON when the client prefers it
// and as the error page otherwise.
func RespondError(c *gin.Context, err error) {
	respondError(c, err, wantsJSON(c))
}

// RespondJSONError always answers with the JSON error shape.
func RespondJSONError(c *gin.Context, err error) {
	respondError(c, err, true)
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func classify(err error) (int, []validation.FieldError) {
	var ve *validation.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Errors
	case errors.Is(err, services.ErrNotFoundOrForbidden):
		return http.StatusNotFound, []validation.FieldError{{Msg: "not found"}}
	default:
		return http.StatusInternalServerError, []validation.FieldError{{Msg: "internal server error"}}
	}
}

func respondError(c *gin.Context, err error, asJSON bool) {
	status, fieldErrors := classify(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
	}
	_ = c.Error(err)

	if asJSON {
		c.AbortWithStatusJSON(status, gin.H{"status": "NG", "errors": fieldErrors})
		return
	}
	Render(c, status, "error.html", gin.H{
		"Status": status,
		"Error":  http.StatusText(status),
		"Errors": fieldErrors,
	})
	c.Abort()
}

// principal is only called behind middleware.AuthRequired.
func principal(c *gin.Context) models.Principal {
	p, _ := middleware.CurrentPrincipal(c)
	return p
}

// formValue returns nil for a field missing from the form so the string rule can reject it.
func formValue(c *gin.Context, field string) any {
	if v, ok := c.GetPostForm(field); ok {
		return v
	}
	return nil
}
