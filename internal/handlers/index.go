package handlers

import (
	"net/http"

	"bloghub/internal/middleware"
	"bloghub/internal/services"

	"github.com/gin-gonic/gin"
)

type IndexHandler struct {
	blogs *services.BlogService
}

func NewIndexHandler(blogs *services.BlogService) *IndexHandler {
	return &IndexHandler{blogs: blogs}
}

// Index shows the global feed to signed-in users and a welcome page to everyone else.
func (h *IndexHandler) Index(c *gin.Context) {
	if _, ok := middleware.CurrentPrincipal(c); !ok {
		Render(c, http.StatusOK, "index.html", nil)
		return
	}

	blogs, err := h.blogs.ListAllBlogs(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	Render(c, http.StatusOK, "index.html", gin.H{"Blogs": blogs})
}
