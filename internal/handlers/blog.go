package handlers

import (
	"net/http"

	"bloghub/internal/services"
	"bloghub/internal/validation"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogs    *services.BlogService
	comments *services.CommentService
}

func NewBlogHandler(blogs *services.BlogService, comments *services.CommentService) *BlogHandler {
	return &BlogHandler{blogs: blogs, comments: comments}
}

func (h *BlogHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "blog/new.html", nil)
}

// Create stores a blog and, when the form carries one, its first comment.
func (h *BlogHandler) Create(c *gin.Context) {
	title := formValue(c, "blogTitle")
	text := formValue(c, "blogText")
	seed := formValue(c, "comment")

	v := validation.New()
	v.String("blogTitle", title)
	v.String("blogText", text)
	if seed != nil {
		v.String("comment", seed)
	}
	if err := v.Err(); err != nil {
		RespondError(c, err)
		return
	}

	seedText, _ := seed.(string)
	blog, err := h.blogs.CreateBlog(c.Request.Context(), principal(c), title.(string), text.(string), seedText)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/blogs/"+blog.BlogID)
}

func (h *BlogHandler) Detail(c *gin.Context) {
	blogID := c.Param("blogId")
	v := validation.New()
	v.UUIDv4("blogId", blogID)
	if err := v.Err(); err != nil {
		RespondError(c, err)
		return
	}

	ctx := c.Request.Context()
	blog, err := h.blogs.GetBlog(ctx, blogID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if blog == nil {
		RespondError(c, services.ErrNotFoundOrForbidden)
		return
	}

	comments, err := h.comments.ListComments(ctx, blogID)
	if err != nil {
		RespondError(c, err)
		return
	}

	Render(c, http.StatusOK, "blog/show.html", gin.H{
		"Blog":     blog,
		"Comments": comments,
		"IsOwner":  services.IsOwner(principal(c), blog),
	})
}

func (h *BlogHandler) ShowEdit(c *gin.Context) {
	blogID := c.Param("blogId")
	v := validation.New()
	v.UUIDv4("blogId", blogID)
	if err := v.Err(); err != nil {
		RespondError(c, err)
		return
	}

	blog, err := h.blogs.GetBlog(c.Request.Context(), blogID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if !services.IsOwner(principal(c), blog) {
		RespondError(c, services.ErrNotFoundOrForbidden)
		return
	}

	Render(c, http.StatusOK, "blog/edit.html", gin.H{"Blog": blog})
}

func (h *BlogHandler) Update(c *gin.Context) {
	blogID := c.Param("blogId")
	title := formValue(c, "blogTitle")
	text := formValue(c, "blogText")

	v := validation.New()
	v.UUIDv4("blogId", blogID)
	v.String("blogTitle", title)
	v.String("blogText", text)
	if err := v.Err(); err != nil {
		RespondError(c, err)
		return
	}

	if _, err := h.blogs.UpdateBlog(c.Request.Context(), principal(c), blogID, title.(string), text.(string)); err != nil {
		RespondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/blogs/"+blogID)
}

// Delete removes the blog with all of its comments.
func (h *BlogHandler) Delete(c *gin.Context) {
	blogID := c.Param("blogId")
	v := validation.New()
	v.UUIDv4("blogId", blogID)
	if err := v.Err(); err != nil {
		RespondError(c, err)
		return
	}

	if err := h.blogs.DeleteBlog(c.Request.Context(), principal(c), blogID); err != nil {
		RespondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
