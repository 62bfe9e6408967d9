package handlers

import (
	"net/http"

	"bloghub/internal/models"
	"bloghub/internal/services"
	"bloghub/internal/validation"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// validateCommentPath checks the blog, user and comment path segments of the comment routes.
func validateCommentPath(c *gin.Context, v *validation.Validator, p models.Principal) {
	v.UUIDv4("blogId", c.Param("blogId"))
	v.Integer("userId", c.Param("userId"))
	v.MatchesPrincipal("userId", c.Param("userId"), p.ID)
	v.UUIDv4("commentId", c.Param("commentId"))
}

// Create appends a comment under a new id.
func (h *CommentHandler) Create(c *gin.Context) {
	blogID := c.Param("blogId")
	text := formValue(c, "comment")

	v := validation.New()
	v.UUIDv4("blogId", blogID)
	v.String("comment", text)
	if err := v.Err(); err != nil {
		RespondError(c, err)
		return
	}

	if _, err := h.comments.CreateComment(c.Request.Context(), blogID, principal(c), text.(string)); err != nil {
		RespondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/blogs/"+blogID)
}

// Upsert writes the caller's comment at the given id and answers with JSON.
func (h *CommentHandler) Upsert(c *gin.Context) {
	p := principal(c)
	v := validation.New()
	validateCommentPath(c, v, p)

	var text any
	if c.ContentType() == gin.MIMEJSON {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			v.AddError("comment", "request body must be a JSON object")
		} else {
			text = body["comment"]
			v.String("comment", text)
		}
	} else {
		text = formValue(c, "comment")
		v.String("comment", text)
	}
	if err := v.Err(); err != nil {
		RespondJSONError(c, err)
		return
	}

	comment, err := h.comments.UpsertComment(c.Request.Context(),
		c.Param("blogId"), p.ID, c.Param("commentId"), p.Username, text.(string))
	if err != nil {
		RespondJSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK", "comment": comment})
}

// Delete removes one of the caller's own comments.
func (h *CommentHandler) Delete(c *gin.Context) {
	p := principal(c)
	v := validation.New()
	validateCommentPath(c, v, p)
	if err := v.Err(); err != nil {
		RespondError(c, err)
		return
	}

	blogID := c.Param("blogId")
	if err := h.comments.DeleteComment(c.Request.Context(), blogID, p.ID, c.Param("commentId")); err != nil {
		RespondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/blogs/"+blogID)
}
