package services

import (
	"context"
	"errors"
	"time"

	"bloghub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db, now: time.Now}
}

// Truncate cuts text to models.MaxCommentLength characters. Longer comments are never
// rejected.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= models.MaxCommentLength {
		return text
	}
	return string(runes[:models.MaxCommentLength])
}

func newComment(blogID string, userID int64, username, text string, createdAt time.Time) *models.Comment {
	return &models.Comment{
		CommentID: uuid.NewString(),
		BlogID:    blogID,
		UserID:    userID,
		Username:  username,
		Comment:   Truncate(text),
		CreatedAt: createdAt,
	}
}

// CreateComment appends a comment under a freshly minted id.
func (s *CommentService) CreateComment(ctx context.Context, blogID string, author models.Principal, text string) (*models.Comment, error) {
	comment := newComment(blogID, author.ID, author.Username, text, s.now())
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := blogExists(tx, blogID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFoundOrForbidden
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, storeErr("create comment", err)
	}
	return comment, nil
}

// ListComments returns the blog's comments in insertion order. Views wanting newest first
// reverse the slice themselves.
func (s *CommentService) ListComments(ctx context.Context, blogID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("blog_id = ?", blogID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, storeErr("list comments", err)
	}
	return comments, nil
}

// UpsertComment writes the comment identified by (blogID, userID, commentID), creating it
// when commentID is unused. An id that already belongs to another user or blog is reported
// as ErrNotFoundOrForbidden and left untouched.
func (s *CommentService) UpsertComment(ctx context.Context, blogID string, userID int64, commentID, username, text string) (*models.Comment, error) {
	var comment *models.Comment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := blogExists(tx, blogID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFoundOrForbidden
		}

		existing, err := findComment(tx, commentID)
		if err != nil {
			return err
		}
		if existing == nil {
			comment = newComment(blogID, userID, username, text, s.now())
			comment.CommentID = commentID
			return tx.Create(comment).Error
		}

		if existing.BlogID != blogID || !IsOwner(models.Principal{ID: userID}, existing) {
			return ErrNotFoundOrForbidden
		}
		existing.Username = username
		existing.Comment = Truncate(text)
		comment = existing
		return tx.Model(&models.Comment{}).
			Where("blog_id = ? AND user_id = ? AND comment_id = ?", blogID, userID, commentID).
			Updates(map[string]interface{}{
				"username": existing.Username,
				"comment":  existing.Comment,
			}).Error
	})
	if err != nil {
		return nil, storeErr("upsert comment", err)
	}
	return comment, nil
}

// DeleteComment removes one comment written by userID. Blog owners cannot delete other
// people's comments through this call.
func (s *CommentService) DeleteComment(ctx context.Context, blogID string, userID int64, commentID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comment, err := findComment(tx, commentID)
		if err != nil {
			return err
		}
		if comment == nil || comment.BlogID != blogID || !IsOwner(models.Principal{ID: userID}, comment) {
			return ErrNotFoundOrForbidden
		}
		return tx.Where("blog_id = ? AND user_id = ? AND comment_id = ?", blogID, userID, commentID).
			Delete(&models.Comment{}).Error
	})
	return storeErr("delete comment", err)
}

func findComment(tx *gorm.DB, commentID string) (*models.Comment, error) {
	var comment models.Comment
	err := tx.Where("comment_id = ?", commentID).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
