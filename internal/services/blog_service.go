package services

import (
	"context"
	"errors"
	"time"

	"bloghub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db, now: time.Now}
}

// preloadCreator keeps the joined user down to what views display.
func preloadCreator(tx *gorm.DB) *gorm.DB {
	return tx.Select("user_id", "username")
}

// CreateBlog stores a new blog owned by author. A non-empty seedComment is stored as the
// blog's first comment in the same transaction.
func (s *BlogService) CreateBlog(ctx context.Context, author models.Principal, title, text, seedComment string) (*models.Blog, error) {
	now := s.now()
	blog := models.Blog{
		BlogID:    uuid.NewString(),
		BlogTitle: title,
		BlogText:  text,
		CreatedBy: author.ID,
		UpdatedAt: now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&blog).Error; err != nil {
			return err
		}
		if seedComment == "" {
			return nil
		}
		seed := newComment(blog.BlogID, author.ID, author.Username, seedComment, now)
		return tx.Create(seed).Error
	})
	if err != nil {
		return nil, storeErr("create blog", err)
	}
	return &blog, nil
}

// GetBlog returns nil without an error when the blog does not exist.
func (s *BlogService) GetBlog(ctx context.Context, blogID string) (*models.Blog, error) {
	blog, err := findBlog(s.db.WithContext(ctx).Preload("User", preloadCreator), blogID)
	if err != nil {
		return nil, storeErr("get blog", err)
	}
	return blog, nil
}

func (s *BlogService) UpdateBlog(ctx context.Context, principal models.Principal, blogID, title, text string) (*models.Blog, error) {
	var blog *models.Blog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		blog, err = findBlog(tx, blogID)
		if err != nil {
			return err
		}
		if !IsOwner(principal, blog) {
			return ErrNotFoundOrForbidden
		}

		blog.BlogTitle = title
		blog.BlogText = text
		blog.UpdatedAt = s.now()
		return tx.Model(&models.Blog{}).
			Where("blog_id = ? AND created_by = ?", blog.BlogID, principal.ID).
			Updates(map[string]interface{}{
				"blog_title": blog.BlogTitle,
				"blog_text":  blog.BlogText,
				"updated_at": blog.UpdatedAt,
			}).Error
	})
	if err != nil {
		return nil, storeErr("update blog", err)
	}
	return blog, nil
}

// DeleteBlog removes a blog and its comments after checking that principal created it.
func (s *BlogService) DeleteBlog(ctx context.Context, principal models.Principal, blogID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		blog, err := findBlog(tx, blogID)
		if err != nil {
			return err
		}
		if !IsOwner(principal, blog) {
			return ErrNotFoundOrForbidden
		}
		return deleteAggregate(tx, blogID)
	})
	return storeErr("delete blog", err)
}

// DeleteBlogAggregate removes every comment of the blog, then the blog, atomically.
// It does not check ownership.
func (s *BlogService) DeleteBlogAggregate(ctx context.Context, blogID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteAggregate(tx, blogID)
	})
	return storeErr("delete blog aggregate", err)
}

func (s *BlogService) ListBlogsByCreator(ctx context.Context, principalID int64) ([]models.Blog, error) {
	var blogs []models.Blog
	err := s.db.WithContext(ctx).Preload("User", preloadCreator).
		Where("created_by = ?", principalID).
		Order("updated_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, storeErr("list blogs by creator", err)
	}
	return blogs, nil
}

// ListAllBlogs is the global feed shown on the home page.
func (s *BlogService) ListAllBlogs(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := s.db.WithContext(ctx).Preload("User", preloadCreator).
		Order("updated_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, storeErr("list blogs", err)
	}
	return blogs, nil
}

func findBlog(tx *gorm.DB, blogID string) (*models.Blog, error) {
	var blog models.Blog
	err := tx.Where("blog_id = ?", blogID).First(&blog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func blogExists(tx *gorm.DB, blogID string) (bool, error) {
	var count int64
	err := tx.Model(&models.Blog{}).Where("blog_id = ?", blogID).Count(&count).Error
	return count > 0, err
}

// deleteAggregate must run comments first: no FK cascade removes them for us.
func deleteAggregate(tx *gorm.DB, blogID string) error {
	if err := tx.Where("blog_id = ?", blogID).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return tx.Where("blog_id = ?", blogID).Delete(&models.Blog{}).Error
}
