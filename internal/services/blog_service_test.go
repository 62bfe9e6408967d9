package services

import (
	"context"
	"testing"
	"time"

	"bloghub/internal/models"
	"bloghub/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// tickingClock returns a clock that advances one second per call.
func tickingClock() func() time.Time {
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func setupBlogTest(t *testing.T) (*BlogService, *CommentService, *gorm.DB, models.Principal, models.Principal) {
	t.Helper()

	gdb := testutil.SetupTestDB(t)
	clock := tickingClock()

	blogs := NewBlogService(gdb)
	blogs.now = clock
	comments := NewCommentService(gdb)
	comments.now = clock

	owner := testutil.CreateUser(t, gdb, 1001, "testuser")
	other := testutil.CreateUser(t, gdb, 1002, "otheruser")
	return blogs, comments, gdb, owner, other
}

func TestCreateBlog(t *testing.T) {
	blogs, _, gdb, owner, _ := setupBlogTest(t)
	ctx := context.Background()

	first, err := blogs.CreateBlog(ctx, owner, "testTitle", "testText", "testComment")
	require.NoError(t, err)
	second, err := blogs.CreateBlog(ctx, owner, "testTitle", "testText", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.BlogID, second.BlogID)
	_, err = uuid.Parse(first.BlogID)
	assert.NoError(t, err)

	fetched, err := blogs.GetBlog(ctx, first.BlogID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "testTitle", fetched.BlogTitle)
	assert.Equal(t, "testText", fetched.BlogText)
	assert.Equal(t, owner.ID, fetched.CreatedBy)
	assert.Equal(t, "testuser", fetched.User.Username)

	assert.EqualValues(t, 1, testutil.CountRows(t, gdb, &models.Comment{}, "blog_id = ?", first.BlogID))
	assert.EqualValues(t, 0, testutil.CountRows(t, gdb, &models.Comment{}, "blog_id = ?", second.BlogID))
}

func TestGetBlogMissing(t *testing.T) {
	blogs, _, _, _, _ := setupBlogTest(t)

	blog, err := blogs.GetBlog(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Nil(t, blog)
}

func TestUpdateBlog(t *testing.T) {
	blogs, _, _, owner, other := setupBlogTest(t)
	ctx := context.Background()

	blog, err := blogs.CreateBlog(ctx, owner, "before", "before text", "")
	require.NoError(t, err)

	testCases := []struct {
		name        string
		principal   models.Principal
		blogID      string
		expectedErr error
	}{
		{"non-owner", other, blog.BlogID, ErrNotFoundOrForbidden},
		{"missing blog", owner, uuid.NewString(), ErrNotFoundOrForbidden},
		{"owner", owner, blog.BlogID, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := blogs.UpdateBlog(ctx, tc.principal, tc.blogID, "after", "after text")
			assert.Equal(t, tc.expectedErr, err)
			if tc.expectedErr != nil {
				assert.Nil(t, updated)
			}
		})
	}

	fetched, err := blogs.GetBlog(ctx, blog.BlogID)
	require.NoError(t, err)
	assert.Equal(t, "after", fetched.BlogTitle)
	assert.Equal(t, "after text", fetched.BlogText)
	assert.Equal(t, owner.ID, fetched.CreatedBy)
	assert.True(t, fetched.UpdatedAt.After(blog.UpdatedAt))
}

func TestDeleteBlogAggregate(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		t.Run("comments", func(t *testing.T) {
			blogs, comments, gdb, owner, other := setupBlogTest(t)
			ctx := context.Background()

			blog, err := blogs.CreateBlog(ctx, owner, "title", "text", "")
			require.NoError(t, err)
			for i := 0; i < n; i++ {
				author := owner
				if i%2 == 1 {
					author = other
				}
				_, err := comments.CreateComment(ctx, blog.BlogID, author, "comment")
				require.NoError(t, err)
			}
			require.EqualValues(t, n, testutil.CountRows(t, gdb, &models.Comment{}, "blog_id = ?", blog.BlogID))

			require.NoError(t, blogs.DeleteBlogAggregate(ctx, blog.BlogID))

			assert.EqualValues(t, 0, testutil.CountRows(t, gdb, &models.Comment{}, "blog_id = ?", blog.BlogID))
			assert.EqualValues(t, 0, testutil.CountRows(t, gdb, &models.Blog{}, "blog_id = ?", blog.BlogID))
		})
	}
}

func TestDeleteBlogOwnership(t *testing.T) {
	blogs, comments, gdb, owner, other := setupBlogTest(t)
	ctx := context.Background()

	blog, err := blogs.CreateBlog(ctx, owner, "title", "text", "seed")
	require.NoError(t, err)
	_, err = comments.CreateComment(ctx, blog.BlogID, other, "from other")
	require.NoError(t, err)

	assert.Equal(t, ErrNotFoundOrForbidden, blogs.DeleteBlog(ctx, other, blog.BlogID))
	assert.Equal(t, ErrNotFoundOrForbidden, blogs.DeleteBlog(ctx, owner, uuid.NewString()))
	assert.EqualValues(t, 2, testutil.CountRows(t, gdb, &models.Comment{}, "blog_id = ?", blog.BlogID))

	require.NoError(t, blogs.DeleteBlog(ctx, owner, blog.BlogID))
	assert.EqualValues(t, 0, testutil.CountRows(t, gdb, &models.Comment{}, "blog_id = ?", blog.BlogID))
	assert.EqualValues(t, 0, testutil.CountRows(t, gdb, &models.Blog{}, ""))
}

func TestListBlogs(t *testing.T) {
	blogs, _, _, owner, other := setupBlogTest(t)
	ctx := context.Background()

	a, err := blogs.CreateBlog(ctx, owner, "a", "a", "")
	require.NoError(t, err)
	b, err := blogs.CreateBlog(ctx, other, "b", "b", "")
	require.NoError(t, err)
	c, err := blogs.CreateBlog(ctx, owner, "c", "c", "")
	require.NoError(t, err)

	// Touching a moves it to the front.
	_, err = blogs.UpdateBlog(ctx, owner, a.BlogID, "a2", "a2")
	require.NoError(t, err)

	all, err := blogs.ListAllBlogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{a.BlogID, c.BlogID, b.BlogID}, blogIDs(all))
	assert.Equal(t, "testuser", all[0].User.Username)

	mine, err := blogs.ListBlogsByCreator(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.BlogID, c.BlogID}, blogIDs(mine))
}

func blogIDs(blogs []models.Blog) []string {
	ids := make([]string, len(blogs))
	for i, b := range blogs {
		ids[i] = b.BlogID
	}
	return ids
}
