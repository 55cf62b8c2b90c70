package blogservice

import (
	"context"
	"crypto/rand"
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/jkarvanen/bloglist/internal/common"
	"github.com/jkarvanen/bloglist/internal/userservice"
)

func strptr(s string) *string {
	return &s
}

func int64ptr(i int64) *int64 {
	return &i
}

// setupTestUser inserts a user directly so blog tests do not depend on the
// registration flow.
func setupTestUser(db *sql.DB) (int64, error) {
	randomBytes := make([]byte, 16)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO users (username, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err = db.QueryRow(query, "testuser", "Test User", randomBytes).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func setupTestEnvironment(t *testing.T) (*BlogService, *sql.DB, int64) {
	db := common.TestDB("file://../../migrations", t)

	userID, err := setupTestUser(db)
	assert.NoError(t, err)

	users := userservice.NewUserService(db, "test-secret")

	return NewBlogService(db, users), db, userID
}

// createSeedBlog inserts a blog row directly; a nil likes stores NULL.
func createSeedBlog(db *sql.DB, title string, likes *int64, userID *int64) (int64, error) {
	query := `
		INSERT INTO blogs (title, author, url, likes, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := db.QueryRow(query, title, "Test Author", "https://example.com/"+title, likes, userID).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func TestCreateBlog(t *testing.T) {
	s, db, userID := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		input       CreateBlogInput
		ownerID     int64
		wantLikes   int64
		expectedErr error
	}{
		{
			name: "valid blog with likes",
			input: CreateBlogInput{
				Title: strptr("Road to internship"),
				URL:   strptr("www.blogspot.com/roadtointernship"),
				Likes: int64ptr(7),
			},
			ownerID:   userID,
			wantLikes: 7,
		},
		{
			name: "likes absent defaults to zero",
			input: CreateBlogInput{
				Title:  strptr("Road to internship"),
				Author: strptr("Teppo Kolehmainen"),
				URL:    strptr("www.blogspot.com/roadtointernship"),
			},
			ownerID:   userID,
			wantLikes: 0,
		},
		{
			name: "missing title",
			input: CreateBlogInput{
				URL:   strptr("www.blogspot.com/roadtointernship"),
				Likes: int64ptr(4),
			},
			ownerID:     userID,
			expectedErr: ErrMissingField,
		},
		{
			name: "missing url",
			input: CreateBlogInput{
				Title: strptr("Road to internship"),
				Likes: int64ptr(4),
			},
			ownerID:     userID,
			expectedErr: ErrMissingField,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			blog, err := s.CreateBlog(ctx, &tc.input, tc.ownerID)
			assert.Equal(t, tc.expectedErr, err)

			if err == nil {
				assert.NotZero(t, blog.ID)
				assert.Equal(t, tc.wantLikes, blog.Likes)
				assert.NotNil(t, blog.User)
				assert.Equal(t, "testuser", blog.User.Username)

				// the second write appended the blog to the owner
				var blogIDs []int64
				dbErr := db.QueryRow("SELECT blog_ids FROM users WHERE id = $1", tc.ownerID).Scan(pq.Array(&blogIDs))
				assert.NoError(t, dbErr)
				assert.Contains(t, blogIDs, blog.ID)
			} else {
				var count int
				dbErr := db.QueryRow("SELECT COUNT(*) FROM blogs").Scan(&count)
				assert.NoError(t, dbErr)
				assert.Equal(t, 0, count)
			}

			t.Cleanup(func() {
				_, err := db.Exec("DELETE FROM blogs")
				assert.NoError(t, err)
				_, err = db.Exec("UPDATE users SET blog_ids = '{}'")
				assert.NoError(t, err)
			})
		})
	}
}

func TestCreateBlogUnknownOwner(t *testing.T) {
	s, _, _ := setupTestEnvironment(t)

	input := CreateBlogInput{
		Title: strptr("Road to internship"),
		URL:   strptr("www.blogspot.com/roadtointernship"),
	}

	_, err := s.CreateBlog(context.Background(), &input, 999)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrRecordNotFound)
	assert.NotErrorIs(t, err, ErrMissingField)
}

func TestGetBlogByID(t *testing.T) {
	s, db, userID := setupTestEnvironment(t)

	blogID, err := createSeedBlog(db, "React patterns", int64ptr(7), &userID)
	assert.NoError(t, err)

	nullLikesID, err := createSeedBlog(db, "First class tests", nil, nil)
	assert.NoError(t, err)

	t.Run("existing blog", func(t *testing.T) {
		blog, err := s.GetBlogByID(context.Background(), blogID)
		assert.NoError(t, err)
		assert.Equal(t, blogID, blog.ID)
		assert.Equal(t, "React patterns", blog.Title)
		assert.Equal(t, int64(7), blog.Likes)
		assert.NotNil(t, blog.User)
		assert.Equal(t, "testuser", blog.User.Username)
	})

	t.Run("stored null likes materialized as zero", func(t *testing.T) {
		blog, err := s.GetBlogByID(context.Background(), nullLikesID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), blog.Likes)
		assert.Nil(t, blog.User)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.GetBlogByID(context.Background(), 999)
		assert.ErrorIs(t, err, common.ErrRecordNotFound)
	})
}

func TestGetBlogs(t *testing.T) {
	s, db, userID := setupTestEnvironment(t)

	blogs, err := s.GetBlogs(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, blogs)

	_, err = createSeedBlog(db, "React patterns", int64ptr(7), &userID)
	assert.NoError(t, err)
	_, err = createSeedBlog(db, "Go To Statement Considered Harmful", int64ptr(5), &userID)
	assert.NoError(t, err)

	blogs, err = s.GetBlogs(context.Background())
	assert.NoError(t, err)
	assert.Len(t, blogs, 2)
	for _, blog := range blogs {
		assert.NotNil(t, blog.User)
		assert.Equal(t, "testuser", blog.User.Username)
		assert.Equal(t, "Test User", blog.User.Name)
	}
}

func TestUpdateBlog(t *testing.T) {
	s, db, userID := setupTestEnvironment(t)

	blogID, err := createSeedBlog(db, "React patterns", int64ptr(5), &userID)
	assert.NoError(t, err)

	t.Run("likes incremented", func(t *testing.T) {
		blog, err := s.UpdateBlog(context.Background(), blogID, &UpdateBlogInput{Likes: int64ptr(6)})
		assert.NoError(t, err)
		assert.Equal(t, int64(6), blog.Likes)
		// untouched fields survive a partial update
		assert.Equal(t, "React patterns", blog.Title)
	})

	t.Run("title replaced", func(t *testing.T) {
		blog, err := s.UpdateBlog(context.Background(), blogID, &UpdateBlogInput{Title: strptr("React patterns, revised")})
		assert.NoError(t, err)
		assert.Equal(t, "React patterns, revised", blog.Title)
		assert.Equal(t, int64(6), blog.Likes)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.UpdateBlog(context.Background(), 999, &UpdateBlogInput{Likes: int64ptr(1)})
		assert.ErrorIs(t, err, common.ErrRecordNotFound)
	})
}

func TestDeleteBlog(t *testing.T) {
	s, db, userID := setupTestEnvironment(t)

	blogID, err := createSeedBlog(db, "React patterns", int64ptr(7), &userID)
	assert.NoError(t, err)

	err = s.DeleteBlog(context.Background(), blogID)
	assert.NoError(t, err)

	// deleting the same id again is a miss, not a re-deletion
	err = s.DeleteBlog(context.Background(), blogID)
	assert.ErrorIs(t, err, common.ErrRecordNotFound)
}

func TestStats(t *testing.T) {
	s, db, userID := setupTestEnvironment(t)

	stats, err := s.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, int64(0), stats.TotalLikes)
	assert.Nil(t, stats.Favorite)

	_, err = createSeedBlog(db, "React patterns", int64ptr(7), &userID)
	assert.NoError(t, err)
	favoriteID, err := createSeedBlog(db, "Canonical string reduction", int64ptr(12), &userID)
	assert.NoError(t, err)
	_, err = createSeedBlog(db, "First class tests", nil, nil)
	assert.NoError(t, err)

	stats, err = s.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, int64(19), stats.TotalLikes)
	assert.NotNil(t, stats.Favorite)
	assert.Equal(t, favoriteID, stats.Favorite.ID)
}
