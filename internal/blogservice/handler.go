package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jkarvanen/bloglist/internal/common"
	"github.com/jkarvanen/bloglist/internal/userservice"
)

// ErrMissingField is returned when a required creation field is absent or
// null in the raw input.
var ErrMissingField = errors.New("missing required field")

func NewBlogService(db *sql.DB, users *userservice.UserService) *BlogService {
	return &BlogService{m: newBlogModel(db), users: users}
}

// GetBlogs returns every blog, each populated with its owner's public fields
// and transformed to the response shape.
func (s *BlogService) GetBlogs(ctx context.Context) ([]BlogView, error) {
	blogs, err := s.m.getAll(ctx)
	if err != nil {
		return nil, err
	}

	return viewBlogs(blogs), nil
}

// GetBlogByID looks a blog up directly by id. A miss is reported as
// common.ErrRecordNotFound, never as an opaque failure.
func (s *BlogService) GetBlogByID(ctx context.Context, id int64) (*BlogView, error) {
	blog, err := s.m.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return viewBlog(blog), nil
}

// CreateBlog persists a new blog owned by the authenticated caller and then
// appends the blog id to the owner's blogs collection. The two writes are not
// transactional: a failure of the second leaves the created blog in place and
// surfaces the error to the caller.
func (s *BlogService) CreateBlog(ctx context.Context, input *CreateBlogInput, ownerID int64) (*BlogView, error) {
	if input.Title == nil || input.URL == nil {
		return nil, ErrMissingField
	}

	owner, err := s.users.GetUserByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrRecordNotFound) {
			// a verified token pointing at no user is an unexpected
			// condition, not a caller-facing miss
			return nil, fmt.Errorf("blog owner %d not found", ownerID)
		}
		return nil, err
	}

	blog := Blog{
		Title:  *input.Title,
		URL:    *input.URL,
		Likes:  sql.NullInt64{Int64: 0, Valid: true},
		UserID: sql.NullInt64{Int64: owner.ID, Valid: true},
	}
	if input.Author != nil {
		blog.Author = *input.Author
	}
	if input.Likes != nil {
		blog.Likes.Int64 = *input.Likes
	}

	if err := s.m.insert(ctx, &blog); err != nil {
		return nil, err
	}

	if err := s.users.AddBlogToUser(ctx, owner.ID, blog.ID); err != nil {
		return nil, err
	}

	blog.Owner = &Owner{Username: owner.Username, Name: owner.Name}

	return viewBlog(&blog), nil
}

// UpdateBlog applies the supplied fields to an existing blog. Any caller may
// update any blog; ownership is deliberately not checked here.
func (s *BlogService) UpdateBlog(ctx context.Context, id int64, input *UpdateBlogInput) (*BlogView, error) {
	blog, err := s.m.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.Author != nil {
		blog.Author = *input.Author
	}
	if input.URL != nil {
		blog.URL = *input.URL
	}
	if input.Likes != nil {
		blog.Likes = sql.NullInt64{Int64: *input.Likes, Valid: true}
	}

	if err := s.m.update(ctx, blog); err != nil {
		return nil, err
	}

	return viewBlog(blog), nil
}

// DeleteBlog removes a blog by id. Ownership is deliberately not checked.
func (s *BlogService) DeleteBlog(ctx context.Context, id int64) error {
	return s.m.delete(ctx, id)
}
