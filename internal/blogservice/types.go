package blogservice

import (
	"database/sql"
	"time"

	"github.com/jkarvanen/bloglist/internal/userservice"
)

// Blog is the stored record. Likes stays nullable at this layer; the public
// view materializes it. Version and CreatedAt are internal bookkeeping.
type Blog struct {
	ID        int64
	Title     string
	Author    string
	URL       string
	Likes     sql.NullInt64
	UserID    sql.NullInt64
	Owner     *Owner
	CreatedAt time.Time
	Version   int
}

// Owner is the reduced owner projection attached to blog reads.
type Owner struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type BlogService struct {
	m     *blogModel
	users *userservice.UserService
}

type blogModel struct {
	db *sql.DB
}

// CreateBlogInput carries the raw creation fields. Pointers distinguish an
// absent or null field from a zero one.
type CreateBlogInput struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int64
}

// UpdateBlogInput is a partial update; nil fields are left untouched.
type UpdateBlogInput struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int64
}
