package userservice

import (
	"database/sql"
	"time"
)

const (
	// AccessTokenTime is how long an issued access token stays valid.
	AccessTokenTime time.Duration = 7 * 24 * time.Hour
)

type UserService struct {
	m      *userModel
	secret string
}

type userModel struct {
	db *sql.DB
}

// User is a registered account. The password hash and bookkeeping fields are
// never serialized; the blogs field lists the ids of the blogs this user owns.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Password  Password  `json:"-"`
	BlogIDs   []int64   `json:"blogs"`
	CreatedAt time.Time `json:"-"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte
}

// Identity is the verified payload of an access token, built once per request
// and passed explicitly into operations that need an authenticated caller.
type Identity struct {
	UserID   int64
	Username string
}

// RegisterUserInput carries the raw registration fields. Pointers distinguish
// an absent field from an empty one.
type RegisterUserInput struct {
	Username *string
	Name     *string
	Password *string
}
