package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jkarvanen/bloglist/internal/common"
)

var ErrAuthenticationFailure = errors.New("invalid username or password")

func NewUserService(db *sql.DB, secret string) *UserService {
	return &UserService{
		m:      newUserModel(db),
		secret: secret,
	}
}

// RegisterUser validates the input, hashes the password and persists the new
// user with an empty blogs collection. The username uniqueness and minimum
// length are also enforced by the store; violations come back as typed errors.
func (s *UserService) RegisterUser(ctx context.Context, input *RegisterUserInput) (*User, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	u := User{Username: *input.Username}
	if input.Name != nil {
		u.Name = *input.Name
	}

	if err := u.Password.set(*input.Password); err != nil {
		return nil, err
	}

	if err := s.m.insert(ctx, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

// GetUsers returns all registered users.
func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getAll(ctx)
}

// GetUserByID resolves a user id, typically one taken from a verified token.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*User, error) {
	return s.m.getByID(ctx, id)
}

// AddBlogToUser appends a blog id to the user's blogs collection. It is the
// second write of blog creation and is not part of the same transaction as
// the blog insert.
func (s *UserService) AddBlogToUser(ctx context.Context, userID, blogID int64) error {
	return s.m.appendBlogID(ctx, userID, blogID)
}

// LoginUser checks the credentials and issues a signed access token. A
// missing user and a wrong password are indistinguishable to the caller.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*User, string, error) {
	user, err := s.m.getByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return nil, "", ErrAuthenticationFailure
		default:
			return nil, "", err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrAuthenticationFailure
	}

	token, err := s.NewAccessToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
