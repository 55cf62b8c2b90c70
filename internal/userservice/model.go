package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/jkarvanen/bloglist/internal/common"
)

func newUserModel(db *sql.DB) *userModel {
	return &userModel{db: db}
}

func (m *userModel) insert(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (username, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := m.db.QueryRowContext(ctx, query, u.Username, u.Name, u.Password.hash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "users_username_key"):
			return common.ErrDuplicateUsername
		case common.CheckViolation(err, "users_username_min"):
			return common.ValidationError{Field: "username", Message: "expected `username` to have min 3 characters"}
		default:
			return err
		}
	}

	u.BlogIDs = []int64{}

	return nil
}

func (m *userModel) getAll(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, username, name, blog_ids, created_at
		FROM users
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		err := rows.Scan(&u.ID, &u.Username, &u.Name, pq.Array(&u.BlogIDs), &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (m *userModel) getByID(ctx context.Context, id int64) (*User, error) {
	query := `
		SELECT id, username, name, blog_ids, created_at
		FROM users
		WHERE id = $1`

	var u User
	err := m.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Name, pq.Array(&u.BlogIDs), &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *userModel) getByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, name, password_hash, blog_ids, created_at
		FROM users
		WHERE username = $1`

	var u User
	err := m.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Name, &u.Password.hash, pq.Array(&u.BlogIDs), &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *userModel) appendBlogID(ctx context.Context, userID, blogID int64) error {
	query := `
		UPDATE users
		SET blog_ids = array_append(blog_ids, $1)
		WHERE id = $2`

	res, err := m.db.ExecContext(ctx, query, blogID, userID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return common.ErrRecordNotFound
	}

	return nil
}
