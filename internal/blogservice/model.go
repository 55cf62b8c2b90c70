package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jkarvanen/bloglist/internal/common"
)

func newBlogModel(db *sql.DB) *blogModel {
	return &blogModel{db: db}
}

func (m *blogModel) insert(ctx context.Context, b *Blog) error {
	query := `
		INSERT INTO blogs (title, author, url, likes, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version`

	args := []any{b.Title, b.Author, b.URL, b.Likes, b.UserID}

	return m.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.Version)
}

// getByID fetches a blog directly by id, joining the owner's public fields.
func (m *blogModel) getByID(ctx context.Context, id int64) (*Blog, error) {
	query := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.user_id, b.created_at, b.version, u.username, u.name
		FROM blogs b
		LEFT JOIN users u ON b.user_id = u.id
		WHERE b.id = $1`

	var (
		b         Blog
		username  sql.NullString
		ownerName sql.NullString
	)

	err := m.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.UserID, &b.CreatedAt, &b.Version, &username, &ownerName)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	if username.Valid {
		b.Owner = &Owner{Username: username.String, Name: ownerName.String}
	}

	return &b, nil
}

func (m *blogModel) getAll(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.user_id, b.created_at, b.version, u.username, u.name
		FROM blogs b
		LEFT JOIN users u ON b.user_id = u.id
		ORDER BY b.id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		var (
			b         Blog
			username  sql.NullString
			ownerName sql.NullString
		)

		err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.UserID, &b.CreatedAt, &b.Version, &username, &ownerName)
		if err != nil {
			return nil, err
		}

		if username.Valid {
			b.Owner = &Owner{Username: username.String, Name: ownerName.String}
		}

		blogs = append(blogs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *blogModel) update(ctx context.Context, b *Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, author = $2, url = $3, likes = $4, version = version + 1
		WHERE id = $5
		RETURNING version`

	err := m.db.QueryRowContext(ctx, query, b.Title, b.Author, b.URL, b.Likes, b.ID).Scan(&b.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

// delete removes a blog by id. Zero affected rows means the id was absent,
// which callers treat as a first-class outcome rather than a failure.
func (m *blogModel) delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM blogs
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return common.ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}
