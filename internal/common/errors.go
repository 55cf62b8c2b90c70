package common

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrDuplicateUsername = errors.New("duplicate username")
)

// ValidationError is a caller-facing input error. The message is the exact
// text returned to the client.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// UniqueViolation reports whether err is a unique constraint error raised by
// the named constraint.
func UniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == constraint
	}

	return false
}

// CheckViolation reports whether err is a check constraint error raised by
// the named constraint.
func CheckViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23514" && pqErr.Constraint == constraint
	}

	return false
}
