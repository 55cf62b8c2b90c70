package main

import (
	"net/http"
	"strings"

	"github.com/jkarvanen/bloglist/internal/userservice"
)

// identityFromRequest builds the caller's verified identity from the
// Authorization header. A missing or malformed header is reported as
// ErrTokenMissing, a failed verification as ErrTokenInvalid. No request
// state is mutated; callers pass the identity on explicitly.
func (app *application) identityFromRequest(r *http.Request) (*userservice.Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, userservice.ErrTokenMissing
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, userservice.ErrTokenMissing
	}

	return app.userService.VerifyAccessToken(parts[1])
}
