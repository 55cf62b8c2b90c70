package userservice

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMissing = errors.New("token missing")
	ErrTokenInvalid = errors.New("token invalid")
)

// NewAccessToken signs an access token carrying the user's id and username.
func (s *UserService) NewAccessToken(user *User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(AccessTokenTime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// VerifyAccessToken checks the token signature and expiry against the server
// secret and returns the identity it asserts. A token whose payload carries no
// user id is rejected the same way as a forged one.
func (s *UserService) VerifyAccessToken(token string) (*Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	// JSON numbers decode as float64
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return nil, ErrTokenInvalid
	}

	username, _ := claims["username"].(string)

	return &Identity{UserID: int64(id), Username: username}, nil
}
