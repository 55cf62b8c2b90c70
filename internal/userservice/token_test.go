package userservice

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := NewUserService(nil, "test-secret")
	user := &User{ID: 42, Username: "root"}

	token, err := s.NewAccessToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := s.VerifyAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, "root", identity.Username)
}

func TestVerifyAccessToken(t *testing.T) {
	s := NewUserService(nil, "test-secret")

	validClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"id":       1,
			"username": "root",
			"iat":      time.Now().Unix(),
			"exp":      time.Now().Add(time.Hour).Unix(),
		}
	}

	testCases := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage token",
			token: "not-a-token",
		},
		{
			name: "wrong secret",
			token: func() string {
				return signTestToken(t, "other-secret", validClaims())
			}(),
		},
		{
			name: "expired token",
			token: func() string {
				claims := validClaims()
				claims["exp"] = time.Now().Add(-time.Hour).Unix()
				return signTestToken(t, "test-secret", claims)
			}(),
		},
		{
			name: "payload without user id",
			token: func() string {
				claims := validClaims()
				delete(claims, "id")
				return signTestToken(t, "test-secret", claims)
			}(),
		},
		{
			name: "non-positive user id",
			token: func() string {
				claims := validClaims()
				claims["id"] = 0
				return signTestToken(t, "test-secret", claims)
			}(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			identity, err := s.VerifyAccessToken(tc.token)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}
