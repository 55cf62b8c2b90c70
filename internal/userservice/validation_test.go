package userservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkarvanen/bloglist/internal/common"
)

func strptr(s string) *string {
	return &s
}

func TestValidateRegisterInput(t *testing.T) {
	testCases := []struct {
		name        string
		input       RegisterUserInput
		expectedErr error
	}{
		{
			name:        "valid input",
			input:       RegisterUserInput{Username: strptr("testuser"), Password: strptr("sekret")},
			expectedErr: nil,
		},
		{
			name:        "missing password",
			input:       RegisterUserInput{Username: strptr("testuser")},
			expectedErr: common.ValidationError{Field: "password", Message: "password is missing"},
		},
		{
			name:        "short password",
			input:       RegisterUserInput{Username: strptr("testuser"), Password: strptr("pw")},
			expectedErr: common.ValidationError{Field: "password", Message: "expected `password` to have min 3 characters"},
		},
		{
			name:        "missing username",
			input:       RegisterUserInput{Password: strptr("sekret")},
			expectedErr: common.ValidationError{Field: "username", Message: "username is missing"},
		},
		{
			name:        "password checked before username",
			input:       RegisterUserInput{},
			expectedErr: common.ValidationError{Field: "password", Message: "password is missing"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateRegisterInput(&tc.input)
			assert.Equal(t, tc.expectedErr, err)
		})
	}
}
