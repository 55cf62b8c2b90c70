package userservice

import "github.com/jkarvanen/bloglist/internal/common"

const minPasswordLength = 3

// validateRegisterInput checks the registration fields in order and returns
// the first failure. The messages are part of the API contract.
func validateRegisterInput(input *RegisterUserInput) error {
	if input.Password == nil {
		return common.ValidationError{Field: "password", Message: "password is missing"}
	}

	if len(*input.Password) < minPasswordLength {
		return common.ValidationError{Field: "password", Message: "expected `password` to have min 3 characters"}
	}

	if input.Username == nil {
		return common.ValidationError{Field: "username", Message: "username is missing"}
	}

	return nil
}
