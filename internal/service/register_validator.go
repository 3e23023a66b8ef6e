package service

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	usernameMinLen = 6
	usernameMaxLen = 12
)

// RegisterValidator validates registration input field by field.
type RegisterValidator struct {
	validate *validator.Validate
}

// NewRegisterValidator creates a new registration validator.
func NewRegisterValidator() *RegisterValidator {
	return &RegisterValidator{validate: validator.New()}
}

// ValidateInput checks registration fields and returns a field→message map,
// or nil when all fields are valid. All fields are checked so the caller can
// report every problem at once.
func (v *RegisterValidator) ValidateInput(username, password, confirmPassword, email string) map[string]string {
	fields := map[string]string{}

	switch n := utf8.RuneCountInString(username); {
	case username == "":
		fields["username"] = "username must not be empty"
	case n < usernameMinLen || n > usernameMaxLen:
		fields["username"] = "username must be 6 to 12 characters"
	}

	if password == "" {
		fields["password"] = "password must not be empty"
	}
	if password != confirmPassword {
		fields["confirmPassword"] = "passwords do not match"
	}

	if err := v.validate.Var(email, "required,email"); err != nil {
		fields["email"] = "email address is not valid"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
