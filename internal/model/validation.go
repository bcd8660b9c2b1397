package model

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern requires the local@domain.tld shape: at least one character
// around a single @ and a dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MinPasswordLength is the shortest password accepted at registration and reset.
const MinPasswordLength = 6

var (
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrShortPassword  = errors.New("your password is too short")
	ErrUsernameSpaces = errors.New("username should have no space")
	ErrBlankField     = errors.New("field must not be blank")
)

// Validate is the shared validator instance; gin binding uses its own copy,
// this one backs the model-level setters.
var Validate = NewValidator()

// NewValidator builds a validator with the custom field rules registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	RegisterCustomValidations(v)
	return v
}

// RegisterCustomValidations installs the field rules used in binding tags.
// It is also applied to gin's binding engine at startup.
func RegisterCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("nospace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), " \t")
	})
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
}

// CheckEmailFormat verifies the address has the local@domain.tld shape.
func CheckEmailFormat(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// CheckPasswordFormat rejects passwords shorter than MinPasswordLength.
func CheckPasswordFormat(password string) error {
	if len(password) < MinPasswordLength {
		return ErrShortPassword
	}
	return nil
}

// CheckUsernameFormat rejects usernames with embedded whitespace or nothing in them.
func CheckUsernameFormat(username string) error {
	if username == "" {
		return ErrBlankField
	}
	if strings.ContainsAny(username, " \t") {
		return ErrUsernameSpaces
	}
	return nil
}

// CheckNotBlank rejects empty strings.
func CheckNotBlank(s string) error {
	if s == "" {
		return ErrBlankField
	}
	return nil
}
