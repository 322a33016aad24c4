package models

import (
	"regexp"
	"unicode"
)

// emailPattern is intentionally permissive: the server performs the
// authoritative check, this only catches obviously malformed addresses
// before a request is made.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLength = 8

// ValidateEmail checks a standalone email value, reporting against the
// "email" field.
func ValidateEmail(email string) error {
	return validateEmail("email", email)
}

// validateEmail checks that email is present and well-formed.
func validateEmail(field, email string) error {
	if email == "" {
		return fieldError(field, "is required")
	}
	if !emailPattern.MatchString(email) {
		return fieldError(field, "must be a valid email address")
	}
	return nil
}

// validatePassword enforces the password policy: minimum length with at
// least one letter and one digit.
func validatePassword(field, password string) error {
	if password == "" {
		return fieldError(field, "is required")
	}
	if len(password) < minPasswordLength {
		return fieldError(field, "must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fieldError(field, "must contain at least one letter and one digit")
	}
	return nil
}

// SignUpRequest is the payload for registering a new user.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Locale   string `json:"locale,omitempty"`
}

// Validate checks the payload before it is sent.
func (r SignUpRequest) Validate() error {
	return joinFieldErrors(
		validateEmail("email", r.Email),
		validatePassword("password", r.Password),
	)
}

// SignInRequest is the payload for authenticating a user.
type SignInRequest struct {
	Email               string `json:"email"`
	Password            string `json:"password"`
	ConfirmAccountToken string `json:"confirmAccountToken,omitempty"`
}

// Validate checks the payload before it is sent.
func (r SignInRequest) Validate() error {
	var passwordErr error
	if r.Password == "" {
		passwordErr = fieldError("password", "is required")
	}
	return joinFieldErrors(
		validateEmail("email", r.Email),
		passwordErr,
	)
}

// ResetPasswordRequest is the payload for completing a password reset.
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate checks the payload before it is sent.
func (r ResetPasswordRequest) Validate() error {
	var tokenErr, confirmErr error
	if r.Token == "" {
		tokenErr = fieldError("token", "is required")
	}
	if r.ConfirmPassword != r.Password {
		confirmErr = fieldError("confirmPassword", "must match password")
	}
	return joinFieldErrors(
		tokenErr,
		validatePassword("password", r.Password),
		confirmErr,
	)
}
