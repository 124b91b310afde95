package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service layer. The HTTP boundary matches
// them with [errors.Is] and converts each to a response envelope with an
// appropriate status code.
var (
	// ErrWrongPassword is returned by Login when the supplied password does
	// not verify against the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrWeakPassword is returned by UpdateProfile when a new password is
	// shorter than the minimum length.
	ErrWeakPassword = errors.New("password must be at least 6 characters")

	// ErrVerificationFailed is returned by ForgotPassword when no account
	// matches the supplied email, security answer, and role.
	ErrVerificationFailed = errors.New("email or answer is not correct")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpired is returned by ParseToken for a token whose "exp"
	// claim is in the past.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid is returned by ParseToken for a token that fails
	// signature, issuer, or structural validation.
	ErrTokenIsInvalid = errors.New("token is invalid")
)

// ValidationError reports the first missing required input field.
// Fields are checked in a fixed order, so the error always names the
// earliest absent field of the request.
type ValidationError struct {
	// Field is the JSON name of the missing field (e.g. "email").
	Field string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// missingField is a shorthand constructor used by request validators.
func missingField(field string) error {
	return &ValidationError{Field: field}
}
