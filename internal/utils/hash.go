package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashingFailed is returned when a bcrypt operation fails for a reason
// other than a simple mismatch (e.g. a malformed stored hash). Such errors
// must never be collapsed into a "wrong password" result.
var ErrHashingFailed = errors.New("password hashing failed")

// HashPassword derives a one-way bcrypt hash of the given plaintext password.
//
// bcrypt embeds a per-call random salt in its output, so hashing the same
// password twice yields different strings; verification recovers the salt
// from the stored hash.
//
// Returns the encoded hash or a wrapped [ErrHashingFailed] if derivation
// fails (e.g. the password exceeds bcrypt's 72-byte limit).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return string(hash), nil
}

// VerifyPassword checks the given plaintext password against a stored bcrypt
// hash. The comparison runs in constant time (library guarantee).
//
// Returns:
//   - (true, nil) when the password matches;
//   - (false, nil) when the password does not match;
//   - (false, wrapped [ErrHashingFailed]) on any other failure, such as a
//     malformed stored hash.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}
}
