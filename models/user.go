package models

import "time"

// Role is the closed set of authorization roles an account can hold.
// Client-supplied role values are never trusted: registration always
// assigns RoleUser, and administrative rights are granted out of band.
type Role string

const (
	// RoleUser is the default role assigned to every registered account.
	RoleUser Role = "user"

	// RoleAdmin marks accounts allowed to call administrative endpoints
	// (user listing, contact-query listing).
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered account.
//
// Password holds the bcrypt hash of the user's password, never plaintext.
// Answer is the security-question answer used by the password-reset flow;
// it is stored in plaintext, which is an inherited weakness of the system
// (see DESIGN.md). Both fields are excluded from JSON serialization and
// must never cross the HTTP boundary.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on insert.
	UserID int64 `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	// Uniqueness is enforced by a database constraint.
	Email string `json:"email"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"-"`

	// Phone is the user's contact phone number.
	Phone string `json:"phone"`

	// Address is the user's postal address.
	Address string `json:"address"`

	// Answer is the plaintext security-question answer.
	Answer string `json:"-"`

	// Role is the authorization role of the account.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile or password change.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial profile update. Nil pointer fields are
// left untouched; the store builds an UPDATE that sets only the columns
// that are present, so an omitted field never clears a stored value.
type UserUpdate struct {
	UserID   int64
	Name     *string
	Email    *string
	Password *string
	Phone    *string
	Address  *string
}
