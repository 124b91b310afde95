package models

import "time"

// Query represents a single contact-form submission.
// Records are append-only: they are never mutated or deleted and carry
// no relation to the User model.
type Query struct {
	// QueryID is the unique identifier of the submission, assigned by the
	// database on insert and returned to the caller.
	QueryID int64 `json:"queryId"`

	// Name is the name the visitor entered in the contact form.
	Name string `json:"name"`

	// Email is the visitor's contact email.
	Email string `json:"email"`

	// Phone is the visitor's contact phone number.
	Phone string `json:"phone"`

	// QueryText is the free-text message body.
	QueryText string `json:"queryText"`

	// CreatedAt is the timestamp when the submission was stored.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Query model.
func (q Query) TableName() string {
	return "queries"
}
