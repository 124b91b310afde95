package service

import (
	"context"

	"github.com/webkart/account-service/models"
)

// AccountService orchestrates the account workflow: registration, login,
// password recovery, profile updates, and the administrative user listing.
type AccountService interface {
	// Register creates a new account with the default user role.
	// The client-supplied role field is ignored.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies credentials and issues a bearer token bound to the
	// user's identity.
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)

	// ForgotPassword resets the password of the account matching the
	// supplied email, security answer, and role.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error

	// UpdateProfile applies a partial profile update for the authenticated
	// user and returns the merged record.
	UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error)

	// GetUser returns the account with the given id.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns every account.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateToken issues a signed bearer token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw bearer token and returns its decoded form.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// QueryService orchestrates the contact-form workflow.
type QueryService interface {
	// SubmitQuery validates and stores a contact-form submission.
	SubmitQuery(ctx context.Context, req models.SubmitQueryRequest) (models.Query, error)

	// ListQueries returns every stored submission.
	ListQueries(ctx context.Context) ([]models.Query, error)
}
