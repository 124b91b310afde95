package store

import (
	"context"

	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/models"
)

// UserRepository is the data-access contract for account records.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email,
	// or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given id,
	// or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// ResetPassword atomically replaces the password hash of the single
	// account matching email, answer, and role. Returns ErrNoUserWasFound
	// when nothing matched.
	ResetPassword(ctx context.Context, email, answer string, role models.Role, passwordHash string) error

	// UpdateUser applies a partial profile update and returns the merged
	// record. Only non-nil fields of upd are written.
	UpdateUser(ctx context.Context, upd models.UserUpdate) (models.User, error)

	// ListUsers returns every account, ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// QueryRepository is the data-access contract for contact-form submissions.
type QueryRepository interface {
	// CreateQuery persists a new submission and returns it with
	// server-assigned fields populated.
	CreateQuery(ctx context.Context, query models.Query) (models.Query, error)

	// ListQueries returns every stored submission, ordered by id.
	ListQueries(ctx context.Context) ([]models.Query, error)
}

// Repositories bundles all repository implementations behind their
// interfaces for injection into the service layer.
type Repositories struct {
	Users   UserRepository
	Queries QueryRepository
}

// NewRepositories constructs all repositories on top of the shared DB pool.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(db, log),
		Queries: NewQueryRepository(db, log),
	}
}
