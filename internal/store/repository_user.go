package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, password reset, and profile updates
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists]. The
//     unique index on email makes the duplicate check atomic: of two
//     concurrent registrations with the same email exactly one succeeds.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Name, user.Email, user.Password, user.Phone, user.Address, user.Answer, user.Role)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")
		return models.User{}, mapUserError(err)
	}

	if err := scanUser(row, &user); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, mapUserError(err)
	}

	return user, nil
}

// FindUserByEmail retrieves the account whose email matches the argument.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, mapUserError(err)
	}

	if err := scanUser(row, &foundUser); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, mapUserError(err)
	}

	return foundUser, nil
}

// FindUserByID retrieves the account with the given internal identifier.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, mapUserError(err)
	}

	if err := scanUser(row, &foundUser); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, mapUserError(err)
	}

	return foundUser, nil
}

// ResetPassword replaces the password hash of the account matching the
// (email, answer, role) triple in a single UPDATE. Matching and rewriting in
// one statement closes the lookup-then-update race between concurrent
// resets.
//
// Returns [ErrNoUserWasFound] when no row matched.
func (r *userRepository) ResetPassword(ctx context.Context, email, answer string, role models.Role, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, resetPassword, email, answer, role, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ResetPassword").Msg("error: executing statement")
		return mapUserError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ResetPassword").Msg("error: rows affected")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpdateUser applies a partial profile update built by
// [buildUpdateUserQuery] and returns the merged record from the RETURNING
// clause. Only non-nil fields of upd are written, so omitted fields keep
// their stored values.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Email unique_violation → [ErrEmailAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, upd models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(upd)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updatedUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: row is nil")
		return models.User{}, mapUserError(err)
	}

	if err := scanUser(row, &updatedUser); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: scanning error")
		return models.User{}, mapUserError(err)
	}

	return updatedUser, nil
}

// ListUsers returns every account ordered by id.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning rows")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: rows iteration")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return users, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one full users row in [userColumns] order.
func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Phone,
		&user.Address,
		&user.Answer,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

// mapUserError normalises driver-level errors to the repository's sentinel
// errors; everything unrecognised is wrapped as an unexpected DB error so
// internals never leak to the HTTP boundary untagged.
func mapUserError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNoUserWasFound
	case postgresError(err) == pgerrcode.UniqueViolation:
		return ErrEmailAlreadyExists
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
