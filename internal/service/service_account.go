package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/webkart/account-service/internal/config"
	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/internal/store"
	"github.com/webkart/account-service/internal/utils"
	"github.com/webkart/account-service/models"
)

// minPasswordLength is the inherited minimum password length enforced on
// profile updates.
const minPasswordLength = 6

// accountService is the concrete implementation of AccountService.
// It handles registration, credential verification, password recovery, and
// JWT token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type accountService struct {
	// users is the data-access layer used to create and look up accounts.
	users store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAccountService constructs a new AccountService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccountService(users store.UserRepository, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		users:         users,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates a new account.
//
// Required fields are checked in fixed order (name, email, password, phone,
// address, answer); the first missing one is reported as a
// [*ValidationError] and nothing is persisted. The password is stored as a
// bcrypt hash, and the role is always [models.RoleUser] regardless of what
// the client sent.
//
// Returns the persisted account (with server-assigned UserID) or:
//   - [*ValidationError] if a required field is empty.
//   - [store.ErrEmailAlreadyExists] (wrapped) if the email is taken.
//   - A wrapped hashing or storage error otherwise.
func (s *accountService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRegisterRequest(req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: passwordHash,
		Phone:    req.Phone,
		Address:  req.Address,
		Answer:   req.Answer,
		Role:     models.RoleUser,
	}

	registeredUser, err := s.users.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// It validates that both email and password are non-empty, looks up the
// account by email, and verifies the password against the stored bcrypt
// hash. On success it issues a bearer token bound to the user's identity.
//
// Returns the authenticated account and token, or:
//   - [*ValidationError] if email or password is empty.
//   - [store.ErrNoUserWasFound] (wrapped) if the email is not registered.
//   - [ErrWrongPassword] if the password does not verify.
//   - A wrapped hashing or token error otherwise.
func (s *accountService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" {
		return models.User{}, models.Token{}, missingField("email")
	}
	if req.Password == "" {
		return models.User{}, models.Token{}, missingField("password")
	}

	foundUser, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	match, err := utils.VerifyPassword(req.Password, foundUser.Password)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password verification failed")
		return models.User{}, models.Token{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		log.Error().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	token, err := s.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("creation of token failed")
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// ForgotPassword resets an account password via the security-question flow.
//
// The account is matched by the exact (email, answer, role) triple; role
// defaults to [models.RoleUser] when absent. The match and the password
// rewrite happen in a single atomic statement at the storage layer.
//
// The plaintext security-answer comparison is an inherited weakness of the
// source system, retained deliberately (see DESIGN.md).
//
// Returns nil on success, or:
//   - [*ValidationError] if email, answer, or newPassword is empty.
//   - [ErrVerificationFailed] if no account matched.
//   - A wrapped hashing or storage error otherwise.
func (s *accountService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.Email == "" {
		return missingField("email")
	}
	if req.Answer == "" {
		return missingField("answer")
	}
	if req.NewPassword == "" {
		return missingField("newPassword")
	}

	role := models.RoleUser
	if req.Role != "" {
		role = models.Role(req.Role)
		if !role.Valid() {
			// An unknown role can never match an account.
			return ErrVerificationFailed
		}
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.users.ResetPassword(ctx, req.Email, req.Answer, role, passwordHash); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", req.Email).Msg("password reset verification failed")
			return ErrVerificationFailed
		}
		log.Err(err).Str("email", req.Email).Msg("password reset ended with error")
		return fmt.Errorf("password reset ended with error: %w", err)
	}

	return nil
}

// UpdateProfile applies a partial profile update for the authenticated user.
//
// Nil and empty-string fields of req keep their stored values: a profile
// field can be replaced but never cleared through this operation. A provided
// password must be at least [minPasswordLength] characters and is stored as
// a bcrypt hash. The merge happens atomically at the storage layer and the
// merged record is returned.
//
// Returns the updated account, or:
//   - [ErrWeakPassword] if the new password is too short.
//   - [store.ErrEmailAlreadyExists] (wrapped) if the new email is taken.
//   - [store.ErrNoUserWasFound] (wrapped) if the account no longer exists.
func (s *accountService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	upd := models.UserUpdate{
		UserID:  userID,
		Name:    providedField(req.Name),
		Email:   providedField(req.Email),
		Phone:   providedField(req.Phone),
		Address: providedField(req.Address),
	}

	if password := providedField(req.Password); password != nil {
		if len(*password) < minPasswordLength {
			return models.User{}, ErrWeakPassword
		}

		passwordHash, err := utils.HashPassword(*password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		upd.Password = &passwordHash
	}

	updatedUser, err := s.users.UpdateUser(ctx, upd)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updatedUser, nil
}

// GetUser returns the account with the given id. It is used by the
// authorization middleware to read the current role, since bearer tokens
// carry identity only.
func (s *accountService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// ListUsers returns every account. Credential fields are stripped at the
// HTTP boundary, not here, so internal callers keep access to full records.
func (s *accountService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration (7 days by default).
//
// Returns the token model on success or a wrapped [ErrTokenCreationFailed].
func (s *accountService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.UserID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// expiry, and issuer claim. Expired tokens are reported as
// [ErrTokenIsExpired]; every other validation failure is normalised to
// [ErrTokenIsInvalid] so that callers do not need to inspect low-level JWT
// errors.
func (s *accountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// providedField normalises an optional request field: nil and "" both mean
// "keep the stored value", so an explicit empty string never clears a column.
func providedField(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

// validateRegisterRequest checks required registration fields in fixed
// order and reports the first missing one.
func validateRegisterRequest(req models.RegisterRequest) error {
	switch {
	case req.Name == "":
		return missingField("name")
	case req.Email == "":
		return missingField("email")
	case req.Password == "":
		return missingField("password")
	case req.Phone == "":
		return missingField("phone")
	case req.Address == "":
		return missingField("address")
	case req.Answer == "":
		return missingField("answer")
	}

	return nil
}
