package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/webkart/account-service/internal/config"
	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/internal/mock"
	"github.com/webkart/account-service/internal/store"
	"github.com/webkart/account-service/internal/utils"
	"github.com/webkart/account-service/models"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "account-service-test",
		TokenDuration: time.Hour,
	}
}

func newTestAccountService(t *testing.T) (AccountService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewAccountService(users, testAppConfig(), logger.Nop())
	return svc, users
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:     "John",
		Email:    "john@example.com",
		Password: "secret1",
		Phone:    "123",
		Address:  "Elm Street 7",
		Answer:   "blue",
	}
}

func TestRegister_Success(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()
	req := validRegisterRequest()

	var persisted models.User
	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		})

	registered, err := svc.Register(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, req.Email, registered.Email)
	assert.Equal(t, models.RoleUser, registered.Role)

	// The plaintext password never reaches the repository.
	assert.NotEqual(t, req.Password, persisted.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.Password), []byte(req.Password)))
}

func TestRegister_ForcesUserRole(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()

	req := validRegisterRequest()
	req.Role = "admin"

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, models.RoleUser, user.Role)
			return user, nil
		})

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)
}

func TestRegister_ValidationOrder(t *testing.T) {
	svc, _ := newTestAccountService(t)
	ctx := context.Background()

	tests := []struct {
		wantField string
		mutate    func(*models.RegisterRequest)
	}{
		{"name", func(r *models.RegisterRequest) { r.Name = "" }},
		{"email", func(r *models.RegisterRequest) { r.Email = "" }},
		{"password", func(r *models.RegisterRequest) { r.Password = "" }},
		{"phone", func(r *models.RegisterRequest) { r.Phone = "" }},
		{"address", func(r *models.RegisterRequest) { r.Address = "" }},
		{"answer", func(r *models.RegisterRequest) { r.Answer = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.wantField, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			_, err := svc.Register(ctx, req)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestRegister_ReportsEarliestMissingField(t *testing.T) {
	svc, _ := newTestAccountService(t)

	// name is checked before answer, so name wins when both are empty
	req := validRegisterRequest()
	req.Name = ""
	req.Answer = ""

	_, err := svc.Register(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, validRegisterRequest())
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()

	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)

	stored := models.User{
		UserID:   7,
		Email:    "john@example.com",
		Password: hash,
		Role:     models.RoleUser,
	}

	users.EXPECT().
		FindUserByEmail(gomock.Any(), "john@example.com").
		Return(stored, nil)

	loggedIn, token, err := svc.Login(ctx, models.LoginRequest{
		Email:    "john@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, stored.UserID, loggedIn.UserID)
	assert.NotEmpty(t, token.SignedString)

	// The issued token must parse back to the same identity.
	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, stored.UserID, parsed.UserID)
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc, _ := newTestAccountService(t)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, models.LoginRequest{Password: "secret1"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)

	_, _, err = svc.Login(ctx, models.LoginRequest{Email: "john@example.com"})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "password", vErr.Field)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()

	users.EXPECT().
		FindUserByEmail(gomock.Any(), "missing@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, _, err := svc.Login(ctx, models.LoginRequest{
		Email:    "missing@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()

	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)

	users.EXPECT().
		FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{UserID: 7, Email: "john@example.com", Password: hash}, nil)

	_, _, err = svc.Login(ctx, models.LoginRequest{
		Email:    "john@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestForgotPassword_Success(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()

	users.EXPECT().
		ResetPassword(gomock.Any(), "john@example.com", "blue", models.RoleUser, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ models.Role, passwordHash string) error {
			// The new password reaches storage only as a verifiable hash.
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("new-secret")))
			return nil
		})

	err := svc.ForgotPassword(ctx, models.ForgotPasswordRequest{
		Email:       "john@example.com",
		Answer:      "blue",
		NewPassword: "new-secret",
	})
	assert.NoError(t, err)
}

func TestForgotPassword_MissingFields(t *testing.T) {
	svc, _ := newTestAccountService(t)
	ctx := context.Background()

	tests := []struct {
		wantField string
		req       models.ForgotPasswordRequest
	}{
		{"email", models.ForgotPasswordRequest{Answer: "blue", NewPassword: "new-secret"}},
		{"answer", models.ForgotPasswordRequest{Email: "a@b.c", NewPassword: "new-secret"}},
		{"newPassword", models.ForgotPasswordRequest{Email: "a@b.c", Answer: "blue"}},
	}

	for _, tt := range tests {
		t.Run(tt.wantField, func(t *testing.T) {
			err := svc.ForgotPassword(ctx, tt.req)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestForgotPassword_NoMatch(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()

	users.EXPECT().
		ResetPassword(gomock.Any(), "john@example.com", "wrong-answer", models.RoleUser, gomock.Any()).
		Return(store.ErrNoUserWasFound)

	err := svc.ForgotPassword(ctx, models.ForgotPasswordRequest{
		Email:       "john@example.com",
		Answer:      "wrong-answer",
		NewPassword: "new-secret",
	})
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestForgotPassword_UnknownRole(t *testing.T) {
	svc, _ := newTestAccountService(t)

	err := svc.ForgotPassword(context.Background(), models.ForgotPasswordRequest{
		Email:       "john@example.com",
		Answer:      "blue",
		NewPassword: "new-secret",
		Role:        "superuser",
	})
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()
	phone := "999"

	users.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upd models.UserUpdate) (models.User, error) {
			assert.Equal(t, int64(3), upd.UserID)
			require.NotNil(t, upd.Phone)
			assert.Equal(t, phone, *upd.Phone)
			assert.Nil(t, upd.Name)
			assert.Nil(t, upd.Email)
			assert.Nil(t, upd.Password)
			assert.Nil(t, upd.Address)
			return models.User{UserID: 3, Phone: phone}, nil
		})

	updated, err := svc.UpdateProfile(ctx, 3, models.UpdateProfileRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
}

func TestUpdateProfile_EmptyStringKeepsStoredValue(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()
	empty := ""

	users.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upd models.UserUpdate) (models.User, error) {
			// explicit "" is treated like an absent field, never a clear
			assert.Nil(t, upd.Name)
			assert.Nil(t, upd.Email)
			assert.Nil(t, upd.Password)
			assert.Nil(t, upd.Phone)
			assert.Nil(t, upd.Address)
			return models.User{UserID: 3, Name: "Bob"}, nil
		})

	updated, err := svc.UpdateProfile(ctx, 3, models.UpdateProfileRequest{
		Name:     &empty,
		Email:    &empty,
		Password: &empty,
		Phone:    &empty,
		Address:  &empty,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob", updated.Name)
}

func TestUpdateProfile_WeakPassword(t *testing.T) {
	svc, _ := newTestAccountService(t)
	short := "12345"

	_, err := svc.UpdateProfile(context.Background(), 3, models.UpdateProfileRequest{Password: &short})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestUpdateProfile_HashesNewPassword(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()
	password := "new-secret"

	users.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upd models.UserUpdate) (models.User, error) {
			require.NotNil(t, upd.Password)
			assert.NotEqual(t, password, *upd.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*upd.Password), []byte(password)))
			return models.User{UserID: 3}, nil
		})

	_, err := svc.UpdateProfile(ctx, 3, models.UpdateProfileRequest{Password: &password})
	require.NoError(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	svc, _ := newTestAccountService(t)
	ctx := context.Background()

	cfg := testAppConfig()
	expired, err := utils.GenerateJWTToken(cfg.TokenIssuer, 1, -time.Minute, cfg.TokenSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, expired.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAccountService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"garbage", func(t *testing.T) string { return "not.a.token" }},
		{"wrong key", func(t *testing.T) string {
			cfg := testAppConfig()
			tok, err := utils.GenerateJWTToken(cfg.TokenIssuer, 1, time.Hour, "another-key")
			require.NoError(t, err)
			return tok.SignedString
		}},
		{"wrong issuer", func(t *testing.T) string {
			cfg := testAppConfig()
			tok, err := utils.GenerateJWTToken("someone-else", 1, time.Hour, cfg.TokenSignKey)
			require.NoError(t, err)
			return tok.SignedString
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.token(t))
			assert.ErrorIs(t, err, ErrTokenIsInvalid)
		})
	}
}

func TestGetUser(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()

	users.EXPECT().
		FindUserByID(gomock.Any(), int64(7)).
		Return(models.User{UserID: 7, Role: models.RoleAdmin}, nil)

	user, err := svc.GetUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestListUsers_Error(t *testing.T) {
	svc, users := newTestAccountService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	users.EXPECT().ListUsers(gomock.Any()).Return(nil, dbErr)

	_, err := svc.ListUsers(ctx)
	assert.ErrorIs(t, err, dbErr)
}
