package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/internal/service"
	"github.com/webkart/account-service/models"
)

// mockAccountService implements service.AccountService with overridable
// function fields. A call to a method whose field is nil panics, which
// surfaces unexpected service usage as a test failure.
type mockAccountService struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	forgotPasswordFn func(ctx context.Context, req models.ForgotPasswordRequest) error
	updateProfileFn  func(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error)
	getUserFn        func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAccountService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAccountService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAccountService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	return m.forgotPasswordFn(ctx, req)
}

func (m *mockAccountService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error) {
	return m.updateProfileFn(ctx, userID, req)
}

func (m *mockAccountService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockAccountService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAccountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockQueryService implements service.QueryService with overridable
// function fields.
type mockQueryService struct {
	submitQueryFn func(ctx context.Context, req models.SubmitQueryRequest) (models.Query, error)
	listQueriesFn func(ctx context.Context) ([]models.Query, error)
}

func (m *mockQueryService) SubmitQuery(ctx context.Context, req models.SubmitQueryRequest) (models.Query, error) {
	return m.submitQueryFn(ctx, req)
}

func (m *mockQueryService) ListQueries(ctx context.Context) ([]models.Query, error) {
	return m.listQueriesFn(ctx)
}

// newTestRouter assembles a full router on top of the given service mocks.
func newTestRouter(t *testing.T, account service.AccountService, query service.QueryService) *chi.Mux {
	t.Helper()

	h := NewHandler(&service.Services{Account: account, Query: query}, logger.Nop())
	return h.Init()
}

// serveRequest runs req through the router and returns the recorder.
func serveRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// validParseToken returns a parseTokenFn accepting exactly tokenString and
// binding it to userID.
func validParseToken(tokenString string, userID int64) func(context.Context, string) (models.Token, error) {
	return func(_ context.Context, got string) (models.Token, error) {
		if got != tokenString {
			return models.Token{}, service.ErrTokenIsInvalid
		}
		return models.Token{UserID: userID}, nil
	}
}

// sampleUser is a fully populated account used across handler tests.
func sampleUser() models.User {
	return models.User{
		UserID:    7,
		Name:      "John",
		Email:     "john@example.com",
		Password:  "$2a$10$hash",
		Phone:     "123",
		Address:   "Elm Street 7",
		Answer:    "blue",
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
