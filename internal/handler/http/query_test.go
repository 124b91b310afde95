package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webkart/account-service/internal/service"
	"github.com/webkart/account-service/models"
)

func TestSubmitQueryHandler_Success(t *testing.T) {
	query := &mockQueryService{
		submitQueryFn: func(_ context.Context, req models.SubmitQueryRequest) (models.Query, error) {
			return models.Query{
				QueryID:   11,
				Name:      req.Name,
				Email:     req.Email,
				Phone:     req.Phone,
				QueryText: req.QueryText,
			}, nil
		},
	}
	router := newTestRouter(t, &mockAccountService{}, query)

	body := `{"name":"John","email":"john@example.com","phone":"123","queryText":"where is my order?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/query", strings.NewReader(body))
	rec := serveRequest(router, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "query registered successfully", resp.Message)
	require.NotNil(t, resp.Query)
	assert.Equal(t, int64(11), resp.Query.QueryID)
	assert.Equal(t, "where is my order?", resp.Query.QueryText)

	// the assigned id is part of the wire contract
	assert.Contains(t, rec.Body.String(), `"queryId":11`)
}

func TestSubmitQueryHandler_ValidationFailure(t *testing.T) {
	query := &mockQueryService{
		submitQueryFn: func(_ context.Context, _ models.SubmitQueryRequest) (models.Query, error) {
			return models.Query{}, &service.ValidationError{Field: "queryText"}
		},
	}
	router := newTestRouter(t, &mockAccountService{}, query)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/query", strings.NewReader(`{"name":"John"}`))
	rec := serveRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "queryText is required")
}

func TestListQueriesHandler_AdminOnly(t *testing.T) {
	account := &mockAccountService{
		parseTokenFn: validParseToken("user-token", 7),
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Role: models.RoleUser}, nil
		},
	}
	router := newTestRouter(t, account, &mockQueryService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/query/all", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := serveRequest(router, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListQueriesHandler_Success(t *testing.T) {
	account := &mockAccountService{
		parseTokenFn: validParseToken("admin-token", 1),
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Role: models.RoleAdmin}, nil
		},
	}
	query := &mockQueryService{
		listQueriesFn: func(_ context.Context) ([]models.Query, error) {
			return []models.Query{
				{QueryID: 1, QueryText: "first question"},
				{QueryID: 2, QueryText: "second question"},
			}, nil
		},
	}
	router := newTestRouter(t, account, query)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/query/all", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := serveRequest(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "all query list", resp.Message)
	assert.Len(t, resp.QueryDetails, 2)
}
