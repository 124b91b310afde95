package service

import (
	"context"
	"fmt"

	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/internal/store"
	"github.com/webkart/account-service/models"
)

// queryService is the concrete implementation of QueryService.
// Contact-form submissions are plain CRUD with input validation; there is
// no credential material involved.
type queryService struct {
	queries store.QueryRepository
	logger  *logger.Logger
}

// NewQueryService constructs a QueryService wired to the given repository.
func NewQueryService(queries store.QueryRepository, logger *logger.Logger) QueryService {
	return &queryService{
		queries: queries,
		logger:  logger,
	}
}

// SubmitQuery validates and stores a contact-form submission.
//
// Required fields are checked in fixed order (name, email, phone,
// queryText); the first missing one is reported as a [*ValidationError]
// and nothing is persisted.
func (s *queryService) SubmitQuery(ctx context.Context, req models.SubmitQueryRequest) (models.Query, error) {
	log := logger.FromContext(ctx)

	switch {
	case req.Name == "":
		return models.Query{}, missingField("name")
	case req.Email == "":
		return models.Query{}, missingField("email")
	case req.Phone == "":
		return models.Query{}, missingField("phone")
	case req.QueryText == "":
		return models.Query{}, missingField("queryText")
	}

	query := models.Query{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		QueryText: req.QueryText,
	}

	savedQuery, err := s.queries.CreateQuery(ctx, query)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("query creation ended with error")
		return models.Query{}, fmt.Errorf("query creation ended with error: %w", err)
	}

	return savedQuery, nil
}

// ListQueries returns every stored submission, unfiltered.
func (s *queryService) ListQueries(ctx context.Context) ([]models.Query, error) {
	queries, err := s.queries.ListQueries(ctx)
	if err != nil {
		return nil, fmt.Errorf("query listing ended with error: %w", err)
	}

	return queries, nil
}
