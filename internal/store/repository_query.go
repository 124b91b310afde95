package store

import (
	"context"
	"fmt"

	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/models"
)

// queryRepository is the PostgreSQL-backed implementation of
// [QueryRepository]. Contact-form submissions are append-only, so the
// repository exposes only insert and list operations.
type queryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQueryRepository constructs a [QueryRepository] backed by the provided
// database connection and logger.
func NewQueryRepository(db *DB, logger *logger.Logger) QueryRepository {
	logger.Debug().Msg("creating query repository")
	return &queryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateQuery persists a new contact-form submission and returns it with
// server-assigned fields (QueryID, CreatedAt).
func (r *queryRepository) CreateQuery(ctx context.Context, query models.Query) (models.Query, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		query.Name, query.Email, query.Phone, query.QueryText)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*queryRepository.CreateQuery").Msg("error: row is nil")
		return models.Query{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanQuery(row, &query); err != nil {
		log.Err(err).Str("func", "*queryRepository.CreateQuery").Msg("error: scanning error")
		return models.Query{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return query, nil
}

// ListQueries returns every stored submission ordered by id.
func (r *queryRepository) ListQueries(ctx context.Context) ([]models.Query, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listQueries)
	if err != nil {
		log.Err(err).Str("func", "*queryRepository.ListQueries").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var queries []models.Query
	for rows.Next() {
		var query models.Query
		if err := scanQuery(rows, &query); err != nil {
			log.Err(err).Str("func", "*queryRepository.ListQueries").Msg("error: scanning rows")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		queries = append(queries, query)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*queryRepository.ListQueries").Msg("error: rows iteration")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return queries, nil
}

// scanQuery reads one full queries row.
func scanQuery(row rowScanner, query *models.Query) error {
	return row.Scan(
		&query.QueryID,
		&query.Name,
		&query.Email,
		&query.Phone,
		&query.QueryText,
		&query.CreatedAt,
	)
}
