package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/webkart/account-service/models"
)

const (
	userColumns = "user_id, name, email, password, phone, address, answer, role, created_at, updated_at"

	createUser = `INSERT INTO users (name, email, password, phone, address, answer, role)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	// resetPassword matches the account by the (email, answer, role) triple
	// and rewrites the hash in a single statement, so a concurrent reset
	// cannot interleave between lookup and update.
	resetPassword = `UPDATE users
    SET password = $4, updated_at = now()
    WHERE email = $1 AND answer = $2 AND role = $3;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY user_id;`

	createQuery = `INSERT INTO queries (name, email, phone, query_text)
    VALUES ($1, $2, $3, $4)
    RETURNING query_id, name, email, phone, query_text, created_at;`

	listQueries = `SELECT query_id, name, email, phone, query_text, created_at
    FROM queries
    ORDER BY query_id;`
)

// buildUpdateUserQuery builds the partial-update statement for a profile
// change. Only non-nil fields of upd become SET clauses; updated_at is
// always touched so the statement is never empty. The RETURNING clause
// hands back the merged row, making the read-modify-write atomic.
func buildUpdateUserQuery(upd models.UserUpdate) (string, []any, error) {
	builder := sq.Update(models.User{}.TableName()).
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": upd.UserID}).
		Suffix("RETURNING " + userColumns)

	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.Email != nil {
		builder = builder.Set("email", *upd.Email)
	}
	if upd.Password != nil {
		builder = builder.Set("password", *upd.Password)
	}
	if upd.Phone != nil {
		builder = builder.Set("phone", *upd.Phone)
	}
	if upd.Address != nil {
		builder = builder.Set("address", *upd.Address)
	}

	return builder.ToSql()
}
