package store

import (
	sq "github.com/Masterminds/squirrel"
)

// psql is the shared statement builder configured for PostgreSQL
// placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column list scanned into [models.User].
var userColumns = []string{"user_id", "username", "email", "password_hash", "created_at"}

// buildInsertUser builds the INSERT for a new user account. The RETURNING
// clause hands back the server-assigned user_id and created_at so the
// caller receives the canonical database representation.
func buildInsertUser(username, email, passwordHash string) (string, []any, error) {
	return psql.
		Insert("users").
		Columns("username", "email", "password_hash").
		Values(username, email, passwordHash).
		Suffix("RETURNING user_id, username, email, password_hash, created_at").
		ToSql()
}

// buildSelectUserByUsername builds the lookup used by login.
func buildSelectUserByUsername(username string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}
