package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}

	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", pgErr), "uq_users_email"))
	assert.True(t, IsUniqueViolation(pgErr, ""))
	assert.False(t, IsUniqueViolation(pgErr, "uq_departments_name"))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, IsUniqueViolation(nil, ""))

	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: users.email"), ""))
	assert.True(t, IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "uq_users_email"`), "uq_users_email"))
	assert.False(t, IsUniqueViolation(errors.New("connection refused"), ""))
}
