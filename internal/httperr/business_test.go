package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestBusinessError_Is(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrBusiness("time_conflict"))

	assert.True(t, errors.Is(err, ErrBusiness("time_conflict")))
	assert.False(t, errors.Is(err, ErrBusiness("too_soon")))
	assert.True(t, IsBusiness(err, "time_conflict"))

	code, ok := BusinessCode(err)
	assert.True(t, ok)
	assert.Equal(t, "time_conflict", code)

	_, ok = BusinessCode(errors.New("boom"))
	assert.False(t, ok)
}

func TestSQLStateHelpers(t *testing.T) {
	excl := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})
	uniq := &pgconn.PgError{Code: "23505"}

	assert.True(t, IsExclusionConflict(excl))
	assert.False(t, IsUniqueViolation(excl))
	assert.True(t, IsUniqueViolation(uniq))
	assert.False(t, IsExclusionConflict(errors.New("other")))

	fk := fmt.Errorf("delete: %w", &pgconn.PgError{Code: "23503"})
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(uniq))
}
