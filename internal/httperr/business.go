package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// BusinessError é uma falha de regra de negócio identificada por código.
// É comparável, então errors.Is funciona entre valores com o mesmo código.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode devolve o código de negócio de err, se houver.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// IsExclusionConflict detecta violação de exclusion constraint (23P01),
// usada como trava final contra sobreposição de agendamentos.
func IsExclusionConflict(err error) bool {
	return hasSQLState(err, "23P01")
}

// IsUniqueViolation detecta violação de unique (23505).
func IsUniqueViolation(err error) bool {
	return hasSQLState(err, "23505")
}

// IsForeignKeyViolation detecta violação de chave estrangeira (23503).
func IsForeignKeyViolation(err error) bool {
	return hasSQLState(err, "23503")
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
