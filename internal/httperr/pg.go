package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// 23P01 = exclusion_violation: a constraint EXCLUDE de agendamentos
// sobrepostos barrou o INSERT antes do nosso próprio teste.
// 42710 = duplicate_object: a constraint já existe (boot repetido).
const (
	pgExclusionViolation = "23P01"
	pgDuplicateObject    = "42710"
)

func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return false
}

func IsDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgDuplicateObject
	}
	return false
}
