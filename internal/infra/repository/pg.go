package repository

import (
	"errors"

	"gearshare/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
	pgErrCodeForeignKeyAbsent   = "23503"
)

// classifyWriteErr maps constraint violations onto repository error kinds so
// usecases never see driver codes.
func classifyWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case pgErrCodeForeignKeyAbsent:
			return infra.WrapRepoErr(msg, err, infra.KindNotFound)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
