// Package pgerr translates PostgreSQL driver errors into the errs taxonomy.
package pgerr

import (
	"errors"
	"fmt"

	"ruboard/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Translate maps a unique violation to ValueIsInvalidError for paramName and
// returns any other error unchanged.
func Translate(err error, paramName string, value any) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return errs.NewValueIsInvalidErrorWithCause(paramName+" is invalid", fmt.Errorf("%v already exists", value))
	}
	return err
}
