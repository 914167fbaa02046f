package postgres

import (
	"database/sql"
	stderrors "errors"

	"github.com/lib/pq"

	"github.com/medcoop/clinic-api/pkg/errors"
)

// Postgres error classes for constraint violations.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// mapWriteError translates constraint violations into the application
// taxonomy so handlers can answer with the right status.
func mapWriteError(err error, resource string) error {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgForeignKeyViolation:
			return errors.ReferentialIntegrity(resource+" references a nonexistent record", err)
		case pgUniqueViolation:
			return errors.Uniqueness(resource+" already exists", err)
		}
	}
	return err
}

// mapLookupError translates sql.ErrNoRows into a not-found error.
func mapLookupError(err error, resource string) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NotFound(resource, err)
	}
	return err
}
