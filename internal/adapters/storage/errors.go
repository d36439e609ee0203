package storage

import (
	"database/sql/driver"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgClassConnection      = "08"
)

// isUniqueViolation reports whether err came from a unique constraint,
// whether or not the dialector translated it.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// classify turns transient store failures into domain errors: a lost or
// refused connection is unavailable, a lock conflict the client may retry is
// a conflict. Domain errors and anything else pass through.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || errors.Is(err, driver.ErrBadConn) {
		return domain.NewUnavailableError("database", "connection lost")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgSerializationFailure, pgErr.Code == pgDeadlockDetected:
			return domain.NewConflictError("article", "concurrent write, retry the request")
		case strings.HasPrefix(pgErr.Code, pgClassConnection):
			return domain.NewUnavailableError("database", pgErr.Message)
		}
	}

	// SQLITE_BUSY once the busy timeout has run out.
	if msg := err.Error(); strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY") {
		return domain.NewConflictError("article", "concurrent write, retry the request")
	}

	return err
}

// notFound maps gorm's missing-record error to a domain error for entity.
func notFound(err error, entity string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundError(entity, strconv.FormatInt(id, 10))
	}

	return err
}

func identifierTaken() error {
	return domain.NewValidationError("identifier", "article with this identifier already exists.")
}
