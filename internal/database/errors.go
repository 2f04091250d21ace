package database

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var (
	// ErrDuplicate is returned when a write violates a unique constraint
	ErrDuplicate = errors.New("duplicate record")

	// ErrReferenced is returned when a delete or insert violates a foreign key
	ErrReferenced = errors.New("record is referenced by other records")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	mysqlDuplicateEntry   = 1062
	mysqlRowIsReferenced  = 1451
	mysqlNoReferencedRow  = 1452
	mysqlRowIsReferenced2 = 1217
	mysqlNoReferencedRow2 = 1216
)

// translateError maps driver specific constraint errors onto ErrDuplicate and
// ErrReferenced. Anything else is returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fromSQLState(string(pqErr.Code), pqErr.Constraint, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromSQLState(pgErr.Code, pgErr.ConstraintName, err)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return fmt.Errorf("%w: %s", ErrDuplicate, myErr.Message)
		case mysqlRowIsReferenced, mysqlRowIsReferenced2, mysqlNoReferencedRow, mysqlNoReferencedRow2:
			return fmt.Errorf("%w: %s", ErrReferenced, myErr.Message)
		}
	}

	return err
}

func fromSQLState(code, constraint string, err error) error {
	switch code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicate, constraint)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrReferenced, constraint)
	}
	return err
}
