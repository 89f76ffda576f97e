package errors

// SQLite helpers: extended result code classification for modernc.org/sqlite

import (
	stderrs "errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteCode returns the extended result code at the root of err
func SQLiteCode(err error) (int, bool) {
	var se *sqlite.Error
	if stderrs.As(err, &se) {
		return se.Code(), true
	}
	return 0, false
}

// SQLiteErrorCode classifies a sqlite error. !ok means err is not a sqlite error
func SQLiteErrorCode(err error) (ErrorCode, bool) {
	code, ok := SQLiteCode(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return ErrorCodeConflict, true
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ErrorCodeInvalidArgument, true
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL, sqlite3.SQLITE_CONSTRAINT_CHECK:
		return ErrorCodeValidation, true
	}
	// primary code lives in the low byte
	switch code & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_READONLY:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromSQLite wraps a store error with its mapped code. Non-sqlite errors become ErrorCodeDB
func FromSQLite(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := SQLiteErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// FromSQLitef is FromSQLite with a formatted message
func FromSQLitef(err error, format string, a ...any) error {
	return FromSQLite(err, fmt.Sprintf(format, a...))
}

// FromStore maps a driver error of either relational backend
func FromStore(err error, msg string) error {
	if _, ok := SQLiteCode(err); ok {
		return FromSQLite(err, msg)
	}
	return FromPostgres(err, msg)
}
