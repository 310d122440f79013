// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes from the PostgreSQL driver and converts
// them into application errors (e.g., a "unique violation" becomes a
// field-scoped conflict, a missing row becomes "Not Found").
package sqlerr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is a driver-independent classification of a database error.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	UniqueViolation           Code = "unique_violation"
	CheckViolation            Code = "check_violation"
	ExclusionViolation        Code = "exclusion_violation"
	StringDataRightTruncation Code = "string_data_right_truncation"
	InvalidTextRepresentation Code = "invalid_text_representation"
	SerializationFailure      Code = "serialization_failure"
	DeadlockDetected          Code = "deadlock_detected"
	TooManyConnections        Code = "too_many_connections"
)

// sqlStates maps PostgreSQL SQLSTATE codes to Code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
var sqlStates = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"23P01": ExclusionViolation,
	"22001": StringDataRightTruncation,
	"22P02": InvalidTextRepresentation,
	"40001": SerializationFailure,
	"40P01": DeadlockDetected,
	"53300": TooManyConnections,
}

// MapCode maps a SQLSTATE code to a Code, Other when unknown.
func MapCode(sqlState string) Code {
	if code, ok := sqlStates[sqlState]; ok {
		return code
	}
	return Other
}

// Severity mirrors the PostgreSQL severity levels.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// MapSeverity maps the driver's severity string, defaulting to SeverityError.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityFatal, SeverityPanic, SeverityWarning, SeverityNotice,
		SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}

// Error is a normalized database error carrying the metadata needed to
// build client-facing messages.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", e.Severity, e.Message, e.DatabaseCode)
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// asError extracts a normalized *Error from err, converting a raw
// *pgconn.PgError when needed.
func asError(err error) (*Error, bool) {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr, true
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return ConvertPgError(pgerr), true
	}

	return nil, false
}

// IsUniqueViolation reports whether err (or anything it wraps) is a
// unique constraint violation.
func IsUniqueViolation(err error) bool {
	sqlErr, ok := asError(err)
	return ok && sqlErr.Code == UniqueViolation
}

// UniqueViolationColumn returns the column behind a unique violation,
// inferred from the constraint name. Empty when err is not a unique
// violation or the constraint does not follow a known naming convention.
func UniqueViolationColumn(err error) string {
	sqlErr, ok := asError(err)
	if !ok || sqlErr.Code != UniqueViolation {
		return ""
	}
	if sqlErr.ColumnName != "" {
		return sqlErr.ColumnName
	}
	return extractColumnForUniqueViolation(sqlErr.ConstraintName)
}
