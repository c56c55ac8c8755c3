package sqlerr

import (
	"strings"
)

// Code is the application-level classification of a database error.
//
// It maps the SQLSTATE space onto the handful of categories the rest of
// the application actually branches on.
type Code int

const (
	// Other covers everything we do not classify explicitly.
	Other Code = iota

	// UniqueViolation: a UNIQUE constraint was violated (SQLSTATE 23505),
	// e.g. inserting a user with an email that already exists.
	UniqueViolation

	// ForeignKeyViolation: a referenced row does not exist (SQLSTATE 23503).
	ForeignKeyViolation

	// NotNullViolation: a required column was NULL (SQLSTATE 23502).
	NotNullViolation

	// CheckViolation: a CHECK constraint failed (SQLSTATE 23514).
	CheckViolation

	// ConnectionFailure: the connection to the store was lost or could not
	// be established (SQLSTATE class 08, operator intervention class 57).
	// These are transient; the caller may retry.
	ConnectionFailure
)

func (c Code) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case NotNullViolation:
		return "not_null_violation"
	case CheckViolation:
		return "check_violation"
	case ConnectionFailure:
		return "connection_failure"
	default:
		return "other"
	}
}

// Severity mirrors the severity field Postgres attaches to its errors.
type Severity int

const (
	SeverityError Severity = iota
	SeverityFatal
	SeverityPanic
)

// MapCode maps a raw SQLSTATE string onto our Code enum.
//
// Integrity-constraint codes are matched exactly; connection problems are
// matched by class because Postgres spreads them over many codes.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}

	switch {
	case strings.HasPrefix(sqlstate, "08"): // connection exceptions
		return ConnectionFailure
	case strings.HasPrefix(sqlstate, "57"): // operator intervention (shutdown, crash)
		return ConnectionFailure
	}

	return Other
}

// MapSeverity maps the severity string from the driver onto our enum.
func MapSeverity(severity string) Severity {
	switch strings.ToUpper(severity) {
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityError
	}
}

// Error is our structured view of a database error.
//
// It keeps the metadata needed to build user-facing messages (table,
// column, constraint) while preserving the original driver error for
// Unwrap and debugging.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string // DB's main message
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code.String()
}

// Unwrap exposes the original driver error to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.driverErr
}
