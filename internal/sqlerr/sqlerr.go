// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// converts them into application errors (e.g., converting
// a "unique violation" into a "Conflict" error)
package sqlerr

import (
	"fmt"

	"github.com/jackc/pgerrcode"
)

// Code is the application-level category of a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExclusionViolation  Code = "exclusion_violation"
	InvalidText         Code = "invalid_text_representation"
	OutOfRange          Code = "numeric_value_out_of_range"
	ValueTooLong        Code = "string_data_right_truncation"
	UndefinedObject     Code = "undefined_object"
	SyntaxError         Code = "syntax_error"
	QueryCanceled       Code = "query_canceled"
	ConnectionFailure   Code = "connection_failure"
)

// Severity mirrors the PostgreSQL severity field.
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

// Error is a normalized PostgreSQL error.
//
// DatabaseCode keeps the raw SQLSTATE; Code is the category we switch on.
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
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE into a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case pgerrcode.NotNullViolation:
		return NotNullViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.CheckViolation:
		return CheckViolation
	case pgerrcode.ExclusionViolation:
		return ExclusionViolation
	case pgerrcode.InvalidTextRepresentation:
		return InvalidText
	case pgerrcode.NumericValueOutOfRange:
		return OutOfRange
	case pgerrcode.StringDataRightTruncationDataException:
		return ValueTooLong
	case pgerrcode.UndefinedTable, pgerrcode.UndefinedColumn:
		return UndefinedObject
	case pgerrcode.SyntaxError:
		return SyntaxError
	case pgerrcode.QueryCanceled:
		return QueryCanceled
	}
	if pgerrcode.IsConnectionException(sqlState) {
		return ConnectionFailure
	}
	return Other
}

// MapSeverity maps the severity string reported by the server.
// Unknown values are treated as ERROR.
func MapSeverity(severity string) Severity {
	switch s := Severity(severity); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	}
	return SeverityError
}
