package sqlerr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/lightbnb/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// uniqueKeyPattern matches the default PostgreSQL constraint naming:
// users_email_key -> "email".
var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the mapped Code for a given error.
//
// If err can be unwrapped into *Error, return its Code; a raw
// *pgconn.PgError is mapped on the fly. Anything else is Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates consistent application error codes from DB errors.
//
// Output format:
//
//	<DOMAIN>_<ACTION>
//
// Examples:
//
//	users + UniqueViolation                   => USER_ALREADY_EXISTS
//	properties.owner_id + ForeignKeyViolation => OWNER_NOT_FOUND
//
// A foreign key violation is named after the referenced entity when the
// column is known.
func generateErrorCode(tableName, columnName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(singularize(tableName))
	if errType == ForeignKeyViolation && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		domain = strings.ToUpper(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces a caller-facing message from table/column info.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is replaced later when the column can be inferred.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName tries to infer an entity name from table/column data.
//
// Priority rules:
//  1. a column ending with "_id" names the referenced entity ("owner_id" -> "Owner")
//  2. the table name, singularized
//  3. "record"
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		return humanizeText(singularize(tableName))
	}

	return "record"
}

// singularize covers the plural forms used by the schema: "properties" -> "property", "users" -> "user".
func singularize(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(lower, "s") && len(name) > 1:
		return name[:len(name)-1]
	}
	return name
}

// humanizeText converts snake_case into Title Case: "post_code" -> "Post Code".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForForeignKey infers the referencing column from the default
// foreign key name "<table>_<column>_fkey": properties_owner_id_fkey -> "owner_id".
// PostgreSQL reports the table and constraint of a foreign key violation but not the column.
func extractColumnForForeignKey(tableName, constraintName string) string {
	prefix := tableName + "_"
	if tableName == "" || !strings.HasPrefix(constraintName, prefix) || !strings.HasSuffix(constraintName, "_fkey") {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(constraintName, prefix), "_fkey")
}

// extractColumnForUniqueViolation infers the column name from a unique constraint name.
//
// It supports two conventions:
//
//  1. "unique_<table>_<column>"        unique_users_email -> "email"
//  2. "<table>_<column>_(key|ukey)"    users_email_key    -> "email"
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyPattern.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an application-level error.
//
// Output:
//   - nil: nil
//   - already *errs.Error: returned unchanged
//   - *pgconn.PgError: mapped by constraint type (Conflict / Invalid / Internal)
//   - ErrNoRows: errs.NewNotFoundError
//   - context deadline / cancellation: Internal with TIMEOUT / CANCELED codes
//   - anything else: errs.NewInternalError
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)
		if sqlErr.Code == ForeignKeyViolation && sqlErr.ColumnName == "" {
			sqlErr.ColumnName = extractColumnForForeignKey(sqlErr.TableName, sqlErr.ConstraintName)
		}

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.ColumnName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewInvalidError(userMessage, false, &errorCode, nil)

		case UniqueViolation:
			columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName)
			if columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewConflictError(userMessage, true, &errorCode)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewInvalidError(userMessage, true, &errorCode, fieldErrors)

		case CheckViolation:
			return errs.NewInvalidError(userMessage, true, &errorCode, nil)

		default:
			return errs.NewInternalError()
		}
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		return errs.NewNotFoundError("Resource not found", false, nil)

	case errors.Is(err, context.DeadlineExceeded):
		internal := errs.NewInternalError()
		internal.Code = "TIMEOUT"
		internal.Message = "The operation timed out"
		return internal

	case errors.Is(err, context.Canceled):
		internal := errs.NewInternalError()
		internal.Code = "CANCELED"
		internal.Message = "The operation was canceled"
		return internal
	}

	return errs.NewInternalError()
}
