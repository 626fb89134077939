package importererrors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/lu2aa/attendance-system/internal/shared/apperror"
)

var (
	ErrUnknownDomain = apperror.New(
		apperror.CodeNotFound,
		"unknown import domain",
		http.StatusNotFound,
	)
	ErrEmptyInput = apperror.New(
		apperror.CodeEmptyInput,
		"the uploaded file contains no data rows",
		http.StatusBadRequest,
	)
)

func UnsupportedFormat(ext string) *apperror.AppError {
	return apperror.New(
		apperror.CodeUnsupportedFormat,
		fmt.Sprintf("unsupported file format %q", ext),
		http.StatusBadRequest,
	)
}

func ReadError(err error) *apperror.AppError {
	return apperror.Wrap(err,
		apperror.CodeReadError,
		"the uploaded file could not be read",
		http.StatusBadRequest,
	)
}

// MissingColumns names every absent header, reported once per file.
func MissingColumns(columns []string) *apperror.AppError {
	return apperror.New(
		apperror.CodeMissingColumns,
		fmt.Sprintf("missing columns: %s", strings.Join(columns, ", ")),
		http.StatusBadRequest,
	).WithDetails(map[string]any{"missing_columns": columns})
}

// IncompleteRow reports a row whose mandatory fields are empty. The hint is
// the row's natural key when it survived normalization.
func IncompleteRow(hint string, fields []string) *apperror.AppError {
	if hint == "" {
		hint = "unknown"
	}
	return apperror.New(
		apperror.CodeIncompleteRow,
		fmt.Sprintf("incomplete row %s: missing %s", hint, strings.Join(fields, ", ")),
		http.StatusBadRequest,
	).WithDetails(map[string]any{"row": hint, "missing_fields": fields})
}

func InvalidFormat(field, value, pattern string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidFormat,
		fmt.Sprintf("field %s has invalid value %q, expected %s", field, value, pattern),
		http.StatusBadRequest,
	).WithDetails(map[string]any{"field": field, "value": value, "expected": pattern})
}

func DanglingReference(field, value string) *apperror.AppError {
	return apperror.New(
		apperror.CodeDanglingReference,
		fmt.Sprintf("%s %q does not exist in the roster", field, value),
		http.StatusBadRequest,
	).WithDetails(map[string]any{"field": field, "value": value})
}

func PersistenceError(err error) *apperror.AppError {
	return apperror.Wrap(err,
		apperror.CodePersistenceError,
		"the batch could not be written",
		http.StatusInternalServerError,
	)
}
