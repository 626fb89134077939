package attendanceerrors

import (
	"net/http"

	"github.com/lu2aa/attendance-system/internal/shared/apperror"
)

var (
	ErrInvalidCheckDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid check_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTime = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected HH:MM or HH:MM:SS",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"employee number does not exist in the roster",
		http.StatusBadRequest,
	)
)
