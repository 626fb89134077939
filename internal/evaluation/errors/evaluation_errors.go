package evaluationerrors

import (
	"net/http"

	"github.com/lu2aa/attendance-system/internal/shared/apperror"
)

var ErrEmployeeNotFound = apperror.New(
	apperror.CodeInvalidInput,
	"employee number does not exist in the roster",
	http.StatusBadRequest,
)
