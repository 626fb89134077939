package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/lu2aa/attendance-system/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates driver-level failures into the domain's
// AppError values. Unique violations are told apart by constraint name so
// the user learns whether the email or the number collided.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "employee_number") {
			return employeeerrors.ErrEmployeeNumberAlreadyExists
		}
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "employee_number") {
			return employeeerrors.ErrEmployeeNumberAlreadyExists
		}
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
