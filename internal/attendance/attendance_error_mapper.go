package attendance

import (
	"errors"

	attendanceerrors "go-payroll/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError turns a lost race on the (employee, date) key into
// ErrAlreadyMarked.
func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_employee_date" {
		return attendanceerrors.ErrAlreadyMarked
	}
	return err
}
