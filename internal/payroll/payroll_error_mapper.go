package payroll

import (
	"errors"

	payrollerrors "sharda-hr/internal/payroll/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRunError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrRunNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == "uq_payroll_run_month" {
		return payrollerrors.ErrRunExists
	}
	return err
}

func mapPayslipError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayslipNotFound
	}
	return err
}
