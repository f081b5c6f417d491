package contractlabour

import (
	"errors"

	contractlabourerrors "sharda-hr/internal/contractlabour/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == constraint
}

func mapContractorError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contractlabourerrors.ErrContractorNotFound
	}
	if isUniqueViolation(err, "uq_contractor_name") {
		return contractlabourerrors.ErrContractorExists
	}
	return err
}

func mapWorkerError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contractlabourerrors.ErrWorkerNotFound
	}
	return err
}

func mapPayrollError(err error) error {
	if isUniqueViolation(err, "uq_contract_payroll_worker_month") {
		return contractlabourerrors.ErrPayrollFinalized
	}
	return err
}
