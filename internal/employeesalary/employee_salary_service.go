package employeesalary

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	employeesalaryerrors "sharda-hr/internal/employeesalary/errors"
	"sharda-hr/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_salary_service.go -destination=mock/employee_salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeSalaryRequest) (EmployeeSalaryResponse, error)
	CreateInTx(ctx context.Context, tx *sql.Tx, companyID string, req CreateEmployeeSalaryRequest) (EmployeeSalaryResponse, error)
	GetAll(ctx context.Context, companyID, employeeID string) ([]EmployeeSalaryResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeSalaryResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeSalaryRequest) (EmployeeSalaryResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	GetEffective(ctx context.Context, companyID, employeeID string, asOf time.Time) (EmployeeSalaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeesalary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeesalary.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeSalaryRequest,
) (EmployeeSalaryResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeSalaryResponse{}, err
	}
	defer tx.Rollback()

	resp, err := s.CreateInTx(ctx, tx, companyID, req)
	if err != nil {
		return EmployeeSalaryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	s.logger.Info("salary revision created",
		zap.String("employee_id", resp.EmployeeID),
		zap.String("effective_date", resp.EffectiveDate),
	)
	return resp, nil
}

func (s *service) CreateInTx(
	ctx context.Context,
	tx *sql.Tx,
	companyID string,
	req CreateEmployeeSalaryRequest,
) (EmployeeSalaryResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEmployeeID
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEmployeeID
	}
	effectiveDate, err := dateutil.ParseDate(strings.TrimSpace(req.EffectiveDate))
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEffectiveDate
	}

	salary := &EmployeeSalary{
		ID:               uuid.New(),
		CompanyID:        cid,
		EmployeeID:       employeeID,
		Basic:            req.Basic,
		HRA:              req.HRA,
		SpecialAllowance: req.SpecialAllowance,
		OtherAllowance:   req.OtherAllowance,
		EffectiveDate:    effectiveDate,
		Note:             req.Note,
	}
	if err := validateAmounts(salary); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.EmployeeInCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return EmployeeSalaryResponse{}, err
	}
	if !ok {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrEmployeeNotFound
	}

	if err := qtx.Create(ctx, salary); err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*salary), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID, employeeID string,
) ([]EmployeeSalaryResponse, error) {
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, employeesalaryerrors.ErrInvalidEmployeeID
		}
	}

	salaries, err := s.repo.FindAllByCompany(ctx, companyID, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(salaries), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (EmployeeSalaryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidSalaryID
	}

	salary, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*salary), nil
}

// Update never edits a revision in place; it appends a new one based on id.
func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateEmployeeSalaryRequest,
) (EmployeeSalaryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidSalaryID
	}
	effectiveDate, err := dateutil.ParseDate(strings.TrimSpace(req.EffectiveDate))
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEffectiveDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeSalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	base, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	next := &EmployeeSalary{
		ID:               uuid.New(),
		CompanyID:        base.CompanyID,
		EmployeeID:       base.EmployeeID,
		Basic:            base.Basic,
		HRA:              base.HRA,
		SpecialAllowance: base.SpecialAllowance,
		OtherAllowance:   base.OtherAllowance,
		EffectiveDate:    effectiveDate,
		Note:             req.Note,
		EmployeeName:     base.EmployeeName,
	}
	if req.Basic > 0 {
		next.Basic = req.Basic
	}
	if req.HRA != nil {
		next.HRA = *req.HRA
	}
	if req.SpecialAllowance != nil {
		next.SpecialAllowance = *req.SpecialAllowance
	}
	if req.OtherAllowance != nil {
		next.OtherAllowance = *req.OtherAllowance
	}
	if err := validateAmounts(next); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	if err := qtx.Create(ctx, next); err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	return mapToResponse(*next), nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, id string,
) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeesalaryerrors.ErrInvalidSalaryID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) GetEffective(
	ctx context.Context,
	companyID, employeeID string,
	asOf time.Time,
) (EmployeeSalaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEmployeeID
	}

	salary, err := s.repo.FindEffective(ctx, companyID, employeeID, dateutil.TruncateDay(asOf))
	if err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, employeesalaryerrors.ErrSalaryNotFound) {
			return EmployeeSalaryResponse{}, employeesalaryerrors.ErrNoEffectiveSalary
		}
		return EmployeeSalaryResponse{}, mapped
	}

	return mapToResponse(*salary), nil
}

func validateAmounts(s *EmployeeSalary) error {
	if s.Basic <= 0 || s.HRA < 0 || s.SpecialAllowance < 0 || s.OtherAllowance < 0 {
		return employeesalaryerrors.ErrInvalidAmount
	}
	return nil
}

func mapToResponse(salary EmployeeSalary) EmployeeSalaryResponse {
	return EmployeeSalaryResponse{
		ID:               salary.ID.String(),
		EmployeeID:       salary.EmployeeID.String(),
		EmployeeName:     salary.EmployeeName,
		Basic:            salary.Basic,
		HRA:              salary.HRA,
		SpecialAllowance: salary.SpecialAllowance,
		OtherAllowance:   salary.OtherAllowance,
		Gross:            salary.Gross(),
		EffectiveDate:    salary.EffectiveDate.Format(dateutil.DateLayout),
		Note:             salary.Note,
	}
}

func mapToListResponse(salaries []EmployeeSalary) []EmployeeSalaryResponse {
	res := make([]EmployeeSalaryResponse, len(salaries))
	for i, salary := range salaries {
		res[i] = mapToResponse(salary)
	}
	return res
}
