package payroll

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sharda-hr/internal/attendance"
	"sharda-hr/internal/bootstrap"
	"sharda-hr/internal/employee"
	"sharda-hr/internal/employeesalary"
	employeesalaryerrors "sharda-hr/internal/employeesalary/errors"
	"sharda-hr/internal/events"
	"sharda-hr/internal/expense"
	"sharda-hr/internal/messaging/kafka"
	payrollerrors "sharda-hr/internal/payroll/errors"
	"sharda-hr/internal/settings"
	"sharda-hr/internal/shared/contextutil"
	"sharda-hr/internal/shared/dateutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type EmployeeDirectory interface {
	GetByID(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error)
	ListOnRolls(ctx context.Context, companyID string, start, end time.Time) ([]employee.EmployeeResponse, error)
}

type SalaryReader interface {
	GetEffective(ctx context.Context, companyID, employeeID string, asOf time.Time) (employeesalary.EmployeeSalaryResponse, error)
}

type AttendanceSummarizer interface {
	EmployeeSummary(ctx context.Context, companyID, employeeID string, month dateutil.Month) (attendance.MonthlySummary, error)
}

type SettingsReader interface {
	Get(ctx context.Context, companyID string) (settings.SettingsResponse, error)
	ActiveRulesFor(ctx context.Context, companyID, employeeID string) ([]settings.DeductionRule, error)
}

// ReimbursementSource hands approved expense claims to payroll. A processed
// run holds the claims it pays so no other run can pay them, and settles
// them when it is locked.
type ReimbursementSource interface {
	ApprovedForPayroll(ctx context.Context, companyID, employeeID, runID string) ([]expense.ReimbursableClaim, error)
	ReserveForRunInTx(ctx context.Context, tx *sql.Tx, companyID, runID string, claimIDs []string) error
	MarkReimbursedInTx(ctx context.Context, tx *sql.Tx, companyID, runID string, claimIDs []string) error
}

type Dependencies struct {
	Employees  EmployeeDirectory
	Salaries   SalaryReader
	Attendance AttendanceSummarizer
	Settings   SettingsReader
	Expenses   ReimbursementSource
	Outbox     kafka.OutboxRepository
	Audit      bootstrap.AuditLogger
	PayslipDir string
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CreateRun(ctx context.Context, companyID, actorID string, req CreateRunRequest) (RunResponse, error)
	ProcessRun(ctx context.Context, companyID, actorID, runID string) (ProcessResponse, error)
	LockRun(ctx context.Context, companyID, actorID, runID string) (RunResponse, error)
	DeleteRun(ctx context.Context, companyID, runID string) error
	GetRun(ctx context.Context, companyID, runID string) (RunResponse, error)
	ListRuns(ctx context.Context, companyID string, filter ListRunsFilter) ([]RunResponse, error)

	ListPayslips(ctx context.Context, companyID, runID string) ([]PayslipResponse, error)
	ListEmployeePayslips(ctx context.Context, companyID, employeeID string) ([]PayslipResponse, error)
	GetPayslip(ctx context.Context, companyID, id string) (PayslipResponse, error)
	DownloadPayslip(ctx context.Context, companyID, id string) (PayslipFile, error)
	GeneratePayslipPDF(ctx context.Context, companyID, payslipID string) (string, error)
	Preview(ctx context.Context, companyID, employeeID, month string) (PayslipResponse, error)
}

type PayslipFile struct {
	Name    string
	Content []byte
}

type service struct {
	db     *sql.DB
	repo   Repository
	deps   Dependencies
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if deps.PayslipDir == "" {
		deps.PayslipDir = filepath.Join("storage", "payslips")
	}
	return &service{
		db:     db,
		repo:   repo,
		deps:   deps,
		now:    time.Now,
		logger: l,
	}
}

func (s *service) CreateRun(ctx context.Context, companyID, actorID string, req CreateRunRequest) (RunResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	month, err := dateutil.ParseMonth(req.Month)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidMonth
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	run := &Run{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Month:     month.String(),
		Status:    StatusDraft,
		CreatedBy: actorUUID,
	}
	if err := s.repo.CreateRun(ctx, run); err != nil {
		mapped := mapRunError(err)
		log.Warn("create payroll run failed", zap.String("month", run.Month), zap.Error(mapped))
		return RunResponse{}, mapped
	}

	log.Info("payroll run created", zap.String("run_id", run.ID.String()), zap.String("month", run.Month))
	return mapRun(*run), nil
}

func (s *service) ProcessRun(ctx context.Context, companyID, actorID, runID string) (ProcessResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("run_id", runID))

	if _, err := uuid.Parse(runID); err != nil {
		return ProcessResponse{}, payrollerrors.ErrInvalidRunID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ProcessResponse{}, payrollerrors.ErrInvalidActorID
	}

	run, err := s.repo.FindRun(ctx, companyID, runID)
	if err != nil {
		return ProcessResponse{}, mapRunError(err)
	}
	if run.Status == StatusLocked {
		return ProcessResponse{}, payrollerrors.ErrRunLocked
	}
	month, err := dateutil.ParseMonth(run.Month)
	if err != nil {
		return ProcessResponse{}, err
	}

	cfg, err := s.deps.Settings.Get(ctx, companyID)
	if err != nil {
		return ProcessResponse{}, err
	}
	staff, err := s.deps.Employees.ListOnRolls(ctx, companyID, month.Start(), month.End())
	if err != nil {
		return ProcessResponse{}, err
	}

	companyUUID := run.CompanyID
	payslips := make([]Payslip, 0, len(staff))
	skipped := []SkippedEmployee{}
	var claimIDs []string
	for _, emp := range staff {
		calc, err := s.compute(ctx, companyID, emp.ID, runID, month, cfg.CompanySettings)
		if errors.Is(err, payrollerrors.ErrNoEffectiveSalary) {
			skipped = append(skipped, SkippedEmployee{
				EmployeeID:   emp.ID,
				EmployeeCode: emp.EmployeeCode,
				Reason:       err.Error(),
			})
			continue
		}
		if err != nil {
			log.Error("payslip computation failed", zap.String("employee_id", emp.ID), zap.Error(err))
			return ProcessResponse{}, err
		}
		for _, line := range calc.Lines {
			if line.Kind == KindReimbursement && line.Reference != "" {
				claimIDs = append(claimIDs, line.Reference)
			}
		}
		payslips = append(payslips, buildPayslip(companyUUID, run.ID, month, emp, calc))
	}
	if len(payslips) == 0 {
		return ProcessResponse{}, payrollerrors.ErrNoEmployeesOnRolls
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProcessResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	// Re-read under lock: a concurrent LockRun must win or wait.
	run, err = qtx.FindRunForUpdate(ctx, companyID, runID)
	if err != nil {
		return ProcessResponse{}, mapRunError(err)
	}
	if run.Status == StatusLocked {
		return ProcessResponse{}, payrollerrors.ErrRunLocked
	}

	if err := qtx.ReplacePayslips(ctx, companyID, runID, payslips); err != nil {
		log.Error("replace payslips failed", zap.Error(err))
		return ProcessResponse{}, err
	}
	if s.deps.Expenses != nil {
		if err := s.deps.Expenses.ReserveForRunInTx(ctx, tx, companyID, runID, claimIDs); err != nil {
			log.Error("reserve expense claims failed", zap.Error(err))
			return ProcessResponse{}, err
		}
	}

	now := s.now()
	run.Status = StatusProcessed
	run.ProcessedBy = &actorUUID
	run.ProcessedAt = &now
	run.EmployeeCount = len(payslips)
	run.TotalGross, run.TotalDeductions, run.TotalReimbursements, run.TotalNet = 0, 0, 0, 0
	for _, p := range payslips {
		run.TotalGross += p.Gross
		run.TotalDeductions += p.TotalDeductions
		run.TotalReimbursements += p.TotalReimbursements
		run.TotalNet += p.Net
	}
	if err := qtx.UpdateRun(ctx, run); err != nil {
		return ProcessResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ProcessResponse{}, err
	}

	log.Info("payroll run processed",
		zap.Int("payslips", len(payslips)),
		zap.Int("skipped", len(skipped)),
		zap.Int64("total_net", run.TotalNet),
	)
	return ProcessResponse{Run: mapRun(*run), Skipped: skipped}, nil
}

func (s *service) LockRun(ctx context.Context, companyID, actorID, runID string) (RunResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("run_id", runID))

	if _, err := uuid.Parse(runID); err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidRunID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	run, err := qtx.FindRunForUpdate(ctx, companyID, runID)
	if err != nil {
		return RunResponse{}, mapRunError(err)
	}
	switch run.Status {
	case StatusLocked:
		return RunResponse{}, payrollerrors.ErrRunLocked
	case StatusDraft:
		return RunResponse{}, payrollerrors.ErrRunNotProcessed
	}

	claimIDs, err := qtx.ReimbursedClaimIDs(ctx, companyID, runID)
	if err != nil {
		return RunResponse{}, err
	}
	if len(claimIDs) > 0 && s.deps.Expenses != nil {
		if err := s.deps.Expenses.MarkReimbursedInTx(ctx, tx, companyID, runID, claimIDs); err != nil {
			log.Error("settle expense claims failed", zap.Error(err))
			return RunResponse{}, err
		}
	}

	payslips, err := qtx.ListPayslips(ctx, companyID, runID)
	if err != nil {
		return RunResponse{}, err
	}
	payslipIDs := make([]string, len(payslips))
	for i, p := range payslips {
		payslipIDs[i] = p.ID.String()
	}

	now := s.now()
	run.Status = StatusLocked
	run.LockedBy = &actorUUID
	run.LockedAt = &now
	if err := qtx.UpdateRun(ctx, run); err != nil {
		return RunResponse{}, err
	}

	if s.deps.Outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event, err := kafka.NewOutboxEvent(
			events.PayrollRunLockedTopic,
			events.EventPayrollRunLocked,
			"payroll_run",
			runID,
			rid,
			events.PayrollRunLockedEvent{
				EventType:  events.EventPayrollRunLocked,
				RequestID:  rid,
				RunID:      runID,
				CompanyID:  companyID,
				Month:      run.Month,
				PayslipIDs: payslipIDs,
				LockedBy:   actorID,
				OccurredAt: now.UTC(),
			},
		)
		if err != nil {
			return RunResponse{}, err
		}
		if err := s.deps.Outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("payroll lock outbox persist failed", zap.Error(err))
			return RunResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	if s.deps.Audit != nil {
		s.deps.Audit.Log(ctx, bootstrap.AuditLog{
			Action:    "PAYROLL_RUN_LOCKED",
			Message:   fmt.Sprintf("Payroll for %s locked", run.Month),
			CompanyID: companyID,
			ActorID:   actorID,
			Meta: map[string]any{
				"run_id":         runID,
				"payslips":       len(payslipIDs),
				"claims_settled": len(claimIDs),
				"total_net":      run.TotalNet,
			},
		})
	}
	log.Info("payroll run locked", zap.Int("payslips", len(payslipIDs)))
	return mapRun(*run), nil
}

func (s *service) DeleteRun(ctx context.Context, companyID, runID string) error {
	if _, err := uuid.Parse(runID); err != nil {
		return payrollerrors.ErrInvalidRunID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	run, err := qtx.FindRunForUpdate(ctx, companyID, runID)
	if err != nil {
		return mapRunError(err)
	}
	if run.Status != StatusDraft {
		return payrollerrors.ErrOnlyDraftDeletable
	}
	if err := qtx.DeleteRun(ctx, companyID, runID); err != nil {
		return mapRunError(err)
	}
	return tx.Commit()
}

func (s *service) GetRun(ctx context.Context, companyID, runID string) (RunResponse, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidRunID
	}
	run, err := s.repo.FindRun(ctx, companyID, runID)
	if err != nil {
		return RunResponse{}, mapRunError(err)
	}
	return mapRun(*run), nil
}

func (s *service) ListRuns(ctx context.Context, companyID string, filter ListRunsFilter) ([]RunResponse, error) {
	runs, err := s.repo.ListRuns(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	res := make([]RunResponse, len(runs))
	for i, r := range runs {
		res[i] = mapRun(r)
	}
	return res, nil
}

func (s *service) ListPayslips(ctx context.Context, companyID, runID string) ([]PayslipResponse, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return nil, payrollerrors.ErrInvalidRunID
	}
	if _, err := s.repo.FindRun(ctx, companyID, runID); err != nil {
		return nil, mapRunError(err)
	}
	payslips, err := s.repo.ListPayslips(ctx, companyID, runID)
	if err != nil {
		return nil, err
	}
	return mapPayslips(payslips), nil
}

func (s *service) ListEmployeePayslips(ctx context.Context, companyID, employeeID string) ([]PayslipResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}
	payslips, err := s.repo.ListEmployeePayslips(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	return mapPayslips(payslips), nil
}

func (s *service) GetPayslip(ctx context.Context, companyID, id string) (PayslipResponse, error) {
	p, run, err := s.loadPayslip(ctx, companyID, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	res := mapPayslip(*p)
	res.Released = run.Status == StatusLocked
	return res, nil
}

func (s *service) DownloadPayslip(ctx context.Context, companyID, id string) (PayslipFile, error) {
	p, _, err := s.loadPayslip(ctx, companyID, id)
	if err != nil {
		return PayslipFile{}, err
	}
	name := payslipFileName(*p)
	if p.PDFPath != nil && *p.PDFPath != "" {
		if content, err := os.ReadFile(*p.PDFPath); err == nil {
			return PayslipFile{Name: name, Content: content}, nil
		}
		contextutil.GetLogger(ctx, s.logger).Warn("stored payslip pdf unreadable, rendering again",
			zap.String("payslip_id", id),
			zap.String("path", *p.PDFPath),
		)
	}
	content, err := renderPayslipPDF(*p)
	if err != nil {
		return PayslipFile{}, err
	}
	return PayslipFile{Name: name, Content: content}, nil
}

// GeneratePayslipPDF renders a payslip to the payslip directory and records
// the path. Running it twice overwrites the same file.
func (s *service) GeneratePayslipPDF(ctx context.Context, companyID, payslipID string) (string, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("payslip_id", payslipID))

	p, _, err := s.loadPayslip(ctx, companyID, payslipID)
	if err != nil {
		return "", err
	}
	content, err := renderPayslipPDF(*p)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(s.deps.PayslipDir, companyID, p.Month)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create payslip dir: %w", err)
	}
	path := filepath.Join(dir, payslipFileName(*p))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write payslip pdf: %w", err)
	}

	if err := s.repo.SetPayslipPDF(ctx, companyID, payslipID, path, s.now()); err != nil {
		log.Error("record payslip pdf failed", zap.Error(err))
		return "", err
	}
	log.Info("payslip pdf generated", zap.String("path", path))
	return path, nil
}

func (s *service) Preview(ctx context.Context, companyID, employeeID, month string) (PayslipResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	m, err := dateutil.ParseMonth(month)
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidMonth
	}

	emp, err := s.deps.Employees.GetByID(ctx, companyID, employeeID)
	if err != nil {
		return PayslipResponse{}, err
	}
	cfg, err := s.deps.Settings.Get(ctx, companyID)
	if err != nil {
		return PayslipResponse{}, err
	}
	calc, err := s.compute(ctx, companyID, employeeID, "", m, cfg.CompanySettings)
	if err != nil {
		return PayslipResponse{}, err
	}

	p := buildPayslip(uuid.Nil, uuid.Nil, m, emp, calc)
	res := mapPayslip(p)
	res.ID, res.RunID = "", ""
	return res, nil
}

// compute builds one payslip. runID selects the expense claims the run may
// pay; an empty runID only sees claims no run holds.
func (s *service) compute(
	ctx context.Context,
	companyID, employeeID, runID string,
	month dateutil.Month,
	cfg settings.CompanySettings,
) (Calculation, error) {
	salary, err := s.deps.Salaries.GetEffective(ctx, companyID, employeeID, month.End())
	if err != nil {
		if errors.Is(err, employeesalaryerrors.ErrNoEffectiveSalary) {
			return Calculation{}, payrollerrors.ErrNoEffectiveSalary
		}
		return Calculation{}, err
	}

	summary, err := s.deps.Attendance.EmployeeSummary(ctx, companyID, employeeID, month)
	if err != nil {
		return Calculation{}, err
	}

	rules, err := s.deps.Settings.ActiveRulesFor(ctx, companyID, employeeID)
	if err != nil {
		return Calculation{}, err
	}

	var reimbursements []Reimbursement
	if s.deps.Expenses != nil {
		claims, err := s.deps.Expenses.ApprovedForPayroll(ctx, companyID, employeeID, runID)
		if err != nil {
			return Calculation{}, err
		}
		for _, c := range claims {
			reimbursements = append(reimbursements, Reimbursement{
				ClaimID:     c.ID,
				ClaimNumber: c.ClaimNumber,
				Amount:      c.Amount,
			})
		}
	}

	return Calculate(CalcInput{
		Month:    month,
		Settings: cfg,
		Salary: SalaryStructure{
			Basic:            salary.Basic,
			HRA:              salary.HRA,
			SpecialAllowance: salary.SpecialAllowance,
			OtherAllowance:   salary.OtherAllowance,
		},
		PayableDays:    decimal.NewFromFloat(summary.PayableDays),
		LateMarks:      summary.Late,
		Rules:          rules,
		Reimbursements: reimbursements,
	}), nil
}

func (s *service) loadPayslip(ctx context.Context, companyID, id string) (*Payslip, *Run, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, payrollerrors.ErrInvalidPayslipID
	}
	p, err := s.repo.FindPayslip(ctx, companyID, id)
	if err != nil {
		return nil, nil, mapPayslipError(err)
	}
	run, err := s.repo.FindRun(ctx, companyID, p.RunID.String())
	if err != nil {
		return nil, nil, mapRunError(err)
	}
	return p, run, nil
}

func buildPayslip(companyID, runID uuid.UUID, month dateutil.Month, emp employee.EmployeeResponse, calc Calculation) Payslip {
	p := Payslip{
		ID:                  uuid.New(),
		CompanyID:           companyID,
		RunID:               runID,
		EmployeeCode:        emp.EmployeeCode,
		EmployeeName:        emp.FullName,
		Designation:         emp.Designation,
		Month:               month.String(),
		WorkingDays:         calc.WorkingDays,
		PayableDays:         calc.PayableDays,
		LOPDays:             calc.LOPDays,
		Gross:               calc.Gross,
		TotalDeductions:     calc.TotalDeductions,
		CappedDeductions:    calc.CappedDeductions,
		TotalReimbursements: calc.TotalReimbursements,
		Net:                 calc.Net,
		EmployerPF:          calc.EmployerPF,
		EmployerESI:         calc.EmployerESI,
	}
	if id, err := uuid.Parse(emp.ID); err == nil {
		p.EmployeeID = id
	}
	p.Components = make([]Component, len(calc.Lines))
	for i, line := range calc.Lines {
		c := Component{
			ID:        uuid.New(),
			PayslipID: p.ID,
			CompanyID: companyID,
			Kind:      line.Kind,
			Code:      line.Code,
			Name:      line.Name,
			Amount:    line.Amount,
			Sequence:  i + 1,
		}
		if line.Reference != "" {
			ref := line.Reference
			c.Reference = &ref
		}
		p.Components[i] = c
	}
	return p
}

func payslipFileName(p Payslip) string {
	return fmt.Sprintf("payslip_%s_%s.pdf", p.EmployeeCode, p.Month)
}

func mapRun(r Run) RunResponse {
	res := RunResponse{
		ID:                  r.ID.String(),
		Month:               r.Month,
		Status:              r.Status,
		EmployeeCount:       r.EmployeeCount,
		TotalGross:          r.TotalGross,
		TotalDeductions:     r.TotalDeductions,
		TotalReimbursements: r.TotalReimbursements,
		TotalNet:            r.TotalNet,
		CreatedBy:           r.CreatedBy.String(),
		ProcessedAt:         r.ProcessedAt,
		LockedAt:            r.LockedAt,
		CreatedAt:           r.CreatedAt,
	}
	if r.ProcessedBy != nil {
		res.ProcessedBy = r.ProcessedBy.String()
	}
	if r.LockedBy != nil {
		res.LockedBy = r.LockedBy.String()
	}
	return res
}

func mapPayslip(p Payslip) PayslipResponse {
	res := PayslipResponse{
		ID:                  p.ID.String(),
		RunID:               p.RunID.String(),
		EmployeeID:          p.EmployeeID.String(),
		EmployeeCode:        p.EmployeeCode,
		EmployeeName:        p.EmployeeName,
		Designation:         p.Designation,
		Month:               p.Month,
		WorkingDays:         p.WorkingDays,
		PayableDays:         p.PayableDays,
		LOPDays:             p.LOPDays,
		Gross:               p.Gross,
		TotalDeductions:     p.TotalDeductions,
		CappedDeductions:    p.CappedDeductions,
		TotalReimbursements: p.TotalReimbursements,
		Net:                 p.Net,
		EmployerPF:          p.EmployerPF,
		EmployerESI:         p.EmployerESI,
		PDFAvailable:        p.PDFPath != nil && *p.PDFPath != "",
	}
	for _, c := range p.Components {
		cr := ComponentResponse{Kind: c.Kind, Code: c.Code, Name: c.Name, Amount: c.Amount}
		if c.Reference != nil {
			cr.Reference = *c.Reference
		}
		res.Components = append(res.Components, cr)
	}
	return res
}

func mapPayslips(payslips []Payslip) []PayslipResponse {
	res := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		res[i] = mapPayslip(p)
	}
	return res
}
