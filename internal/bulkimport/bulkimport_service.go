package bulkimport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"sharda-hr/internal/attendance"
	"sharda-hr/internal/bootstrap"
	bulkimporterrors "sharda-hr/internal/bulkimport/errors"
	"sharda-hr/internal/department"
	"sharda-hr/internal/employee"
	"sharda-hr/internal/employeesalary"
	"sharda-hr/internal/payroll"
	payrollerrors "sharda-hr/internal/payroll/errors"
	"sharda-hr/internal/shared/apperror"
	"sharda-hr/internal/shared/contextutil"
	"sharda-hr/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EmployeeStore interface {
	GetAll(ctx context.Context, companyID string, filter employee.ListFilter) ([]employee.EmployeeResponse, error)
	CreateInTx(ctx context.Context, tx *sql.Tx, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	InvalidateOptions(ctx context.Context, companyID string)
}

type DepartmentLister interface {
	GetAll(ctx context.Context, companyID string) ([]department.DepartmentResponse, error)
}

type SalaryWriter interface {
	CreateInTx(ctx context.Context, tx *sql.Tx, companyID string, req employeesalary.CreateEmployeeSalaryRequest) (employeesalary.EmployeeSalaryResponse, error)
}

type AttendanceWriter interface {
	BulkMarkInTx(ctx context.Context, tx *sql.Tx, companyID, source string, entries []attendance.MarkAttendanceRequest) (int, error)
}

type PayslipSource interface {
	GetRun(ctx context.Context, companyID, runID string) (payroll.RunResponse, error)
	ListPayslips(ctx context.Context, companyID, runID string) ([]payroll.PayslipResponse, error)
}

type Dependencies struct {
	Employees   EmployeeStore
	Departments DepartmentLister
	Salaries    SalaryWriter
	Attendance  AttendanceWriter
	Payroll     PayslipSource
	Audit       bootstrap.AuditLogger
}

//go:generate mockgen -source=bulkimport_service.go -destination=mock/bulkimport_service_mock.go -package=mock
type Service interface {
	Import(ctx context.Context, companyID, actorID string, req ImportRequest, file io.Reader) (ImportReport, error)
	GetJob(ctx context.Context, companyID, id string) (JobResponse, error)
	ListJobs(ctx context.Context, companyID string, filter JobFilter) ([]JobResponse, error)
	Template(ctx context.Context, companyID, kind string, req TemplateRequest) (File, error)
	ExportEmployees(ctx context.Context, companyID, format string) (File, error)
	ExportPayrollRegister(ctx context.Context, companyID, runID, format string) (File, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	deps   Dependencies
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("bulkimport.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bulkimport.service")
	}
	return &service{db: db, repo: repo, deps: deps, now: time.Now, logger: l}
}

// Import runs the whole pipeline. Nothing is written for a dry run or when any
// row fails; the job is still recorded with its report.
func (s *service) Import(ctx context.Context, companyID, actorID string, req ImportRequest, file io.Reader) (ImportReport, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	cid, err := uuid.Parse(companyID)
	if err != nil {
		return ImportReport{}, bulkimporterrors.ErrInvalidCompanyID
	}
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return ImportReport{}, apperror.InvalidField("actor_id")
	}
	if !IsKind(req.Kind) {
		return ImportReport{}, bulkimporterrors.ErrUnknownKind
	}
	if !IsFormat(req.Format) {
		return ImportReport{}, bulkimporterrors.ErrUnsupportedFormat
	}

	var month dateutil.Month
	if req.Kind == KindAttendance {
		if month, err = dateutil.ParseMonth(strings.TrimSpace(req.Month)); err != nil {
			return ImportReport{}, bulkimporterrors.ErrMonthRequired
		}
	}

	rows, err := readTable(req.Format, file)
	if err != nil {
		return ImportReport{}, err
	}
	idx, err := headerIndex(rows[0], columnsFor(req.Kind, month))
	if err != nil {
		return ImportReport{}, err
	}
	data := rows[1:]

	dir, err := s.loadDirectory(ctx, companyID, req.Kind)
	if err != nil {
		return ImportReport{}, err
	}

	today := dateutil.TruncateDay(s.now())
	var (
		employees []employeeRow
		marks     []attendanceRow
		rowErrs   []RowError
	)
	switch req.Kind {
	case KindEmployees:
		employees, rowErrs = parseEmployeeRows(data, idx, dir, today)
	case KindAttendance:
		marks, rowErrs = parseAttendanceRows(data, idx, dir, month, today)
	}

	job := &Job{
		ID:        uuid.New(),
		CompanyID: cid,
		Kind:      req.Kind,
		Format:    req.Format,
		FileName:  req.FileName,
		DryRun:    req.DryRun,
		TotalRows: countRows(data),
		ValidRows: len(employees) + len(marks),
		CreatedBy: actor,
		CreatedAt: s.now(),
	}
	if req.Kind == KindAttendance {
		job.Month = month.String()
	}
	if err := job.SetRowErrors(rowErrs); err != nil {
		return ImportReport{}, err
	}

	if len(rowErrs) > 0 || req.DryRun {
		job.Status = JobValidated
		if len(rowErrs) > 0 {
			job.Status = JobFailed
		}
		if err := s.repo.CreateJob(ctx, job); err != nil {
			return ImportReport{}, err
		}
		log.Info("import validated",
			zap.String("job_id", job.ID.String()),
			zap.String("kind", job.Kind),
			zap.Bool("dry_run", job.DryRun),
			zap.Int("rows", job.TotalRows),
			zap.Int("errors", job.ErrorCount),
		)
		return toReport(*job, rowErrs), nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportReport{}, err
	}
	defer tx.Rollback()

	switch req.Kind {
	case KindEmployees:
		job.Imported, err = s.commitEmployees(ctx, tx, companyID, employees)
	case KindAttendance:
		job.Imported, err = s.commitAttendance(ctx, tx, companyID, marks)
	}
	if err != nil {
		log.Warn("import commit failed", zap.String("kind", req.Kind), zap.Error(err))
		return ImportReport{}, err
	}

	committedAt := s.now()
	job.Status = JobCommitted
	job.CommittedAt = &committedAt
	if err := s.repo.WithTx(tx).CreateJob(ctx, job); err != nil {
		return ImportReport{}, err
	}
	if err := tx.Commit(); err != nil {
		return ImportReport{}, err
	}

	if req.Kind == KindEmployees && s.deps.Employees != nil {
		s.deps.Employees.InvalidateOptions(ctx, companyID)
	}
	if s.deps.Audit != nil {
		s.deps.Audit.Log(ctx, bootstrap.AuditLog{
			Action:    "import.commit",
			Message:   fmt.Sprintf("%s import committed", job.Kind),
			CompanyID: companyID,
			ActorID:   actorID,
			Meta: map[string]any{
				"job_id":   job.ID.String(),
				"kind":     job.Kind,
				"rows":     job.TotalRows,
				"imported": job.Imported,
			},
		})
	}
	log.Info("import committed",
		zap.String("job_id", job.ID.String()),
		zap.String("kind", job.Kind),
		zap.Int("imported", job.Imported),
	)
	return toReport(*job, nil), nil
}

func (s *service) commitEmployees(ctx context.Context, tx *sql.Tx, companyID string, rows []employeeRow) (int, error) {
	for _, r := range rows {
		emp, err := s.deps.Employees.CreateInTx(ctx, tx, companyID, r.employee)
		if err != nil {
			return 0, atRow(err, r.line)
		}
		if !r.hasSalary() {
			continue
		}
		_, err = s.deps.Salaries.CreateInTx(ctx, tx, companyID, employeesalary.CreateEmployeeSalaryRequest{
			EmployeeID:       emp.ID,
			Basic:            r.basic,
			HRA:              r.hra,
			SpecialAllowance: r.special,
			OtherAllowance:   r.other,
			EffectiveDate:    r.employee.DateOfJoining,
			Note:             "imported",
		})
		if err != nil {
			return 0, atRow(err, r.line)
		}
	}
	return len(rows), nil
}

func (s *service) commitAttendance(ctx context.Context, tx *sql.Tx, companyID string, rows []attendanceRow) (int, error) {
	var entries []attendance.MarkAttendanceRequest
	for _, r := range rows {
		entries = append(entries, r.entries...)
	}
	if len(entries) == 0 {
		return 0, nil
	}
	return s.deps.Attendance.BulkMarkInTx(ctx, tx, companyID, attendance.SourceImport, entries)
}

// atRow attaches the failing line to errors raised while committing.
func atRow(err error, line int) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.WithDetails([]RowError{{Row: line, Message: appErr.Message}})
	}
	return err
}

func (s *service) loadDirectory(ctx context.Context, companyID, kind string) (directory, error) {
	dir := directory{codes: map[string]string{}, emails: map[string]bool{}, departments: map[string]string{}}

	emps, err := s.deps.Employees.GetAll(ctx, companyID, employee.ListFilter{})
	if err != nil {
		return dir, err
	}
	for _, e := range emps {
		if kind == KindAttendance && e.EmploymentStatus == employee.StatusExited {
			continue
		}
		dir.codes[strings.ToUpper(e.EmployeeCode)] = e.ID
		dir.emails[strings.ToLower(e.Email)] = true
	}

	if kind == KindEmployees && s.deps.Departments != nil {
		depts, err := s.deps.Departments.GetAll(ctx, companyID)
		if err != nil {
			return dir, err
		}
		for _, d := range depts {
			dir.departments[strings.ToLower(strings.TrimSpace(d.Name))] = d.ID
		}
	}
	return dir, nil
}

func (s *service) GetJob(ctx context.Context, companyID, id string) (JobResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return JobResponse{}, bulkimporterrors.ErrInvalidJobID
	}
	job, err := s.repo.FindJob(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JobResponse{}, bulkimporterrors.ErrJobNotFound
		}
		return JobResponse{}, err
	}
	resp := mapJob(*job)
	resp.Errors = job.RowErrors()
	return resp, nil
}

func (s *service) ListJobs(ctx context.Context, companyID string, filter JobFilter) ([]JobResponse, error) {
	jobs, err := s.repo.ListJobs(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	res := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		res[i] = mapJob(j)
	}
	return res, nil
}

// Template pre-fills the attendance sheet with the codes of employees still
// on the rolls.
func (s *service) Template(ctx context.Context, companyID, kind string, req TemplateRequest) (File, error) {
	format := defaultFormat(req.Format)
	if kind != KindAttendance {
		return BuildTemplate(kind, format, dateutil.Month{}, nil)
	}

	month := dateutil.MonthOf(s.now())
	if req.Month != "" {
		m, err := dateutil.ParseMonth(req.Month)
		if err != nil {
			return File{}, bulkimporterrors.ErrMonthRequired
		}
		month = m
	}

	emps, err := s.deps.Employees.GetAll(ctx, companyID, employee.ListFilter{})
	if err != nil {
		return File{}, err
	}
	codes := make([]string, 0, len(emps))
	for _, e := range emps {
		if e.EmploymentStatus != employee.StatusExited {
			codes = append(codes, e.EmployeeCode)
		}
	}
	return BuildTemplate(kind, format, month, codes)
}

// BuildTemplate renders an empty import sheet. Attendance sheets get one
// column per day of month and one row per code.
func BuildTemplate(kind, format string, month dateutil.Month, codes []string) (File, error) {
	if !IsKind(kind) {
		return File{}, bulkimporterrors.ErrUnknownKind
	}
	format = defaultFormat(format)
	if !IsFormat(format) {
		return File{}, bulkimporterrors.ErrUnsupportedFormat
	}

	rows := [][]string{columnsFor(kind, month)}
	for _, code := range codes {
		rows = append(rows, []string{code})
	}

	content, err := writeTable(format, rows)
	if err != nil {
		return File{}, err
	}
	name := kind + "_template"
	if kind == KindAttendance {
		name = "attendance_" + month.String()
	}
	return File{Name: name + "." + format, ContentType: contentTypes[format], Content: content}, nil
}

var employeeExportColumns = []string{
	colEmployeeCode, colFullName, colEmail, colPhone, colDepartment, colDesignation,
	colDateOfJoining, "date_of_exit", colStatus,
}

func (s *service) ExportEmployees(ctx context.Context, companyID, format string) (File, error) {
	format = defaultFormat(format)
	if !IsFormat(format) {
		return File{}, bulkimporterrors.ErrUnsupportedFormat
	}
	emps, err := s.deps.Employees.GetAll(ctx, companyID, employee.ListFilter{})
	if err != nil {
		return File{}, err
	}

	rows := make([][]string, 0, len(emps)+1)
	rows = append(rows, employeeExportColumns)
	for _, e := range emps {
		dept := ""
		if e.Department != nil {
			dept = e.Department.Name
		}
		rows = append(rows, []string{
			e.EmployeeCode, safeCell(e.FullName), safeCell(e.Email), safeCell(e.Phone),
			safeCell(dept), safeCell(e.Designation),
			e.DateOfJoining, e.DateOfExit, e.EmploymentStatus,
		})
	}

	content, err := writeTable(format, rows)
	if err != nil {
		return File{}, err
	}
	name := fmt.Sprintf("employees_%s.%s", s.now().Format("20060102"), format)
	return File{Name: name, ContentType: contentTypes[format], Content: content}, nil
}

var registerColumns = []string{
	"employee_code", "employee_name", "designation", "working_days", "payable_days", "lop_days",
	"gross", "deductions", "reimbursements", "net", "employer_pf", "employer_esi",
}

// ExportPayrollRegister lists every payslip of a run with a totals line.
// Amounts are rupees with two decimals.
func (s *service) ExportPayrollRegister(ctx context.Context, companyID, runID, format string) (File, error) {
	format = defaultFormat(format)
	if !IsFormat(format) {
		return File{}, bulkimporterrors.ErrUnsupportedFormat
	}
	run, err := s.deps.Payroll.GetRun(ctx, companyID, runID)
	if err != nil {
		if errors.Is(err, payrollerrors.ErrRunNotFound) {
			return File{}, bulkimporterrors.ErrRunNotFound
		}
		return File{}, err
	}
	slips, err := s.deps.Payroll.ListPayslips(ctx, companyID, runID)
	if err != nil {
		return File{}, err
	}

	rows := make([][]string, 0, len(slips)+2)
	rows = append(rows, registerColumns)
	var gross, deductions, reimbursements, net, pf, esi int64
	for _, p := range slips {
		rows = append(rows, []string{
			p.EmployeeCode, safeCell(p.EmployeeName), safeCell(p.Designation),
			strconv.Itoa(p.WorkingDays), p.PayableDays.String(), p.LOPDays.String(),
			formatRupees(p.Gross), formatRupees(p.TotalDeductions), formatRupees(p.TotalReimbursements),
			formatRupees(p.Net), formatRupees(p.EmployerPF), formatRupees(p.EmployerESI),
		})
		gross += p.Gross
		deductions += p.TotalDeductions
		reimbursements += p.TotalReimbursements
		net += p.Net
		pf += p.EmployerPF
		esi += p.EmployerESI
	}
	rows = append(rows, []string{
		"TOTAL", "", "", "", "", "",
		formatRupees(gross), formatRupees(deductions), formatRupees(reimbursements),
		formatRupees(net), formatRupees(pf), formatRupees(esi),
	})

	content, err := writeTable(format, rows)
	if err != nil {
		return File{}, err
	}
	name := fmt.Sprintf("payroll_register_%s.%s", run.Month, format)
	return File{Name: name, ContentType: contentTypes[format], Content: content}, nil
}

func defaultFormat(f string) string {
	f = strings.ToLower(strings.TrimSpace(f))
	if f == "" {
		return FormatCSV
	}
	return f
}

func countRows(rows [][]string) int {
	n := 0
	for _, r := range rows {
		if !blank(r) {
			n++
		}
	}
	return n
}

func toReport(j Job, errs []RowError) ImportReport {
	if errs == nil {
		errs = []RowError{}
	}
	return ImportReport{
		JobID:     j.ID.String(),
		Kind:      j.Kind,
		Month:     j.Month,
		DryRun:    j.DryRun,
		Status:    j.Status,
		TotalRows: j.TotalRows,
		ValidRows: j.ValidRows,
		Imported:  j.Imported,
		Errors:    errs,
	}
}

func mapJob(j Job) JobResponse {
	return JobResponse{
		ID:          j.ID.String(),
		Kind:        j.Kind,
		Format:      j.Format,
		FileName:    j.FileName,
		Month:       j.Month,
		DryRun:      j.DryRun,
		Status:      j.Status,
		TotalRows:   j.TotalRows,
		ValidRows:   j.ValidRows,
		Imported:    j.Imported,
		ErrorCount:  j.ErrorCount,
		CreatedBy:   j.CreatedBy.String(),
		CreatedAt:   j.CreatedAt,
		CommittedAt: j.CommittedAt,
	}
}
