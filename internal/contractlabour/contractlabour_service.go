package contractlabour

import (
	"context"
	"database/sql"
	"slices"
	"strings"
	"time"

	contractlabourerrors "sharda-hr/internal/contractlabour/errors"
	"sharda-hr/internal/shared/contextutil"
	"sharda-hr/internal/shared/counter"
	"sharda-hr/internal/shared/dateutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var maxOvertime = decimal.NewFromInt(16)

//go:generate mockgen -source=contractlabour_service.go -destination=mock/contractlabour_service_mock.go -package=mock
type Service interface {
	CreateContractor(ctx context.Context, companyID string, req ContractorRequest) (ContractorResponse, error)
	UpdateContractor(ctx context.Context, companyID, id string, req ContractorRequest) (ContractorResponse, error)
	GetContractor(ctx context.Context, companyID, id string) (ContractorResponse, error)
	ListContractors(ctx context.Context, companyID string) ([]ContractorResponse, error)
	DeleteContractor(ctx context.Context, companyID, id string) error

	CreateWorker(ctx context.Context, companyID string, req CreateWorkerRequest) (WorkerResponse, error)
	UpdateWorker(ctx context.Context, companyID, id string, req UpdateWorkerRequest) (WorkerResponse, error)
	GetWorker(ctx context.Context, companyID, id string) (WorkerResponse, error)
	ListWorkers(ctx context.Context, companyID string, filter WorkerFilter) ([]WorkerResponse, error)
	DeleteWorker(ctx context.Context, companyID, id string) error

	MarkAttendance(ctx context.Context, companyID string, req MarkAttendanceRequest) (AttendanceResponse, error)
	BulkMarkAttendance(ctx context.Context, companyID string, req BulkMarkAttendanceRequest) (BulkMarkResponse, error)
	ListAttendance(ctx context.Context, companyID string, filter AttendanceFilter) ([]AttendanceResponse, error)

	PreviewPayroll(ctx context.Context, companyID string, req PayrollRequest) (PayrollResponse, error)
	FinalizePayroll(ctx context.Context, companyID, actorID, month string) (PayrollResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("contractlabour.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contractlabour.service")
	}
	return &service{db: db, repo: repo, counter: counterRepo, now: time.Now, logger: l}
}

func (s *service) CreateContractor(ctx context.Context, companyID string, req ContractorRequest) (ContractorResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return ContractorResponse{}, contractlabourerrors.ErrInvalidCompanyID
	}

	c := &Contractor{ID: uuid.New(), CompanyID: cid, Active: true}
	applyContractor(c, req)
	if err := s.repo.CreateContractor(ctx, c); err != nil {
		return ContractorResponse{}, mapContractorError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("contractor created",
		zap.String("contractor_id", c.ID.String()),
		zap.String("name", c.Name),
	)
	return mapContractor(*c), nil
}

func (s *service) UpdateContractor(ctx context.Context, companyID, id string, req ContractorRequest) (ContractorResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ContractorResponse{}, contractlabourerrors.ErrInvalidContractorID
	}
	c, err := s.repo.FindContractor(ctx, companyID, id)
	if err != nil {
		return ContractorResponse{}, mapContractorError(err)
	}
	applyContractor(c, req)
	if err := s.repo.UpdateContractor(ctx, c); err != nil {
		return ContractorResponse{}, mapContractorError(err)
	}
	return mapContractor(*c), nil
}

func (s *service) GetContractor(ctx context.Context, companyID, id string) (ContractorResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ContractorResponse{}, contractlabourerrors.ErrInvalidContractorID
	}
	c, err := s.repo.FindContractor(ctx, companyID, id)
	if err != nil {
		return ContractorResponse{}, mapContractorError(err)
	}
	return mapContractor(*c), nil
}

func (s *service) ListContractors(ctx context.Context, companyID string) ([]ContractorResponse, error) {
	list, err := s.repo.ListContractors(ctx, companyID)
	if err != nil {
		return nil, err
	}
	res := make([]ContractorResponse, len(list))
	for i, c := range list {
		res[i] = mapContractor(c)
	}
	return res, nil
}

func (s *service) DeleteContractor(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return contractlabourerrors.ErrInvalidContractorID
	}
	n, err := s.repo.CountActiveWorkers(ctx, companyID, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return contractlabourerrors.ErrContractorHasWorkers
	}
	return mapContractorError(s.repo.DeleteContractor(ctx, companyID, id))
}

func (s *service) CreateWorker(ctx context.Context, companyID string, req CreateWorkerRequest) (WorkerResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	cid, err := uuid.Parse(companyID)
	if err != nil {
		return WorkerResponse{}, contractlabourerrors.ErrInvalidCompanyID
	}
	contractor, err := s.activeContractor(ctx, companyID, req.ContractorID)
	if err != nil {
		return WorkerResponse{}, err
	}

	next, err := s.counter.GetNextValue(ctx, companyID, counter.TypeWorkerCode)
	if err != nil {
		log.Error("worker code allocation failed", zap.Error(err))
		return WorkerResponse{}, err
	}

	w := &Worker{
		ID:           uuid.New(),
		CompanyID:    cid,
		ContractorID: contractor.ID,
		WorkerCode:   counter.FormatWorkerCode(next),
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        strings.TrimSpace(req.Phone),
		Skill:        strings.TrimSpace(req.Skill),
		DailyWage:    req.DailyWage,
		OTHourlyRate: req.OTHourlyRate,
		Active:       true,
	}
	if err := s.repo.CreateWorker(ctx, w); err != nil {
		log.Error("create contract worker failed", zap.Error(err))
		return WorkerResponse{}, err
	}
	w.Contractor = contractor

	log.Info("contract worker created",
		zap.String("worker_id", w.ID.String()),
		zap.String("worker_code", w.WorkerCode),
	)
	return mapWorker(*w), nil
}

func (s *service) UpdateWorker(ctx context.Context, companyID, id string, req UpdateWorkerRequest) (WorkerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkerResponse{}, contractlabourerrors.ErrInvalidWorkerID
	}
	w, err := s.repo.FindWorker(ctx, companyID, id)
	if err != nil {
		return WorkerResponse{}, mapWorkerError(err)
	}
	if req.ContractorID != w.ContractorID.String() {
		contractor, err := s.activeContractor(ctx, companyID, req.ContractorID)
		if err != nil {
			return WorkerResponse{}, err
		}
		w.ContractorID = contractor.ID
		w.Contractor = contractor
	}

	w.FullName = strings.TrimSpace(req.FullName)
	w.Phone = strings.TrimSpace(req.Phone)
	w.Skill = strings.TrimSpace(req.Skill)
	w.DailyWage = req.DailyWage
	w.OTHourlyRate = req.OTHourlyRate
	if req.Active != nil {
		w.Active = *req.Active
	}
	if err := s.repo.UpdateWorker(ctx, w); err != nil {
		return WorkerResponse{}, err
	}
	return mapWorker(*w), nil
}

func (s *service) GetWorker(ctx context.Context, companyID, id string) (WorkerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkerResponse{}, contractlabourerrors.ErrInvalidWorkerID
	}
	w, err := s.repo.FindWorker(ctx, companyID, id)
	if err != nil {
		return WorkerResponse{}, mapWorkerError(err)
	}
	return mapWorker(*w), nil
}

func (s *service) ListWorkers(ctx context.Context, companyID string, filter WorkerFilter) ([]WorkerResponse, error) {
	list, err := s.repo.ListWorkers(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	res := make([]WorkerResponse, len(list))
	for i, w := range list {
		res[i] = mapWorker(w)
	}
	return res, nil
}

func (s *service) DeleteWorker(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return contractlabourerrors.ErrInvalidWorkerID
	}
	return mapWorkerError(s.repo.DeleteWorker(ctx, companyID, id))
}

func (s *service) MarkAttendance(ctx context.Context, companyID string, req MarkAttendanceRequest) (AttendanceResponse, error) {
	if _, err := s.BulkMarkAttendance(ctx, companyID, BulkMarkAttendanceRequest{Entries: []MarkAttendanceRequest{req}}); err != nil {
		return AttendanceResponse{}, err
	}
	return AttendanceResponse{
		WorkerID:      req.WorkerID,
		Date:          req.Date,
		Status:        strings.ToUpper(req.Status),
		OvertimeHours: req.OvertimeHours,
	}, nil
}

// BulkMarkAttendance validates every entry before anything is written. The
// batch is stored in one transaction and is refused when it touches a month
// whose payroll is finalized.
func (s *service) BulkMarkAttendance(ctx context.Context, companyID string, req BulkMarkAttendanceRequest) (BulkMarkResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return BulkMarkResponse{}, contractlabourerrors.ErrInvalidCompanyID
	}

	today := dateutil.TruncateDay(s.now())
	rows := make([]*WorkerAttendance, 0, len(req.Entries))
	seen := make(map[string]struct{}, len(req.Entries))
	ids := make([]string, 0, len(req.Entries))
	var months []string

	for _, e := range req.Entries {
		wid, err := uuid.Parse(e.WorkerID)
		if err != nil {
			return BulkMarkResponse{}, contractlabourerrors.ErrInvalidWorkerID
		}
		day, err := dateutil.ParseDate(e.Date)
		if err != nil {
			return BulkMarkResponse{}, contractlabourerrors.ErrInvalidDate
		}
		if day.After(today) {
			return BulkMarkResponse{}, contractlabourerrors.ErrFutureDate
		}
		status := strings.ToUpper(strings.TrimSpace(e.Status))
		if !IsAttendanceStatus(status) {
			return BulkMarkResponse{}, contractlabourerrors.ErrInvalidStatus
		}
		if e.OvertimeHours.IsNegative() || e.OvertimeHours.GreaterThan(maxOvertime) {
			return BulkMarkResponse{}, contractlabourerrors.ErrInvalidOvertime
		}

		key := wid.String() + "|" + day.Format(dateutil.DateLayout)
		if _, dup := seen[key]; dup {
			return BulkMarkResponse{}, contractlabourerrors.ErrDuplicateEntry
		}
		if !containsWorker(ids, wid.String()) {
			ids = append(ids, wid.String())
		}
		if m := dateutil.MonthOf(day).String(); !slices.Contains(months, m) {
			months = append(months, m)
		}
		seen[key] = struct{}{}

		rows = append(rows, &WorkerAttendance{
			ID:             uuid.New(),
			CompanyID:      cid,
			WorkerID:       wid,
			AttendanceDate: day,
			Status:         status,
			OvertimeHours:  e.OvertimeHours,
		})
	}

	workers, err := s.repo.FindWorkers(ctx, companyID, ids)
	if err != nil {
		return BulkMarkResponse{}, err
	}
	known := make(map[string]Worker, len(workers))
	for _, w := range workers {
		known[w.ID.String()] = w
	}
	for _, id := range ids {
		w, ok := known[id]
		if !ok || w.DeletedAt.Valid {
			return BulkMarkResponse{}, contractlabourerrors.ErrWorkerNotFound
		}
		if !w.Active {
			return BulkMarkResponse{}, contractlabourerrors.ErrWorkerInactive
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BulkMarkResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for _, m := range months {
		n, err := qtx.CountPayrolls(ctx, companyID, m)
		if err != nil {
			return BulkMarkResponse{}, err
		}
		if n > 0 {
			return BulkMarkResponse{}, contractlabourerrors.ErrPayrollFinalized
		}
	}
	for _, row := range rows {
		if err := qtx.UpsertAttendance(ctx, row); err != nil {
			return BulkMarkResponse{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return BulkMarkResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("contract attendance marked", zap.Int("rows", len(rows)))
	return BulkMarkResponse{Saved: len(rows)}, nil
}

func (s *service) ListAttendance(ctx context.Context, companyID string, filter AttendanceFilter) ([]AttendanceResponse, error) {
	month, err := dateutil.ParseMonth(filter.Month)
	if err != nil {
		return nil, contractlabourerrors.ErrInvalidMonth
	}
	rows, err := s.repo.ListAttendance(ctx, companyID, month.Start(), month.End(), filter.WorkerID, filter.ContractorID)
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = AttendanceResponse{
			ID:            r.ID.String(),
			WorkerID:      r.WorkerID.String(),
			Date:          r.AttendanceDate.Format(dateutil.DateLayout),
			Status:        r.Status,
			OvertimeHours: r.OvertimeHours,
		}
	}
	return res, nil
}

// PreviewPayroll returns the stored figures once a month is finalized and a
// live calculation before that.
func (s *service) PreviewPayroll(ctx context.Context, companyID string, req PayrollRequest) (PayrollResponse, error) {
	month, err := dateutil.ParseMonth(req.Month)
	if err != nil {
		return PayrollResponse{}, contractlabourerrors.ErrInvalidMonth
	}

	stored, err := s.repo.ListPayrolls(ctx, companyID, month.String(), req.ContractorID)
	if err != nil {
		return PayrollResponse{}, err
	}
	if len(stored) > 0 {
		return s.storedPayroll(ctx, companyID, month, stored)
	}

	lines, err := s.compute(ctx, s.repo, companyID, month, req.ContractorID)
	if err != nil {
		return PayrollResponse{}, err
	}
	return payrollResponse(month, false, lines), nil
}

func (s *service) FinalizePayroll(ctx context.Context, companyID, actorID, month string) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	cid, err := uuid.Parse(companyID)
	if err != nil {
		return PayrollResponse{}, contractlabourerrors.ErrInvalidCompanyID
	}
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, contractlabourerrors.ErrInvalidActorID
	}
	m, err := dateutil.ParseMonth(month)
	if err != nil {
		return PayrollResponse{}, contractlabourerrors.ErrInvalidMonth
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	n, err := qtx.CountPayrolls(ctx, companyID, m.String())
	if err != nil {
		return PayrollResponse{}, err
	}
	if n > 0 {
		return PayrollResponse{}, contractlabourerrors.ErrPayrollFinalized
	}

	lines, err := s.compute(ctx, qtx, companyID, m, "")
	if err != nil {
		return PayrollResponse{}, err
	}
	if len(lines) == 0 {
		return PayrollResponse{}, contractlabourerrors.ErrNothingToFinalize
	}

	now := s.now()
	rows := make([]ContractPayroll, len(lines))
	for i, l := range lines {
		rows[i] = ContractPayroll{
			ID:            uuid.New(),
			CompanyID:     cid,
			WorkerID:      uuid.MustParse(l.WorkerID),
			ContractorID:  uuid.MustParse(l.ContractorID),
			Month:         m.String(),
			DaysPresent:   l.DaysPresent,
			HalfDays:      l.HalfDays,
			PayableDays:   l.PayableDays,
			OvertimeHours: l.OvertimeHours,
			DailyWage:     l.DailyWage,
			OTHourlyRate:  l.OTHourlyRate,
			BaseWage:      l.BaseWage,
			OvertimePay:   l.OvertimePay,
			TotalWage:     l.TotalWage,
			FinalizedBy:   actor,
			CreatedAt:     now,
		}
	}
	if err := qtx.CreatePayrolls(ctx, rows); err != nil {
		return PayrollResponse{}, mapPayrollError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	resp := payrollResponse(m, true, lines)
	log.Info("contract payroll finalized",
		zap.String("month", m.String()),
		zap.Int("workers", len(lines)),
		zap.Int64("total_wage", resp.TotalWage),
	)
	return resp, nil
}

func (s *service) compute(ctx context.Context, repo Repository, companyID string, month dateutil.Month, contractorID string) ([]PayrollLine, error) {
	rows, err := repo.ListAttendance(ctx, companyID, month.Start(), month.End(), "", contractorID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0)
	for _, r := range rows {
		if !containsWorker(ids, r.WorkerID.String()) {
			ids = append(ids, r.WorkerID.String())
		}
	}
	workers, err := repo.FindWorkers(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}
	return buildPayroll(workers, rows), nil
}

func (s *service) storedPayroll(ctx context.Context, companyID string, month dateutil.Month, stored []ContractPayroll) (PayrollResponse, error) {
	ids := make([]string, len(stored))
	for i, p := range stored {
		ids[i] = p.WorkerID.String()
	}
	workers, err := s.repo.FindWorkers(ctx, companyID, ids)
	if err != nil {
		return PayrollResponse{}, err
	}
	byID := make(map[string]Worker, len(workers))
	for _, w := range workers {
		byID[w.ID.String()] = w
	}

	lines := make([]PayrollLine, len(stored))
	for i, p := range stored {
		w := byID[p.WorkerID.String()]
		lines[i] = PayrollLine{
			WorkerID:      p.WorkerID.String(),
			WorkerCode:    w.WorkerCode,
			WorkerName:    w.FullName,
			ContractorID:  p.ContractorID.String(),
			DaysPresent:   p.DaysPresent,
			HalfDays:      p.HalfDays,
			PayableDays:   p.PayableDays,
			OvertimeHours: p.OvertimeHours,
			DailyWage:     p.DailyWage,
			OTHourlyRate:  p.OTHourlyRate,
			BaseWage:      p.BaseWage,
			OvertimePay:   p.OvertimePay,
			TotalWage:     p.TotalWage,
		}
		if w.Contractor != nil {
			lines[i].ContractorName = w.Contractor.Name
		}
	}
	sortLines(lines)
	return payrollResponse(month, true, lines), nil
}

func (s *service) activeContractor(ctx context.Context, companyID, id string) (*Contractor, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, contractlabourerrors.ErrInvalidContractorID
	}
	c, err := s.repo.FindContractor(ctx, companyID, id)
	if err != nil {
		return nil, mapContractorError(err)
	}
	if !c.Active {
		return nil, contractlabourerrors.ErrContractorInactive
	}
	return c, nil
}

func containsWorker(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func applyContractor(c *Contractor, req ContractorRequest) {
	c.Name = strings.TrimSpace(req.Name)
	c.ContactPerson = strings.TrimSpace(req.ContactPerson)
	c.Phone = strings.TrimSpace(req.Phone)
	c.Email = strings.TrimSpace(req.Email)
	c.GSTIN = strings.ToUpper(strings.TrimSpace(req.GSTIN))
	if req.Active != nil {
		c.Active = *req.Active
	}
}

func payrollResponse(month dateutil.Month, finalized bool, lines []PayrollLine) PayrollResponse {
	res := PayrollResponse{Month: month.String(), Finalized: finalized, Lines: lines}
	for _, l := range lines {
		res.TotalWage += l.TotalWage
	}
	return res
}

func mapContractor(c Contractor) ContractorResponse {
	return ContractorResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		GSTIN:         c.GSTIN,
		Active:        c.Active,
		CreatedAt:     c.CreatedAt,
	}
}

func mapWorker(w Worker) WorkerResponse {
	res := WorkerResponse{
		ID:           w.ID.String(),
		WorkerCode:   w.WorkerCode,
		FullName:     w.FullName,
		ContractorID: w.ContractorID.String(),
		Phone:        w.Phone,
		Skill:        w.Skill,
		DailyWage:    w.DailyWage,
		OTHourlyRate: w.OTHourlyRate,
		Active:       w.Active,
		CreatedAt:    w.CreatedAt,
	}
	if w.Contractor != nil {
		res.ContractorName = w.Contractor.Name
	}
	return res
}
