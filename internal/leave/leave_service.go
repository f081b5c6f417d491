package leave

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	"sharda-hr/internal/attendance"
	leaveerrors "sharda-hr/internal/leave/errors"
	"sharda-hr/internal/settings"
	"sharda-hr/internal/shared/contextutil"
	"sharda-hr/internal/shared/dateutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AttendanceWriter records approved leave on the attendance calendar.
type AttendanceWriter interface {
	MarkLeaveDaysInTx(ctx context.Context, tx *sql.Tx, companyID, employeeID, status string, start, end time.Time) error
	ClearLeaveDaysInTx(ctx context.Context, tx *sql.Tx, companyID, employeeID string, start, end time.Time) error
}

// SettingsReader supplies the company's annual leave entitlements.
type SettingsReader interface {
	Get(ctx context.Context, companyID string) (settings.SettingsResponse, error)
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, companyID, id string) (LeaveResponse, error)
	Submit(ctx context.Context, companyID, actorID, id string) (LeaveResponse, error)
	Approve(ctx context.Context, companyID, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, companyID, actorID, id, rejectionReason string) (LeaveResponse, error)
	Cancel(ctx context.Context, companyID, actorID, id string) (LeaveResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	GetBalances(ctx context.Context, companyID, employeeID string, year int) ([]BalanceResponse, error)
	AdjustBalance(ctx context.Context, companyID, actorID string, req AdjustBalanceRequest) (BalanceResponse, error)
	GrantOpeningBalances(ctx context.Context, companyID, employeeID, dateOfJoining string) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	attendance AttendanceWriter
	settings   SettingsReader
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	attendanceWriter AttendanceWriter,
	settingsReader SettingsReader,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		attendance: attendanceWriter,
		settings:   settingsReader,
		now:        time.Now,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create leave requested",
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	companyUUID, employeeUUID, createdByUUID, startDate, endDate, err := validateCreateRequest(companyID, actorID, req)
	if err != nil {
		log.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	belongs, err := qtx.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !belongs {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotInCompany
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, companyID, req.EmployeeID, startDate, endDate, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap {
		log.Warn("create leave overlap detected",
			zap.String("employee_id", req.EmployeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	days := decimal.NewFromInt(int64(dateutil.DaysInclusive(startDate, endDate)))
	if req.HalfDay {
		days = half
	}

	l := &Leave{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		HalfDay:    req.HalfDay,
		Days:       days,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     StatusPending,
		CreatedBy:  createdByUUID,
	}

	if err := qtx.Create(ctx, l); err != nil {
		log.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	log.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("days", days.String()),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]LeaveResponse, error) {
	filter.Status = strings.ToUpper(strings.TrimSpace(filter.Status))
	leaves, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	l, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return LeaveResponse{}, mapNotFound(err)
	}
	return mapToResponse(*l), nil
}

func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	switch currentStatus {
	case StatusPending:
		return targetStatus == StatusSubmitted || targetStatus == StatusCancelled
	case StatusSubmitted:
		return targetStatus == StatusApproved || targetStatus == StatusRejected || targetStatus == StatusCancelled
	case StatusApproved:
		return targetStatus == StatusCancelled
	default:
		return false
	}
}

func (s *service) Submit(ctx context.Context, companyID, actorID, id string) (LeaveResponse, error) {
	return s.transition(ctx, companyID, actorID, id, StatusSubmitted, nil)
}

func (s *service) Approve(ctx context.Context, companyID, actorID, id string) (LeaveResponse, error) {
	return s.transition(ctx, companyID, actorID, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, companyID, actorID, id, rejectionReason string) (LeaveResponse, error) {
	rejectionReason = strings.TrimSpace(rejectionReason)
	if rejectionReason == "" {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}
	return s.transition(ctx, companyID, actorID, id, StatusRejected, &rejectionReason)
}

func (s *service) Cancel(ctx context.Context, companyID, actorID, id string) (LeaveResponse, error) {
	return s.transition(ctx, companyID, actorID, id, StatusCancelled, nil)
}

func (s *service) transition(ctx context.Context, companyID, actorID, id, targetStatus string, rejectionReason *string) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(companyID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("transition leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return LeaveResponse{}, mapNotFound(err)
	}
	fromStatus := l.Status
	if !isAllowedStatusTransition(fromStatus, targetStatus) {
		log.Warn("transition leave status invalid",
			zap.String("leave_id", id),
			zap.String("from_status", fromStatus),
			zap.String("to_status", targetStatus),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	now := s.now().UTC()
	l.Status = targetStatus
	switch targetStatus {
	case StatusApproved:
		if l.EmployeeID == actorUUID {
			return LeaveResponse{}, leaveerrors.ErrSelfApproval
		}
		if err := s.consume(ctx, tx, qtx, l); err != nil {
			return LeaveResponse{}, err
		}
		l.ApprovedBy = &actorUUID
		l.ApprovedAt = &now
		l.RejectionReason = nil
	case StatusRejected:
		if l.EmployeeID == actorUUID {
			return LeaveResponse{}, leaveerrors.ErrSelfApproval
		}
		l.ApprovedBy = nil
		l.ApprovedAt = nil
		l.RejectionReason = rejectionReason
	case StatusCancelled:
		if fromStatus == StatusApproved {
			if err := s.refund(ctx, tx, qtx, l); err != nil {
				return LeaveResponse{}, err
			}
		}
		l.CancelledAt = &now
	}

	if err := qtx.Update(ctx, l); err != nil {
		log.Error("transition leave persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	log.Info("transition leave status success",
		zap.String("leave_id", id),
		zap.String("from_status", fromStatus),
		zap.String("status", targetStatus),
	)
	return mapToResponse(*l), nil
}

// consume draws the leave from its balance and writes the days onto the attendance calendar.
func (s *service) consume(ctx context.Context, tx *sql.Tx, qtx Repository, l *Leave) error {
	companyID := l.CompanyID.String()
	employeeID := l.EmployeeID.String()

	if consumesBalance(l.LeaveType) {
		b, err := qtx.FindBalanceForUpdate(ctx, companyID, employeeID, l.StartDate.Year(), l.LeaveType)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leaveerrors.ErrInsufficientBalance.WithDetails(map[string]string{
					"available": "0",
					"requested": l.Days.String(),
				})
			}
			return err
		}
		if b.Available().LessThan(l.Days) {
			return leaveerrors.ErrInsufficientBalance.WithDetails(map[string]string{
				"available": b.Available().String(),
				"requested": l.Days.String(),
			})
		}
		b.Used = b.Used.Add(l.Days)
		if err := qtx.SaveBalance(ctx, b); err != nil {
			return err
		}
	}

	return s.attendance.MarkLeaveDaysInTx(ctx, tx, companyID, employeeID, attendanceStatusFor(l), l.StartDate, l.EndDate)
}

func (s *service) refund(ctx context.Context, tx *sql.Tx, qtx Repository, l *Leave) error {
	companyID := l.CompanyID.String()
	employeeID := l.EmployeeID.String()

	if consumesBalance(l.LeaveType) {
		b, err := qtx.FindBalanceForUpdate(ctx, companyID, employeeID, l.StartDate.Year(), l.LeaveType)
		if err != nil {
			return err
		}
		b.Used = b.Used.Sub(l.Days)
		if b.Used.IsNegative() {
			b.Used = decimal.Zero
		}
		if err := qtx.SaveBalance(ctx, b); err != nil {
			return err
		}
	}

	return s.attendance.ClearLeaveDaysInTx(ctx, tx, companyID, employeeID, l.StartDate, l.EndDate)
}

// attendanceStatusFor picks the calendar status so payroll counts unpaid leave as loss of pay.
func attendanceStatusFor(l *Leave) string {
	if l.LeaveType != TypeUnpaid {
		return attendance.StatusLeave
	}
	if l.HalfDay {
		return attendance.StatusHalfDay
	}
	return attendance.StatusAbsent
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrLeaveNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapNotFound(err)
	}
	if l.Status != StatusPending {
		return leaveerrors.ErrOnlyPendingDeletable
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapNotFound(err)
	}
	return tx.Commit()
}

func (s *service) GetBalances(ctx context.Context, companyID, employeeID string, year int) ([]BalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	if year == 0 {
		year = s.now().Year()
	}
	if year < 2000 || year > 2100 {
		return nil, leaveerrors.ErrInvalidYear
	}

	rows, err := s.repo.ListBalances(ctx, companyID, employeeID, year)
	if err != nil {
		return nil, err
	}
	out := make([]BalanceResponse, len(rows))
	for i, b := range rows {
		out[i] = mapBalance(b)
	}
	return out, nil
}

func (s *service) AdjustBalance(ctx context.Context, companyID, actorID string, req AdjustBalanceRequest) (BalanceResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	eid, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	if !IsLeaveType(req.LeaveType) || !consumesBalance(req.LeaveType) {
		return BalanceResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	if req.Delta.IsZero() || !isHalfStep(req.Delta) {
		return BalanceResponse{}, leaveerrors.ErrInvalidAdjustment
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BalanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	belongs, err := qtx.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return BalanceResponse{}, err
	}
	if !belongs {
		return BalanceResponse{}, leaveerrors.ErrEmployeeNotInCompany
	}

	b, err := qtx.FindBalanceForUpdate(ctx, companyID, req.EmployeeID, req.Year, req.LeaveType)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return BalanceResponse{}, err
	}
	if b == nil {
		b = &Balance{ID: uuid.New(), CompanyID: cid, EmployeeID: eid, Year: req.Year, LeaveType: req.LeaveType}
	}

	b.Adjusted = b.Adjusted.Add(req.Delta)
	if b.Available().IsNegative() {
		return BalanceResponse{}, leaveerrors.ErrInsufficientBalance
	}
	if err := qtx.SaveBalance(ctx, b); err != nil {
		return BalanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return BalanceResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("leave balance adjusted",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("year", req.Year),
		zap.String("delta", req.Delta.String()),
		zap.String("actor_id", actorID),
		zap.String("reason", req.Reason),
	)
	return mapBalance(*b), nil
}

// GrantOpeningBalances seeds balances for a new joiner. Joiners in the current
// year get a prorated allowance; earlier joiners get the full current year.
// Existing rows are left alone so redelivered events are harmless.
func (s *service) GrantOpeningBalances(ctx context.Context, companyID, employeeID, dateOfJoining string) error {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return leaveerrors.ErrInvalidCompanyID
	}
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return leaveerrors.ErrInvalidEmployeeID
	}
	joined, err := dateutil.ParseDate(dateOfJoining)
	if err != nil {
		return leaveerrors.ErrInvalidDateFormat
	}

	cfg, err := s.settings.Get(ctx, companyID)
	if err != nil {
		return err
	}

	year := s.now().Year()
	months := 12
	if joined.Year() > year {
		year = joined.Year()
	}
	if joined.Year() == year {
		months = monthsRemaining(joined)
	}

	types := make([]string, 0, len(cfg.LeaveEntitlements))
	for t := range cfg.LeaveEntitlements {
		if IsLeaveType(t) && consumesBalance(t) {
			types = append(types, t)
		}
	}
	sort.Strings(types)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	granted := 0
	for _, t := range types {
		created, err := qtx.CreateBalanceIfAbsent(ctx, &Balance{
			ID:         uuid.New(),
			CompanyID:  cid,
			EmployeeID: eid,
			Year:       year,
			LeaveType:  t,
			Entitled:   ProrateEntitlement(cfg.LeaveEntitlements[t], months),
		})
		if err != nil {
			return err
		}
		if created {
			granted++
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("opening leave balances granted",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
		zap.Int("months", months),
		zap.Int("granted", granted),
	)
	return nil
}

func validateCreateRequest(companyID, actorID string, req CreateLeaveRequest) (uuid.UUID, uuid.UUID, uuid.UUID, time.Time, time.Time, error) {
	fail := func(err error) (uuid.UUID, uuid.UUID, uuid.UUID, time.Time, time.Time, error) {
		return uuid.Nil, uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, err
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return fail(leaveerrors.ErrInvalidCompanyID)
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return fail(leaveerrors.ErrInvalidEmployeeID)
	}
	createdByUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fail(leaveerrors.ErrInvalidActorID)
	}
	if !IsLeaveType(req.LeaveType) {
		return fail(leaveerrors.ErrInvalidLeaveType)
	}
	startDate, err := dateutil.ParseDate(req.StartDate)
	if err != nil {
		return fail(leaveerrors.ErrInvalidDateFormat)
	}
	endDate, err := dateutil.ParseDate(req.EndDate)
	if err != nil {
		return fail(leaveerrors.ErrInvalidDateFormat)
	}
	if startDate.After(endDate) {
		return fail(leaveerrors.ErrInvalidDateRange)
	}
	if req.HalfDay && !startDate.Equal(endDate) {
		return fail(leaveerrors.ErrHalfDayRange)
	}
	if startDate.Year() != endDate.Year() {
		return fail(leaveerrors.ErrCrossYear)
	}
	return companyUUID, employeeUUID, createdByUUID, startDate, endDate, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}
	return err
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format(dateutil.DateLayout),
		EndDate:    l.EndDate.Format(dateutil.DateLayout),
		HalfDay:    l.HalfDay,
		Days:       l.Days,
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedBy:  l.CreatedBy.String(),
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FullName
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	resp.RejectionReason = l.RejectionReason
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
