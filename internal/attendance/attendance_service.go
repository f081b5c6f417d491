package attendance

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	attendanceerrors "sharda-hr/internal/attendance/errors"
	"sharda-hr/internal/settings"
	"sharda-hr/internal/shared/contextutil"
	"sharda-hr/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SettingsReader is the part of the settings module attendance needs.
type SettingsReader interface {
	Get(ctx context.Context, companyID string) (settings.SettingsResponse, error)
}

type Service interface {
	ClockIn(ctx context.Context, companyID, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, companyID, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	Mark(ctx context.Context, companyID string, req MarkAttendanceRequest) (AttendanceResponse, error)
	BulkMark(ctx context.Context, companyID string, req BulkMarkRequest) (BulkMarkResponse, error)
	// BulkMarkInTx leaves the commit to the caller.
	BulkMarkInTx(ctx context.Context, tx *sql.Tx, companyID, source string, entries []MarkAttendanceRequest) (int, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]AttendanceResponse, error)
	MonthlySummary(ctx context.Context, companyID, month, employeeID string) ([]MonthlySummary, error)
	EmployeeSummary(ctx context.Context, companyID, employeeID string, month dateutil.Month) (MonthlySummary, error)
	// MarkLeaveDaysInTx writes one row per day with the given status. Rows it writes carry SourceLeave.
	MarkLeaveDaysInTx(ctx context.Context, tx *sql.Tx, companyID, employeeID, status string, start, end time.Time) error
	ClearLeaveDaysInTx(ctx context.Context, tx *sql.Tx, companyID, employeeID string, start, end time.Time) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	settings SettingsReader
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, settingsReader SettingsReader, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, settings: settingsReader, now: time.Now, logger: l}
}

// localDay is the company-local calendar day of t, as a UTC date.
func localDay(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *service) ClockIn(ctx context.Context, companyID, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	cid, eid, err := parseIDs(companyID, employeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	cfg, err := s.settings.Get(ctx, companyID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := localDay(now, cfg.Location())

	existing, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	row := &Attendance{
		ID:             uuid.New(),
		CompanyID:      cid,
		EmployeeID:     eid,
		AttendanceDate: today,
		Status:         StatusPresent,
		Late:           now.After(cfg.LateCutoffOn(now)),
		ClockIn:        &now,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Source:         SourceSelf,
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("clock in",
		zap.String("employee_id", employeeID),
		zap.Bool("late", row.Late),
	)
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, companyID, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	if _, _, err := parseIDs(companyID, employeeID); err != nil {
		return AttendanceResponse{}, err
	}

	cfg, err := s.settings.Get(ctx, companyID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := localDay(now, cfg.Location())

	row, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrClockInNotFound
		}
		return AttendanceResponse{}, err
	}
	if row.ClockIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrClockInNotFound
	}
	if row.ClockOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	row.ClockOut = &now
	row.WorkedMinutes = int(now.Sub(*row.ClockIn).Minutes())
	if float64(row.WorkedMinutes) < cfg.HalfDayThresholdHours*60 {
		row.Status = StatusHalfDay
	}
	if req.Latitude != nil {
		row.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		row.Longitude = req.Longitude
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Mark(ctx context.Context, companyID string, req MarkAttendanceRequest) (AttendanceResponse, error) {
	row, err := buildMarked(companyID, SourceManual, req)
	if err != nil {
		return AttendanceResponse{}, err
	}

	ok, err := s.repo.EmployeeInCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if !ok {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	if err := s.repo.Upsert(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) BulkMark(ctx context.Context, companyID string, req BulkMarkRequest) (BulkMarkResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BulkMarkResponse{}, err
	}
	defer tx.Rollback()

	n, err := s.BulkMarkInTx(ctx, tx, companyID, SourceManual, req.Entries)
	if err != nil {
		return BulkMarkResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return BulkMarkResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("attendance bulk marked", zap.Int("rows", n))
	return BulkMarkResponse{Saved: n}, nil
}

func (s *service) BulkMarkInTx(ctx context.Context, tx *sql.Tx, companyID, source string, entries []MarkAttendanceRequest) (int, error) {
	qtx := s.repo.WithTx(tx)
	seen := make(map[string]struct{}, len(entries))
	known := make(map[string]bool)

	for _, e := range entries {
		row, err := buildMarked(companyID, source, e)
		if err != nil {
			return 0, err
		}

		key := e.EmployeeID + "|" + row.AttendanceDate.Format(dateutil.DateLayout)
		if _, dup := seen[key]; dup {
			return 0, attendanceerrors.ErrDuplicateEntry
		}
		seen[key] = struct{}{}

		ok, checked := known[e.EmployeeID]
		if !checked {
			ok, err = qtx.EmployeeInCompany(ctx, companyID, e.EmployeeID)
			if err != nil {
				return 0, err
			}
			known[e.EmployeeID] = ok
		}
		if !ok {
			return 0, attendanceerrors.ErrEmployeeNotFound
		}

		if err := qtx.Upsert(ctx, row); err != nil {
			return 0, mapRepositoryError(err)
		}
	}
	return len(entries), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]AttendanceResponse, error) {
	month := dateutil.MonthOf(s.now())
	if filter.Month != "" {
		m, err := dateutil.ParseMonth(filter.Month)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidMonth
		}
		month = m
	}
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
	}

	rows, err := s.repo.FindAll(ctx, companyID, filter.EmployeeID, month.Start(), month.End())
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) MonthlySummary(ctx context.Context, companyID, month, employeeID string) ([]MonthlySummary, error) {
	m, err := dateutil.ParseMonth(month)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidMonth
	}
	rows, err := s.repo.FindAll(ctx, companyID, employeeID, m.Start(), m.End())
	if err != nil {
		return nil, err
	}
	return Summarize(m, rows), nil
}

func (s *service) EmployeeSummary(ctx context.Context, companyID, employeeID string, month dateutil.Month) (MonthlySummary, error) {
	rows, err := s.repo.FindAll(ctx, companyID, employeeID, month.Start(), month.End())
	if err != nil {
		return MonthlySummary{}, err
	}
	for _, sum := range Summarize(month, rows) {
		if sum.EmployeeID == employeeID {
			return sum, nil
		}
	}
	return MonthlySummary{EmployeeID: employeeID, Month: month.String()}, nil
}

func (s *service) MarkLeaveDaysInTx(ctx context.Context, tx *sql.Tx, companyID, employeeID, status string, start, end time.Time) error {
	cid, eid, err := parseIDs(companyID, employeeID)
	if err != nil {
		return err
	}
	if !IsStatus(status) {
		return attendanceerrors.ErrInvalidStatus
	}
	qtx := s.repo.WithTx(tx)

	var upsertErr error
	dateutil.EachDay(start, end, func(day time.Time) {
		if upsertErr != nil {
			return
		}
		upsertErr = qtx.Upsert(ctx, &Attendance{
			ID:             uuid.New(),
			CompanyID:      cid,
			EmployeeID:     eid,
			AttendanceDate: day,
			Status:         status,
			Source:         SourceLeave,
		})
	})
	return upsertErr
}

func (s *service) ClearLeaveDaysInTx(ctx context.Context, tx *sql.Tx, companyID, employeeID string, start, end time.Time) error {
	_, err := s.repo.WithTx(tx).DeleteLeaveDays(ctx, companyID, employeeID, dateutil.TruncateDay(start), dateutil.TruncateDay(end))
	return err
}

// Summarize folds attendance rows into one summary per employee, ordered by employee code.
func Summarize(month dateutil.Month, rows []Attendance) []MonthlySummary {
	byEmployee := make(map[uuid.UUID]*MonthlySummary)
	var order []uuid.UUID

	for _, r := range rows {
		if !month.Contains(r.AttendanceDate) {
			continue
		}
		sum, ok := byEmployee[r.EmployeeID]
		if !ok {
			sum = &MonthlySummary{EmployeeID: r.EmployeeID.String(), Month: month.String()}
			if r.Employee != nil {
				sum.EmployeeCode = r.Employee.EmployeeCode
				sum.EmployeeName = r.Employee.FullName
			}
			byEmployee[r.EmployeeID] = sum
			order = append(order, r.EmployeeID)
		}

		switch r.Status {
		case StatusPresent:
			sum.Present++
		case StatusHalfDay:
			sum.HalfDay++
		case StatusAbsent:
			sum.Absent++
		case StatusLeave:
			sum.Leave++
		case StatusHoliday:
			sum.Holiday++
		case StatusWeekOff:
			sum.WeekOff++
		}
		if r.Late {
			sum.Late++
		}
	}

	out := make([]MonthlySummary, 0, len(order))
	for _, id := range order {
		sum := byEmployee[id]
		sum.PayableDays = float64(sum.Present+sum.Leave+sum.Holiday+sum.WeekOff) + 0.5*float64(sum.HalfDay)
		out = append(out, *sum)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EmployeeCode != out[j].EmployeeCode {
			return out[i].EmployeeCode < out[j].EmployeeCode
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out
}

func buildMarked(companyID, source string, req MarkAttendanceRequest) (*Attendance, error) {
	cid, eid, err := parseIDs(companyID, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	date, err := dateutil.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if !IsStatus(status) {
		return nil, attendanceerrors.ErrInvalidStatus
	}
	return &Attendance{
		ID:             uuid.New(),
		CompanyID:      cid,
		EmployeeID:     eid,
		AttendanceDate: date,
		Status:         status,
		Late:           req.Late && (status == StatusPresent || status == StatusHalfDay),
		Source:         source,
		Notes:          req.Notes,
	}, nil
}

func parseIDs(companyID, employeeID string) (uuid.UUID, uuid.UUID, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, attendanceerrors.ErrInvalidEmployeeID
	}
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, attendanceerrors.ErrInvalidEmployeeID
	}
	return cid, eid, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format(dateutil.DateLayout),
		Status:         a.Status,
		Late:           a.Late,
		WorkedMinutes:  a.WorkedMinutes,
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
		Source:         a.Source,
		Notes:          a.Notes,
	}
	if a.Employee != nil {
		resp.EmployeeCode = a.Employee.EmployeeCode
		resp.EmployeeName = a.Employee.FullName
	}
	if a.ClockIn != nil {
		v := a.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &v
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}
