package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	attendanceerrors "sharda-hr/internal/attendance/errors"
	"sharda-hr/internal/settings"
	"sharda-hr/internal/shared/dateutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn                func(ctx context.Context, a *Attendance) error
	upsertFn                func(ctx context.Context, a *Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error)
	findAllFn               func(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]Attendance, error)
	updateFn                func(ctx context.Context, a *Attendance) error
	employeeInCompanyFn     func(ctx context.Context, companyID, employeeID string) (bool, error)
	deleteLeaveDaysFn       func(ctx context.Context, companyID, employeeID string, start, end time.Time) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) Upsert(ctx context.Context, a *Attendance) error { return f.upsertFn(ctx, a) }
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, companyID, employeeID, date)
}
func (f *fakeRepo) FindAll(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]Attendance, error) {
	return f.findAllFn(ctx, companyID, employeeID, start, end)
}
func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error { return f.updateFn(ctx, a) }
func (f *fakeRepo) EmployeeInCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	return f.employeeInCompanyFn(ctx, companyID, employeeID)
}
func (f *fakeRepo) DeleteLeaveDays(ctx context.Context, companyID, employeeID string, start, end time.Time) (int64, error) {
	return f.deleteLeaveDaysFn(ctx, companyID, employeeID, start, end)
}

type fakeSettings struct{}

func (fakeSettings) Get(ctx context.Context, companyID string) (settings.SettingsResponse, error) {
	return settings.SettingsResponse{CompanySettings: settings.MustEmbeddedDefaults()}, nil
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func newTestService(t *testing.T, repo Repository, now time.Time) (*service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewService(db, repo, fakeSettings{}).(*service)
	svc.now = func() time.Time { return now }
	return svc, mock
}

func TestService_ClockInAndClockOut(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	var saved *Attendance
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = a; return nil }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { saved = a; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
		if saved == nil {
			return nil, gorm.ErrRecordNotFound
		}
		return saved, nil
	}

	// 09:45 in Asia/Kolkata, after the 09:30 cutoff.
	clockIn := time.Date(2026, 3, 2, 4, 15, 0, 0, time.UTC)
	svc, mock := newTestService(t, repo, clockIn)

	expectTx(t, mock, true)
	inResp, err := svc.ClockIn(ctx, companyID, employeeID, ClockInRequest{})
	require.NoError(t, err)
	assert.True(t, inResp.Late)
	assert.Equal(t, "2026-03-02", inResp.AttendanceDate)
	assert.Equal(t, StatusPresent, inResp.Status)
	assert.Equal(t, SourceSelf, inResp.Source)

	svc.now = func() time.Time { return clockIn.Add(3 * time.Hour) }
	expectTx(t, mock, true)
	outResp, err := svc.ClockOut(ctx, companyID, employeeID, ClockOutRequest{})
	require.NoError(t, err)
	assert.NotNil(t, outResp.ClockOut)
	assert.Equal(t, 180, outResp.WorkedMinutes)
	assert.Equal(t, StatusHalfDay, outResp.Status)

	expectTx(t, mock, false)
	_, err = svc.ClockOut(ctx, companyID, employeeID, ClockOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedOut)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_OnTimeAndDuplicate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("before cutoff is not late", func(t *testing.T) {
		repo := &fakeRepo{
			createFn: func(ctx context.Context, a *Attendance) error { return nil },
			findByEmployeeAndDateFn: func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		// 09:00 IST
		svc, mock := newTestService(t, repo, time.Date(2026, 3, 2, 3, 30, 0, 0, time.UTC))

		expectTx(t, mock, true)
		resp, err := svc.ClockIn(ctx, companyID, employeeID, ClockInRequest{})
		require.NoError(t, err)
		assert.False(t, resp.Late)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second clock in is rejected", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmployeeAndDateFn: func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
				return &Attendance{ID: uuid.New()}, nil
			},
		}
		svc, mock := newTestService(t, repo, time.Now())

		expectTx(t, mock, false)
		_, err := svc.ClockIn(ctx, companyID, employeeID, ClockInRequest{})
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clock out without clock in", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmployeeAndDateFn: func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc, mock := newTestService(t, repo, time.Now())

		expectTx(t, mock, false)
		_, err := svc.ClockOut(ctx, companyID, employeeID, ClockOutRequest{})
		assert.ErrorIs(t, err, attendanceerrors.ErrClockInNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestService_Mark(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	var upserted *Attendance
	repo := &fakeRepo{
		employeeInCompanyFn: func(ctx context.Context, cid, eid string) (bool, error) { return eid == employeeID, nil },
		upsertFn:            func(ctx context.Context, a *Attendance) error { upserted = a; return nil },
	}
	svc, _ := newTestService(t, repo, time.Now())

	resp, err := svc.Mark(ctx, companyID, MarkAttendanceRequest{EmployeeID: employeeID, Date: "2026-03-05", Status: "week_off", Late: true})
	require.NoError(t, err)
	assert.Equal(t, StatusWeekOff, resp.Status)
	assert.False(t, upserted.Late)
	assert.Equal(t, SourceManual, upserted.Source)

	_, err = svc.Mark(ctx, companyID, MarkAttendanceRequest{EmployeeID: employeeID, Date: "2026-03-05", Status: "LATE"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)

	_, err = svc.Mark(ctx, companyID, MarkAttendanceRequest{EmployeeID: employeeID, Date: "05/03/2026", Status: StatusAbsent})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)

	_, err = svc.Mark(ctx, companyID, MarkAttendanceRequest{EmployeeID: uuid.NewString(), Date: "2026-03-05", Status: StatusAbsent})
	assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
}

func TestService_BulkMark(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	checks := 0
	upserts := 0
	repo := &fakeRepo{
		employeeInCompanyFn: func(ctx context.Context, cid, eid string) (bool, error) { checks++; return true, nil },
		upsertFn:            func(ctx context.Context, a *Attendance) error { upserts++; return nil },
	}
	svc, mock := newTestService(t, repo, time.Now())

	expectTx(t, mock, true)
	resp, err := svc.BulkMark(ctx, companyID, BulkMarkRequest{Entries: []MarkAttendanceRequest{
		{EmployeeID: employeeID, Date: "2026-03-01", Status: StatusPresent},
		{EmployeeID: employeeID, Date: "2026-03-02", Status: StatusHalfDay},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Saved)
	assert.Equal(t, 1, checks)
	assert.Equal(t, 2, upserts)

	expectTx(t, mock, false)
	_, err = svc.BulkMark(ctx, companyID, BulkMarkRequest{Entries: []MarkAttendanceRequest{
		{EmployeeID: employeeID, Date: "2026-03-01", Status: StatusPresent},
		{EmployeeID: employeeID, Date: "2026-03-01", Status: StatusAbsent},
	}})
	assert.ErrorIs(t, err, attendanceerrors.ErrDuplicateEntry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_MarkLeaveDaysInTx(t *testing.T) {
	ctx := context.Background()
	var days []string
	repo := &fakeRepo{
		upsertFn: func(ctx context.Context, a *Attendance) error {
			assert.Equal(t, StatusLeave, a.Status)
			assert.Equal(t, SourceLeave, a.Source)
			days = append(days, a.AttendanceDate.Format(dateutil.DateLayout))
			return nil
		},
	}
	svc, _ := newTestService(t, repo, time.Now())

	err := svc.MarkLeaveDaysInTx(ctx, nil, uuid.NewString(), uuid.NewString(), StatusLeave,
		time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC), time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-30", "2026-03-31", "2026-04-01"}, days)
}

func TestSummarize(t *testing.T) {
	month, _ := dateutil.NewMonth(2026, 3)
	a, b := uuid.New(), uuid.New()
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	rows := []Attendance{
		{EmployeeID: b, AttendanceDate: day(1), Status: StatusPresent, Employee: &EmployeeRef{EmployeeCode: "EMP-000002"}},
		{EmployeeID: a, AttendanceDate: day(1), Status: StatusPresent, Late: true, Employee: &EmployeeRef{EmployeeCode: "EMP-000001"}},
		{EmployeeID: a, AttendanceDate: day(2), Status: StatusHalfDay},
		{EmployeeID: a, AttendanceDate: day(3), Status: StatusAbsent},
		{EmployeeID: a, AttendanceDate: day(4), Status: StatusLeave},
		{EmployeeID: a, AttendanceDate: day(5), Status: StatusHoliday},
		{EmployeeID: a, AttendanceDate: day(6), Status: StatusWeekOff},
		{EmployeeID: a, AttendanceDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), Status: StatusPresent},
	}

	got := Summarize(month, rows)

	require.Len(t, got, 2)
	assert.Equal(t, "EMP-000001", got[0].EmployeeCode)
	assert.Equal(t, 1, got[0].Present)
	assert.Equal(t, 1, got[0].HalfDay)
	assert.Equal(t, 1, got[0].Absent)
	assert.Equal(t, 1, got[0].Late)
	assert.Equal(t, 4.5, got[0].PayableDays)
	assert.Equal(t, "2026-03", got[0].Month)
	assert.Equal(t, 1.0, got[1].PayableDays)
}
