package contractlabour_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"sharda-hr/internal/contractlabour"
	contractlabourerrors "sharda-hr/internal/contractlabour/errors"
	"sharda-hr/internal/shared/counter"
	counterMock "sharda-hr/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeRepo struct {
	contractors map[string]*contractlabour.Contractor
	workers     map[string]*contractlabour.Worker
	attendance  []contractlabour.WorkerAttendance
	payrolls    []contractlabour.ContractPayroll
	activeCount int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		contractors: map[string]*contractlabour.Contractor{},
		workers:     map[string]*contractlabour.Worker{},
	}
}

func (f *fakeRepo) WithTx(tx *sql.Tx) contractlabour.Repository { return f }

func (f *fakeRepo) CreateContractor(ctx context.Context, c *contractlabour.Contractor) error {
	f.contractors[c.ID.String()] = c
	return nil
}

func (f *fakeRepo) FindContractor(ctx context.Context, companyID, id string) (*contractlabour.Contractor, error) {
	if c, ok := f.contractors[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListContractors(ctx context.Context, companyID string) ([]contractlabour.Contractor, error) {
	var list []contractlabour.Contractor
	for _, c := range f.contractors {
		list = append(list, *c)
	}
	return list, nil
}

func (f *fakeRepo) UpdateContractor(ctx context.Context, c *contractlabour.Contractor) error {
	f.contractors[c.ID.String()] = c
	return nil
}

func (f *fakeRepo) DeleteContractor(ctx context.Context, companyID, id string) error {
	if _, ok := f.contractors[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.contractors, id)
	return nil
}

func (f *fakeRepo) CountActiveWorkers(ctx context.Context, companyID, contractorID string) (int64, error) {
	return f.activeCount, nil
}

func (f *fakeRepo) CreateWorker(ctx context.Context, w *contractlabour.Worker) error {
	f.workers[w.ID.String()] = w
	return nil
}

func (f *fakeRepo) FindWorker(ctx context.Context, companyID, id string) (*contractlabour.Worker, error) {
	if w, ok := f.workers[id]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindWorkers(ctx context.Context, companyID string, ids []string) ([]contractlabour.Worker, error) {
	var list []contractlabour.Worker
	for _, id := range ids {
		if w, ok := f.workers[id]; ok {
			list = append(list, *w)
		}
	}
	return list, nil
}

func (f *fakeRepo) ListWorkers(ctx context.Context, companyID string, filter contractlabour.WorkerFilter) ([]contractlabour.Worker, error) {
	var list []contractlabour.Worker
	for _, w := range f.workers {
		list = append(list, *w)
	}
	return list, nil
}

func (f *fakeRepo) UpdateWorker(ctx context.Context, w *contractlabour.Worker) error {
	f.workers[w.ID.String()] = w
	return nil
}

func (f *fakeRepo) DeleteWorker(ctx context.Context, companyID, id string) error {
	if _, ok := f.workers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.workers, id)
	return nil
}

func (f *fakeRepo) UpsertAttendance(ctx context.Context, a *contractlabour.WorkerAttendance) error {
	f.attendance = append(f.attendance, *a)
	return nil
}

func (f *fakeRepo) ListAttendance(ctx context.Context, companyID string, start, end time.Time, workerID, contractorID string) ([]contractlabour.WorkerAttendance, error) {
	var rows []contractlabour.WorkerAttendance
	for _, a := range f.attendance {
		if a.AttendanceDate.Before(start) || a.AttendanceDate.After(end) {
			continue
		}
		rows = append(rows, a)
	}
	return rows, nil
}

func (f *fakeRepo) ListPayrolls(ctx context.Context, companyID, month, contractorID string) ([]contractlabour.ContractPayroll, error) {
	var rows []contractlabour.ContractPayroll
	for _, p := range f.payrolls {
		if p.Month == month {
			rows = append(rows, p)
		}
	}
	return rows, nil
}

func (f *fakeRepo) CountPayrolls(ctx context.Context, companyID, month string) (int64, error) {
	rows, _ := f.ListPayrolls(ctx, companyID, month, "")
	return int64(len(rows)), nil
}

func (f *fakeRepo) CreatePayrolls(ctx context.Context, rows []contractlabour.ContractPayroll) error {
	f.payrolls = append(f.payrolls, rows...)
	return nil
}

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service contractlabour.Service
	repo    *fakeRepo
	counter *counterMock.MockRepository
}

func setup(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	counterRepo := counterMock.NewMockRepository(ctrl)
	repo := newFakeRepo()

	return &serviceDeps{
		sqlMock: sqlMock,
		service: contractlabour.NewService(db, repo, counterRepo),
		repo:    repo,
		counter: counterRepo,
	}
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

func seedWorker(repo *fakeRepo, companyID string, active bool) *contractlabour.Worker {
	contractor := &contractlabour.Contractor{ID: uuid.New(), CompanyID: uuid.MustParse(companyID), Name: "Shree Manpower", Active: true}
	repo.contractors[contractor.ID.String()] = contractor
	w := &contractlabour.Worker{
		ID:           uuid.New(),
		CompanyID:    contractor.CompanyID,
		ContractorID: contractor.ID,
		WorkerCode:   "CW-00001",
		FullName:     "Ramesh",
		DailyWage:    60000,
		OTHourlyRate: 10000,
		Active:       active,
		Contractor:   contractor,
	}
	repo.workers[w.ID.String()] = w
	return w
}

func TestContractLabourService_Contractors(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("create normalises gstin", func(t *testing.T) {
		deps := setup(t)
		resp, err := deps.service.CreateContractor(ctx, companyID, contractlabour.ContractorRequest{
			Name:  " Shree Manpower ",
			GSTIN: "27aapfu0939f1zv",
		})
		require.NoError(t, err)
		assert.Equal(t, "Shree Manpower", resp.Name)
		assert.Equal(t, "27AAPFU0939F1ZV", resp.GSTIN)
		assert.True(t, resp.Active)
	})

	t.Run("delete is blocked by active workers", func(t *testing.T) {
		deps := setup(t)
		w := seedWorker(deps.repo, companyID, true)
		deps.repo.activeCount = 1

		err := deps.service.DeleteContractor(ctx, companyID, w.ContractorID.String())
		assert.ErrorIs(t, err, contractlabourerrors.ErrContractorHasWorkers)
	})

	t.Run("missing contractor", func(t *testing.T) {
		deps := setup(t)
		_, err := deps.service.GetContractor(ctx, companyID, uuid.NewString())
		assert.ErrorIs(t, err, contractlabourerrors.ErrContractorNotFound)
	})
}

func TestContractLabourService_CreateWorker(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("gets the next worker code", func(t *testing.T) {
		deps := setup(t)
		existing := seedWorker(deps.repo, companyID, true)
		deps.counter.EXPECT().GetNextValue(ctx, companyID, counter.TypeWorkerCode).Return(int64(42), nil)

		resp, err := deps.service.CreateWorker(ctx, companyID, contractlabour.CreateWorkerRequest{
			ContractorID: existing.ContractorID.String(),
			FullName:     "Suresh",
			DailyWage:    55000,
		})
		require.NoError(t, err)
		assert.Equal(t, "CW-00042", resp.WorkerCode)
		assert.Equal(t, "Shree Manpower", resp.ContractorName)
	})

	t.Run("inactive contractor", func(t *testing.T) {
		deps := setup(t)
		existing := seedWorker(deps.repo, companyID, true)
		deps.repo.contractors[existing.ContractorID.String()].Active = false

		_, err := deps.service.CreateWorker(ctx, companyID, contractlabour.CreateWorkerRequest{
			ContractorID: existing.ContractorID.String(),
			FullName:     "Suresh",
			DailyWage:    55000,
		})
		assert.ErrorIs(t, err, contractlabourerrors.ErrContractorInactive)
	})
}

func TestContractLabourService_BulkMarkAttendance(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("stores the batch", func(t *testing.T) {
		deps := setup(t)
		w := seedWorker(deps.repo, companyID, true)
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.BulkMarkAttendance(ctx, companyID, contractlabour.BulkMarkAttendanceRequest{
			Entries: []contractlabour.MarkAttendanceRequest{
				{WorkerID: w.ID.String(), Date: "2026-02-02", Status: "present", OvertimeHours: decimal.NewFromInt(2)},
				{WorkerID: w.ID.String(), Date: "2026-02-03", Status: contractlabour.AttendanceHalfDay},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Saved)
		assert.Equal(t, contractlabour.AttendancePresent, deps.repo.attendance[0].Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	cases := []struct {
		name   string
		active bool
		entry  func(w *contractlabour.Worker) contractlabour.MarkAttendanceRequest
		want   error
	}{
		{
			name:   "future date",
			active: true,
			entry: func(w *contractlabour.Worker) contractlabour.MarkAttendanceRequest {
				return contractlabour.MarkAttendanceRequest{WorkerID: w.ID.String(), Date: time.Now().AddDate(0, 0, 2).Format("2006-01-02"), Status: "PRESENT"}
			},
			want: contractlabourerrors.ErrFutureDate,
		},
		{
			name:   "unknown status",
			active: true,
			entry: func(w *contractlabour.Worker) contractlabour.MarkAttendanceRequest {
				return contractlabour.MarkAttendanceRequest{WorkerID: w.ID.String(), Date: "2026-02-02", Status: "LEAVE"}
			},
			want: contractlabourerrors.ErrInvalidStatus,
		},
		{
			name:   "too much overtime",
			active: true,
			entry: func(w *contractlabour.Worker) contractlabour.MarkAttendanceRequest {
				return contractlabour.MarkAttendanceRequest{WorkerID: w.ID.String(), Date: "2026-02-02", Status: "PRESENT", OvertimeHours: decimal.NewFromInt(17)}
			},
			want: contractlabourerrors.ErrInvalidOvertime,
		},
		{
			name:   "inactive worker",
			active: false,
			entry: func(w *contractlabour.Worker) contractlabour.MarkAttendanceRequest {
				return contractlabour.MarkAttendanceRequest{WorkerID: w.ID.String(), Date: "2026-02-02", Status: "PRESENT"}
			},
			want: contractlabourerrors.ErrWorkerInactive,
		},
		{
			name:   "unknown worker",
			active: true,
			entry: func(w *contractlabour.Worker) contractlabour.MarkAttendanceRequest {
				return contractlabour.MarkAttendanceRequest{WorkerID: uuid.NewString(), Date: "2026-02-02", Status: "PRESENT"}
			},
			want: contractlabourerrors.ErrWorkerNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setup(t)
			w := seedWorker(deps.repo, companyID, tc.active)

			_, err := deps.service.BulkMarkAttendance(ctx, companyID, contractlabour.BulkMarkAttendanceRequest{
				Entries: []contractlabour.MarkAttendanceRequest{tc.entry(w)},
			})
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, deps.repo.attendance)
		})
	}

	t.Run("finalized month is closed", func(t *testing.T) {
		deps := setup(t)
		w := seedWorker(deps.repo, companyID, true)
		deps.repo.payrolls = []contractlabour.ContractPayroll{{ID: uuid.New(), WorkerID: w.ID, Month: "2026-01"}}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.BulkMarkAttendance(ctx, companyID, contractlabour.BulkMarkAttendanceRequest{
			Entries: []contractlabour.MarkAttendanceRequest{
				{WorkerID: w.ID.String(), Date: "2026-02-02", Status: "PRESENT"},
				{WorkerID: w.ID.String(), Date: "2026-01-30", Status: "ABSENT"},
			},
		})
		assert.ErrorIs(t, err, contractlabourerrors.ErrPayrollFinalized)
		assert.Empty(t, deps.repo.attendance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate worker and date", func(t *testing.T) {
		deps := setup(t)
		w := seedWorker(deps.repo, companyID, true)
		entry := contractlabour.MarkAttendanceRequest{WorkerID: w.ID.String(), Date: "2026-02-02", Status: "PRESENT"}

		_, err := deps.service.BulkMarkAttendance(ctx, companyID, contractlabour.BulkMarkAttendanceRequest{
			Entries: []contractlabour.MarkAttendanceRequest{entry, entry},
		})
		assert.ErrorIs(t, err, contractlabourerrors.ErrDuplicateEntry)
	})
}

func TestContractLabourService_Payroll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	actorID := uuid.NewString()

	seedMonth := func(repo *fakeRepo, w *contractlabour.Worker) {
		for d := 1; d <= 3; d++ {
			status := contractlabour.AttendancePresent
			if d == 3 {
				status = contractlabour.AttendanceHalfDay
			}
			repo.attendance = append(repo.attendance, contractlabour.WorkerAttendance{
				ID:             uuid.New(),
				WorkerID:       w.ID,
				AttendanceDate: time.Date(2026, 2, d, 0, 0, 0, 0, time.UTC),
				Status:         status,
				OvertimeHours:  decimal.NewFromInt(1),
			})
		}
	}

	t.Run("preview computes live", func(t *testing.T) {
		deps := setup(t)
		w := seedWorker(deps.repo, companyID, true)
		seedMonth(deps.repo, w)

		resp, err := deps.service.PreviewPayroll(ctx, companyID, contractlabour.PayrollRequest{Month: "2026-02"})
		require.NoError(t, err)
		assert.False(t, resp.Finalized)
		require.Len(t, resp.Lines, 1)
		// 2.5 days * 600 + 3h * 100
		assert.Equal(t, int64(180000), resp.Lines[0].TotalWage)
		assert.Equal(t, int64(180000), resp.TotalWage)
	})

	t.Run("finalize stores rows once", func(t *testing.T) {
		deps := setup(t)
		w := seedWorker(deps.repo, companyID, true)
		seedMonth(deps.repo, w)

		expectTx(t, deps.sqlMock, true)
		resp, err := deps.service.FinalizePayroll(ctx, companyID, actorID, "2026-02")
		require.NoError(t, err)
		assert.True(t, resp.Finalized)
		require.Len(t, deps.repo.payrolls, 1)
		assert.Equal(t, "2026-02", deps.repo.payrolls[0].Month)

		// Later attendance edits do not change a finalized month.
		deps.repo.attendance = append(deps.repo.attendance, contractlabour.WorkerAttendance{
			WorkerID: w.ID, AttendanceDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), Status: contractlabour.AttendancePresent,
		})
		preview, err := deps.service.PreviewPayroll(ctx, companyID, contractlabour.PayrollRequest{Month: "2026-02"})
		require.NoError(t, err)
		assert.True(t, preview.Finalized)
		assert.Equal(t, int64(180000), preview.TotalWage)
		assert.Equal(t, "CW-00001", preview.Lines[0].WorkerCode)

		expectTx(t, deps.sqlMock, false)
		_, err = deps.service.FinalizePayroll(ctx, companyID, actorID, "2026-02")
		assert.ErrorIs(t, err, contractlabourerrors.ErrPayrollFinalized)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("empty month", func(t *testing.T) {
		deps := setup(t)
		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.FinalizePayroll(ctx, companyID, actorID, "2026-02")
		assert.ErrorIs(t, err, contractlabourerrors.ErrNothingToFinalize)
	})

	t.Run("bad month", func(t *testing.T) {
		deps := setup(t)
		_, err := deps.service.PreviewPayroll(ctx, companyID, contractlabour.PayrollRequest{Month: "02-2026"})
		assert.ErrorIs(t, err, contractlabourerrors.ErrInvalidMonth)
	})
}
