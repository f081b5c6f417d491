package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"sharda-hr/internal/employee"
	employeeerrors "sharda-hr/internal/employee/errors"
	employeeMock "sharda-hr/internal/employee/mock"
	"sharda-hr/internal/events"
	"sharda-hr/internal/messaging/kafka"
	kafkaMock "sharda-hr/internal/messaging/kafka/mock"
	"sharda-hr/internal/shared/counter"
	counterMock "sharda-hr/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   employee.NewService(db, repo, counterRepo, outbox, rdb),
		repo:      repo,
		counter:   counterRepo,
		outbox:    outbox,
		redismock: redisMock,
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

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	deptID := uuid.NewString()

	baseReq := employee.CreateEmployeeRequest{
		FullName:      "Asha Rao",
		Email:         "Asha.Rao@Example.com",
		DepartmentID:  deptID,
		Designation:   "Accountant",
		DateOfJoining: "2026-04-01",
		PAN:           "abcde1234f",
		IFSC:          "HDFC0001234",
	}

	t.Run("success generates code and queues event", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, companyID, deptID).Return(true, nil)
		deps.counter.EXPECT().GetNextValue(ctx, companyID, counter.TypeEmployeeCode).Return(int64(7), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, "EMP-000007", e.EmployeeCode)
			assert.Equal(t, "asha.rao@example.com", e.Email)
			assert.Equal(t, "ABCDE1234F", e.PAN)
			assert.Equal(t, employee.StatusActive, e.EmploymentStatus)
			return nil
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)
			assert.Equal(t, events.EventEmployeeCreated, ev.EventType)
			var payload events.EmployeeCreatedEvent
			require.NoError(t, json.Unmarshal(ev.Payload, &payload))
			assert.Equal(t, "2026-04-01", payload.DateOfJoining)
			assert.Equal(t, companyID, payload.CompanyID)
			return nil
		})
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, baseReq)

		require.NoError(t, err)
		assert.Equal(t, "EMP-000007", resp.EmployeeCode)
		assert.Equal(t, deptID, resp.DepartmentID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("invalid date of joining", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		req := baseReq
		req.DateOfJoining = "01/04/2026"
		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateOfJoining)
	})

	t.Run("exited status cannot be assigned directly", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		req := baseReq
		req.EmploymentStatus = "exited"
		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatus)
	})

	t.Run("bad PAN", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		req := baseReq
		req.PAN = "12345"
		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidPAN)
	})

	t.Run("unknown department", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, companyID, deptID).Return(false, nil)

		_, err := deps.service.Create(ctx, companyID, baseReq)

		assert.ErrorIs(t, err, employeeerrors.ErrDepartmentNotFound)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, companyID, deptID).Return(true, nil)

		req := baseReq
		req.EmployeeCode = "E-1"
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	key := employee.GetEmployeeOptionsKey(companyID)

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached := []employee.EmployeeOption{{ID: "e-1", EmployeeCode: "EMP-000001", FullName: "A"}}
		raw, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(key).SetVal(string(raw))

		resp, err := deps.service.GetOptions(ctx, companyID)

		require.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindOptions(ctx, companyID).Return([]employee.Employee{
			{ID: id, EmployeeCode: "EMP-000002", FullName: "B"},
		}, nil)

		expected := []employee.EmployeeOption{{ID: id.String(), EmployeeCode: "EMP-000002", FullName: "B"}}
		raw, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(key, string(raw), time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID)

		require.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindOptions(ctx, companyID).Return(nil, errors.New("db down"))

		_, err := deps.service.GetOptions(ctx, companyID)
		assert.Error(t, err)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.GetByID(ctx, companyID, "nope")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, companyID, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Exit(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.New()
	doj := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id.String()).Return(&employee.Employee{
			ID: id, CompanyID: uuid.MustParse(companyID), DateOfJoining: doj, EmploymentStatus: employee.StatusNotice,
		}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, employee.StatusExited, e.EmploymentStatus)
			require.NotNil(t, e.DateOfExit)
			return nil
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.EventEmployeeExited, ev.EventType)
			return nil
		})
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Exit(ctx, companyID, id.String(), employee.ExitEmployeeRequest{DateOfExit: "2026-03-31"})

		require.NoError(t, err)
		assert.Equal(t, "2026-03-31", resp.DateOfExit)
		assert.Equal(t, employee.StatusExited, resp.EmploymentStatus)
	})

	t.Run("exit before joining", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id.String()).Return(&employee.Employee{
			ID: id, DateOfJoining: doj, EmploymentStatus: employee.StatusActive,
		}, nil)

		_, err := deps.service.Exit(ctx, companyID, id.String(), employee.ExitEmployeeRequest{DateOfExit: "2024-12-31"})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateOfExit)
	})

	t.Run("already exited", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id.String()).Return(&employee.Employee{
			ID: id, DateOfJoining: doj, EmploymentStatus: employee.StatusExited,
		}, nil)

		_, err := deps.service.Exit(ctx, companyID, id.String(), employee.ExitEmployeeRequest{DateOfExit: "2026-03-31"})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeExited)
	})
}

func TestEmployeeService_UpdateRejectsSelfManager(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.New()

	expectTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id.String()).Return(&employee.Employee{
		ID: id, EmployeeCode: "EMP-000001", EmploymentStatus: employee.StatusActive,
	}, nil)

	_, err := deps.service.Update(ctx, companyID, id.String(), employee.UpdateEmployeeRequest{
		FullName:      "X",
		Email:         "x@example.com",
		DateOfJoining: "2026-01-01",
		ManagerID:     id.String(),
	})
	assert.ErrorIs(t, err, employeeerrors.ErrSelfManager)
}

func TestEmployee_ActiveDuring(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	exit := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	assert.True(t, employee.Employee{DateOfJoining: start}.ActiveDuring(start, end))
	assert.False(t, employee.Employee{DateOfJoining: end.AddDate(0, 0, 1)}.ActiveDuring(start, end))
	assert.False(t, employee.Employee{DateOfJoining: exit.AddDate(-1, 0, 0), DateOfExit: &exit}.ActiveDuring(start, end))
}
