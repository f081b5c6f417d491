package department_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"sharda-hr/internal/department"
	departmenterrors "sharda-hr/internal/department/errors"
	departmentMock "sharda-hr/internal/department/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   department.Service
	repo      *departmentMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   department.NewService(db, repo, dbRedis),
		repo:      repo,
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

func TestDepartmentService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyID := uuid.NewString()
	cacheKey := department.CacheKey(companyID)

	t.Run("cache hit skips repository", func(t *testing.T) {
		expected := []department.DepartmentResponse{{ID: "d-1", Name: "HR"}, {ID: "d-2", Name: "IT"}}
		raw, _ := json.Marshal(expected)
		deps.redismock.ExpectGet(cacheKey).SetVal(string(raw))

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "HR", resp[0].Name)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		id := uuid.New()
		cid := uuid.MustParse(companyID)
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID).
			Return([]department.Department{{ID: id, CompanyID: cid, Name: "Finance"}}, nil)

		raw, _ := json.Marshal([]department.DepartmentResponse{{ID: id.String(), CompanyID: companyID, Name: "Finance"}})
		deps.redismock.ExpectSet(cacheKey, string(raw), 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Finance", resp[0].Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAllByCompany(ctx, companyID).Return(nil, errors.New("db connection error"))

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := department.CreateDepartmentRequest{Name: "  HR ", Description: "People"}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d *department.Department) error {
				assert.Equal(t, "HR", d.Name)
				assert.Equal(t, companyID, d.CompanyID.String())
				return nil
			})
		deps.redismock.ExpectDel(department.CacheKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "People", resp.Description)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate name rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(departmenterrors.ErrDepartmentNameExists)

		_, err := deps.service.Create(ctx, companyID, department.CreateDepartmentRequest{Name: "HR"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyID := uuid.NewString()
	targetID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, targetID).
			Return(&department.Department{ID: uuid.MustParse(targetID), Name: "HR"}, nil)

		resp, err := deps.service.GetByID(ctx, companyID, targetID)

		assert.NoError(t, err)
		assert.Equal(t, targetID, resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, targetID).
			Return(nil, departmenterrors.ErrDepartmentNotFound)

		resp, err := deps.service.GetByID(ctx, companyID, targetID)

		assert.Empty(t, resp.ID)
		assert.True(t, errors.Is(err, departmenterrors.ErrDepartmentNotFound))
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := deps.service.GetByID(ctx, companyID, "nope")
		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyID := uuid.NewString()
	targetID := uuid.New()

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().
		FindByIDAndCompany(ctx, companyID, targetID.String()).
		Return(&department.Department{ID: targetID, Name: "HR"}, nil)
	deps.repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, d *department.Department) error {
			assert.Equal(t, "People Ops", d.Name)
			return nil
		})
	deps.redismock.ExpectDel(department.CacheKey(companyID)).SetVal(1)

	resp, err := deps.service.Update(ctx, companyID, targetID.String(), department.UpdateDepartmentRequest{Name: "People Ops"})

	assert.NoError(t, err)
	assert.Equal(t, "People Ops", resp.Name)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	targetID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountActiveEmployees(ctx, companyID, targetID).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, companyID, targetID).Return(nil)
		deps.redismock.ExpectDel(department.CacheKey(companyID)).SetVal(1)

		assert.NoError(t, deps.service.Delete(ctx, companyID, targetID))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("still in use", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountActiveEmployees(ctx, companyID, targetID).Return(int64(3), nil)

		err := deps.service.Delete(ctx, companyID, targetID)
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentInUse)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
