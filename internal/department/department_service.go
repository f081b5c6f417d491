package department

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	departmenterrors "sharda-hr/internal/department/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const departmentsCacheTTL = 30 * time.Minute

func CacheKey(companyID string) string {
	return "departments:all:" + companyID
}

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, companyID string) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, companyID, id string) (DepartmentResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateDepartmentRequest,
) (DepartmentResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CompanyID:   cid,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidate(ctx, companyID)
	s.logger.Info("department created", zap.String("department_id", dept.ID.String()))
	return mapToResponse(*dept), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
) ([]DepartmentResponse, error) {
	key := CacheKey(companyID)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	depts, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := mapToListResponse(depts)
	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, string(raw), departmentsCacheTTL).Err(); err != nil {
				s.logger.Warn("cache departments failed", zap.Error(err))
			}
		}
	}
	return resp, nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateDepartmentRequest,
) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return DepartmentResponse{}, err
	}

	dept.Name = strings.TrimSpace(req.Name)
	dept.Description = req.Description

	if err := qtx.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidate(ctx, companyID)
	return mapToResponse(*dept), nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, id string,
) error {
	if _, err := uuid.Parse(id); err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	inUse, err := qtx.CountActiveEmployees(ctx, companyID, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return departmenterrors.ErrDepartmentInUse
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx, companyID)
	return nil
}

func (s *service) invalidate(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CacheKey(companyID)).Err(); err != nil {
		s.logger.Warn("invalidate departments cache failed", zap.Error(err))
	}
}

func mapToResponse(dept Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:          dept.ID.String(),
		Name:        dept.Name,
		Description: dept.Description,
		CompanyID:   dept.CompanyID.String(),
	}
	if !dept.CreatedAt.IsZero() {
		resp.CreatedAt = dept.CreatedAt.Format(time.RFC3339)
	}
	if !dept.UpdatedAt.IsZero() {
		resp.UpdatedAt = dept.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
