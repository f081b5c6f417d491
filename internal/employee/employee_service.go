package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	employeeerrors "sharda-hr/internal/employee/errors"
	"sharda-hr/internal/events"
	"sharda-hr/internal/messaging/kafka"
	"sharda-hr/internal/shared/contextutil"
	"sharda-hr/internal/shared/counter"
	"sharda-hr/internal/shared/dateutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKeyPrefix = "employees:options:"
	employeeOptionsTTL       = time.Hour
)

var (
	panPattern  = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

func GetEmployeeOptionsKey(companyID string) string {
	return EmployeeOptionsKeyPrefix + companyID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	// CreateInTx runs inside a caller-owned transaction and leaves commit and cache invalidation to the caller.
	CreateInTx(ctx context.Context, tx *sql.Tx, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]EmployeeOption, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	GetByCode(ctx context.Context, companyID, code string) (EmployeeResponse, error)
	GetDirectReports(ctx context.Context, companyID, managerID string) ([]EmployeeResponse, error)
	ListOnRolls(ctx context.Context, companyID string, start, end time.Time) ([]EmployeeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	Exit(ctx context.Context, companyID, id string, req ExitEmployeeRequest) (EmployeeResponse, error)
	InvalidateOptions(ctx context.Context, companyID string)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("email", req.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	resp, err := s.CreateInTx(ctx, tx, companyID, req)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.InvalidateOptions(ctx, companyID)
	log.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", resp.ID),
		zap.String("employee_code", resp.EmployeeCode),
	)
	return resp, nil
}

func (s *service) CreateInTx(
	ctx context.Context,
	tx *sql.Tx,
	companyID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCompanyID
	}

	qtx := s.repo.WithTx(tx)

	empl := &Employee{ID: uuid.New(), CompanyID: cid}
	if err := s.apply(ctx, qtx, companyID, empl, req); err != nil {
		return EmployeeResponse{}, err
	}

	empl.EmployeeCode = strings.TrimSpace(req.EmployeeCode)
	if empl.EmployeeCode == "" {
		// counter runs outside tx; a rolled back create leaves a gap in the sequence
		next, err := s.counter.GetNextValue(ctx, companyID, counter.TypeEmployeeCode)
		if err != nil {
			s.logger.Error("create employee generate code failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.EmployeeCode = counter.FormatEmployeeCode(next)
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event, err := kafka.NewOutboxEvent(
			events.EmployeeLifecycleTopic,
			events.EventEmployeeCreated,
			"employee",
			empl.ID.String(),
			rid,
			events.EmployeeCreatedEvent{
				EventType:     events.EventEmployeeCreated,
				RequestID:     rid,
				EmployeeID:    empl.ID.String(),
				CompanyID:     companyID,
				DateOfJoining: empl.DateOfJoining.Format(dateutil.DateLayout),
				OccurredAt:    time.Now().UTC(),
			},
		)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	return mapToResponse(*empl), nil
}

// apply validates req and copies it onto empl. References are checked through qtx
// so they see rows written earlier in the same transaction.
func (s *service) apply(ctx context.Context, qtx Repository, companyID string, empl *Employee, req CreateEmployeeRequest) error {
	doj, err := dateutil.ParseDate(strings.TrimSpace(req.DateOfJoining))
	if err != nil {
		return employeeerrors.ErrInvalidDateOfJoining
	}

	status := strings.ToUpper(strings.TrimSpace(req.EmploymentStatus))
	if status == "" {
		status = StatusActive
	}
	if !IsAssignableStatus(status) {
		return employeeerrors.ErrInvalidStatus
	}

	pan := strings.ToUpper(strings.TrimSpace(req.PAN))
	if pan != "" && !panPattern.MatchString(pan) {
		return employeeerrors.ErrInvalidPAN
	}
	ifsc := strings.ToUpper(strings.TrimSpace(req.IFSC))
	if ifsc != "" && !ifscPattern.MatchString(ifsc) {
		return employeeerrors.ErrInvalidIFSC
	}

	var departmentID *uuid.UUID
	if req.DepartmentID != "" {
		id, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return employeeerrors.ErrDepartmentNotFound
		}
		ok, err := qtx.DepartmentExists(ctx, companyID, req.DepartmentID)
		if err != nil {
			return err
		}
		if !ok {
			return employeeerrors.ErrDepartmentNotFound
		}
		departmentID = &id
	}

	var managerID *uuid.UUID
	if req.ManagerID != "" {
		id, err := uuid.Parse(req.ManagerID)
		if err != nil {
			return employeeerrors.ErrManagerNotFound
		}
		if id == empl.ID {
			return employeeerrors.ErrSelfManager
		}
		if _, err := qtx.FindByIDAndCompany(ctx, companyID, req.ManagerID); err != nil {
			if mapped := mapRepositoryError(err); mapped == employeeerrors.ErrEmployeeNotFound {
				return employeeerrors.ErrManagerNotFound
			}
			return err
		}
		managerID = &id
	}

	empl.FullName = strings.TrimSpace(req.FullName)
	empl.Email = strings.ToLower(strings.TrimSpace(req.Email))
	empl.Phone = strings.TrimSpace(req.Phone)
	empl.DepartmentID = departmentID
	empl.Department = nil
	empl.Designation = strings.TrimSpace(req.Designation)
	empl.ManagerID = managerID
	empl.DateOfJoining = doj
	empl.EmploymentStatus = status
	empl.PAN = pan
	empl.UAN = strings.TrimSpace(req.UAN)
	empl.ESICNumber = strings.TrimSpace(req.ESICNumber)
	empl.BankAccount = strings.TrimSpace(req.BankAccount)
	empl.IFSC = ifsc
	return nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	filter ListFilter,
) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("company_id", companyID))
	filter.Status = strings.ToUpper(strings.TrimSpace(filter.Status))

	emps, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(emps), nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]EmployeeOption, error) {
	cacheKey := GetEmployeeOptionsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// collapses concurrent misses while a form full of pickers loads
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindOptions(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOption, len(emps))
		for i, e := range emps {
			resp[i] = EmployeeOption{ID: e.ID.String(), EmployeeCode: e.EmployeeCode, FullName: e.FullName}
		}

		if s.rdb != nil {
			if raw, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, string(raw), employeeOptionsTTL).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetByCode(ctx context.Context, companyID, code string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByCode(ctx, companyID, strings.TrimSpace(code))
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) GetDirectReports(ctx context.Context, companyID, managerID string) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindDirectReports(ctx, companyID, managerID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

func (s *service) ListOnRolls(ctx context.Context, companyID string, start, end time.Time) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindOnRolls(ctx, companyID, start, end)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if empl.EmploymentStatus == StatusExited {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeExited
	}

	if err := s.apply(ctx, qtx, companyID, empl, req); err != nil {
		return EmployeeResponse{}, err
	}
	if code := strings.TrimSpace(req.EmployeeCode); code != "" {
		empl.EmployeeCode = code
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.InvalidateOptions(ctx, companyID)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, id string,
) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.InvalidateOptions(ctx, companyID)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) Exit(
	ctx context.Context,
	companyID, id string,
	req ExitEmployeeRequest,
) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	exitDate, err := dateutil.ParseDate(strings.TrimSpace(req.DateOfExit))
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfExit
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if empl.EmploymentStatus == StatusExited {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeExited
	}
	if exitDate.Before(empl.DateOfJoining) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfExit
	}

	empl.DateOfExit = &exitDate
	empl.EmploymentStatus = StatusExited
	empl.Department = nil

	if err := qtx.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event, err := kafka.NewOutboxEvent(
			events.EmployeeLifecycleTopic,
			events.EventEmployeeExited,
			"employee",
			empl.ID.String(),
			rid,
			events.EmployeeExitedEvent{
				EventType:  events.EventEmployeeExited,
				RequestID:  rid,
				EmployeeID: empl.ID.String(),
				CompanyID:  companyID,
				DateOfExit: exitDate.Format(dateutil.DateLayout),
				OccurredAt: time.Now().UTC(),
			},
		)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.InvalidateOptions(ctx, companyID)
	s.logger.Info("employee exited",
		zap.String("employee_id", id),
		zap.String("date_of_exit", req.DateOfExit),
		zap.String("reason", req.Reason),
	)
	return mapToResponse(*empl), nil
}

func (s *service) InvalidateOptions(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeOptionsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               empl.ID.String(),
		CompanyID:        empl.CompanyID.String(),
		EmployeeCode:     empl.EmployeeCode,
		FullName:         empl.FullName,
		Email:            empl.Email,
		Phone:            empl.Phone,
		DepartmentID:     uuidToString(empl.DepartmentID),
		Designation:      empl.Designation,
		ManagerID:        uuidToString(empl.ManagerID),
		DateOfJoining:    empl.DateOfJoining.Format(dateutil.DateLayout),
		EmploymentStatus: empl.EmploymentStatus,
		PAN:              empl.PAN,
		UAN:              empl.UAN,
		ESICNumber:       empl.ESICNumber,
		BankAccount:      empl.BankAccount,
		IFSC:             empl.IFSC,
	}
	if empl.DateOfExit != nil {
		resp.DateOfExit = empl.DateOfExit.Format(dateutil.DateLayout)
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID.String(),
			Name: empl.Department.Name,
		}
	}
	return resp
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
