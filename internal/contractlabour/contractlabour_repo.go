package contractlabour

import (
	"context"
	"database/sql"
	"time"

	"sharda-hr/internal/shared/txutil"
	"sharda-hr/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateContractor(ctx context.Context, c *Contractor) error
	FindContractor(ctx context.Context, companyID, id string) (*Contractor, error)
	ListContractors(ctx context.Context, companyID string) ([]Contractor, error)
	UpdateContractor(ctx context.Context, c *Contractor) error
	DeleteContractor(ctx context.Context, companyID, id string) error
	CountActiveWorkers(ctx context.Context, companyID, contractorID string) (int64, error)

	CreateWorker(ctx context.Context, w *Worker) error
	FindWorker(ctx context.Context, companyID, id string) (*Worker, error)
	FindWorkers(ctx context.Context, companyID string, ids []string) ([]Worker, error)
	ListWorkers(ctx context.Context, companyID string, filter WorkerFilter) ([]Worker, error)
	UpdateWorker(ctx context.Context, w *Worker) error
	DeleteWorker(ctx context.Context, companyID, id string) error

	UpsertAttendance(ctx context.Context, a *WorkerAttendance) error
	ListAttendance(ctx context.Context, companyID string, start, end time.Time, workerID, contractorID string) ([]WorkerAttendance, error)

	ListPayrolls(ctx context.Context, companyID, month, contractorID string) ([]ContractPayroll, error)
	CountPayrolls(ctx context.Context, companyID, month string) (int64, error)
	CreatePayrolls(ctx context.Context, rows []ContractPayroll) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: txutil.Bind(r.db, tx)}
}

func (r *repository) CreateContractor(ctx context.Context, c *Contractor) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindContractor(ctx context.Context, companyID, id string) (*Contractor, error) {
	var c Contractor
	if err := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListContractors(ctx context.Context, companyID string) ([]Contractor, error) {
	var list []Contractor
	err := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).Order("name ASC").Find(&list).Error
	return list, err
}

func (r *repository) UpdateContractor(ctx context.Context, c *Contractor) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) DeleteContractor(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).Delete(&Contractor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountActiveWorkers(ctx context.Context, companyID, contractorID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Worker{}).
		Scopes(tenant.Scope(companyID)).
		Where("contractor_id = ? AND active = ?", contractorID, true).
		Count(&n).Error
	return n, err
}

func (r *repository) CreateWorker(ctx context.Context, w *Worker) error {
	return r.db.WithContext(ctx).Omit("Contractor").Create(w).Error
}

func (r *repository) FindWorker(ctx context.Context, companyID, id string) (*Worker, error) {
	var w Worker
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Contractor").
		First(&w, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repository) FindWorkers(ctx context.Context, companyID string, ids []string) ([]Worker, error) {
	var list []Worker
	if len(ids) == 0 {
		return list, nil
	}
	err := r.db.WithContext(ctx).
		Unscoped().
		Scopes(tenant.Scope(companyID)).
		Preload("Contractor", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("id IN ?", ids).
		Find(&list).Error
	return list, err
}

func (r *repository) ListWorkers(ctx context.Context, companyID string, filter WorkerFilter) ([]Worker, error) {
	var list []Worker
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Contractor")
	if filter.ContractorID != "" {
		q = q.Where("contractor_id = ?", filter.ContractorID)
	}
	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("full_name ILIKE ? OR worker_code ILIKE ?", like, like)
	}
	err := q.Order("worker_code ASC").Find(&list).Error
	return list, err
}

func (r *repository) UpdateWorker(ctx context.Context, w *Worker) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(w).Error
}

func (r *repository) DeleteWorker(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).Delete(&Worker{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UpsertAttendance(ctx context.Context, a *WorkerAttendance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "worker_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "overtime_hours", "updated_at"}),
		}).
		Create(a).Error
}

func (r *repository) ListAttendance(
	ctx context.Context,
	companyID string,
	start, end time.Time,
	workerID, contractorID string,
) ([]WorkerAttendance, error) {
	var rows []WorkerAttendance
	q := r.db.WithContext(ctx).
		Scopes(tenant.ScopeTable("contract_worker_attendances", companyID)).
		Where("contract_worker_attendances.attendance_date BETWEEN ? AND ?", start, end)
	if workerID != "" {
		q = q.Where("contract_worker_attendances.worker_id = ?", workerID)
	}
	if contractorID != "" {
		q = q.Joins("JOIN contract_workers ON contract_workers.id = contract_worker_attendances.worker_id").
			Where("contract_workers.contractor_id = ?", contractorID)
	}
	err := q.Order("contract_worker_attendances.attendance_date ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) ListPayrolls(ctx context.Context, companyID, month, contractorID string) ([]ContractPayroll, error) {
	var rows []ContractPayroll
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("month = ?", month)
	if contractorID != "" {
		q = q.Where("contractor_id = ?", contractorID)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) CountPayrolls(ctx context.Context, companyID, month string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&ContractPayroll{}).
		Scopes(tenant.Scope(companyID)).
		Where("month = ?", month).
		Count(&n).Error
	return n, err
}

func (r *repository) CreatePayrolls(ctx context.Context, rows []ContractPayroll) error {
	return r.db.WithContext(ctx).CreateInBatches(rows, 100).Error
}
