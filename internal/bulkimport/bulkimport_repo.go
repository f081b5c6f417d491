package bulkimport

import (
	"context"
	"database/sql"

	"sharda-hr/internal/shared/txutil"
	"sharda-hr/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateJob(ctx context.Context, job *Job) error
	FindJob(ctx context.Context, companyID, id string) (*Job, error)
	ListJobs(ctx context.Context, companyID string, filter JobFilter) ([]Job, error)
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

func (r *repository) CreateJob(ctx context.Context, job *Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *repository) FindJob(ctx context.Context, companyID, id string) (*Job, error) {
	var job Job
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs omits the error report, which can be large; FindJob returns it.
func (r *repository) ListJobs(ctx context.Context, companyID string, filter JobFilter) ([]Job, error) {
	var jobs []Job
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Omit("errors")
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Order("created_at DESC").Limit(200).Find(&jobs).Error
	return jobs, err
}
