package feedback

import (
	"context"
	"database/sql"

	"sharda-hr/internal/shared/txutil"
	"sharda-hr/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateCycle(ctx context.Context, c *Cycle) error
	FindCycle(ctx context.Context, companyID, id string) (*Cycle, error)
	FindCycleForUpdate(ctx context.Context, companyID, id string) (*Cycle, error)
	ListCycles(ctx context.Context, companyID string, filter CycleFilter) ([]Cycle, error)
	UpdateCycle(ctx context.Context, c *Cycle) error
	DeleteCycle(ctx context.Context, companyID, id string) error

	// CreateAssignmentIfAbsent reports false when the (cycle, reviewer,
	// reviewee) triple already exists.
	CreateAssignmentIfAbsent(ctx context.Context, a *Assignment) (bool, error)
	FindAssignment(ctx context.Context, companyID, id string) (*Assignment, error)
	FindAssignmentForUpdate(ctx context.Context, companyID, id string) (*Assignment, error)
	ListAssignments(ctx context.Context, companyID, cycleID string, filter AssignmentFilter) ([]Assignment, error)
	ListReviewerAssignments(ctx context.Context, companyID, reviewerID, cycleStatus string) ([]Assignment, error)
	UpdateAssignment(ctx context.Context, a *Assignment) error
	DeleteAssignment(ctx context.Context, companyID, id string) error
	CountAssignments(ctx context.Context, companyID, cycleID string) (int64, error)

	CreateResponse(ctx context.Context, r *Response) error
	ListResponses(ctx context.Context, companyID, cycleID, revieweeID string) ([]Response, error)
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

func (r *repository) CreateCycle(ctx context.Context, c *Cycle) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindCycle(ctx context.Context, companyID, id string) (*Cycle, error) {
	var c Cycle
	if err := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindCycleForUpdate(ctx context.Context, companyID, id string) (*Cycle, error) {
	var c Cycle
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListCycles(ctx context.Context, companyID string, filter CycleFilter) ([]Cycle, error) {
	var list []Cycle
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Order("period_start DESC, created_at DESC").Find(&list).Error
	return list, err
}

func (r *repository) UpdateCycle(ctx context.Context, c *Cycle) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) DeleteCycle(ctx context.Context, companyID, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Scopes(tenant.Scope(companyID)).Where("cycle_id = ?", id).Delete(&Assignment{}).Error; err != nil {
		return err
	}
	res := db.Scopes(tenant.Scope(companyID)).Delete(&Cycle{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateAssignmentIfAbsent(ctx context.Context, a *Assignment) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit("Reviewer", "Reviewee").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cycle_id"}, {Name: "reviewer_id"}, {Name: "reviewee_id"}},
			DoNothing: true,
		}).
		Create(a)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) FindAssignment(ctx context.Context, companyID, id string) (*Assignment, error) {
	var a Assignment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Reviewer").
		Preload("Reviewee").
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAssignmentForUpdate(ctx context.Context, companyID, id string) (*Assignment, error) {
	var a Assignment
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListAssignments(ctx context.Context, companyID, cycleID string, filter AssignmentFilter) ([]Assignment, error) {
	var list []Assignment
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Reviewer").
		Preload("Reviewee").
		Where("cycle_id = ?", cycleID)
	if filter.ReviewerID != "" {
		q = q.Where("reviewer_id = ?", filter.ReviewerID)
	}
	if filter.RevieweeID != "" {
		q = q.Where("reviewee_id = ?", filter.RevieweeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Order("created_at ASC").Find(&list).Error
	return list, err
}

func (r *repository) ListReviewerAssignments(ctx context.Context, companyID, reviewerID, cycleStatus string) ([]Assignment, error) {
	var list []Assignment
	q := r.db.WithContext(ctx).
		Scopes(tenant.ScopeTable("feedback_assignments", companyID)).
		Preload("Reviewee").
		Joins("JOIN feedback_cycles ON feedback_cycles.id = feedback_assignments.cycle_id").
		Where("feedback_assignments.reviewer_id = ?", reviewerID)
	if cycleStatus != "" {
		q = q.Where("feedback_cycles.status = ?", cycleStatus)
	}
	err := q.Order("feedback_assignments.status DESC, feedback_assignments.created_at ASC").Find(&list).Error
	return list, err
}

func (r *repository) UpdateAssignment(ctx context.Context, a *Assignment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
}

func (r *repository) DeleteAssignment(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).Delete(&Assignment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountAssignments(ctx context.Context, companyID, cycleID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Assignment{}).
		Scopes(tenant.Scope(companyID)).
		Where("cycle_id = ?", cycleID).
		Count(&n).Error
	return n, err
}

func (r *repository) CreateResponse(ctx context.Context, resp *Response) error {
	return r.db.WithContext(ctx).Create(resp).Error
}

func (r *repository) ListResponses(ctx context.Context, companyID, cycleID, revieweeID string) ([]Response, error) {
	var list []Response
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("cycle_id = ? AND reviewee_id = ?", cycleID, revieweeID).
		Find(&list).Error
	return list, err
}
