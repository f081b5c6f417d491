package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	expenseerrors "sharda-hr/internal/expense/errors"
	"sharda-hr/internal/settings"
	"sharda-hr/internal/shared/contextutil"
	"sharda-hr/internal/shared/counter"
	"sharda-hr/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SettingsReader supplies the expense category limits.
type SettingsReader interface {
	Get(ctx context.Context, companyID string) (settings.SettingsResponse, error)
}

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateClaimRequest) (ClaimResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateClaimRequest) (ClaimResponse, error)
	Submit(ctx context.Context, companyID, id string) (ClaimResponse, error)
	Approve(ctx context.Context, companyID, actorID, id string) (ClaimResponse, error)
	Reject(ctx context.Context, companyID, actorID, id, reason string) (ClaimResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]ClaimResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ClaimResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	ApprovedForPayroll(ctx context.Context, companyID, employeeID, runID string) ([]ReimbursableClaim, error)
	ReserveForRunInTx(ctx context.Context, tx *sql.Tx, companyID, runID string, claimIDs []string) error
	MarkReimbursedInTx(ctx context.Context, tx *sql.Tx, companyID, runID string, claimIDs []string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	counter  counter.Repository
	settings SettingsReader
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	settingsReader SettingsReader,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("expense.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counter:  counterRepo,
		settings: settingsReader,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateClaimRequest) (ClaimResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ClaimResponse{}, expenseerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ClaimResponse{}, expenseerrors.ErrInvalidActorID
	}
	if req.EmployeeID == "" {
		req.EmployeeID = actorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ClaimResponse{}, expenseerrors.ErrInvalidEmployeeID
	}

	claim := &Claim{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		Title:      strings.TrimSpace(req.Title),
		Status:     StatusDraft,
		CreatedBy:  actorUUID,
	}
	if err := s.applyItems(claim, req.Items); err != nil {
		return ClaimResponse{}, err
	}

	belongs, err := s.repo.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return ClaimResponse{}, err
	}
	if !belongs {
		return ClaimResponse{}, expenseerrors.ErrEmployeeNotInCompany
	}

	// Numbering restarts every calendar year.
	year := s.now().Year()
	next, err := s.counter.GetNextValue(ctx, companyID, fmt.Sprintf("%s:%d", counter.TypeExpenseClaimNo, year))
	if err != nil {
		log.Error("expense claim number allocation failed", zap.Error(err))
		return ClaimResponse{}, err
	}
	claim.ClaimNumber = counter.FormatClaimNumber(year, next)

	if err := s.repo.Create(ctx, claim); err != nil {
		log.Error("create expense claim failed", zap.Error(err))
		return ClaimResponse{}, err
	}

	log.Info("expense claim created",
		zap.String("claim_id", claim.ID.String()),
		zap.String("claim_number", claim.ClaimNumber),
		zap.Int64("total", claim.TotalAmount),
	)
	return mapClaim(*claim), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateClaimRequest) (ClaimResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ClaimResponse{}, expenseerrors.ErrInvalidClaimID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClaimResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	claim, err := qtx.FindByID(ctx, companyID, id)
	if err != nil {
		return ClaimResponse{}, mapNotFound(err)
	}
	if claim.Status != StatusDraft {
		return ClaimResponse{}, expenseerrors.ErrOnlyDraftEditable
	}

	claim.Title = strings.TrimSpace(req.Title)
	if err := s.applyItems(claim, req.Items); err != nil {
		return ClaimResponse{}, err
	}
	if err := qtx.ReplaceItems(ctx, claim); err != nil {
		return ClaimResponse{}, err
	}
	if err := qtx.Update(ctx, claim); err != nil {
		return ClaimResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ClaimResponse{}, err
	}
	return mapClaim(*claim), nil
}

func (s *service) Submit(ctx context.Context, companyID, id string) (ClaimResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return ClaimResponse{}, expenseerrors.ErrInvalidClaimID
	}
	cfg, err := s.settings.Get(ctx, companyID)
	if err != nil {
		return ClaimResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClaimResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	claim, err := qtx.FindByID(ctx, companyID, id)
	if err != nil {
		return ClaimResponse{}, mapNotFound(err)
	}
	if claim.Status != StatusDraft {
		return ClaimResponse{}, expenseerrors.ErrInvalidStatusTransition
	}

	violations, err := s.checkLimits(ctx, qtx, claim, cfg.ExpenseCategoryLimits)
	if err != nil {
		return ClaimResponse{}, err
	}
	if len(violations) > 0 {
		log.Warn("expense claim over category limit",
			zap.String("claim_id", id),
			zap.Int("violations", len(violations)),
		)
		return ClaimResponse{}, expenseerrors.ErrCategoryLimitExceeded.WithDetails(violations)
	}

	now := s.now()
	claim.Status = StatusSubmitted
	claim.SubmittedAt = &now
	if err := qtx.Update(ctx, claim); err != nil {
		return ClaimResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ClaimResponse{}, err
	}
	return mapClaim(*claim), nil
}

func (s *service) Approve(ctx context.Context, companyID, actorID, id string) (ClaimResponse, error) {
	return s.review(ctx, companyID, actorID, id, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, companyID, actorID, id, reason string) (ClaimResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ClaimResponse{}, expenseerrors.ErrRejectionReasonRequired
	}
	return s.review(ctx, companyID, actorID, id, StatusRejected, reason)
}

func (s *service) review(ctx context.Context, companyID, actorID, id, target, reason string) (ClaimResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return ClaimResponse{}, expenseerrors.ErrInvalidClaimID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ClaimResponse{}, expenseerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClaimResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	claim, err := qtx.FindByID(ctx, companyID, id)
	if err != nil {
		return ClaimResponse{}, mapNotFound(err)
	}
	if claim.Status != StatusSubmitted {
		return ClaimResponse{}, expenseerrors.ErrInvalidStatusTransition
	}
	if claim.EmployeeID == actorUUID {
		return ClaimResponse{}, expenseerrors.ErrSelfApproval
	}

	now := s.now()
	claim.Status = target
	claim.ReviewedBy = &actorUUID
	claim.ReviewedAt = &now
	if reason != "" {
		claim.RejectionReason = &reason
	}
	if err := qtx.Update(ctx, claim); err != nil {
		return ClaimResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ClaimResponse{}, err
	}

	log.Info("expense claim reviewed",
		zap.String("claim_id", id),
		zap.String("status", target),
		zap.String("actor_id", actorID),
	)
	return mapClaim(*claim), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]ClaimResponse, error) {
	claims, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	res := make([]ClaimResponse, len(claims))
	for i, c := range claims {
		res[i] = mapClaim(c)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ClaimResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ClaimResponse{}, expenseerrors.ErrInvalidClaimID
	}
	claim, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return ClaimResponse{}, mapNotFound(err)
	}
	return mapClaim(*claim), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return expenseerrors.ErrInvalidClaimID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	claim, err := qtx.FindByID(ctx, companyID, id)
	if err != nil {
		return mapNotFound(err)
	}
	if claim.Status != StatusDraft {
		return expenseerrors.ErrOnlyDraftEditable
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapNotFound(err)
	}
	return tx.Commit()
}

// ApprovedForPayroll lists the approved claims runID may pay: those not yet
// held by any run and those it already holds.
func (s *service) ApprovedForPayroll(ctx context.Context, companyID, employeeID, runID string) ([]ReimbursableClaim, error) {
	claims, err := s.repo.FindApproved(ctx, companyID, employeeID, runID)
	if err != nil {
		return nil, err
	}
	res := make([]ReimbursableClaim, len(claims))
	for i, c := range claims {
		res[i] = ReimbursableClaim{ID: c.ID.String(), ClaimNumber: c.ClaimNumber, Amount: c.TotalAmount}
	}
	return res, nil
}

// ReserveForRunInTx makes runID the only run that can pay claimIDs. Claims
// the run held before and no longer pays are released first.
func (s *service) ReserveForRunInTx(ctx context.Context, tx *sql.Tx, companyID, runID string, claimIDs []string) error {
	qtx := s.repo.WithTx(tx)
	if err := qtx.ReleaseRun(ctx, companyID, runID); err != nil {
		return err
	}
	if len(claimIDs) == 0 {
		return nil
	}
	n, err := qtx.ReserveForRun(ctx, companyID, runID, claimIDs)
	if err != nil {
		return err
	}
	if int(n) != len(claimIDs) {
		contextutil.GetLogger(ctx, s.logger).Warn("expense claims taken by another payroll run",
			zap.String("run_id", runID),
			zap.Int("expected", len(claimIDs)),
			zap.Int64("reserved", n),
		)
		return expenseerrors.ErrReimbursementConflict
	}
	return nil
}

// MarkReimbursedInTx settles the claims a locked run paid. Every claim must
// still be approved and held by the run, otherwise the lock is aborted.
func (s *service) MarkReimbursedInTx(ctx context.Context, tx *sql.Tx, companyID, runID string, claimIDs []string) error {
	if len(claimIDs) == 0 {
		return nil
	}
	n, err := s.repo.WithTx(tx).MarkReimbursed(ctx, companyID, claimIDs, runID, s.now())
	if err != nil {
		return err
	}
	if int(n) != len(claimIDs) {
		contextutil.GetLogger(ctx, s.logger).Warn("expense claims changed before payroll lock",
			zap.String("run_id", runID),
			zap.Int("expected", len(claimIDs)),
			zap.Int64("settled", n),
		)
		return expenseerrors.ErrReimbursementConflict
	}
	return nil
}

func (s *service) applyItems(claim *Claim, reqs []ItemRequest) error {
	today := dateutil.TruncateDay(s.now())
	items := make([]Item, 0, len(reqs))
	var total int64
	for _, r := range reqs {
		if !IsCategory(r.Category) {
			return expenseerrors.ErrInvalidCategory
		}
		if r.Amount <= 0 {
			return expenseerrors.ErrInvalidAmount
		}
		date, err := dateutil.ParseDate(r.Date)
		if err != nil {
			return expenseerrors.ErrInvalidItemDate
		}
		if date.After(today) {
			return expenseerrors.ErrFutureItemDate
		}
		items = append(items, Item{
			ID:          uuid.New(),
			ClaimID:     claim.ID,
			CompanyID:   claim.CompanyID,
			Category:    r.Category,
			ExpenseDate: date,
			Amount:      r.Amount,
			Description: strings.TrimSpace(r.Description),
			ReceiptURL:  strings.TrimSpace(r.ReceiptURL),
		})
		total += r.Amount
	}
	claim.Items = items
	claim.TotalAmount = total
	return nil
}

// checkLimits applies the category limits per calendar month of the item
// dates, counting the employee's other claims that are already submitted.
func (s *service) checkLimits(ctx context.Context, repo Repository, claim *Claim, limits map[string]int64) ([]LimitViolation, error) {
	if len(limits) == 0 {
		return nil, nil
	}

	perMonth := map[dateutil.Month]map[string]int64{}
	for _, it := range claim.Items {
		m := dateutil.MonthOf(it.ExpenseDate)
		if perMonth[m] == nil {
			perMonth[m] = map[string]int64{}
		}
		perMonth[m][it.Category] += it.Amount
	}

	months := make([]dateutil.Month, 0, len(perMonth))
	for m := range perMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].String() < months[j].String() })

	var violations []LimitViolation
	for _, m := range months {
		existing, err := repo.CategoryTotals(ctx, claim.CompanyID.String(), claim.EmployeeID.String(), m.Start(), m.End(), claim.ID.String())
		if err != nil {
			return nil, err
		}
		categories := make([]string, 0, len(perMonth[m]))
		for c := range perMonth[m] {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			limit, ok := limits[c]
			if !ok || limit <= 0 {
				continue
			}
			claimed := existing[c] + perMonth[m][c]
			if claimed > limit {
				violations = append(violations, LimitViolation{Category: c, Limit: limit, Claimed: claimed})
			}
		}
	}
	return violations, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return expenseerrors.ErrClaimNotFound
	}
	return err
}

func mapClaim(c Claim) ClaimResponse {
	res := ClaimResponse{
		ID:           c.ID.String(),
		ClaimNumber:  c.ClaimNumber,
		EmployeeID:   c.EmployeeID.String(),
		Title:        c.Title,
		TotalAmount:  c.TotalAmount,
		Status:       c.Status,
		SubmittedAt:  c.SubmittedAt,
		ReviewedAt:   c.ReviewedAt,
		ReimbursedAt: c.ReimbursedAt,
		CreatedAt:    c.CreatedAt,
		Items:        make([]ItemResponse, len(c.Items)),
	}
	if c.Employee != nil {
		res.EmployeeName = c.Employee.FullName
	}
	if c.ReviewedBy != nil {
		res.ReviewedBy = c.ReviewedBy.String()
	}
	if c.RejectionReason != nil {
		res.RejectionReason = *c.RejectionReason
	}
	if c.PayrollRunID != nil {
		res.PayrollRunID = c.PayrollRunID.String()
	}
	for i, it := range c.Items {
		res.Items[i] = ItemResponse{
			ID:          it.ID.String(),
			Category:    it.Category,
			Date:        it.ExpenseDate.Format(dateutil.DateLayout),
			Amount:      it.Amount,
			Description: it.Description,
			ReceiptURL:  it.ReceiptURL,
		}
	}
	return res
}
