package feedback

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"sharda-hr/internal/employee"
	employeeerrors "sharda-hr/internal/employee/errors"
	feedbackerrors "sharda-hr/internal/feedback/errors"
	"sharda-hr/internal/shared/contextutil"
	"sharda-hr/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeDirectory resolves reviewers and the reporting line used by AutoAssign.
type EmployeeDirectory interface {
	GetByID(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error)
	GetDirectReports(ctx context.Context, companyID, managerID string) ([]employee.EmployeeResponse, error)
}

//go:generate mockgen -source=feedback_service.go -destination=mock/feedback_service_mock.go -package=mock
type Service interface {
	CreateCycle(ctx context.Context, companyID, actorID string, req CycleRequest) (CycleResponse, error)
	UpdateCycle(ctx context.Context, companyID, id string, req CycleRequest) (CycleResponse, error)
	GetCycle(ctx context.Context, companyID, id string) (CycleResponse, error)
	ListCycles(ctx context.Context, companyID string, filter CycleFilter) ([]CycleResponse, error)
	ActivateCycle(ctx context.Context, companyID, id string) (CycleResponse, error)
	CloseCycle(ctx context.Context, companyID, id string) (CycleResponse, error)
	DeleteCycle(ctx context.Context, companyID, id string) error

	CreateAssignment(ctx context.Context, companyID, cycleID string, req AssignmentRequest) (AssignmentResponse, error)
	AutoAssign(ctx context.Context, companyID, cycleID string, req AutoAssignRequest) (AutoAssignResponse, error)
	ListAssignments(ctx context.Context, companyID, cycleID string, filter AssignmentFilter) ([]AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, companyID, id string) error
	MyAssignments(ctx context.Context, companyID, reviewerID string) ([]AssignmentResponse, error)
	Submit(ctx context.Context, companyID, reviewerID, assignmentID string, req SubmitRequest) (AssignmentResponse, error)

	Report(ctx context.Context, companyID, cycleID, revieweeID string) (ReportResponse, error)
	CycleProgress(ctx context.Context, companyID, cycleID string) (ProgressResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees EmployeeDirectory, logger ...*zap.Logger) Service {
	l := zap.L().Named("feedback.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feedback.service")
	}
	return &service{db: db, repo: repo, employees: employees, now: time.Now, logger: l}
}

func (s *service) CreateCycle(ctx context.Context, companyID, actorID string, req CycleRequest) (CycleResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return CycleResponse{}, feedbackerrors.ErrInvalidCompanyID
	}
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return CycleResponse{}, feedbackerrors.ErrInvalidEmployeeID
	}

	c := &Cycle{ID: uuid.New(), CompanyID: cid, Status: CycleDraft, CreatedBy: actor}
	if err := applyCycle(c, req); err != nil {
		return CycleResponse{}, err
	}
	if err := s.repo.CreateCycle(ctx, c); err != nil {
		return CycleResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("feedback cycle created",
		zap.String("cycle_id", c.ID.String()),
		zap.Int("competencies", len(req.Competencies)),
	)
	return mapCycle(*c), nil
}

func (s *service) UpdateCycle(ctx context.Context, companyID, id string, req CycleRequest) (CycleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CycleResponse{}, feedbackerrors.ErrInvalidCycleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CycleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	c, err := qtx.FindCycleForUpdate(ctx, companyID, id)
	if err != nil {
		return CycleResponse{}, mapCycleError(err)
	}
	if c.Status != CycleDraft {
		return CycleResponse{}, feedbackerrors.ErrCycleNotDraft
	}
	if err := applyCycle(c, req); err != nil {
		return CycleResponse{}, err
	}
	if err := qtx.UpdateCycle(ctx, c); err != nil {
		return CycleResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return CycleResponse{}, err
	}
	return mapCycle(*c), nil
}

func (s *service) GetCycle(ctx context.Context, companyID, id string) (CycleResponse, error) {
	c, err := s.findCycle(ctx, companyID, id)
	if err != nil {
		return CycleResponse{}, err
	}
	return mapCycle(*c), nil
}

func (s *service) ListCycles(ctx context.Context, companyID string, filter CycleFilter) ([]CycleResponse, error) {
	list, err := s.repo.ListCycles(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	res := make([]CycleResponse, len(list))
	for i, c := range list {
		res[i] = mapCycle(c)
	}
	return res, nil
}

func (s *service) ActivateCycle(ctx context.Context, companyID, id string) (CycleResponse, error) {
	return s.transition(ctx, companyID, id, CycleDraft, CycleActive)
}

func (s *service) CloseCycle(ctx context.Context, companyID, id string) (CycleResponse, error) {
	return s.transition(ctx, companyID, id, CycleActive, CycleClosed)
}

func (s *service) transition(ctx context.Context, companyID, id, from, to string) (CycleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CycleResponse{}, feedbackerrors.ErrInvalidCycleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CycleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	c, err := qtx.FindCycleForUpdate(ctx, companyID, id)
	if err != nil {
		return CycleResponse{}, mapCycleError(err)
	}
	if c.Status != from {
		switch from {
		case CycleDraft:
			return CycleResponse{}, feedbackerrors.ErrCycleNotDraft
		default:
			return CycleResponse{}, feedbackerrors.ErrCycleNotActive
		}
	}

	now := s.now()
	switch to {
	case CycleActive:
		n, err := qtx.CountAssignments(ctx, companyID, id)
		if err != nil {
			return CycleResponse{}, err
		}
		if n == 0 {
			return CycleResponse{}, feedbackerrors.ErrCycleHasNoAssignments
		}
		c.ActivatedAt = &now
	case CycleClosed:
		c.ClosedAt = &now
	}
	c.Status = to

	if err := qtx.UpdateCycle(ctx, c); err != nil {
		return CycleResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return CycleResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("feedback cycle status changed",
		zap.String("cycle_id", id),
		zap.String("from", from),
		zap.String("to", to),
	)
	return mapCycle(*c), nil
}

func (s *service) DeleteCycle(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return feedbackerrors.ErrInvalidCycleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	c, err := qtx.FindCycleForUpdate(ctx, companyID, id)
	if err != nil {
		return mapCycleError(err)
	}
	if c.Status != CycleDraft {
		return feedbackerrors.ErrCycleNotDraft
	}
	if err := qtx.DeleteCycle(ctx, companyID, id); err != nil {
		return mapCycleError(err)
	}
	return tx.Commit()
}

func (s *service) CreateAssignment(ctx context.Context, companyID, cycleID string, req AssignmentRequest) (AssignmentResponse, error) {
	c, err := s.openCycle(ctx, companyID, cycleID)
	if err != nil {
		return AssignmentResponse{}, err
	}

	relationship := strings.ToUpper(strings.TrimSpace(req.Relationship))
	if !IsRelationship(relationship) {
		return AssignmentResponse{}, feedbackerrors.ErrInvalidRelationship
	}
	if (relationship == RelationSelf) != (req.ReviewerID == req.RevieweeID) {
		return AssignmentResponse{}, feedbackerrors.ErrSelfMismatch
	}

	reviewer, err := s.employee(ctx, companyID, req.ReviewerID)
	if err != nil {
		return AssignmentResponse{}, err
	}
	reviewee := reviewer
	if req.RevieweeID != req.ReviewerID {
		if reviewee, err = s.employee(ctx, companyID, req.RevieweeID); err != nil {
			return AssignmentResponse{}, err
		}
	}

	a := newAssignment(c, reviewer.ID, reviewee.ID, relationship)
	created, err := s.repo.CreateAssignmentIfAbsent(ctx, a)
	if err != nil {
		return AssignmentResponse{}, mapAssignmentError(err)
	}
	if !created {
		return AssignmentResponse{}, feedbackerrors.ErrAssignmentExists
	}

	resp := mapAssignment(*a)
	resp.ReviewerName = reviewer.FullName
	resp.RevieweeName = reviewee.FullName
	return resp, nil
}

// AutoAssign builds SELF, MANAGER and DIRECT_REPORT assignments for each
// reviewee from the reporting line. Pairs that already exist are skipped, so
// the call can be repeated after the hierarchy changes.
func (s *service) AutoAssign(ctx context.Context, companyID, cycleID string, req AutoAssignRequest) (AutoAssignResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	c, err := s.openCycle(ctx, companyID, cycleID)
	if err != nil {
		return AutoAssignResponse{}, err
	}

	type pair struct{ reviewer, reviewee, relationship string }
	var pairs []pair
	seen := map[string]bool{}
	add := func(reviewer, reviewee, relationship string) {
		key := reviewer + "|" + reviewee
		if seen[key] {
			return
		}
		seen[key] = true
		pairs = append(pairs, pair{reviewer, reviewee, relationship})
	}

	for _, id := range req.RevieweeIDs {
		emp, err := s.employee(ctx, companyID, id)
		if err != nil {
			return AutoAssignResponse{}, err
		}
		if emp.EmploymentStatus == employee.StatusExited {
			continue
		}
		add(emp.ID, emp.ID, RelationSelf)
		if emp.ManagerID != "" && emp.ManagerID != emp.ID {
			add(emp.ManagerID, emp.ID, RelationManager)
		}
		reports, err := s.employees.GetDirectReports(ctx, companyID, emp.ID)
		if err != nil {
			return AutoAssignResponse{}, err
		}
		for _, r := range reports {
			if r.EmploymentStatus == employee.StatusExited || r.ID == emp.ID {
				continue
			}
			add(r.ID, emp.ID, RelationDirectReport)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AutoAssignResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	var res AutoAssignResponse
	for _, p := range pairs {
		a := newAssignment(c, p.reviewer, p.reviewee, p.relationship)
		created, err := qtx.CreateAssignmentIfAbsent(ctx, a)
		if err != nil {
			return AutoAssignResponse{}, mapAssignmentError(err)
		}
		if created {
			res.Created++
		} else {
			res.Skipped++
		}
	}
	if err := tx.Commit(); err != nil {
		return AutoAssignResponse{}, err
	}

	log.Info("feedback assignments generated",
		zap.String("cycle_id", cycleID),
		zap.Int("created", res.Created),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}

func (s *service) ListAssignments(ctx context.Context, companyID, cycleID string, filter AssignmentFilter) ([]AssignmentResponse, error) {
	if _, err := s.findCycle(ctx, companyID, cycleID); err != nil {
		return nil, err
	}
	list, err := s.repo.ListAssignments(ctx, companyID, cycleID, filter)
	if err != nil {
		return nil, err
	}
	return mapAssignments(list), nil
}

func (s *service) DeleteAssignment(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return feedbackerrors.ErrInvalidAssignmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	a, err := qtx.FindAssignmentForUpdate(ctx, companyID, id)
	if err != nil {
		return mapAssignmentError(err)
	}
	if a.Status == AssignmentSubmitted {
		return feedbackerrors.ErrAlreadySubmitted
	}
	c, err := qtx.FindCycle(ctx, companyID, a.CycleID.String())
	if err != nil {
		return mapCycleError(err)
	}
	if c.Status == CycleClosed {
		return feedbackerrors.ErrCycleClosed
	}
	if err := qtx.DeleteAssignment(ctx, companyID, id); err != nil {
		return mapAssignmentError(err)
	}
	return tx.Commit()
}

func (s *service) MyAssignments(ctx context.Context, companyID, reviewerID string) ([]AssignmentResponse, error) {
	if _, err := uuid.Parse(reviewerID); err != nil {
		return nil, feedbackerrors.ErrInvalidEmployeeID
	}
	list, err := s.repo.ListReviewerAssignments(ctx, companyID, reviewerID, CycleActive)
	if err != nil {
		return nil, err
	}
	return mapAssignments(list), nil
}

func (s *service) Submit(ctx context.Context, companyID, reviewerID, assignmentID string, req SubmitRequest) (AssignmentResponse, error) {
	if _, err := uuid.Parse(assignmentID); err != nil {
		return AssignmentResponse{}, feedbackerrors.ErrInvalidAssignmentID
	}
	reviewer, err := uuid.Parse(reviewerID)
	if err != nil {
		return AssignmentResponse{}, feedbackerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	a, err := qtx.FindAssignmentForUpdate(ctx, companyID, assignmentID)
	if err != nil {
		return AssignmentResponse{}, mapAssignmentError(err)
	}
	if a.ReviewerID != reviewer {
		return AssignmentResponse{}, feedbackerrors.ErrNotReviewer
	}
	if a.Status == AssignmentSubmitted {
		return AssignmentResponse{}, feedbackerrors.ErrAlreadySubmitted
	}

	c, err := qtx.FindCycle(ctx, companyID, a.CycleID.String())
	if err != nil {
		return AssignmentResponse{}, mapCycleError(err)
	}
	switch c.Status {
	case CycleActive:
	case CycleClosed:
		return AssignmentResponse{}, feedbackerrors.ErrCycleClosed
	default:
		return AssignmentResponse{}, feedbackerrors.ErrCycleNotActive
	}

	ratings, err := validateRatings(c.CompetencyList(), c.RatingScale, req.Ratings)
	if err != nil {
		return AssignmentResponse{}, err
	}

	now := s.now()
	resp := &Response{
		ID:           uuid.New(),
		CompanyID:    a.CompanyID,
		AssignmentID: a.ID,
		CycleID:      a.CycleID,
		RevieweeID:   a.RevieweeID,
		Relationship: a.Relationship,
		Ratings:      ratings,
		Comment:      strings.TrimSpace(req.Comment),
		CreatedAt:    now,
	}
	if err := qtx.CreateResponse(ctx, resp); err != nil {
		return AssignmentResponse{}, mapAssignmentError(err)
	}

	a.Status = AssignmentSubmitted
	a.SubmittedAt = &now
	if err := qtx.UpdateAssignment(ctx, a); err != nil {
		return AssignmentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("feedback submitted",
		zap.String("cycle_id", a.CycleID.String()),
		zap.String("assignment_id", assignmentID),
	)
	return mapAssignment(*a), nil
}

func (s *service) Report(ctx context.Context, companyID, cycleID, revieweeID string) (ReportResponse, error) {
	if _, err := uuid.Parse(revieweeID); err != nil {
		return ReportResponse{}, feedbackerrors.ErrInvalidEmployeeID
	}
	c, err := s.findCycle(ctx, companyID, cycleID)
	if err != nil {
		return ReportResponse{}, err
	}
	responses, err := s.repo.ListResponses(ctx, companyID, cycleID, revieweeID)
	if err != nil {
		return ReportResponse{}, err
	}
	return buildReport(*c, revieweeID, responses), nil
}

func (s *service) CycleProgress(ctx context.Context, companyID, cycleID string) (ProgressResponse, error) {
	if _, err := s.findCycle(ctx, companyID, cycleID); err != nil {
		return ProgressResponse{}, err
	}
	list, err := s.repo.ListAssignments(ctx, companyID, cycleID, AssignmentFilter{})
	if err != nil {
		return ProgressResponse{}, err
	}
	return buildProgress(cycleID, list), nil
}

func (s *service) findCycle(ctx context.Context, companyID, id string) (*Cycle, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, feedbackerrors.ErrInvalidCycleID
	}
	c, err := s.repo.FindCycle(ctx, companyID, id)
	if err != nil {
		return nil, mapCycleError(err)
	}
	return c, nil
}

// openCycle returns a cycle that still accepts assignments.
func (s *service) openCycle(ctx context.Context, companyID, id string) (*Cycle, error) {
	c, err := s.findCycle(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if c.Status == CycleClosed {
		return nil, feedbackerrors.ErrCycleClosed
	}
	return c, nil
}

func (s *service) employee(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return employee.EmployeeResponse{}, feedbackerrors.ErrInvalidEmployeeID
	}
	emp, err := s.employees.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, feedbackerrors.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}
	return emp, nil
}

func newAssignment(c *Cycle, reviewerID, revieweeID, relationship string) *Assignment {
	return &Assignment{
		ID:           uuid.New(),
		CompanyID:    c.CompanyID,
		CycleID:      c.ID,
		ReviewerID:   uuid.MustParse(reviewerID),
		RevieweeID:   uuid.MustParse(revieweeID),
		Relationship: relationship,
		Status:       AssignmentPending,
	}
}

func applyCycle(c *Cycle, req CycleRequest) error {
	start, err := dateutil.ParseDate(req.PeriodStart)
	if err != nil {
		return feedbackerrors.ErrInvalidDate
	}
	end, err := dateutil.ParseDate(req.PeriodEnd)
	if err != nil {
		return feedbackerrors.ErrInvalidDate
	}
	if end.Before(start) {
		return feedbackerrors.ErrInvalidPeriod
	}

	competencies := make([]string, 0, len(req.Competencies))
	seen := map[string]bool{}
	for _, name := range req.Competencies {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			return feedbackerrors.ErrDuplicateCompetency
		}
		seen[key] = true
		competencies = append(competencies, name)
	}
	if len(competencies) == 0 {
		return feedbackerrors.ErrNoCompetencies
	}
	if err := c.SetCompetencies(competencies); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(req.Name)
	c.Description = strings.TrimSpace(req.Description)
	c.PeriodStart = start
	c.PeriodEnd = end
	c.RatingScale = req.RatingScale
	if c.RatingScale == 0 {
		c.RatingScale = DefaultRatingScale
	}
	c.AnonymityThreshold = req.AnonymityThreshold
	if c.AnonymityThreshold == 0 {
		c.AnonymityThreshold = DefaultAnonymityThreshold
	}
	return nil
}

// validateRatings requires exactly one rating per competency within 1..scale
// and returns them encoded for storage.
func validateRatings(competencies []string, scale int, ratings map[string]int) ([]byte, error) {
	known := make(map[string]bool, len(competencies))
	for _, c := range competencies {
		known[c] = true
	}
	for name, v := range ratings {
		if !known[name] {
			return nil, feedbackerrors.ErrUnknownCompetency
		}
		if v < 1 || v > scale {
			return nil, feedbackerrors.ErrRatingOutOfScale.WithDetails(map[string]any{"competency": name, "scale": scale})
		}
	}
	for _, c := range competencies {
		if _, ok := ratings[c]; !ok {
			return nil, feedbackerrors.ErrRatingsIncomplete.WithDetails(map[string]any{"missing": c})
		}
	}
	return marshalRatings(ratings)
}

func mapCycle(c Cycle) CycleResponse {
	return CycleResponse{
		ID:                 c.ID.String(),
		Name:               c.Name,
		Description:        c.Description,
		PeriodStart:        c.PeriodStart.Format(dateutil.DateLayout),
		PeriodEnd:          c.PeriodEnd.Format(dateutil.DateLayout),
		Competencies:       c.CompetencyList(),
		RatingScale:        c.RatingScale,
		AnonymityThreshold: c.AnonymityThreshold,
		Status:             c.Status,
		ActivatedAt:        c.ActivatedAt,
		ClosedAt:           c.ClosedAt,
		CreatedAt:          c.CreatedAt,
	}
}

func mapAssignment(a Assignment) AssignmentResponse {
	res := AssignmentResponse{
		ID:           a.ID.String(),
		CycleID:      a.CycleID.String(),
		ReviewerID:   a.ReviewerID.String(),
		RevieweeID:   a.RevieweeID.String(),
		Relationship: a.Relationship,
		Status:       a.Status,
		SubmittedAt:  a.SubmittedAt,
	}
	if a.Reviewer != nil {
		res.ReviewerName = a.Reviewer.FullName
	}
	if a.Reviewee != nil {
		res.RevieweeName = a.Reviewee.FullName
	}
	return res
}

func mapAssignments(list []Assignment) []AssignmentResponse {
	res := make([]AssignmentResponse, len(list))
	for i, a := range list {
		res[i] = mapAssignment(a)
	}
	return res
}
