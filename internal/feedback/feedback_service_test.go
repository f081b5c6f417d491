package feedback_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"sharda-hr/internal/employee"
	employeeerrors "sharda-hr/internal/employee/errors"
	"sharda-hr/internal/feedback"
	feedbackerrors "sharda-hr/internal/feedback/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memRepo keeps cycles, assignments and responses in maps.
type memRepo struct {
	cycles      map[string]*feedback.Cycle
	assignments map[string]*feedback.Assignment
	responses   []feedback.Response
}

func newMemRepo() *memRepo {
	return &memRepo{cycles: map[string]*feedback.Cycle{}, assignments: map[string]*feedback.Assignment{}}
}

func (m *memRepo) WithTx(tx *sql.Tx) feedback.Repository { return m }

func (m *memRepo) CreateCycle(ctx context.Context, c *feedback.Cycle) error {
	m.cycles[c.ID.String()] = c
	return nil
}

func (m *memRepo) FindCycle(ctx context.Context, companyID, id string) (*feedback.Cycle, error) {
	c, ok := m.cycles[id]
	if !ok || c.CompanyID.String() != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memRepo) FindCycleForUpdate(ctx context.Context, companyID, id string) (*feedback.Cycle, error) {
	return m.FindCycle(ctx, companyID, id)
}

func (m *memRepo) ListCycles(ctx context.Context, companyID string, filter feedback.CycleFilter) ([]feedback.Cycle, error) {
	var out []feedback.Cycle
	for _, c := range m.cycles {
		if filter.Status == "" || c.Status == filter.Status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateCycle(ctx context.Context, c *feedback.Cycle) error {
	cp := *c
	m.cycles[c.ID.String()] = &cp
	return nil
}

func (m *memRepo) DeleteCycle(ctx context.Context, companyID, id string) error {
	delete(m.cycles, id)
	return nil
}

func (m *memRepo) CreateAssignmentIfAbsent(ctx context.Context, a *feedback.Assignment) (bool, error) {
	for _, x := range m.assignments {
		if x.CycleID == a.CycleID && x.ReviewerID == a.ReviewerID && x.RevieweeID == a.RevieweeID {
			return false, nil
		}
	}
	m.assignments[a.ID.String()] = a
	return true, nil
}

func (m *memRepo) FindAssignment(ctx context.Context, companyID, id string) (*feedback.Assignment, error) {
	a, ok := m.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memRepo) FindAssignmentForUpdate(ctx context.Context, companyID, id string) (*feedback.Assignment, error) {
	return m.FindAssignment(ctx, companyID, id)
}

func (m *memRepo) ListAssignments(ctx context.Context, companyID, cycleID string, filter feedback.AssignmentFilter) ([]feedback.Assignment, error) {
	var out []feedback.Assignment
	for _, a := range m.assignments {
		if a.CycleID.String() == cycleID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memRepo) ListReviewerAssignments(ctx context.Context, companyID, reviewerID, cycleStatus string) ([]feedback.Assignment, error) {
	var out []feedback.Assignment
	for _, a := range m.assignments {
		c := m.cycles[a.CycleID.String()]
		if a.ReviewerID.String() == reviewerID && (cycleStatus == "" || (c != nil && c.Status == cycleStatus)) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateAssignment(ctx context.Context, a *feedback.Assignment) error {
	cp := *a
	m.assignments[a.ID.String()] = &cp
	return nil
}

func (m *memRepo) DeleteAssignment(ctx context.Context, companyID, id string) error {
	delete(m.assignments, id)
	return nil
}

func (m *memRepo) CountAssignments(ctx context.Context, companyID, cycleID string) (int64, error) {
	list, _ := m.ListAssignments(ctx, companyID, cycleID, feedback.AssignmentFilter{})
	return int64(len(list)), nil
}

func (m *memRepo) CreateResponse(ctx context.Context, r *feedback.Response) error {
	m.responses = append(m.responses, *r)
	return nil
}

func (m *memRepo) ListResponses(ctx context.Context, companyID, cycleID, revieweeID string) ([]feedback.Response, error) {
	var out []feedback.Response
	for _, r := range m.responses {
		if r.CycleID.String() == cycleID && r.RevieweeID.String() == revieweeID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeDirectory struct {
	employees map[string]employee.EmployeeResponse
}

func (f *fakeDirectory) GetByID(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeDirectory) GetDirectReports(ctx context.Context, companyID, managerID string) ([]employee.EmployeeResponse, error) {
	var out []employee.EmployeeResponse
	for _, e := range f.employees {
		if e.ManagerID == managerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeDirectory) add(managerID, status string) string {
	id := uuid.NewString()
	f.employees[id] = employee.EmployeeResponse{ID: id, FullName: "Emp " + id[:4], ManagerID: managerID, EmploymentStatus: status}
	return id
}

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   feedback.Service
	repo      *memRepo
	directory *fakeDirectory
}

func setup(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := newMemRepo()
	dir := &fakeDirectory{employees: map[string]employee.EmployeeResponse{}}
	return &serviceDeps{
		sqlMock:   sqlMock,
		service:   feedback.NewService(db, repo, dir),
		repo:      repo,
		directory: dir,
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

func cycleRequest() feedback.CycleRequest {
	return feedback.CycleRequest{
		Name:         "H1 2025",
		PeriodStart:  "2025-01-01",
		PeriodEnd:    "2025-06-30",
		Competencies: []string{"Communication", "Ownership"},
	}
}

func seedCycle(t *testing.T, deps *serviceDeps, companyID, status string) *feedback.Cycle {
	t.Helper()
	c := &feedback.Cycle{
		ID:                 uuid.New(),
		CompanyID:          uuid.MustParse(companyID),
		Name:               "H1 2025",
		RatingScale:        5,
		AnonymityThreshold: 3,
		Status:             status,
		CreatedAt:          time.Now(),
	}
	require.NoError(t, c.SetCompetencies([]string{"Communication", "Ownership"}))
	deps.repo.cycles[c.ID.String()] = c
	return c
}

func seedAssignment(deps *serviceDeps, c *feedback.Cycle, reviewer, reviewee, rel string) *feedback.Assignment {
	a := &feedback.Assignment{
		ID:           uuid.New(),
		CompanyID:    c.CompanyID,
		CycleID:      c.ID,
		ReviewerID:   uuid.MustParse(reviewer),
		RevieweeID:   uuid.MustParse(reviewee),
		Relationship: rel,
		Status:       feedback.AssignmentPending,
	}
	deps.repo.assignments[a.ID.String()] = a
	return a
}

func TestFeedbackService_CreateCycle(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	actorID := uuid.NewString()

	t.Run("applies defaults", func(t *testing.T) {
		deps := setup(t)

		resp, err := deps.service.CreateCycle(ctx, companyID, actorID, cycleRequest())

		require.NoError(t, err)
		assert.Equal(t, feedback.CycleDraft, resp.Status)
		assert.Equal(t, feedback.DefaultRatingScale, resp.RatingScale)
		assert.Equal(t, feedback.DefaultAnonymityThreshold, resp.AnonymityThreshold)
		assert.Equal(t, []string{"Communication", "Ownership"}, resp.Competencies)
		assert.Equal(t, "2025-06-30", resp.PeriodEnd)
	})

	t.Run("rejects an inverted period", func(t *testing.T) {
		deps := setup(t)
		req := cycleRequest()
		req.PeriodEnd = "2024-12-31"

		_, err := deps.service.CreateCycle(ctx, companyID, actorID, req)

		assert.ErrorIs(t, err, feedbackerrors.ErrInvalidPeriod)
	})

	t.Run("rejects duplicate competencies ignoring case", func(t *testing.T) {
		deps := setup(t)
		req := cycleRequest()
		req.Competencies = []string{"Ownership", " ownership "}

		_, err := deps.service.CreateCycle(ctx, companyID, actorID, req)

		assert.ErrorIs(t, err, feedbackerrors.ErrDuplicateCompetency)
	})
}

func TestFeedbackService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("activation needs assignments", func(t *testing.T) {
		deps := setup(t)
		c := seedCycle(t, deps, companyID, feedback.CycleDraft)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.ActivateCycle(ctx, companyID, c.ID.String())

		assert.ErrorIs(t, err, feedbackerrors.ErrCycleHasNoAssignments)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("draft to active to closed", func(t *testing.T) {
		deps := setup(t)
		c := seedCycle(t, deps, companyID, feedback.CycleDraft)
		emp := deps.directory.add("", employee.StatusActive)
		seedAssignment(deps, c, emp, emp, feedback.RelationSelf)

		expectTx(t, deps.sqlMock, true)
		resp, err := deps.service.ActivateCycle(ctx, companyID, c.ID.String())
		require.NoError(t, err)
		assert.Equal(t, feedback.CycleActive, resp.Status)
		assert.NotNil(t, resp.ActivatedAt)

		expectTx(t, deps.sqlMock, false)
		_, err = deps.service.ActivateCycle(ctx, companyID, c.ID.String())
		assert.ErrorIs(t, err, feedbackerrors.ErrCycleNotDraft)

		expectTx(t, deps.sqlMock, true)
		resp, err = deps.service.CloseCycle(ctx, companyID, c.ID.String())
		require.NoError(t, err)
		assert.Equal(t, feedback.CycleClosed, resp.Status)

		expectTx(t, deps.sqlMock, false)
		err = deps.service.DeleteCycle(ctx, companyID, c.ID.String())
		assert.ErrorIs(t, err, feedbackerrors.ErrCycleNotDraft)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown cycle", func(t *testing.T) {
		deps := setup(t)

		_, err := deps.service.GetCycle(ctx, companyID, uuid.NewString())

		assert.ErrorIs(t, err, feedbackerrors.ErrCycleNotFound)
	})
}

func TestFeedbackService_CreateAssignment(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("self needs the same reviewer and reviewee", func(t *testing.T) {
		deps := setup(t)
		c := seedCycle(t, deps, companyID, feedback.CycleDraft)
		a := deps.directory.add("", employee.StatusActive)
		b := deps.directory.add("", employee.StatusActive)

		_, err := deps.service.CreateAssignment(ctx, companyID, c.ID.String(), feedback.AssignmentRequest{
			ReviewerID: a, RevieweeID: b, Relationship: feedback.RelationSelf,
		})
		assert.ErrorIs(t, err, feedbackerrors.ErrSelfMismatch)

		_, err = deps.service.CreateAssignment(ctx, companyID, c.ID.String(), feedback.AssignmentRequest{
			ReviewerID: a, RevieweeID: a, Relationship: feedback.RelationPeer,
		})
		assert.ErrorIs(t, err, feedbackerrors.ErrSelfMismatch)
	})

	t.Run("duplicate pair conflicts", func(t *testing.T) {
		deps := setup(t)
		c := seedCycle(t, deps, companyID, feedback.CycleActive)
		a := deps.directory.add("", employee.StatusActive)
		b := deps.directory.add("", employee.StatusActive)
		req := feedback.AssignmentRequest{ReviewerID: a, RevieweeID: b, Relationship: "peer"}

		resp, err := deps.service.CreateAssignment(ctx, companyID, c.ID.String(), req)
		require.NoError(t, err)
		assert.Equal(t, feedback.RelationPeer, resp.Relationship)
		assert.Equal(t, deps.directory.employees[b].FullName, resp.RevieweeName)

		_, err = deps.service.CreateAssignment(ctx, companyID, c.ID.String(), req)
		assert.ErrorIs(t, err, feedbackerrors.ErrAssignmentExists)
	})

	t.Run("closed cycle and unknown employee", func(t *testing.T) {
		deps := setup(t)
		closed := seedCycle(t, deps, companyID, feedback.CycleClosed)
		open := seedCycle(t, deps, companyID, feedback.CycleDraft)
		a := deps.directory.add("", employee.StatusActive)

		_, err := deps.service.CreateAssignment(ctx, companyID, closed.ID.String(), feedback.AssignmentRequest{
			ReviewerID: a, RevieweeID: a, Relationship: feedback.RelationSelf,
		})
		assert.ErrorIs(t, err, feedbackerrors.ErrCycleClosed)

		_, err = deps.service.CreateAssignment(ctx, companyID, open.ID.String(), feedback.AssignmentRequest{
			ReviewerID: a, RevieweeID: uuid.NewString(), Relationship: feedback.RelationPeer,
		})
		assert.ErrorIs(t, err, feedbackerrors.ErrEmployeeNotFound)
	})
}

func TestFeedbackService_AutoAssign(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	deps := setup(t)
	c := seedCycle(t, deps, companyID, feedback.CycleDraft)

	boss := deps.directory.add("", employee.StatusActive)
	lead := deps.directory.add(boss, employee.StatusActive)
	deps.directory.add(lead, employee.StatusActive)
	deps.directory.add(lead, employee.StatusProbation)
	deps.directory.add(lead, employee.StatusExited)
	gone := deps.directory.add(boss, employee.StatusExited)

	expectTx(t, deps.sqlMock, true)
	res, err := deps.service.AutoAssign(ctx, companyID, c.ID.String(), feedback.AutoAssignRequest{
		RevieweeIDs: []string{lead, gone},
	})
	require.NoError(t, err)
	// self + manager + two active reports
	assert.Equal(t, feedback.AutoAssignResponse{Created: 4}, res)

	expectTx(t, deps.sqlMock, true)
	res, err = deps.service.AutoAssign(ctx, companyID, c.ID.String(), feedback.AutoAssignRequest{
		RevieweeIDs: []string{lead},
	})
	require.NoError(t, err)
	assert.Equal(t, feedback.AutoAssignResponse{Skipped: 4}, res)

	counts := map[string]int{}
	for _, a := range deps.repo.assignments {
		assert.Equal(t, lead, a.RevieweeID.String())
		counts[a.Relationship]++
	}
	assert.Equal(t, map[string]int{
		feedback.RelationSelf:         1,
		feedback.RelationManager:      1,
		feedback.RelationDirectReport: 2,
	}, counts)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestFeedbackService_Submit(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	reviewer := uuid.NewString()
	reviewee := uuid.NewString()
	ratings := map[string]int{"Communication": 4, "Ownership": 5}

	t.Run("stores the response and marks the assignment", func(t *testing.T) {
		deps := setup(t)
		c := seedCycle(t, deps, companyID, feedback.CycleActive)
		a := seedAssignment(deps, c, reviewer, reviewee, feedback.RelationPeer)
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Submit(ctx, companyID, reviewer, a.ID.String(), feedback.SubmitRequest{
			Ratings: ratings, Comment: "  steady  ",
		})

		require.NoError(t, err)
		assert.Equal(t, feedback.AssignmentSubmitted, resp.Status)
		assert.NotNil(t, resp.SubmittedAt)
		require.Len(t, deps.repo.responses, 1)
		stored := deps.repo.responses[0]
		assert.Equal(t, ratings, stored.RatingMap())
		assert.Equal(t, "steady", stored.Comment)
		assert.Equal(t, feedback.RelationPeer, stored.Relationship)
		assert.Equal(t, feedback.AssignmentSubmitted, deps.repo.assignments[a.ID.String()].Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("only the reviewer may submit", func(t *testing.T) {
		deps := setup(t)
		c := seedCycle(t, deps, companyID, feedback.CycleActive)
		a := seedAssignment(deps, c, reviewer, reviewee, feedback.RelationPeer)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Submit(ctx, companyID, uuid.NewString(), a.ID.String(), feedback.SubmitRequest{Ratings: ratings})

		assert.ErrorIs(t, err, feedbackerrors.ErrNotReviewer)
	})

	t.Run("cycle must be active", func(t *testing.T) {
		deps := setup(t)
		c := seedCycle(t, deps, companyID, feedback.CycleDraft)
		a := seedAssignment(deps, c, reviewer, reviewee, feedback.RelationPeer)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Submit(ctx, companyID, reviewer, a.ID.String(), feedback.SubmitRequest{Ratings: ratings})

		assert.ErrorIs(t, err, feedbackerrors.ErrCycleNotActive)
	})

	t.Run("second submission conflicts", func(t *testing.T) {
		deps := setup(t)
		c := seedCycle(t, deps, companyID, feedback.CycleActive)
		a := seedAssignment(deps, c, reviewer, reviewee, feedback.RelationPeer)
		a.Status = feedback.AssignmentSubmitted
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Submit(ctx, companyID, reviewer, a.ID.String(), feedback.SubmitRequest{Ratings: ratings})

		assert.ErrorIs(t, err, feedbackerrors.ErrAlreadySubmitted)
	})

	t.Run("incomplete ratings", func(t *testing.T) {
		deps := setup(t)
		c := seedCycle(t, deps, companyID, feedback.CycleActive)
		a := seedAssignment(deps, c, reviewer, reviewee, feedback.RelationPeer)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Submit(ctx, companyID, reviewer, a.ID.String(), feedback.SubmitRequest{
			Ratings: map[string]int{"Communication": 3},
		})

		assert.ErrorIs(t, err, feedbackerrors.ErrRatingsIncomplete)
		assert.Empty(t, deps.repo.responses)
	})
}

func TestFeedbackService_ReportAndProgress(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	deps := setup(t)
	c := seedCycle(t, deps, companyID, feedback.CycleActive)
	reviewee := uuid.NewString()

	peers := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
	for i, p := range peers {
		a := seedAssignment(deps, c, p, reviewee, feedback.RelationPeer)
		if i == 2 {
			continue
		}
		expectTx(t, deps.sqlMock, true)
		_, err := deps.service.Submit(ctx, companyID, p, a.ID.String(), feedback.SubmitRequest{
			Ratings: map[string]int{"Communication": 4, "Ownership": 2},
		})
		require.NoError(t, err)
	}

	report, err := deps.service.Report(ctx, companyID, c.ID.String(), reviewee)
	require.NoError(t, err)
	assert.Equal(t, 2, report.ResponseCount)
	assert.Nil(t, report.OverallAverage, "two peers stay below the threshold")

	progress, err := deps.service.CycleProgress(ctx, companyID, c.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 3, progress.Assigned)
	assert.Equal(t, 2, progress.Submitted)
	assert.Equal(t, 66.67, progress.CompletionRate)
}
