package attendance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sharda-hr/internal/attendance"
	attendanceerrors "sharda-hr/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	attendance.Service
	clockInFn func(ctx context.Context, companyID, employeeID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error)
	getAllFn  func(ctx context.Context, companyID string, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error)
	summaryFn func(ctx context.Context, companyID, month, employeeID string) ([]attendance.MonthlySummary, error)
}

func (f *fakeService) ClockIn(ctx context.Context, companyID, employeeID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	return f.clockInFn(ctx, companyID, employeeID, req)
}
func (f *fakeService) GetAll(ctx context.Context, companyID string, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	return f.getAllFn(ctx, companyID, filter)
}
func (f *fakeService) MonthlySummary(ctx context.Context, companyID, month, employeeID string) ([]attendance.MonthlySummary, error) {
	return f.summaryFn(ctx, companyID, month, employeeID)
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestHandler_ClockIn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	svc := &fakeService{
		clockInFn: func(ctx context.Context, cid, eid string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, employeeID, eid)
			return attendance.AttendanceResponse{ID: uuid.NewString(), EmployeeID: eid}, nil
		},
	}
	h := attendance.NewHandler(svc)

	c, w := newContext(http.MethodPost, "/attendances/clock-in", `{}`)
	c.Set("company_id", companyID)
	c.Set("employee_id", employeeID)
	h.ClockIn(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	svc.clockInFn = func(ctx context.Context, cid, eid string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
		return attendance.AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}
	c, w = newContext(http.MethodPost, "/attendances/clock-in", `{}`)
	h.ClockIn(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetAll_SelfScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	self := uuid.NewString()
	other := uuid.NewString()

	var got attendance.ListFilter
	svc := &fakeService{
		getAllFn: func(ctx context.Context, cid string, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
			got = filter
			return []attendance.AttendanceResponse{{ID: uuid.NewString()}, {ID: uuid.NewString()}}, nil
		},
	}
	h := attendance.NewHandler(svc)

	c, w := newContext(http.MethodGet, "/attendances?month=2026-03&employee_id="+other+"&page=1&page_size=1", "")
	c.Set("employee_id", self)
	c.Set("has_read_all", false)
	h.GetAll(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, self, got.EmployeeID)
	assert.Equal(t, "2026-03", got.Month)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "meta")

	c, _ = newContext(http.MethodGet, "/attendances?employee_id="+other, "")
	c.Set("employee_id", self)
	c.Set("has_read_all", true)
	h.GetAll(c)
	assert.Equal(t, other, got.EmployeeID)
}

func TestHandler_MonthlySummary_InvalidMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{
		summaryFn: func(ctx context.Context, cid, month, eid string) ([]attendance.MonthlySummary, error) {
			return nil, attendanceerrors.ErrInvalidMonth
		},
	}
	h := attendance.NewHandler(svc)

	c, w := newContext(http.MethodGet, "/attendances/summary?month=March", "")
	c.Set("has_read_all", true)
	h.MonthlySummary(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
