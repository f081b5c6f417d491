package bulkimport

import (
	"testing"
	"time"

	"sharda-hr/internal/attendance"
	"sharda-hr/internal/employee"
	"sharda-hr/internal/shared/dateutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectory() directory {
	return directory{
		codes:       map[string]string{"EMP-000001": "e-1", "EMP-000002": "e-2"},
		emails:      map[string]bool{"taken@sharda.test": true},
		departments: map[string]string{"engineering": "d-eng"},
	}
}

func employeeIndex(t *testing.T) map[string]int {
	t.Helper()
	idx, err := headerIndex(employeeColumns, employeeColumns)
	require.NoError(t, err)
	return idx
}

func TestParseEmployeeRows(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	rows := [][]string{
		{"", "Asha Rao", "asha@sharda.test", "9800000000", "Engineering", "Engineer", "2025-04-01", "", "30000", "12000", "", ""},
		{"EMP-000001", "Dup Code", "dup@sharda.test", "", "", "", "2025-04-01", "", "", "", "", ""},
		{"", "", "not-an-email", "", "Sales", "", "2026-01-01", "retired", "", "500", "", ""},
		{"", "Again", "ASHA@sharda.test", "", "", "", "2025-04-01", "probation", "", "", "", ""},
	}

	out, errs := parseEmployeeRows(rows, employeeIndex(t), testDirectory(), today)

	require.Len(t, out, 1)
	first := out[0]
	assert.Equal(t, 2, first.line)
	assert.Equal(t, "d-eng", first.employee.DepartmentID)
	assert.Equal(t, employee.StatusActive, first.employee.EmploymentStatus)
	assert.Equal(t, "2025-04-01", first.employee.DateOfJoining)
	assert.Equal(t, int64(3000000), first.basic)
	assert.Equal(t, int64(1200000), first.hra)
	assert.True(t, first.hasSalary())

	byCell := map[[2]any]string{}
	for _, e := range errs {
		byCell[[2]any{e.Row, e.Column}] = e.Message
	}
	assert.Equal(t, "employee code already exists", byCell[[2]any{3, colEmployeeCode}])
	assert.Equal(t, "is required", byCell[[2]any{4, colFullName}])
	assert.Equal(t, "is not a valid email", byCell[[2]any{4, colEmail}])
	assert.Equal(t, "unknown department", byCell[[2]any{4, colDepartment}])
	assert.Equal(t, "cannot be in the future", byCell[[2]any{4, colDateOfJoining}])
	assert.Contains(t, byCell[[2]any{4, colStatus}], "ACTIVE")
	assert.Contains(t, byCell[[2]any{4, colBasic}], "required")
	assert.Equal(t, "duplicate of row 2", byCell[[2]any{5, colEmail}])
}

func TestParseAttendanceRows(t *testing.T) {
	m, err := dateutil.ParseMonth("2025-06")
	require.NoError(t, err)
	today := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	cols := attendanceColumns(m)
	idx, err := headerIndex(cols, cols)
	require.NoError(t, err)

	row := func(code string, marks ...string) []string {
		r := make([]string, len(cols))
		r[0] = code
		copy(r[1:], marks)
		return r
	}
	rows := [][]string{
		row("emp-000001", "P", "h", "", ""),
		row("EMP-000002", "WO", "X", "", "P"),
		row("EMP-999999", "P"),
		row("EMP-000001", "A"),
	}

	out, errs := parseAttendanceRows(rows, idx, testDirectory(), m, today)

	require.Len(t, out, 1)
	want := []attendance.MarkAttendanceRequest{
		{EmployeeID: "e-1", Date: "2025-06-01", Status: attendance.StatusPresent},
		{EmployeeID: "e-1", Date: "2025-06-02", Status: attendance.StatusHalfDay},
	}
	if diff := cmp.Diff(want, out[0].entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	assert.ElementsMatch(t, []RowError{
		{Row: 3, Column: "2", Value: "X", Message: "use P, A, H, L, HO or WO"},
		{Row: 3, Column: "4", Value: "P", Message: "cannot mark a future date"},
		{Row: 4, Column: colEmployeeCode, Value: "EMP-999999", Message: "unknown employee code"},
		{Row: 5, Column: colEmployeeCode, Value: "EMP-000001", Message: "duplicate of row 2"},
	}, errs)
}
