package bulkimport

import (
	"strconv"
	"strings"
	"time"

	"sharda-hr/internal/attendance"
	"sharda-hr/internal/employee"
	"sharda-hr/internal/shared/dateutil"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// employeeRow is one validated line of an employee import.
type employeeRow struct {
	line     int
	employee employee.CreateEmployeeRequest
	basic    int64
	hra      int64
	special  int64
	other    int64
}

func (r employeeRow) hasSalary() bool {
	return r.basic > 0
}

// directory is what row validation needs to know about existing data.
type directory struct {
	codes       map[string]string // upper-cased employee code -> employee id
	emails      map[string]bool   // lower-cased
	departments map[string]string // lower-cased name -> id
}

type rowChecker struct {
	line int
	row  []string
	idx  map[string]int
	errs []RowError
}

func (c *rowChecker) get(col string) string {
	return cell(c.row, c.idx[col])
}

func (c *rowChecker) fail(col, value, msg string) {
	c.errs = append(c.errs, RowError{Row: c.line, Column: col, Value: value, Message: msg})
}

func (c *rowChecker) maxLen(col string, n int) string {
	v := c.get(col)
	if len([]rune(v)) > n {
		c.fail(col, v, "must be at most "+strconv.Itoa(n)+" characters")
	}
	return v
}

func (c *rowChecker) amount(col string) int64 {
	v := c.get(col)
	paise, err := parseRupees(v)
	if err != nil {
		c.fail(col, v, "must be a non-negative amount in rupees")
		return 0
	}
	return paise
}

func parseEmployeeRows(rows [][]string, idx map[string]int, dir directory, today time.Time) ([]employeeRow, []RowError) {
	var (
		out    []employeeRow
		errs   []RowError
		codes  = map[string]int{}
		emails = map[string]int{}
	)

	for i, row := range rows {
		if blank(row) {
			continue
		}
		c := &rowChecker{line: i + 2, row: row, idx: idx}

		code := c.maxLen(colEmployeeCode, 30)
		if code != "" {
			key := strings.ToUpper(code)
			if _, exists := dir.codes[key]; exists {
				c.fail(colEmployeeCode, code, "employee code already exists")
			} else if first, dup := codes[key]; dup {
				c.fail(colEmployeeCode, code, "duplicate of row "+strconv.Itoa(first))
			} else {
				codes[key] = c.line
			}
		}

		name := c.maxLen(colFullName, 150)
		if name == "" {
			c.fail(colFullName, name, "is required")
		}

		email := c.get(colEmail)
		key := strings.ToLower(email)
		switch {
		case email == "":
			c.fail(colEmail, email, "is required")
		case validate.Var(email, "email") != nil:
			c.fail(colEmail, email, "is not a valid email")
		case dir.emails[key]:
			c.fail(colEmail, email, "email already belongs to an employee")
		default:
			if first, dup := emails[key]; dup {
				c.fail(colEmail, email, "duplicate of row "+strconv.Itoa(first))
			} else {
				emails[key] = c.line
			}
		}

		phone := c.maxLen(colPhone, 30)
		designation := c.maxLen(colDesignation, 100)

		var departmentID string
		if dept := c.get(colDepartment); dept != "" {
			id, ok := dir.departments[strings.ToLower(dept)]
			if !ok {
				c.fail(colDepartment, dept, "unknown department")
			}
			departmentID = id
		}

		var doj string
		if raw := c.get(colDateOfJoining); raw == "" {
			c.fail(colDateOfJoining, raw, "is required")
		} else if t, err := parseDateCell(raw); err != nil {
			c.fail(colDateOfJoining, raw, "must be a date such as 2025-04-01")
		} else if t.After(today) {
			c.fail(colDateOfJoining, raw, "cannot be in the future")
		} else {
			doj = t.Format(dateutil.DateLayout)
		}

		status := strings.ToUpper(c.get(colStatus))
		if status == "" {
			status = employee.StatusActive
		} else if !employee.IsAssignableStatus(status) {
			c.fail(colStatus, c.get(colStatus), "must be ACTIVE, PROBATION or NOTICE")
		}

		r := employeeRow{
			line:    c.line,
			basic:   c.amount(colBasic),
			hra:     c.amount(colHRA),
			special: c.amount(colSpecialAllowance),
			other:   c.amount(colOtherAllowance),
		}
		if r.basic == 0 && r.hra+r.special+r.other > 0 {
			c.fail(colBasic, c.get(colBasic), "is required when other salary components are given")
		}

		if len(c.errs) > 0 {
			errs = append(errs, c.errs...)
			continue
		}
		r.employee = employee.CreateEmployeeRequest{
			EmployeeCode:     code,
			FullName:         name,
			Email:            email,
			Phone:            phone,
			DepartmentID:     departmentID,
			Designation:      designation,
			DateOfJoining:    doj,
			EmploymentStatus: status,
		}
		out = append(out, r)
	}
	return out, errs
}

var attendanceCodes = map[string]string{
	"P":  attendance.StatusPresent,
	"A":  attendance.StatusAbsent,
	"H":  attendance.StatusHalfDay,
	"L":  attendance.StatusLeave,
	"HO": attendance.StatusHoliday,
	"WO": attendance.StatusWeekOff,
}

// attendanceRow is one employee line of an attendance import.
type attendanceRow struct {
	line    int
	entries []attendance.MarkAttendanceRequest
}

func parseAttendanceRows(rows [][]string, idx map[string]int, dir directory, m dateutil.Month, today time.Time) ([]attendanceRow, []RowError) {
	var (
		out  []attendanceRow
		errs []RowError
		seen = map[string]int{}
	)

	for i, row := range rows {
		if blank(row) {
			continue
		}
		c := &rowChecker{line: i + 2, row: row, idx: idx}

		code := c.get(colEmployeeCode)
		key := strings.ToUpper(code)
		employeeID, known := dir.codes[key]
		switch {
		case code == "":
			c.fail(colEmployeeCode, code, "is required")
		case !known:
			c.fail(colEmployeeCode, code, "unknown employee code")
		default:
			if first, dup := seen[key]; dup {
				c.fail(colEmployeeCode, code, "duplicate of row "+strconv.Itoa(first))
			} else {
				seen[key] = c.line
			}
		}

		r := attendanceRow{line: c.line}
		for d := 1; d <= m.Days(); d++ {
			col := strconv.Itoa(d)
			v := strings.ToUpper(c.get(col))
			if v == "" {
				continue
			}
			status, ok := attendanceCodes[v]
			if !ok {
				c.fail(col, c.get(col), "use P, A, H, L, HO or WO")
				continue
			}
			day := m.Start().AddDate(0, 0, d-1)
			if day.After(today) {
				c.fail(col, c.get(col), "cannot mark a future date")
				continue
			}
			r.entries = append(r.entries, attendance.MarkAttendanceRequest{
				EmployeeID: employeeID,
				Date:       day.Format(dateutil.DateLayout),
				Status:     status,
			})
		}

		if len(c.errs) > 0 {
			errs = append(errs, c.errs...)
			continue
		}
		out = append(out, r)
	}
	return out, errs
}
