package bulkimport

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	bulkimporterrors "sharda-hr/internal/bulkimport/errors"
	"sharda-hr/internal/shared/dateutil"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	colEmployeeCode     = "employee_code"
	colFullName         = "full_name"
	colEmail            = "email"
	colPhone            = "phone"
	colDepartment       = "department"
	colDesignation      = "designation"
	colDateOfJoining    = "date_of_joining"
	colStatus           = "status"
	colBasic            = "basic"
	colHRA              = "hra"
	colSpecialAllowance = "special_allowance"
	colOtherAllowance   = "other_allowance"
)

var employeeColumns = []string{
	colEmployeeCode, colFullName, colEmail, colPhone, colDepartment, colDesignation,
	colDateOfJoining, colStatus, colBasic, colHRA, colSpecialAllowance, colOtherAllowance,
}

// attendanceColumns is employee_code followed by one column per day of month.
func attendanceColumns(m dateutil.Month) []string {
	cols := make([]string, 0, m.Days()+1)
	cols = append(cols, colEmployeeCode)
	for d := 1; d <= m.Days(); d++ {
		cols = append(cols, strconv.Itoa(d))
	}
	return cols
}

func columnsFor(kind string, m dateutil.Month) []string {
	if kind == KindAttendance {
		return attendanceColumns(m)
	}
	return employeeColumns
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

// headerIndex checks the header row against the expected columns. Column
// order is free, but a missing, unknown or repeated column is fatal.
func headerIndex(header, expected []string) (map[string]int, error) {
	want := make(map[string]bool, len(expected))
	for _, c := range expected {
		want[c] = true
	}

	index := make(map[string]int, len(header))
	var unknown, duplicate, missing []string
	for i, raw := range header {
		h := normalizeHeader(raw)
		if h == "" {
			continue
		}
		if !want[h] {
			unknown = append(unknown, raw)
			continue
		}
		if _, seen := index[h]; seen {
			duplicate = append(duplicate, raw)
			continue
		}
		index[h] = i
	}
	for _, c := range expected {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}

	if len(unknown)+len(duplicate)+len(missing) > 0 {
		details := map[string][]string{}
		if len(missing) > 0 {
			details["missing"] = missing
		}
		if len(unknown) > 0 {
			details["unknown"] = unknown
		}
		if len(duplicate) > 0 {
			details["duplicate"] = duplicate
		}
		return nil, bulkimporterrors.ErrHeaderMismatch.WithDetails(details)
	}
	return index, nil
}

var dateLayouts = []string{dateutil.DateLayout, "02-01-2006", "02/01/2006", "2/1/2006"}

// parseDateCell accepts ISO dates, day-first dates and Excel date serials.
func parseDateCell(v string) (time.Time, error) {
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		if serial < 1 || serial > 2958465 {
			return time.Time{}, fmt.Errorf("date serial %s out of range", v)
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, err
		}
		return dateutil.TruncateDay(t), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", v)
}

// parseRupees turns "25,000.50" into paise. More than two decimals is rejected.
func parseRupees(v string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(v, ",", ""))
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount cannot be negative")
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return 0, fmt.Errorf("amount has more than two decimals")
	}
	return d.Shift(2).IntPart(), nil
}

func formatRupees(paise int64) string {
	return decimal.New(paise, -2).StringFixed(2)
}
