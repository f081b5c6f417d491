package contractlabour

import (
	"sort"

	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// computeWage turns a month of attendance into a wage line. A half day counts
// as present and then gives back half a day:
//
//	payable = present - 0.5 * half_days
//	wage    = payable * daily_wage + overtime_hours * ot_rate
func computeWage(w Worker, days []WorkerAttendance) PayrollLine {
	line := PayrollLine{
		WorkerID:      w.ID.String(),
		WorkerCode:    w.WorkerCode,
		WorkerName:    w.FullName,
		ContractorID:  w.ContractorID.String(),
		DailyWage:     w.DailyWage,
		OTHourlyRate:  w.OTHourlyRate,
		OvertimeHours: decimal.Zero,
	}
	if w.Contractor != nil {
		line.ContractorName = w.Contractor.Name
	}

	for _, d := range days {
		switch d.Status {
		case AttendancePresent:
			line.DaysPresent++
		case AttendanceHalfDay:
			line.DaysPresent++
			line.HalfDays++
		default:
			continue
		}
		line.OvertimeHours = line.OvertimeHours.Add(d.OvertimeHours)
	}

	line.PayableDays = decimal.NewFromInt(int64(line.DaysPresent)).Sub(half.Mul(decimal.NewFromInt(int64(line.HalfDays))))
	line.BaseWage = line.PayableDays.Mul(decimal.NewFromInt(w.DailyWage)).Round(0).IntPart()
	line.OvertimePay = line.OvertimeHours.Mul(decimal.NewFromInt(w.OTHourlyRate)).Round(0).IntPart()
	line.TotalWage = line.BaseWage + line.OvertimePay
	return line
}

// buildPayroll groups attendance by worker. Workers without a single present
// or half day are left out.
func buildPayroll(workers []Worker, rows []WorkerAttendance) []PayrollLine {
	byWorker := make(map[string][]WorkerAttendance, len(workers))
	for _, r := range rows {
		key := r.WorkerID.String()
		byWorker[key] = append(byWorker[key], r)
	}

	lines := make([]PayrollLine, 0, len(workers))
	for _, w := range workers {
		line := computeWage(w, byWorker[w.ID.String()])
		if line.DaysPresent == 0 {
			continue
		}
		lines = append(lines, line)
	}
	sortLines(lines)
	return lines
}

func sortLines(lines []PayrollLine) {
	sort.Slice(lines, func(i, j int) bool { return lines[i].WorkerCode < lines[j].WorkerCode })
}
