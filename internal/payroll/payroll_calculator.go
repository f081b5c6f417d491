package payroll

import (
	"fmt"

	"sharda-hr/internal/settings"
	"sharda-hr/internal/shared/dateutil"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type SalaryStructure struct {
	Basic            int64
	HRA              int64
	SpecialAllowance int64
	OtherAllowance   int64
}

func (s SalaryStructure) Gross() int64 {
	return s.Basic + s.HRA + s.SpecialAllowance + s.OtherAllowance
}

// Reimbursement is an approved expense claim paid out with the salary.
type Reimbursement struct {
	ClaimID     string
	ClaimNumber string
	Amount      int64
}

type CalcInput struct {
	Month          dateutil.Month
	Settings       settings.CompanySettings
	Salary         SalaryStructure
	PayableDays    decimal.Decimal
	LateMarks      int
	Rules          []settings.DeductionRule
	Reimbursements []Reimbursement
}

type Line struct {
	Kind      string
	Code      string
	Name      string
	Amount    int64
	Reference string
}

type Calculation struct {
	WorkingDays         int
	PayableDays         decimal.Decimal
	LOPDays             decimal.Decimal
	Lines               []Line
	Gross               int64
	TotalDeductions     int64
	CappedDeductions    int64
	TotalReimbursements int64
	Net                 int64
	EmployerPF          int64
	EmployerESI         int64
}

// Calculate computes one employee's payslip for a month. It has no side
// effects; Preview and ProcessRun share it.
func Calculate(in CalcInput) Calculation {
	cfg := in.Settings
	working := cfg.WorkingDays(in.Month.Days())
	workingDec := decimal.NewFromInt(int64(working))

	payable := in.PayableDays
	if cfg.WorkingDayPolicy == settings.PolicyFixed26 {
		// Days lost in the calendar month (absent, half of each half day,
		// unmarked) come off the fixed 26; week-offs and holidays do not
		// offset them.
		lost := decimal.NewFromInt(int64(in.Month.Days())).Sub(payable)
		payable = workingDec.Sub(decimal.Max(lost, decimal.Zero))
	}
	if payable.IsNegative() {
		payable = decimal.Zero
	}
	if payable.GreaterThan(workingDec) {
		payable = workingDec
	}
	lop := workingDec.Sub(payable)

	out := Calculation{WorkingDays: working, PayableDays: payable, LOPDays: lop}

	prorate := func(amount int64) int64 {
		if working == 0 {
			return 0
		}
		return paise(decimal.NewFromInt(amount).Mul(payable).Div(workingDec))
	}

	basic := prorate(in.Salary.Basic)
	earnings := []Line{
		{Kind: KindEarning, Code: CodeBasic, Name: "Basic", Amount: basic},
		{Kind: KindEarning, Code: CodeHRA, Name: "House Rent Allowance", Amount: prorate(in.Salary.HRA)},
		{Kind: KindEarning, Code: CodeSpecialAllowance, Name: "Special Allowance", Amount: prorate(in.Salary.SpecialAllowance)},
		{Kind: KindEarning, Code: CodeOtherAllowance, Name: "Other Allowance", Amount: prorate(in.Salary.OtherAllowance)},
	}
	for _, e := range earnings {
		if e.Amount == 0 && e.Code != CodeBasic {
			continue
		}
		out.Lines = append(out.Lines, e)
		out.Gross += e.Amount
	}
	gross := out.Gross

	var deductions []Line
	pf := cfg.Statutory.PF
	if pf.Enabled {
		wage := basic
		if pf.WageCeiling > 0 && wage > pf.WageCeiling {
			wage = pf.WageCeiling
		}
		deductions = append(deductions, Line{Kind: KindDeduction, Code: CodePF, Name: "Provident Fund", Amount: percentOf(wage, pf.EmployeeRate)})
		out.EmployerPF = percentOf(wage, pf.EmployerRate)
	}

	esi := cfg.Statutory.ESI
	if esi.Enabled && in.Salary.Gross() <= esi.GrossThreshold {
		deductions = append(deductions, Line{Kind: KindDeduction, Code: CodeESI, Name: "Employee State Insurance", Amount: percentOf(gross, esi.EmployeeRate)})
		out.EmployerESI = percentOf(gross, esi.EmployerRate)
	}

	if pt := cfg.Statutory.PT.PTFor(gross); pt > 0 {
		deductions = append(deductions, Line{Kind: KindDeduction, Code: CodePT, Name: "Professional Tax", Amount: pt})
	}

	for _, rule := range in.Rules {
		amount := ruleAmount(rule, basic, gross, lop, in.LateMarks)
		if amount <= 0 {
			continue
		}
		deductions = append(deductions, Line{
			Kind:      KindDeduction,
			Code:      CodeRule,
			Name:      rule.Name,
			Amount:    amount,
			Reference: rule.ID.String(),
		})
	}

	// Deductions are applied in order until gross is used up. The rest is
	// recorded as capped.
	remaining := gross
	for _, d := range deductions {
		if d.Amount > remaining {
			out.CappedDeductions += d.Amount - remaining
			d.Amount = remaining
		}
		remaining -= d.Amount
		out.TotalDeductions += d.Amount
		out.Lines = append(out.Lines, d)
	}

	for _, r := range in.Reimbursements {
		if r.Amount <= 0 {
			continue
		}
		out.Lines = append(out.Lines, Line{
			Kind:      KindReimbursement,
			Code:      CodeExpense,
			Name:      fmt.Sprintf("Expense claim %s", r.ClaimNumber),
			Amount:    r.Amount,
			Reference: r.ClaimID,
		})
		out.TotalReimbursements += r.Amount
	}

	if out.EmployerPF > 0 {
		out.Lines = append(out.Lines, Line{Kind: KindEmployer, Code: CodeEmployerPF, Name: "Employer PF contribution", Amount: out.EmployerPF})
	}
	if out.EmployerESI > 0 {
		out.Lines = append(out.Lines, Line{Kind: KindEmployer, Code: CodeEmployerESI, Name: "Employer ESI contribution", Amount: out.EmployerESI})
	}

	out.Net = gross - out.TotalDeductions + out.TotalReimbursements
	return out
}

func ruleAmount(rule settings.DeductionRule, basic, gross int64, lop decimal.Decimal, lateMarks int) int64 {
	switch rule.Type {
	case settings.RuleFixed:
		return rule.Amount
	case settings.RulePercentOfBasic:
		return paise(decimal.NewFromInt(basic).Mul(rule.Percent).Div(hundred))
	case settings.RulePercentOfGross:
		return paise(decimal.NewFromInt(gross).Mul(rule.Percent).Div(hundred))
	case settings.RulePerLOPDay:
		return paise(decimal.NewFromInt(rule.Amount).Mul(lop))
	case settings.RulePerLateMark:
		chargeable := lateMarks - rule.LateGraceCount
		if chargeable <= 0 {
			return 0
		}
		return rule.Amount * int64(chargeable)
	}
	return 0
}

func percentOf(amount int64, rate float64) int64 {
	return paise(decimal.NewFromInt(amount).Mul(decimal.NewFromFloat(rate)).Div(hundred))
}

// paise rounds half away from zero, which is half-up for the non-negative
// amounts payroll deals in.
func paise(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
