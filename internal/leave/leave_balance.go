package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	half   = decimal.NewFromFloat(0.5)
	twelve = decimal.NewFromInt(12)
)

// ProrateEntitlement scales an annual allowance to the months left in the
// year, rounded down to the nearest half day.
func ProrateEntitlement(annual float64, months int) decimal.Decimal {
	if months <= 0 || annual <= 0 {
		return decimal.Zero
	}
	if months > 12 {
		months = 12
	}
	v := decimal.NewFromFloat(annual).Mul(decimal.NewFromInt(int64(months))).Div(twelve)
	return v.Div(half).Floor().Mul(half)
}

// monthsRemaining counts months from the joining month through December.
func monthsRemaining(joined time.Time) int {
	return 12 - int(joined.Month()) + 1
}

// consumesBalance reports whether approving a leave of type t draws down a balance.
func consumesBalance(t string) bool {
	return t != TypeUnpaid
}

func isHalfStep(d decimal.Decimal) bool {
	return d.Mod(half).IsZero()
}

func mapBalance(b Balance) BalanceResponse {
	return BalanceResponse{
		EmployeeID: b.EmployeeID.String(),
		Year:       b.Year,
		LeaveType:  b.LeaveType,
		Entitled:   b.Entitled,
		Adjusted:   b.Adjusted,
		Used:       b.Used,
		Available:  b.Available(),
	}
}
