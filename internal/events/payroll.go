package events

import "time"

const PayrollRunLockedTopic = "hr.payroll.run.locked.v1"

const EventPayrollRunLocked = "payroll_run_locked"

type PayrollRunLockedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RunID      string    `json:"run_id"`
	CompanyID  string    `json:"company_id"`
	Month      string    `json:"month"`
	PayslipIDs []string  `json:"payslip_ids"`
	LockedBy   string    `json:"locked_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
