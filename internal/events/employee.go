package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const (
	EventEmployeeCreated = "employee_created"
	EventEmployeeExited  = "employee_exited"
)

type EmployeeCreatedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	CompanyID     string    `json:"company_id"`
	DateOfJoining string    `json:"date_of_joining"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type EmployeeExitedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	DateOfExit string    `json:"date_of_exit"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EmployeeLifecycleHeader is decoded first to route a lifecycle message by type.
type EmployeeLifecycleHeader struct {
	EventType string `json:"event_type"`
}
