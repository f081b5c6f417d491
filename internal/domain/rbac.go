// Package domain holds request types shared by rbac and the middleware that
// enforces it, so neither has to import the other.
package domain

type EnforceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	CompanyID  string `json:"company_id" binding:"required"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

// Resources guarded by RBAC.
const (
	ResourceEmployee       = "employee"
	ResourceDepartment     = "department"
	ResourceSalary         = "salary"
	ResourceAttendance     = "attendance"
	ResourceLeave          = "leave"
	ResourcePayroll        = "payroll"
	ResourceFeedback       = "feedback"
	ResourceContractLabour = "contract_labour"
	ResourceExpense        = "expense"
	ResourceImport         = "import"
	ResourceSettings       = "settings"
	ResourceRole           = "role"
)

const (
	ActionRead    = "read"
	ActionReadAll = "read_all"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"
	ActionProcess = "process"
	ActionLock    = "lock"
)
