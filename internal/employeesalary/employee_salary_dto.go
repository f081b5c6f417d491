package employeesalary

type CreateEmployeeSalaryRequest struct {
	EmployeeID       string `json:"employee_id" binding:"required,uuid"`
	Basic            int64  `json:"basic" binding:"required,gt=0"`
	HRA              int64  `json:"hra" binding:"gte=0"`
	SpecialAllowance int64  `json:"special_allowance" binding:"gte=0"`
	OtherAllowance   int64  `json:"other_allowance" binding:"gte=0"`
	EffectiveDate    string `json:"effective_date" binding:"required"`
	Note             string `json:"note" binding:"max=255"`
}

// UpdateEmployeeSalaryRequest appends a revision. Zero components keep the previous value.
type UpdateEmployeeSalaryRequest struct {
	Basic            int64  `json:"basic" binding:"gte=0"`
	HRA              *int64 `json:"hra" binding:"omitempty,gte=0"`
	SpecialAllowance *int64 `json:"special_allowance" binding:"omitempty,gte=0"`
	OtherAllowance   *int64 `json:"other_allowance" binding:"omitempty,gte=0"`
	EffectiveDate    string `json:"effective_date" binding:"required"`
	Note             string `json:"note" binding:"max=255"`
}

type EmployeeSalaryResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name,omitempty"`
	Basic            int64  `json:"basic"`
	HRA              int64  `json:"hra"`
	SpecialAllowance int64  `json:"special_allowance"`
	OtherAllowance   int64  `json:"other_allowance"`
	Gross            int64  `json:"gross"`
	EffectiveDate    string `json:"effective_date"`
	Note             string `json:"note,omitempty"`
}
