package employee

type CreateEmployeeRequest struct {
	EmployeeCode     string `json:"employee_code" binding:"omitempty,max=30"`
	FullName         string `json:"full_name" binding:"required,max=150"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"omitempty,max=30"`
	DepartmentID     string `json:"department_id" binding:"omitempty,uuid"`
	Designation      string `json:"designation" binding:"omitempty,max=100"`
	ManagerID        string `json:"manager_id" binding:"omitempty,uuid"`
	DateOfJoining    string `json:"date_of_joining" binding:"required"`
	EmploymentStatus string `json:"employment_status"`
	PAN              string `json:"pan"`
	UAN              string `json:"uan" binding:"omitempty,numeric,len=12"`
	ESICNumber       string `json:"esic_number" binding:"omitempty,numeric"`
	BankAccount      string `json:"bank_account" binding:"omitempty,numeric"`
	IFSC             string `json:"ifsc"`
}

type UpdateEmployeeRequest = CreateEmployeeRequest

type ExitEmployeeRequest struct {
	DateOfExit string `json:"date_of_exit" binding:"required"`
	Reason     string `json:"reason"`
}

type ListFilter struct {
	Query        string
	DepartmentID string
	Status       string
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID               string                      `json:"id"`
	CompanyID        string                      `json:"company_id"`
	EmployeeCode     string                      `json:"employee_code"`
	FullName         string                      `json:"full_name"`
	Email            string                      `json:"email"`
	Phone            string                      `json:"phone,omitempty"`
	DepartmentID     string                      `json:"department_id,omitempty"`
	Department       *EmployeeDepartmentResponse `json:"department,omitempty"`
	Designation      string                      `json:"designation,omitempty"`
	ManagerID        string                      `json:"manager_id,omitempty"`
	DateOfJoining    string                      `json:"date_of_joining"`
	DateOfExit       string                      `json:"date_of_exit,omitempty"`
	EmploymentStatus string                      `json:"employment_status"`
	PAN              string                      `json:"pan,omitempty"`
	UAN              string                      `json:"uan,omitempty"`
	ESICNumber       string                      `json:"esic_number,omitempty"`
	BankAccount      string                      `json:"bank_account,omitempty"`
	IFSC             string                      `json:"ifsc,omitempty"`
}

type EmployeeOption struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
}
