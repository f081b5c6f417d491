package rbac

type RoleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AssignRoleRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Role       string `json:"role" binding:"required"`
}
