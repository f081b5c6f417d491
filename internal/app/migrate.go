package app

import (
	"sharda-hr/internal/attendance"
	"sharda-hr/internal/auth"
	"sharda-hr/internal/bulkimport"
	"sharda-hr/internal/contractlabour"
	"sharda-hr/internal/department"
	"sharda-hr/internal/employee"
	"sharda-hr/internal/employeesalary"
	"sharda-hr/internal/expense"
	"sharda-hr/internal/feedback"
	"sharda-hr/internal/leave"
	"sharda-hr/internal/messaging/kafka"
	"sharda-hr/internal/payroll"
	"sharda-hr/internal/rbac"
	"sharda-hr/internal/settings"
	"sharda-hr/internal/shared/counter"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists the owning entity of every table, parents before children.
// Read-only projections such as the EmployeeRef types are left out.
func Models() []any {
	return []any{
		&department.Department{},
		&employee.Employee{},
		&auth.User{},
		&rbac.Role{},
		&rbac.Permission{},
		&rbac.RolePermission{},
		&rbac.EmployeeRole{},
		&counter.CompanyCounter{},
		&kafka.OutboxRecord{},
		&settings.CompanySetting{},
		&settings.DeductionRule{},
		&employeesalary.EmployeeSalary{},
		&attendance.Attendance{},
		&leave.Leave{},
		&leave.Balance{},
		&expense.Claim{},
		&expense.Item{},
		&payroll.Run{},
		&payroll.Payslip{},
		&payroll.Component{},
		&feedback.Cycle{},
		&feedback.Assignment{},
		&feedback.Response{},
		&contractlabour.Contractor{},
		&contractlabour.Worker{},
		&contractlabour.WorkerAttendance{},
		&contractlabour.ContractPayroll{},
		&bulkimport.Job{},
	}
}

// Migrate creates or alters every table. gen_random_uuid needs pgcrypto on
// Postgres versions before 13.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	models := Models()
	if err := db.AutoMigrate(models...); err != nil {
		return err
	}
	zap.L().Named("app.migrate").Info("schema migrated", zap.Int("tables", len(models)))
	return nil
}
