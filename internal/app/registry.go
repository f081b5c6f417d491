package app

import (
	"context"
	"database/sql"

	"sharda-hr/internal/attendance"
	"sharda-hr/internal/auth"
	"sharda-hr/internal/bootstrap"
	"sharda-hr/internal/bulkimport"
	"sharda-hr/internal/config"
	"sharda-hr/internal/contractlabour"
	"sharda-hr/internal/department"
	"sharda-hr/internal/employee"
	"sharda-hr/internal/employeesalary"
	"sharda-hr/internal/expense"
	"sharda-hr/internal/feedback"
	"sharda-hr/internal/leave"
	"sharda-hr/internal/messaging/kafka"
	"sharda-hr/internal/middleware"
	"sharda-hr/internal/payroll"
	"sharda-hr/internal/rbac"
	"sharda-hr/internal/rbac/infra"
	"sharda-hr/internal/settings"
	"sharda-hr/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	audit bootstrap.AuditLogger,
) error {
	logger := zap.L()

	defaults, err := settings.LoadDefaults(cfg.StatutoryDefaultsPath)
	if err != nil {
		return err
	}

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	bulkimportRepo := bulkimport.NewRepository(gormDB)
	contractlabourRepo := contractlabour.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	employeeSalaryRepo := employeesalary.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	feedbackRepo := feedback.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	settingsService := settings.NewService(settingsRepo, rdb, defaults, logger)
	if cfg.StatutoryDefaultsPath != "" {
		// lives as long as the process
		if err := settings.WatchDefaults(context.Background(), cfg.StatutoryDefaultsPath, settingsService, logger); err != nil {
			return err
		}
	}
	authService := auth.NewService(authRepo, rbacService, logger)
	departmentService := department.NewService(db, departmentRepo, rdb, logger)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	employeeSalaryService := employeesalary.NewService(db, employeeSalaryRepo, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, settingsService, logger)
	leaveService := leave.NewService(db, leaveRepo, attendanceService, settingsService, logger)
	expenseService := expense.NewService(db, expenseRepo, counterRepo, settingsService, logger)
	payrollService := payroll.NewService(db, payrollRepo, payroll.Dependencies{
		Employees:  employeeService,
		Salaries:   employeeSalaryService,
		Attendance: attendanceService,
		Settings:   settingsService,
		Expenses:   expenseService,
		Outbox:     outboxRepo,
		Audit:      audit,
		PayslipDir: cfg.PayslipDir,
	}, logger)
	feedbackService := feedback.NewService(db, feedbackRepo, employeeService, logger)
	contractlabourService := contractlabour.NewService(db, contractlabourRepo, counterRepo, logger)
	bulkimportService := bulkimport.NewService(db, bulkimportRepo, bulkimport.Dependencies{
		Employees:   employeeService,
		Departments: departmentService,
		Salaries:    employeeSalaryService,
		Attendance:  attendanceService,
		Payroll:     payrollService,
		Audit:       audit,
	}, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	bulkimportHandler := bulkimport.NewHandler(bulkimportService, rdb, logger)
	contractlabourHandler := contractlabour.NewHandler(contractlabourService, logger)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	employeeSalaryHandler := employeesalary.NewHandler(employeeSalaryService)
	expenseHandler := expense.NewHandler(expenseService, logger)
	feedbackHandler := feedback.NewHandler(feedbackService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	payrollHandler := payroll.NewHandler(payrollService, rdb, logger)
	rbacHandler := rbac.NewHandler(rbacService)
	settingsHandler := settings.NewHandler(settingsService)

	router.Use(middleware.RequestID(), middleware.ContextLogger(logger))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
		settings.RegisterRoutes(api, settingsHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		employeesalary.RegisterRoutes(api, employeeSalaryHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, logger)
		expense.RegisterRoutes(api, expenseHandler, rbacService, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb, logger)
		feedback.RegisterRoutes(api, feedbackHandler, rbacService, logger)
		contractlabour.RegisterRoutes(api, contractlabourHandler, rbacService, logger)
		bulkimport.RegisterRoutes(api, bulkimportHandler, rbacService, rdb, logger)
	}

	return nil
}
