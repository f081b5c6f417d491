package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"sharda-hr/internal/attendance"
	"sharda-hr/internal/bootstrap"
	"sharda-hr/internal/config"
	"sharda-hr/internal/employee"
	"sharda-hr/internal/employeesalary"
	"sharda-hr/internal/events"
	"sharda-hr/internal/expense"
	"sharda-hr/internal/leave"
	"sharda-hr/internal/messaging/kafka"
	"sharda-hr/internal/messaging/kafka/consumer"
	"sharda-hr/internal/payroll"
	"sharda-hr/internal/settings"
	"sharda-hr/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroupPrefix = "sharda-hr"

func newReader(broker, topic, group string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        consumerGroupPrefix + "-" + group,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}

// RunConsumer grants opening leave balances for new joiners and renders
// payslip PDFs for locked payroll runs.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	defaults, err := settings.LoadDefaults(cfg.StatutoryDefaultsPath)
	if err != nil {
		return err
	}

	// no redis here; settings are read straight from the database
	settingsService := settings.NewService(settings.NewRepository(gormDB), nil, defaults, logger)
	attendanceService := attendance.NewService(sqlDB, attendance.NewRepository(gormDB), settingsService, logger)
	leaveService := leave.NewService(sqlDB, leave.NewRepository(gormDB), attendanceService, settingsService, logger)

	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	employeeService := employee.NewService(sqlDB, employee.NewRepository(gormDB), counterRepo, outboxRepo, nil, logger)
	payrollService := payroll.NewService(sqlDB, payroll.NewRepository(gormDB), payroll.Dependencies{
		Employees:  employeeService,
		Salaries:   employeesalary.NewService(sqlDB, employeesalary.NewRepository(gormDB), logger),
		Attendance: attendanceService,
		Settings:   settingsService,
		Expenses:   expense.NewService(sqlDB, expense.NewRepository(gormDB), counterRepo, settingsService, logger),
		Outbox:     outboxRepo,
		Audit:      bootstrap.NewStdoutAuditLogger(logger),
		PayslipDir: cfg.PayslipDir,
	}, logger)

	lifecycleReader := newReader(cfg.Kafka, events.EmployeeLifecycleTopic, "leave-balances")
	defer lifecycleReader.Close()
	payrollReader := newReader(cfg.Kafka, events.PayrollRunLockedTopic, "payslips")
	defer payrollReader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.ConsumeEmployeeLifecycle(ctx, lifecycleReader, leaveService, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumePayrollRunLocked(ctx, payrollReader, payrollService, logger)
	}()
	wg.Wait()

	logger.Info("consumer shut down")
	return nil
}
