package consumer

import (
	"context"
	"encoding/json"

	"sharda-hr/internal/events"

	"go.uber.org/zap"
)

// PayslipGenerator renders and stores the PDF of one payslip.
type PayslipGenerator interface {
	GeneratePayslipPDF(ctx context.Context, companyID, payslipID string) (string, error)
}

func ConsumePayrollRunLocked(
	ctx context.Context,
	reader MessageReader,
	generator PayslipGenerator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_run_locked")
	log.Info("payroll run locked consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll run locked consumer stopped")
				return
			}
			log.Error("fetch payroll run message failed", zap.Error(err))
			continue
		}

		var event events.PayrollRunLockedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll_run_locked event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		// Generation is idempotent; each attempt only redoes the payslips
		// that have not been rendered yet.
		pending := event.PayslipIDs
		err = retryInPlace(ctx, log.With(zap.String("run_id", event.RunID)), "generate payslip pdfs",
			func(ctx context.Context) error {
				var failed []string
				var lastErr error
				for _, payslipID := range pending {
					path, err := generator.GeneratePayslipPDF(ctx, event.CompanyID, payslipID)
					if err != nil {
						failed = append(failed, payslipID)
						lastErr = err
						log.Error("generate payslip pdf failed",
							zap.String("payslip_id", payslipID),
							zap.String("run_id", event.RunID),
							zap.Error(err),
						)
						continue
					}
					log.Debug("payslip pdf generated", zap.String("payslip_id", payslipID), zap.String("path", path))
				}
				pending = failed
				return lastErr
			})
		if err != nil {
			// Uncommitted: the group resumes here after a restart.
			log.Info("payroll run locked consumer stopped")
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll run message failed", zap.Error(err))
			continue
		}

		log.Info("payslips generated for locked run",
			zap.String("run_id", event.RunID),
			zap.String("company_id", event.CompanyID),
			zap.String("month", event.Month),
			zap.Int("payslips", len(event.PayslipIDs)),
		)
	}
}
