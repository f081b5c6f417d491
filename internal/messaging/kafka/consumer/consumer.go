package consumer

import (
	"context"
	"encoding/json"

	"sharda-hr/internal/events"
	"sharda-hr/internal/shared/dateutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// LeaveBalanceGranter creates the opening leave balances of a new joiner.
type LeaveBalanceGranter interface {
	GrantOpeningBalances(ctx context.Context, companyID, employeeID, dateOfJoining string) error
}

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	granter LeaveBalanceGranter,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var header events.EmployeeLifecycleHeader
		if err := json.Unmarshal(msg.Value, &header); err != nil {
			log.Error("decode employee lifecycle header failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if header.EventType != events.EventEmployeeCreated {
			log.Debug("ignoring employee lifecycle event", zap.String("event_type", header.EventType))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		doj := event.DateOfJoining
		if doj == "" {
			doj = event.OccurredAt.UTC().Format(dateutil.DateLayout)
		}

		err = retryInPlace(ctx, log.With(
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
			zap.String("request_id", event.RequestID),
		), "grant opening leave balances", func(ctx context.Context) error {
			return granter.GrantOpeningBalances(ctx, event.CompanyID, event.EmployeeID, doj)
		})
		if err != nil {
			// Uncommitted: the group resumes here after a restart.
			log.Info("employee lifecycle consumer stopped")
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("opening leave balances granted from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
		)
	}
}
