package bootstrap

import (
	"context"
	"time"

	"sharda-hr/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through the "audit" zap logger.
type StdoutAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &StdoutAuditLogger{logger: l.Named("audit"), now: time.Now}
}

// Log fills CompanyID and ActorID from the request's caller when the entry
// leaves them empty.
func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	if actor, ok := contextutil.ActorFrom(ctx); ok {
		if entry.CompanyID == "" {
			entry.CompanyID = actor.CompanyID
		}
		if entry.ActorID == "" {
			entry.ActorID = actor.EmployeeID
		}
	}

	fields := []zap.Field{
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	if entry.CompanyID != "" {
		fields = append(fields, zap.String("company_id", entry.CompanyID))
	}
	if entry.ActorID != "" {
		fields = append(fields, zap.String("actor_id", entry.ActorID))
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	l.logger.Info("audit event", fields...)
}
