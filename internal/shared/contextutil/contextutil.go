package contextutil

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	actorKey     contextKey = "actor"
	loggerKey    contextKey = "logger"
)

// Actor is the authenticated caller of a request.
type Actor struct {
	UserID     string
	EmployeeID string
	CompanyID  string
}

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFrom is false outside authenticated routes and in background jobs.
func ActorFrom(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey).(Actor)
	return a, ok
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, then defaultLogger, then a nop logger.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return zap.NewNop()
}

// LoggerWith adds fields to the request-scoped logger. Without one, ctx is
// returned unchanged so services keep their own logger.
func LoggerWith(ctx context.Context, fields ...zap.Field) context.Context {
	l, ok := ctx.Value(loggerKey).(*zap.Logger)
	if !ok || l == nil {
		return ctx
	}
	return WithLogger(ctx, l.With(fields...))
}

type Metadata struct {
	RequestID  string
	UserID     string
	EmployeeID string
	CompanyID  string
}

func ExtractMetadata(ctx context.Context) Metadata {
	actor, _ := ActorFrom(ctx)
	return Metadata{
		RequestID:  GetRequestID(ctx),
		UserID:     actor.UserID,
		EmployeeID: actor.EmployeeID,
		CompanyID:  actor.CompanyID,
	}
}
