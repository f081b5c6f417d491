package bootstrap

import "context"

// AuditLog is a security relevant event such as a payroll lock or an import
// commit. Meta must be JSON friendly.
type AuditLog struct {
	Action    string
	Message   string
	CompanyID string
	ActorID   string
	Meta      map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
