package bootstrap

import (
	"context"
	"testing"
	"time"

	"sharda-hr/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := NewStdoutAuditLogger(zap.New(core))
	audit.now = func() time.Time { return time.Date(2025, 4, 30, 18, 0, 0, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "rid-9")
	ctx = contextutil.WithActor(ctx, contextutil.Actor{UserID: "u-1", EmployeeID: "emp-1", CompanyID: "co-1"})

	audit.Log(ctx, AuditLog{Action: "payroll.lock", Message: "run locked", Meta: map[string]any{"month": "2025-04"}})
	audit.Log(ctx, AuditLog{Action: "import.commit", CompanyID: "co-2", ActorID: "emp-2"})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "audit", entries[0].LoggerName)

	first := entries[0].ContextMap()
	assert.Equal(t, "payroll.lock", first["action"])
	assert.Equal(t, "co-1", first["company_id"])
	assert.Equal(t, "emp-1", first["actor_id"])
	assert.Equal(t, "rid-9", first["request_id"])
	assert.Equal(t, "2025-04-30T18:00:00Z", first["timestamp"])

	second := entries[1].ContextMap()
	assert.Equal(t, "co-2", second["company_id"])
	assert.Equal(t, "emp-2", second["actor_id"])
}
