package contextutil_test

import (
	"context"
	"testing"

	"sharda-hr/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestExtractMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")

	md := contextutil.ExtractMetadata(ctx)
	assert.Equal(t, "rid-1", md.RequestID)
	assert.Empty(t, md.CompanyID)

	ctx = contextutil.WithActor(ctx, contextutil.Actor{UserID: "user-1", EmployeeID: "emp-1", CompanyID: "co-1"})
	md = contextutil.ExtractMetadata(ctx)
	assert.Equal(t, contextutil.Metadata{RequestID: "rid-1", UserID: "user-1", EmployeeID: "emp-1", CompanyID: "co-1"}, md)
}

func TestGetLogger_Fallbacks(t *testing.T) {
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	def := zap.NewNop()
	assert.Same(t, def, contextutil.GetLogger(context.Background(), def))

	scoped := zap.NewExample()
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, def))
}

func TestLoggerWith(t *testing.T) {
	t.Run("without a scoped logger the context is unchanged", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, ctx, contextutil.LoggerWith(ctx, zap.String("k", "v")))
	})

	t.Run("fields are added to the scoped logger", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		ctx := contextutil.WithLogger(context.Background(), zap.New(core))

		ctx = contextutil.LoggerWith(ctx, zap.String("company_id", "co-1"))
		contextutil.GetLogger(ctx, nil).Info("hello")

		entries := logs.All()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, "co-1", entries[0].ContextMap()["company_id"])
		}
	})
}
