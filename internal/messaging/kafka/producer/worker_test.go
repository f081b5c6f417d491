package producer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"sharda-hr/internal/messaging/kafka"
	kafkaMock "sharda-hr/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeWriter behaves like a synchronous kafka-go writer: messages keyed in
// failFor are rejected and reported through WriteErrors.
type fakeWriter struct {
	mu      sync.Mutex
	written []kafkago.Message
	calls   int
	failFor map[string]bool
	down    error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.down != nil {
		return w.down
	}
	errs := make(kafkago.WriteErrors, len(msgs))
	failed := false
	for i, m := range msgs {
		if w.failFor[string(m.Key)] {
			errs[i] = errors.New("broker unavailable")
			failed = true
			continue
		}
		w.written = append(w.written, m)
	}
	if failed {
		return errs
	}
	return nil
}

func pendingEvents(n int) []kafka.OutboxEvent {
	events := make([]kafka.OutboxEvent, n)
	for i := range events {
		events[i] = kafka.OutboxEvent{
			ID:          fmt.Sprintf("o-%d", i),
			AggregateID: fmt.Sprintf("emp-%d", i),
			EventType:   "employee_created",
			Topic:       "hr.employee.lifecycle.v1",
			Payload:     []byte(`{}`),
		}
	}
	return events
}

func TestRelayBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failFor: map[string]bool{"emp-bad": true}}
	ctx := context.Background()

	pending := []kafka.OutboxEvent{
		{ID: "o-1", AggregateID: "emp-1", EventType: "employee_created", Topic: "hr.employee.lifecycle.v1", Payload: []byte(`{}`), RequestID: "req-1"},
		{ID: "o-2", AggregateID: "emp-bad", EventType: "employee_created", Topic: "hr.employee.lifecycle.v1", Payload: []byte(`{}`)},
	}

	repo.EXPECT().ListPending(ctx, outboxBatchSize).Return(pending, nil)
	repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "o-2", "broker unavailable").Return(nil)

	fetched, err := RelayBatch(ctx, repo, writer, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, fetched)
	assert.Equal(t, 1, writer.calls)
	require.Len(t, writer.written, 1)

	msg := writer.written[0]
	assert.Equal(t, "hr.employee.lifecycle.v1", msg.Topic)
	assert.Equal(t, "emp-1", string(msg.Key))

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "employee_created", headers["event_type"])
	assert.Equal(t, "o-1", headers["outbox_id"])
	assert.Equal(t, "req-1", headers["request_id"])
}

func TestRelayBatch_BrokerDownFailsWholeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{down: errors.New("dial tcp: connection refused")}
	ctx := context.Background()

	repo.EXPECT().ListPending(ctx, outboxBatchSize).Return(pendingEvents(3), nil)
	repo.EXPECT().MarkFailed(ctx, gomock.Any(), "dial tcp: connection refused").Return(nil).Times(3)

	fetched, err := RelayBatch(ctx, repo, writer, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 3, fetched)
}

func TestRelayBatch_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ListPending(gomock.Any(), outboxBatchSize).Return(nil, errors.New("db down"))

	_, err := RelayBatch(context.Background(), repo, &fakeWriter{}, zap.NewNop())
	assert.Error(t, err)
}

func TestDrain_ContinuesWhileBatchesAreFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{}
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().ListPending(ctx, outboxBatchSize).Return(pendingEvents(outboxBatchSize), nil),
		repo.EXPECT().ListPending(ctx, outboxBatchSize).Return(pendingEvents(4), nil),
	)
	repo.EXPECT().MarkSent(ctx, gomock.Any()).Return(nil).Times(outboxBatchSize + 4)

	drain(ctx, repo, writer, zap.NewNop())

	assert.Equal(t, 2, writer.calls)
	assert.Len(t, writer.written, outboxBatchSize+4)
}

func TestPurgeSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().PurgeSent(gomock.Any(), now.Add(-sentRetention)).Return(int64(12), nil)
	purgeSent(context.Background(), repo, zap.NewNop(), now)

	repo.EXPECT().PurgeSent(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
	purgeSent(context.Background(), repo, zap.NewNop(), now)
}

func TestProcessOutboxEvents_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ListPending(gomock.Any(), outboxBatchSize).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		ProcessOutboxEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), 5*time.Millisecond)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
