package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"sharda-hr/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	retryInitial, retryMax = time.Millisecond, 4*time.Millisecond
	goleak.VerifyTestMain(m)
}

// fakeReader hands out queued messages and then blocks until ctx is cancelled.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafkago.Message
	committed []kafkago.Message
	drained   chan struct{}
	once      sync.Once
}

func newFakeReader(msgs ...kafkago.Message) *fakeReader {
	return &fakeReader{queue: msgs, drained: make(chan struct{})}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	r.once.Do(func() { close(r.drained) })
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) commitCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.committed)
}

func (r *fakeReader) queued() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

// fakeGranter fails its first `failures` calls with err, or every call when
// failures is negative.
type fakeGranter struct {
	mu       sync.Mutex
	calls    []string
	err      error
	failures int
}

func (g *fakeGranter) GrantOpeningBalances(ctx context.Context, companyID, employeeID, doj string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, companyID+"/"+employeeID+"/"+doj)
	if g.err != nil && (g.failures < 0 || len(g.calls) <= g.failures) {
		return g.err
	}
	return nil
}

func (g *fakeGranter) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

// fakeGenerator fails failID the first `failures` times it is asked for it.
type fakeGenerator struct {
	mu       sync.Mutex
	ids      []string
	failID   string
	failures int
}

func (g *fakeGenerator) GeneratePayslipPDF(ctx context.Context, companyID, payslipID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ids = append(g.ids, payslipID)
	if payslipID == g.failID && g.failures > 0 {
		g.failures--
		return "", errors.New("disk full")
	}
	return "/tmp/" + payslipID + ".pdf", nil
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func runUntilDrained(t *testing.T, reader *fakeReader, run func(ctx context.Context)) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		run(ctx)
	}()

	select {
	case <-reader.drained:
	case <-time.After(time.Second):
		t.Fatal("consumer did not drain messages")
	}
	cancel()
	<-done
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	created := kafkago.Message{Value: mustJSON(t, events.EmployeeCreatedEvent{
		EventType:     events.EventEmployeeCreated,
		EmployeeID:    "emp-1",
		CompanyID:     "comp-1",
		DateOfJoining: "2026-04-01",
	})}
	exited := kafkago.Message{Value: mustJSON(t, events.EmployeeExitedEvent{
		EventType:  events.EventEmployeeExited,
		EmployeeID: "emp-2",
		CompanyID:  "comp-1",
	})}
	garbage := kafkago.Message{Value: []byte("{not json")}

	reader := newFakeReader(created, exited, garbage)
	granter := &fakeGranter{}

	runUntilDrained(t, reader, func(ctx context.Context) {
		ConsumeEmployeeLifecycle(ctx, reader, granter, zap.NewNop())
	})

	assert.Equal(t, []string{"comp-1/emp-1/2026-04-01"}, granter.calls)
	assert.Equal(t, 3, reader.commitCount())
}

func TestConsumeEmployeeLifecycle_GrantRetriedBeforeNextMessage(t *testing.T) {
	first := kafkago.Message{Offset: 1, Value: mustJSON(t, events.EmployeeCreatedEvent{
		EventType:     events.EventEmployeeCreated,
		EmployeeID:    "emp-1",
		CompanyID:     "comp-1",
		DateOfJoining: "2026-04-01",
	})}
	second := kafkago.Message{Offset: 2, Value: mustJSON(t, events.EmployeeCreatedEvent{
		EventType:     events.EventEmployeeCreated,
		EmployeeID:    "emp-2",
		CompanyID:     "comp-1",
		DateOfJoining: "2026-04-02",
	})}

	reader := newFakeReader(first, second)
	granter := &fakeGranter{err: errors.New("db down"), failures: 1}

	runUntilDrained(t, reader, func(ctx context.Context) {
		ConsumeEmployeeLifecycle(ctx, reader, granter, zap.NewNop())
	})

	assert.Equal(t, []string{
		"comp-1/emp-1/2026-04-01",
		"comp-1/emp-1/2026-04-01",
		"comp-1/emp-2/2026-04-02",
	}, granter.calls)
	require.Equal(t, 2, reader.commitCount())
	assert.Equal(t, int64(1), reader.committed[0].Offset)
}

func TestConsumeEmployeeLifecycle_StuckGrantDoesNotAdvance(t *testing.T) {
	created := kafkago.Message{Value: mustJSON(t, events.EmployeeCreatedEvent{
		EventType:     events.EventEmployeeCreated,
		EmployeeID:    "emp-1",
		CompanyID:     "comp-1",
		DateOfJoining: "2026-04-01",
	})}
	next := kafkago.Message{Value: mustJSON(t, events.EmployeeCreatedEvent{
		EventType:  events.EventEmployeeCreated,
		EmployeeID: "emp-2",
		CompanyID:  "comp-1",
	})}

	reader := newFakeReader(created, next)
	granter := &fakeGranter{err: errors.New("db down"), failures: -1}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		ConsumeEmployeeLifecycle(ctx, reader, granter, zap.NewNop())
	}()

	require.Eventually(t, func() bool { return granter.callCount() >= 3 }, time.Second, time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, 0, reader.commitCount())
	assert.Equal(t, 1, reader.queued())
}

func TestConsumePayrollRunLocked(t *testing.T) {
	ok := kafkago.Message{Value: mustJSON(t, events.PayrollRunLockedEvent{
		EventType:  events.EventPayrollRunLocked,
		RunID:      "run-1",
		CompanyID:  "comp-1",
		Month:      "2026-03",
		PayslipIDs: []string{"ps-1", "ps-2"},
	})}
	partial := kafkago.Message{Value: mustJSON(t, events.PayrollRunLockedEvent{
		EventType:  events.EventPayrollRunLocked,
		RunID:      "run-2",
		CompanyID:  "comp-1",
		PayslipIDs: []string{"ps-3", "ps-bad"},
	})}

	reader := newFakeReader(ok, partial)
	gen := &fakeGenerator{failID: "ps-bad", failures: 2}

	runUntilDrained(t, reader, func(ctx context.Context) {
		ConsumePayrollRunLocked(ctx, reader, gen, zap.NewNop())
	})

	assert.Equal(t, []string{"ps-1", "ps-2", "ps-3", "ps-bad", "ps-bad", "ps-bad"}, gen.ids)
	assert.Equal(t, 2, reader.commitCount())
}
