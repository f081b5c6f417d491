package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	ev, err := NewOutboxEvent("topic.v1", "thing_happened", "thing", "agg-1", "req-1", map[string]int{"n": 1})
	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, OutboxStatusPending, ev.Status)
	assert.JSONEq(t, `{"n":1}`, string(ev.Payload))
	assert.NoError(t, ValidateOutboxEvent(ev))
}

func TestValidateOutboxEvent(t *testing.T) {
	base := OutboxEvent{ID: "1", Topic: "t", Payload: []byte(`{}`), Status: OutboxStatusPending}
	assert.NoError(t, ValidateOutboxEvent(base))

	noTopic := base
	noTopic.Topic = ""
	assert.Error(t, ValidateOutboxEvent(noTopic))

	badStatus := base
	badStatus.Status = "weird"
	assert.Error(t, ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("id-1", "req-1", "employee", "emp-1", "employee_created", "topic", []byte(`{}`), OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewOutboxRepository(db).WithTx(tx)
	err = repo.Create(context.Background(), OutboxEvent{
		ID: "id-1", RequestID: "req-1", AggregateType: "employee", AggregateID: "emp-1",
		EventType: "employee_created", Topic: "topic", Payload: []byte(`{}`), Status: OutboxStatusPending,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("id-1", "req-1", "payroll_run", "run-1", "payroll_run_locked", "hr.payroll.run.locked.v1", []byte(`{}`), OutboxStatusFailed, 2, now)

	mock.ExpectQuery("FROM outbox_events").
		WithArgs(OutboxStatusPending, OutboxStatusFailed, MaxOutboxRetries, 10).
		WillReturnRows(rows)

	events, err := NewOutboxRepository(db).ListPending(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "run-1", events[0].AggregateID)
	assert.Equal(t, 2, events[0].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").WithArgs("id-1", OutboxStatusSent).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE outbox_events").WithArgs("id-2", OutboxStatusFailed, "broker down").WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	assert.NoError(t, repo.MarkSent(context.Background(), "id-1"))
	assert.NoError(t, repo.MarkFailed(context.Background(), "id-2", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_PurgeSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cutoff := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("DELETE FROM outbox_events").
		WithArgs(OutboxStatusSent, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 42))

	n, err := NewOutboxRepository(db).PurgeSent(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
