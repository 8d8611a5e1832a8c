package kafka_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/messaging/kafka"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	ev, err := kafka.NewOutboxEvent("req-1", "leave", "leave-1", "leave_created", "topic.v1", map[string]int{"days": 3})
	assert.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, kafka.OutboxStatusPending, ev.Status)
	assert.JSONEq(t, `{"days":3}`, string(ev.Payload))
	assert.NoError(t, kafka.ValidateOutboxEvent(ev))

	_, err = kafka.NewOutboxEvent("", "leave", "x", "bad", "t", make(chan int))
	assert.Error(t, err)
}

func TestValidateOutboxEvent(t *testing.T) {
	base := kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusPending}
	assert.NoError(t, kafka.ValidateOutboxEvent(base))

	noTopic := base
	noTopic.Topic = ""
	assert.EqualError(t, kafka.ValidateOutboxEvent(noTopic), "outbox topic is required")

	badStatus := base
	badStatus.Status = "queued"
	assert.EqualError(t, kafka.ValidateOutboxEvent(badStatus), "invalid outbox status: queued")
}

func TestOutboxRepository_Create(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := kafka.NewOutboxRepository(db)

	ev, err := kafka.NewOutboxEvent("req-1", "leave", "leave-1", "leave_created", "topic.v1", map[string]string{"a": "b"})
	assert.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(ev.ID, "req-1", "leave", "leave-1", "leave_created", "topic.v1", `{"a":"b"}`, kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := kafka.NewOutboxRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs(kafka.OutboxStatusSent, "evt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), "evt-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
