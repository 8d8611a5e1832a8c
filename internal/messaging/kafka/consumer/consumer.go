package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type BalanceSeeder interface {
	SeedLeaveType(ctx context.Context, leaveTypeID uuid.UUID, defaultDays, year int) (int64, error)
}

// ConsumeLeaveTypeLifecycle seeds balance rows for newly created leave types
// until ctx is done. Seeding is idempotent, so redelivery is harmless.
func ConsumeLeaveTypeLifecycle(
	ctx context.Context,
	reader MessageReader,
	seeder BalanceSeeder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_type_lifecycle")
	log.Info("leave type lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave type lifecycle consumer stopped")
				return
			}
			log.Error("fetch leave type lifecycle message failed", zap.Error(err))
			continue
		}

		if !handleMessage(ctx, msg, seeder, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave type lifecycle message failed", zap.Error(err))
		}
	}
}

// handleMessage reports whether msg is done with and may be committed.
// Undecodable messages are committed so they do not block the partition.
func handleMessage(ctx context.Context, msg kafkago.Message, seeder BalanceSeeder, log *zap.Logger) bool {
	var event events.LeaveTypeCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave type event failed", zap.Error(err))
		return true
	}
	if event.EventType != events.LeaveTypeCreatedEventType {
		log.Debug("ignoring leave type event", zap.String("event_type", event.EventType))
		return true
	}

	leaveTypeID, err := uuid.Parse(event.LeaveTypeID)
	if err != nil {
		log.Error("leave type event has invalid id", zap.String("leave_type_id", event.LeaveTypeID))
		return true
	}

	year := event.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	seeded, err := seeder.SeedLeaveType(ctx, leaveTypeID, event.DefaultDaysPerYear, year)
	if err != nil {
		log.Error("seed balances for leave type failed",
			zap.String("leave_type_id", event.LeaveTypeID),
			zap.String("request_id", event.RequestID),
			zap.Error(err),
		)
		return false
	}

	log.Info("balances seeded from leave_type_created event",
		zap.String("leave_type_id", event.LeaveTypeID),
		zap.Int("year", year),
		zap.Int64("rows", seeded),
	)
	return true
}
