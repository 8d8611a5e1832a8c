package balance

import (
	"context"
	"errors"

	balanceerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=balance_ledger.go -destination=mock/balance_ledger_mock.go -package=mock

// Ledger mutates balances on behalf of leave status changes. Every call
// locks the balance row, so it must run on the same transaction as the
// leave update it belongs to.
type Ledger interface {
	WithTx(tx *gorm.DB) Ledger
	Reserve(ctx context.Context, key Key, days int) error
	Commit(ctx context.Context, key Key, days int) error
	Release(ctx context.Context, key Key, days int) error
	ReverseUsed(ctx context.Context, key Key, days int) error
}

type ledger struct {
	repo             Repository
	allowUnallocated bool
	logger           *zap.Logger
}

// NewLedger builds a ledger. With allowUnallocated a missing balance row
// means unlimited and Reserve is a no-op on it. Otherwise Reserve opens the
// missing row from the leave type's yearly default before reserving.
// Commit, Release and ReverseUsed skip a missing row in both modes.
func NewLedger(repo Repository, allowUnallocated bool, logger ...*zap.Logger) Ledger {
	l := zap.L().Named("balance.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.ledger")
	}
	return &ledger{repo: repo, allowUnallocated: allowUnallocated, logger: l}
}

func (l *ledger) WithTx(tx *gorm.DB) Ledger {
	return &ledger{repo: l.repo.WithTx(tx), allowUnallocated: l.allowUnallocated, logger: l.logger}
}

func (l *ledger) Reserve(ctx context.Context, key Key, days int) error {
	log := contextutil.GetLogger(ctx, l.logger)

	b, err := l.repo.FindByKeyForUpdate(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if l.allowUnallocated {
			log.Debug("ledger skipped unallocated balance", keyFields("reserve", key)...)
			return nil
		}
		b, err = l.open(ctx, key)
	}
	if err != nil {
		return err
	}

	if err := b.Reserve(days); err != nil {
		return err
	}
	return l.repo.UpdateCounters(ctx, b)
}

func (l *ledger) Commit(ctx context.Context, key Key, days int) error {
	return l.settle(ctx, "commit", key, days, (*LeaveBalance).Commit)
}

func (l *ledger) Release(ctx context.Context, key Key, days int) error {
	return l.settle(ctx, "release", key, days, (*LeaveBalance).Release)
}

func (l *ledger) ReverseUsed(ctx context.Context, key Key, days int) error {
	return l.settle(ctx, "reverse_used", key, days, (*LeaveBalance).ReverseUsed)
}

// open creates the year's row for a key that has none yet and returns it
// locked. A concurrent opener is absorbed by the insert's conflict clause.
func (l *ledger) open(ctx context.Context, key Key) (*LeaveBalance, error) {
	days, err := l.repo.DefaultDaysPerYear(ctx, key.LeaveTypeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, balanceerrors.ErrBalanceNotAllocated
	}
	if err != nil {
		return nil, err
	}

	row := LeaveBalance{
		ID:          uuid.New(),
		UserID:      key.UserID,
		LeaveTypeID: key.LeaveTypeID,
		Year:        key.Year,
		Allocated:   days,
	}
	if _, err := l.repo.CreateMissing(ctx, []LeaveBalance{row}); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx, l.logger).Info("ledger opened balance",
		append(keyFields("reserve", key), zap.Int("allocated", days))...,
	)
	return l.repo.FindByKeyForUpdate(ctx, key)
}

// settle resolves days already held on a row. A row removed since the
// reservation (user archived, admin cleanup) leaves nothing to settle.
func (l *ledger) settle(ctx context.Context, op string, key Key, days int, apply func(*LeaveBalance, int) bool) error {
	log := contextutil.GetLogger(ctx, l.logger)

	b, err := l.repo.FindByKeyForUpdate(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if l.allowUnallocated {
			log.Debug("ledger skipped unallocated balance", keyFields(op, key)...)
		} else {
			log.Warn("ledger skipped missing balance", append(keyFields(op, key), zap.Int("days", days))...)
		}
		return nil
	}
	if err != nil {
		return err
	}

	if apply(b, days) {
		log.Warn("ledger decrement clamped at zero",
			zap.String("op", op),
			zap.String("balance_id", b.ID.String()),
			zap.Int("days", days),
		)
	}

	return l.repo.UpdateCounters(ctx, b)
}

func keyFields(op string, key Key) []zap.Field {
	return []zap.Field{
		zap.String("op", op),
		zap.String("user_id", key.UserID.String()),
		zap.String("leave_type_id", key.LeaveTypeID.String()),
		zap.Int("year", key.Year),
	}
}
