package balance

import (
	"time"

	balanceerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance/errors"

	"github.com/google/uuid"
)

// LeaveBalance is one (user, leave type, year) bucket. Remaining is never
// stored.
type LeaveBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances_user_type_year,priority:1"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances_user_type_year,priority:2"`
	Year        int       `gorm:"not null;uniqueIndex:uq_leave_balances_user_type_year,priority:3"`
	Allocated   int       `gorm:"not null"`
	Used        int       `gorm:"not null"`
	Pending     int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	LeaveTypeName string `gorm:"->;-:migration"`
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

type Key struct {
	UserID      uuid.UUID
	LeaveTypeID uuid.UUID
	Year        int
}

func (b LeaveBalance) Key() Key {
	return Key{UserID: b.UserID, LeaveTypeID: b.LeaveTypeID, Year: b.Year}
}

func (b LeaveBalance) Remaining() int {
	return b.Allocated - b.Used - b.Pending
}

// Reserve holds days as pending. It refuses to push used+pending past
// allocated.
func (b *LeaveBalance) Reserve(days int) error {
	if b.Remaining() < days {
		return balanceerrors.ErrInsufficientBalance
	}
	b.Pending += days
	return nil
}

// Commit moves days from pending to used. The bool reports whether pending
// had to be clamped at zero.
func (b *LeaveBalance) Commit(days int) bool {
	clamped := decrement(&b.Pending, days)
	b.Used += days
	return clamped
}

// Release drops days from pending.
func (b *LeaveBalance) Release(days int) bool {
	return decrement(&b.Pending, days)
}

// ReverseUsed gives back days that were already consumed.
func (b *LeaveBalance) ReverseUsed(days int) bool {
	return decrement(&b.Used, days)
}

func decrement(v *int, days int) bool {
	if *v < days {
		*v = 0
		return true
	}
	*v -= days
	return false
}
