package leave

import (
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/user"

	"github.com/google/uuid"
)

// Approval is one append-only entry in a leave's decision trail.
type Approval struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LeaveID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_approvals_leave_sequence,priority:1"`
	Sequence  int       `gorm:"not null;uniqueIndex:uq_leave_approvals_leave_sequence,priority:2"`
	Step      Step      `gorm:"type:varchar(20);not null"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null"`
	Decision  Decision  `gorm:"type:varchar(20);not null"`
	Comment   string    `gorm:"type:text"`
	DecidedAt time.Time `gorm:"not null"`

	Actor *user.User `gorm:"foreignKey:ActorID;references:ID"`
}

func (Approval) TableName() string {
	return "leave_approvals"
}
