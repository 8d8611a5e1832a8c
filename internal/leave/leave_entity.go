package leave

import (
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leavetype"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/user"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPendingHR Status = "pending_hr"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPendingHR, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Decidable statuses are the only ones a reviewer may act on.
func (s Status) Decidable() bool {
	return s == StatusPending || s == StatusPendingHR
}

// Blocking statuses take up dates on the requester's calendar.
var BlockingStatuses = []Status{StatusPending, StatusPendingHR, StatusApproved}

type Step string

const (
	StepManager   Step = "manager"
	StepHR        Step = "hr"
	StepAdmin     Step = "admin"
	StepRequester Step = "requester"
)

type Decision string

const (
	DecisionApproved  Decision = "approved"
	DecisionRejected  Decision = "rejected"
	DecisionCancelled Decision = "cancelled"
)

const (
	ApprovalStepManager   = "manager"
	ApprovalStepHR        = "hr"
	ApprovalStepCompleted = "completed"
)

type Leave struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_requester_dates,priority:1"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate   time.Time `gorm:"type:date;not null;index:idx_leaves_requester_dates,priority:2"`
	EndDate     time.Time `gorm:"type:date;not null;index:idx_leaves_requester_dates,priority:3"`
	TotalDays   int       `gorm:"not null"`
	Reason      string    `gorm:"type:text"`
	Status      Status    `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Requester *user.User           `gorm:"foreignKey:RequesterID;references:ID"`
	LeaveType *leavetype.LeaveType `gorm:"foreignKey:LeaveTypeID;references:ID"`
	Approvals []Approval           `gorm:"foreignKey:LeaveID;references:ID"`
}

func (Leave) TableName() string {
	return "leaves"
}

// BalanceKey charges a leave to the year its start date falls in.
func (l Leave) BalanceKey() balance.Key {
	return balance.Key{UserID: l.RequesterID, LeaveTypeID: l.LeaveTypeID, Year: l.StartDate.Year()}
}

// RequesterDepartment is nil when the requester was not loaded or has no
// department.
func (l Leave) RequesterDepartment() *uuid.UUID {
	if l.Requester == nil {
		return nil
	}
	return l.Requester.DepartmentID
}

// CurrentApprovalStep is derived from status, never stored.
func (l Leave) CurrentApprovalStep() string {
	switch l.Status {
	case StatusPending:
		return ApprovalStepManager
	case StatusPendingHR:
		return ApprovalStepHR
	default:
		return ApprovalStepCompleted
	}
}

func (l Leave) latest(step Step) *Approval {
	for i := len(l.Approvals) - 1; i >= 0; i-- {
		if l.Approvals[i].Step == step {
			return &l.Approvals[i]
		}
	}
	return nil
}

func (l Leave) ManagerEntry() *Approval { return l.latest(StepManager) }
func (l Leave) HREntry() *Approval      { return l.latest(StepHR) }

// FinalEntry is the decision that put the leave into approved or rejected.
func (l Leave) FinalEntry() *Approval {
	if l.Status != StatusApproved && l.Status != StatusRejected {
		return nil
	}
	for i := len(l.Approvals) - 1; i >= 0; i-- {
		d := l.Approvals[i].Decision
		if d == DecisionApproved || d == DecisionRejected {
			return &l.Approvals[i]
		}
	}
	return nil
}

// NextSequence numbers the next trail entry.
func (l Leave) NextSequence() int {
	last := 0
	for _, a := range l.Approvals {
		if a.Sequence > last {
			last = a.Sequence
		}
	}
	return last + 1
}
