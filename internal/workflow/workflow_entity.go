package workflow

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalWorkflow decides whether a leave type needs a second, HR level
// approval after the manager.
type ApprovalWorkflow struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LeaveTypeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_approval_workflows_leave_type"`
	RequiresHR   bool      `gorm:"column:requires_hr;not null"`
	MinDaysForHR *int      `gorm:"column:min_days_for_hr"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	LeaveTypeName string `gorm:"->;-:migration"`
}

func (ApprovalWorkflow) TableName() string {
	return "approval_workflows"
}

// RequiresHRFor reports whether a leave of totalDays needs HR sign off.
func (w ApprovalWorkflow) RequiresHRFor(totalDays int) bool {
	if w.RequiresHR {
		return true
	}
	return w.MinDaysForHR != nil && totalDays >= *w.MinDaysForHR
}
