package leavetype

import (
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/daycount"

	"github.com/google/uuid"
)

type LeaveType struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name               string        `gorm:"size:120;not null;uniqueIndex:uq_leave_types_name"`
	Description        string        `gorm:"type:text"`
	DefaultDaysPerYear int           `gorm:"not null"`
	RequiresApproval   bool          `gorm:"not null"`
	DayCountingRule    daycount.Rule `gorm:"type:varchar(20);not null"`
	IsActive           bool          `gorm:"not null"`
	CreatedAt          time.Time     `gorm:"autoCreateTime"`
	UpdatedAt          time.Time     `gorm:"autoUpdateTime"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

// CountDays applies this type's day counting rule to [start, end].
func (lt LeaveType) CountDays(start, end time.Time) (int, error) {
	rule := lt.DayCountingRule
	if !rule.Valid() {
		rule = daycount.RuleForName(lt.Name)
	}
	return daycount.Calculate(start, end, rule)
}
