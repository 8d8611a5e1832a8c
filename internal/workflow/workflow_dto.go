package workflow

import "time"

type CreateWorkflowRequest struct {
	LeaveTypeID  string `json:"leaveTypeId" binding:"required,uuid"`
	RequiresHR   bool   `json:"requiresHR"`
	MinDaysForHR *int   `json:"minDaysForHR" binding:"omitempty,gte=1"`
}

// UpdateWorkflowRequest is a partial update. ClearMinDays removes the
// threshold, since a null minDaysForHR cannot be told apart from absent.
type UpdateWorkflowRequest struct {
	RequiresHR   *bool `json:"requiresHR"`
	MinDaysForHR *int  `json:"minDaysForHR" binding:"omitempty,gte=1"`
	ClearMinDays bool  `json:"clearMinDays"`
}

type WorkflowResponse struct {
	ID            string    `json:"id"`
	LeaveTypeID   string    `json:"leaveTypeId"`
	LeaveTypeName string    `json:"leaveTypeName,omitempty"`
	RequiresHR    bool      `json:"requiresHR"`
	MinDaysForHR  *int      `json:"minDaysForHR"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
