package leavetype

type CreateLeaveTypeRequest struct {
	Name               string  `json:"name" binding:"required,max=120"`
	Description        string  `json:"description"`
	DefaultDaysPerYear int     `json:"defaultDaysPerYear" binding:"gte=0,lte=366"`
	RequiresApproval   *bool   `json:"requiresApproval"`
	DayCountingRule    *string `json:"dayCountingRule" binding:"omitempty,oneof=business_days calendar_days"`
}

type UpdateLeaveTypeRequest struct {
	Name               *string `json:"name" binding:"omitempty,max=120"`
	Description        *string `json:"description"`
	DefaultDaysPerYear *int    `json:"defaultDaysPerYear" binding:"omitempty,gte=0,lte=366"`
	RequiresApproval   *bool   `json:"requiresApproval"`
	DayCountingRule    *string `json:"dayCountingRule" binding:"omitempty,oneof=business_days calendar_days"`
	IsActive           *bool   `json:"isActive"`
}

type LeaveTypeResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	DefaultDaysPerYear int    `json:"defaultDaysPerYear"`
	RequiresApproval   bool   `json:"requiresApproval"`
	DayCountingRule    string `json:"dayCountingRule"`
	IsActive           bool   `json:"isActive"`
}
