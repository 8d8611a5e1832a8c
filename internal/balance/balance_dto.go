package balance

type LeaveTypeSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BalanceResponse struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	LeaveTypeID string           `json:"leaveTypeId"`
	LeaveType   LeaveTypeSummary `json:"leaveType"`
	Year        int              `json:"year"`
	Allocated   int              `json:"allocated"`
	Used        int              `json:"used"`
	Pending     int              `json:"pending"`
	Remaining   int              `json:"remaining"`
}

type Allocation struct {
	LeaveTypeID string `json:"leaveTypeId" binding:"required,uuid"`
	Allocated   int    `json:"allocated" binding:"gte=0"`
}

type AllocateRequest struct {
	UserID      string       `json:"userId" binding:"required,uuid"`
	Year        int          `json:"year" binding:"required,gte=2000,lte=2100"`
	Allocations []Allocation `json:"allocations" binding:"required,min=1,dive"`
}

// AdjustRequest overrides only the fields that are present.
type AdjustRequest struct {
	Allocated *int `json:"allocated" binding:"omitempty,gte=0"`
	Used      *int `json:"used" binding:"omitempty,gte=0"`
	Pending   *int `json:"pending" binding:"omitempty,gte=0"`
}
