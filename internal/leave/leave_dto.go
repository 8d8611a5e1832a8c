package leave

type CreateLeaveRequest struct {
	LeaveTypeID string `json:"leaveTypeId" binding:"required,uuid"`
	StartDate   string `json:"startDate" binding:"required,isodate"`
	EndDate     string `json:"endDate" binding:"required,isodate"`
	Reason      string `json:"reason" binding:"required,max=1000"`
}

type UpdateStatusRequest struct {
	Status        string `json:"status" binding:"required,oneof=approved rejected"`
	ReviewComment string `json:"reviewComment" binding:"max=1000"`
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type ListQuery struct {
	Status       string `form:"status"`
	LeaveTypeID  string `form:"leaveTypeId"`
	DepartmentID string `form:"departmentId"`
	StartDate    string `form:"startDate"`
	EndDate      string `form:"endDate"`
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
}

// Normalize fills in paging defaults.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}
	return q
}

type DepartmentSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PersonSummary struct {
	ID         string             `json:"id"`
	FirstName  string             `json:"firstName"`
	LastName   string             `json:"lastName"`
	Email      string             `json:"email,omitempty"`
	Department *DepartmentSummary `json:"department,omitempty"`
}

type LeaveTypeSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ApprovalResponse struct {
	Sequence  int            `json:"sequence"`
	Step      string         `json:"step"`
	Decision  string         `json:"decision"`
	Comment   string         `json:"comment"`
	DecidedAt string         `json:"decidedAt"`
	Actor     *PersonSummary `json:"actor,omitempty"`
	ActorID   string         `json:"actorId"`
}

// LeaveResponse flattens the decision trail into the review fields clients
// read. None of them are stored on the leave row.
type LeaveResponse struct {
	ID                  string            `json:"id"`
	RequesterID         string            `json:"requesterId"`
	LeaveTypeID         string            `json:"leaveTypeId"`
	StartDate           string            `json:"startDate"`
	EndDate             string            `json:"endDate"`
	TotalDays           int               `json:"totalDays"`
	Reason              string            `json:"reason"`
	Status              string            `json:"status"`
	CurrentApprovalStep string            `json:"currentApprovalStep"`
	Requester           *PersonSummary    `json:"requester,omitempty"`
	LeaveType           *LeaveTypeSummary `json:"leaveType,omitempty"`

	ManagerReviewerID *string        `json:"managerReviewerId"`
	ManagerReviewer   *PersonSummary `json:"managerReviewer,omitempty"`
	ManagerReviewedAt *string        `json:"managerReviewedAt"`
	ManagerComment    *string        `json:"managerComment"`

	HRReviewerID *string        `json:"hrReviewerId"`
	HRReviewer   *PersonSummary `json:"hrReviewer,omitempty"`
	HRReviewedAt *string        `json:"hrReviewedAt"`
	HRComment    *string        `json:"hrComment"`

	ReviewerID    *string        `json:"reviewerId"`
	Reviewer      *PersonSummary `json:"reviewer,omitempty"`
	ReviewComment *string        `json:"reviewComment"`
	ReviewedAt    *string        `json:"reviewedAt"`

	Approvals []ApprovalResponse `json:"approvals"`
	CreatedAt string             `json:"createdAt"`
	UpdatedAt string             `json:"updatedAt"`
}
