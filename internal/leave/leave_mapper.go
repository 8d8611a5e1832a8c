package leave

import (
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/user"
)

const dateLayout = "2006-01-02"

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:                  l.ID.String(),
		RequesterID:         l.RequesterID.String(),
		LeaveTypeID:         l.LeaveTypeID.String(),
		StartDate:           l.StartDate.Format(dateLayout),
		EndDate:             l.EndDate.Format(dateLayout),
		TotalDays:           l.TotalDays,
		Reason:              l.Reason,
		Status:              string(l.Status),
		CurrentApprovalStep: l.CurrentApprovalStep(),
		Requester:           mapPerson(l.Requester),
		Approvals:           make([]ApprovalResponse, len(l.Approvals)),
		CreatedAt:           l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           l.UpdatedAt.Format(time.RFC3339),
	}
	if l.LeaveType != nil {
		resp.LeaveType = &LeaveTypeSummary{ID: l.LeaveType.ID.String(), Name: l.LeaveType.Name}
	}

	for i, a := range l.Approvals {
		resp.Approvals[i] = ApprovalResponse{
			Sequence:  a.Sequence,
			Step:      string(a.Step),
			Decision:  string(a.Decision),
			Comment:   a.Comment,
			DecidedAt: a.DecidedAt.Format(time.RFC3339),
			ActorID:   a.ActorID.String(),
			Actor:     mapPerson(a.Actor),
		}
	}

	if a := l.ManagerEntry(); a != nil {
		resp.ManagerReviewerID, resp.ManagerReviewedAt, resp.ManagerComment = entryFields(a)
		resp.ManagerReviewer = mapPerson(a.Actor)
	}
	if a := l.HREntry(); a != nil {
		resp.HRReviewerID, resp.HRReviewedAt, resp.HRComment = entryFields(a)
		resp.HRReviewer = mapPerson(a.Actor)
	}
	if a := l.FinalEntry(); a != nil {
		resp.ReviewerID, resp.ReviewedAt, resp.ReviewComment = entryFields(a)
		resp.Reviewer = mapPerson(a.Actor)
	}
	return resp
}

func entryFields(a *Approval) (actorID, at, comment *string) {
	id := a.ActorID.String()
	ts := a.DecidedAt.Format(time.RFC3339)
	c := a.Comment
	return &id, &ts, &c
}

func mapPerson(u *user.User) *PersonSummary {
	if u == nil {
		return nil
	}
	p := &PersonSummary{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
	if u.Department != nil {
		p.Department = &DepartmentSummary{ID: u.Department.ID.String(), Name: u.Department.Name}
	}
	return p
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}

// ToResponses exposes the API shape to read-only consumers such as reports.
func ToResponses(leaves []Leave) []LeaveResponse {
	return mapToListResponse(leaves)
}
