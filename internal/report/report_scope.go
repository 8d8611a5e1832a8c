package report

import (
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"

	"github.com/google/uuid"
)

// Scope narrows report queries to the leaves an identity may see.
// A Scope with None set matches nothing.
type Scope struct {
	RequesterID  *uuid.UUID
	DepartmentID *uuid.UUID
	None         bool
}

// ScopeFor derives the visibility of actor. Employees see their own leaves,
// managers their department and admins everything, optionally narrowed to
// department.
func ScopeFor(actor auth.Identity, department *uuid.UUID) Scope {
	switch {
	case actor.IsAdmin():
		return Scope{DepartmentID: department}
	case actor.IsManager():
		if actor.DepartmentID == nil {
			return Scope{None: true}
		}
		id := *actor.DepartmentID
		return Scope{DepartmentID: &id}
	default:
		id := actor.UserID
		return Scope{RequesterID: &id}
	}
}
