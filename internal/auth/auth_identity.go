package auth

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Identity is what the request boundary vouches for on every call. The core
// trusts it and never looks the caller up again.
type Identity struct {
	UserID       uuid.UUID
	Role         Role
	DepartmentID *uuid.UUID
}

func (i Identity) IsAdmin() bool   { return i.Role == RoleAdmin }
func (i Identity) IsManager() bool { return i.Role == RoleManager }

// SameDepartment is false when either side has no department.
func (i Identity) SameDepartment(other *uuid.UUID) bool {
	if i.DepartmentID == nil || other == nil {
		return false
	}
	return *i.DepartmentID == *other
}
