package user

type CreateUserRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	FirstName    string  `json:"firstName" binding:"required,max=100"`
	LastName     string  `json:"lastName" binding:"required,max=100"`
	Role         string  `json:"role" binding:"omitempty,oneof=employee manager admin"`
	DepartmentID *string `json:"departmentId" binding:"omitempty,uuid"`
}

type UpdateUserRequest struct {
	FirstName       *string `json:"firstName" binding:"omitempty,max=100"`
	LastName        *string `json:"lastName" binding:"omitempty,max=100"`
	DepartmentID    *string `json:"departmentId" binding:"omitempty,uuid"`
	ClearDepartment bool    `json:"clearDepartment"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=employee manager admin"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type ListUsersFilter struct {
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
	DepartmentID string `form:"departmentId"`
	Role         string `form:"role"`
	Search       string `form:"search"`
}

type DepartmentSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserResponse struct {
	ID           string             `json:"id"`
	Email        string             `json:"email"`
	FirstName    string             `json:"firstName"`
	LastName     string             `json:"lastName"`
	Role         string             `json:"role"`
	DepartmentID *string            `json:"departmentId"`
	Department   *DepartmentSummary `json:"department,omitempty"`
	IsActive     bool               `json:"isActive"`
	ArchivedAt   *string            `json:"archivedAt"`
	CreatedAt    string             `json:"createdAt"`
}
