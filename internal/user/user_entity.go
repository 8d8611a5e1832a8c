package user

import (
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/department"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Email        string     `gorm:"column:email;size:255;not null;uniqueIndex:uq_users_email"`
	PasswordHash string     `gorm:"column:password_hash;type:text;not null"`
	FirstName    string     `gorm:"column:first_name;size:100;not null"`
	LastName     string     `gorm:"column:last_name;size:100;not null"`
	Role         string     `gorm:"column:role;size:20;not null"`
	DepartmentID *uuid.UUID `gorm:"column:department_id;type:uuid;index"`
	IsActive     bool       `gorm:"column:is_active;not null"`
	ArchivedAt   *time.Time `gorm:"column:archived_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Department *department.Department `gorm:"foreignKey:DepartmentID;references:ID"`
}

func (User) TableName() string {
	return "users"
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Archived users are read only.
func (u User) Archived() bool {
	return u.ArchivedAt != nil
}

// Archive is the one way transition out of the active roster.
func (u *User) Archive(at time.Time) {
	u.IsActive = false
	u.ArchivedAt = &at
}
