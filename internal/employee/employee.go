package employee

import (
	"github.com/hrplane/employee-management/internal"
)

// Role is the closed set of access levels. Modeled as a typed enum so an
// unknown value can be rejected at the edge instead of slipping through
// string comparisons.
type Role string

const (
	RoleUser      Role = "user"
	RoleSuperuser Role = "superuser"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleSuperuser
}

func (r Role) IsSuperuser() bool {
	return r == RoleSuperuser
}

// Employee is the domain model backed by the users table. PasswordHash is
// never serialized and never leaves the persistence/credential path.
type Employee struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Name         string `json:"name" gorm:"not null"`
	Org          string `json:"org"`
	Role         Role   `json:"user_type" gorm:"column:user_type;not null;default:user"`
	PasswordHash string `json:"-" gorm:"column:hashed_password;not null"`
}

func (Employee) TableName() string {
	return "users"
}

// Domain errors, rendered by the transport layer only.
var (
	ErrEmployeeNotFound       = internal.NewNotFoundError("Employee not found", internal.ErrCodeEmployeeNotFound)
	ErrEmailAlreadyRegistered = internal.NewConflictError("Email already registered", internal.ErrCodeEmailAlreadyRegistered)
)
