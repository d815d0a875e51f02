package employee

import (
	"net/mail"

	"github.com/hrplane/employee-management/internal"
)

// CreateEmployeeDTO is the registration payload. The same shape drives
// update, which is a full replace of the mutable fields.
type CreateEmployeeDTO struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Org      string `json:"org"`
	Role     Role   `json:"user_type"`
	Password string `json:"password"`
}

func (dto CreateEmployeeDTO) Validate() error {
	if dto.Email == "" {
		return internal.NewValidationError("email is required", internal.ErrCodeValidationFailed)
	}
	if _, err := mail.ParseAddress(dto.Email); err != nil {
		return internal.NewValidationError("email is not a valid address", internal.ErrCodeValidationFailed)
	}
	if dto.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if dto.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeValidationFailed)
	}
	if dto.Role != "" && !dto.Role.IsValid() {
		return internal.NewValidationError("user_type must be 'user' or 'superuser'", internal.ErrCodeInvalidRole)
	}
	return nil
}

// RoleOrDefault returns the requested role, defaulting to the ordinary role
// the way the users table does.
func (dto CreateEmployeeDTO) RoleOrDefault() Role {
	if dto.Role == "" {
		return RoleUser
	}
	return dto.Role
}
