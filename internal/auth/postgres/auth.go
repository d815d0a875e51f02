package postgres

import (
	"errors"

	"github.com/hrplane/employee-management/internal/auth"
	"github.com/hrplane/employee-management/internal/employee"
	"gorm.io/gorm"
)

// Repository is the auth-side view of the users table: lookups by the
// login identity only.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) auth.RepositoryAPI {
	return &Repository{db: db}
}

func (r *Repository) GetByEmail(email string) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Where("email = ?", email).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}
