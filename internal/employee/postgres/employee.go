package postgres

import (
	"errors"

	"github.com/hrplane/employee-management/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements employee.Repository over the users table.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(e *employee.Employee) error {
	if err := r.db.Create(e).Error; err != nil {
		// the unique index on email is the race-safety boundary for
		// concurrent registrations
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return employee.ErrEmailAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) GetByEmail(email string) (*employee.Employee, error) {
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

func (r *EmployeeRepository) List(offset, limit int) ([]*employee.Employee, error) {
	var employees []*employee.Employee
	err := r.db.Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) Update(e *employee.Employee) error {
	if err := r.db.Save(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return employee.ErrEmailAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *EmployeeRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&employee.Employee{}).Error
}
