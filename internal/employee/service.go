package employee

import (
	"log/slog"

	"github.com/hrplane/employee-management/internal"
)

// Repository defines the data access methods for employees.
type Repository interface {
	Create(e *Employee) error
	GetByID(id int64) (*Employee, error)
	GetByEmail(email string) (*Employee, error)
	List(offset, limit int) ([]*Employee, error)
	Update(e *Employee) error
	Delete(id int64) error
}

// PasswordHasher turns a plaintext credential into its stored one-way hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Service handles employee business logic.
type Service struct {
	repo   Repository
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo Repository, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// Create registers a new employee. The duplicate-email check here is
// best-effort; the unique index on users.email is the actual race boundary
// and the repository maps its violation to the same conflict error.
func (s *Service) Create(dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee validation failed", "error", err, "email", dto.Email)
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		s.logger.Warn("registration rejected: email already registered", "email", dto.Email)
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := s.hasher.Hash(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	emp := &Employee{
		Email:        dto.Email,
		Name:         dto.Name,
		Org:          dto.Org,
		Role:         dto.RoleOrDefault(),
		PasswordHash: hash,
	}

	if err := s.repo.Create(emp); err != nil {
		s.logger.Error("failed to create employee", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("employee created", "employee_id", emp.ID, "email", emp.Email, "role", emp.Role)
	return emp, nil
}

func (s *Service) GetByID(id int64) (*Employee, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, err
	}
	return emp, nil
}

func (s *Service) List(skip, limit int) ([]*Employee, error) {
	employees, err := s.repo.List(skip, limit)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}

// Update is a full replace of the mutable fields; the password is always
// re-hashed from the supplied plaintext.
func (s *Service) Update(id int64, dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee validation failed", "error", err, "employee_id", id)
		return nil, err
	}

	emp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if emp.Email != dto.Email {
		if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
			return nil, ErrEmailAlreadyRegistered
		}
	}

	hash, err := s.hasher.Hash(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	emp.Email = dto.Email
	emp.Name = dto.Name
	emp.Org = dto.Org
	emp.Role = dto.RoleOrDefault()
	emp.PasswordHash = hash

	if err := s.repo.Update(emp); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, err
	}

	s.logger.Info("employee updated", "employee_id", emp.ID, "email", emp.Email)
	return emp, nil
}

// Delete removes the employee and returns the deleted record.
func (s *Service) Delete(id int64) (*Employee, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return nil, err
	}

	s.logger.Info("employee deleted", "employee_id", id, "email", emp.Email)
	return emp, nil
}
