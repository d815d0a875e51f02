package leave

import (
	"log/slog"
	"time"

	"github.com/hrplane/employee-management/internal/employee"
)

// Repository defines the data access methods for leave requests.
type Repository interface {
	Create(lr *LeaveRequest) error
	GetByID(id int64) (*LeaveRequest, error)
	GetAll() ([]*LeaveRequest, error)
	GetByUserID(userID int64) ([]*LeaveRequest, error)
	UpdateStatus(id int64, status Status) error
}

// Service handles leave request business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create submits a leave request for the resolved caller. Ownership and
// the submission timestamp are assigned here, never taken from the payload.
func (s *Service) Create(ownerID int64, dto CreateLeaveRequestDTO) (*LeaveRequest, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("leave request validation failed", "error", err, "user_id", ownerID)
		return nil, err
	}

	lr := &LeaveRequest{
		UserID:           ownerID,
		LastDayOfWork:    dto.LastDayOfWork,
		LeaveStartDate:   dto.LeaveStartDate,
		ReturnToWorkDate: dto.ReturnToWorkDate,
		NumDaysOnLeave:   dto.NumDaysOnLeave,
		Reason:           dto.Reason,
		Status:           StatusPending,
		DateSubmitted:    time.Now(),
	}

	if err := s.repo.Create(lr); err != nil {
		s.logger.Error("failed to create leave request", "error", err, "user_id", ownerID)
		return nil, err
	}

	s.logger.Info("leave request created",
		"leave_request_id", lr.ID,
		"user_id", ownerID,
		"days", lr.NumDaysOnLeave)

	return lr, nil
}

// ListForEmployee returns leave requests scoped by role: superusers see
// everything, ordinary employees see only their own. The branch runs after
// identity resolution and before any persistence call.
func (s *Service) ListForEmployee(emp *employee.Employee) ([]*LeaveRequest, error) {
	var (
		requests []*LeaveRequest
		err      error
	)

	if emp.Role.IsSuperuser() {
		requests, err = s.repo.GetAll()
	} else {
		requests, err = s.repo.GetByUserID(emp.ID)
	}

	if err != nil {
		s.logger.Error("failed to list leave requests", "error", err, "employee_id", emp.ID)
		return nil, err
	}

	return requests, nil
}

// UpdateStatus moves a pending request to approved or rejected. Only the
// status column changes; a processed request admits no further updates.
func (s *Service) UpdateStatus(id int64, dto UpdateLeaveStatusDTO) (*LeaveRequest, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("status update validation failed", "error", err, "leave_request_id", id)
		return nil, err
	}

	lr, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !lr.CanBeProcessed() {
		s.logger.Warn("cannot process leave request in current status",
			"leave_request_id", id,
			"current_status", lr.Status)
		return nil, ErrInvalidLeaveStatus
	}

	if err := s.repo.UpdateStatus(id, dto.Status); err != nil {
		s.logger.Error("failed to update leave request status", "error", err, "leave_request_id", id)
		return nil, err
	}

	lr.Status = dto.Status

	s.logger.Info("leave request processed",
		"leave_request_id", id,
		"status", dto.Status)

	return lr, nil
}
