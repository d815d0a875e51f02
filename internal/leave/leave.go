package leave

import (
	"time"

	"github.com/hrplane/employee-management/internal"
)

// Status is the closed set of leave request states. Transitions are
// one-directional: pending may become approved or rejected, and a
// processed request never changes again.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// LeaveRequest is the domain model backed by the leave_requests table.
// UserID and DateSubmitted are set at creation and immutable after.
type LeaveRequest struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	UserID           int64     `json:"user_id" gorm:"column:user_id;not null"`
	LastDayOfWork    time.Time `json:"last_day_of_work" gorm:"column:last_day_of_work;type:date;not null"`
	LeaveStartDate   time.Time `json:"leave_start_date" gorm:"column:leave_start_date;type:date;not null"`
	ReturnToWorkDate time.Time `json:"return_to_work_date" gorm:"column:return_to_work_date;type:date;not null"`
	NumDaysOnLeave   int       `json:"num_days_on_leave" gorm:"column:num_days_on_leave;not null"`
	Reason           string    `json:"reason" gorm:"not null"`
	Status           Status    `json:"status" gorm:"not null;default:pending"`
	DateSubmitted    time.Time `json:"date_submitted" gorm:"column:date_submitted"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// CanBeProcessed reports whether a status update is still allowed.
func (lr *LeaveRequest) CanBeProcessed() bool {
	return lr.Status == StatusPending
}

var (
	ErrLeaveRequestNotFound = internal.NewNotFoundError("Leave request not found", internal.ErrCodeLeaveRequestNotFound)
	ErrInvalidLeaveStatus   = internal.NewValidationError("leave request cannot be processed in its current status", internal.ErrCodeInvalidLeaveStatus)
)
