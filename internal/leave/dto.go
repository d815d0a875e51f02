package leave

import (
	"time"

	"github.com/hrplane/employee-management/internal"
)

// CreateLeaveRequestDTO is the request payload for submitting a leave
// request. The owner is never part of the payload; it is always the
// resolved caller.
type CreateLeaveRequestDTO struct {
	LastDayOfWork    time.Time `json:"last_day_of_work"`
	LeaveStartDate   time.Time `json:"leave_start_date"`
	ReturnToWorkDate time.Time `json:"return_to_work_date"`
	NumDaysOnLeave   int       `json:"num_days_on_leave"`
	Reason           string    `json:"reason"`
}

func (dto CreateLeaveRequestDTO) Validate() error {
	if dto.LastDayOfWork.IsZero() {
		return internal.NewValidationError("last_day_of_work is required", internal.ErrCodeInvalidDate)
	}
	if dto.LeaveStartDate.IsZero() {
		return internal.NewValidationError("leave_start_date is required", internal.ErrCodeInvalidDate)
	}
	if dto.ReturnToWorkDate.IsZero() {
		return internal.NewValidationError("return_to_work_date is required", internal.ErrCodeInvalidDate)
	}
	if dto.ReturnToWorkDate.Before(dto.LeaveStartDate) {
		return internal.NewValidationError("return_to_work_date must not be before leave_start_date", internal.ErrCodeInvalidDate)
	}
	if dto.NumDaysOnLeave <= 0 {
		return internal.NewValidationError("num_days_on_leave must be greater than 0", internal.ErrCodeValidationFailed)
	}
	if dto.Reason == "" {
		return internal.NewValidationError("reason is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateLeaveStatusDTO carries only the new status; every other field of a
// leave request is immutable after creation.
type UpdateLeaveStatusDTO struct {
	Status Status `json:"status"`
}

func (dto UpdateLeaveStatusDTO) Validate() error {
	if dto.Status == "" {
		return internal.NewValidationError("status is required", internal.ErrCodeValidationFailed)
	}
	if !dto.Status.IsTerminal() {
		return internal.NewValidationError("status must be 'approved' or 'rejected'", internal.ErrCodeInvalidLeaveStatus)
	}
	return nil
}
