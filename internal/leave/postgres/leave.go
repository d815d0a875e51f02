package postgres

import (
	"errors"

	"github.com/hrplane/employee-management/internal/leave"
	"gorm.io/gorm"
)

// LeaveRepository implements leave.Repository over the leave_requests table.
type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) leave.Repository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) Create(lr *leave.LeaveRequest) error {
	return r.db.Create(lr).Error
}

func (r *LeaveRepository) GetByID(id int64) (*leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := r.db.Where("id = ?", id).First(&lr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leave.ErrLeaveRequestNotFound
		}
		return nil, err
	}
	return &lr, nil
}

func (r *LeaveRepository) GetAll() ([]*leave.LeaveRequest, error) {
	var requests []*leave.LeaveRequest
	err := r.db.Order("date_submitted DESC").Find(&requests).Error
	return requests, err
}

func (r *LeaveRepository) GetByUserID(userID int64) ([]*leave.LeaveRequest, error) {
	var requests []*leave.LeaveRequest
	err := r.db.Where("user_id = ?", userID).
		Order("date_submitted DESC").
		Find(&requests).Error
	return requests, err
}

// UpdateStatus touches the status column only; ownership, dates and reason
// stay immutable after creation.
func (r *LeaveRepository) UpdateStatus(id int64, status leave.Status) error {
	return r.db.Model(&leave.LeaveRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
