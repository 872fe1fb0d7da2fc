package leave

import (
	"time"
)

type LeaveRequestStatus string

const (
	StatusPending  LeaveRequestStatus = "PENDING"
	StatusApproved LeaveRequestStatus = "APPROVED"
	StatusRejected LeaveRequestStatus = "REJECTED"
)

// LeaveRequest entity. Unique per (user, start_date, end_date); the status
// only ever moves PENDING -> APPROVED or PENDING -> REJECTED.
type LeaveRequest struct {
	ID        string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    LeaveRequestStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	Username *string
}

// TotalDays returns the inclusive length of the requested range in days; a
// same-day request counts as one.
func (r *LeaveRequest) TotalDays() int {
	return TotalDays(r.StartDate, r.EndDate)
}

// TotalDays is the inclusive day count between two dates.
func TotalDays(startDate, endDate time.Time) int {
	return int(endDate.Sub(startDate).Hours()/24) + 1
}

// IsProcessed reports whether the request reached a terminal state.
func (r *LeaveRequest) IsProcessed() bool {
	return r.Status != StatusPending
}
