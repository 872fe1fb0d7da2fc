package leave

import (
	"context"
)

// LeaveRequestRepository defines data access for leave requests. The table
// carries a unique constraint on (user_id, start_date, end_date); Create
// surfaces a violation as ErrDuplicateLeaveRequest.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetByIDForUpdate locks the request row for the remainder of the
	// surrounding transaction so status transitions are single-writer.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateStatus persists a status transition.
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus) error

	// ListByUser returns a user's requests, optionally filtered by status.
	ListByUser(ctx context.Context, userID string, status *LeaveRequestStatus) ([]LeaveRequest, error)

	// ListAll returns every request, optionally filtered by status. Admin use.
	ListAll(ctx context.Context, status *LeaveRequestStatus) ([]LeaveRequest, error)
}
