package attendance

import (
	"context"
)

// AttendanceService defines the check-in/check-out business logic.
type AttendanceService interface {
	// CheckIn records the start of the user's working day, applying the
	// working-window rules and any lateness penalty.
	CheckIn(ctx context.Context, userID string) (AttendanceResponse, error)

	// CheckOut closes today's open attendance for the user.
	CheckOut(ctx context.Context, userID string) (AttendanceResponse, error)

	// List returns attendance records: the caller's own unless the caller
	// is an administrator, in which case everyone's.
	List(ctx context.Context, callerID string) ([]AttendanceResponse, error)

	// ListLateArrivals returns today's late check-ins. Admin only.
	ListLateArrivals(ctx context.Context) ([]AttendanceResponse, error)
}
