package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// attendances table carries a unique constraint on (user_id, date); Create
// surfaces a violation as ErrAlreadyCheckedIn so a concurrent double
// check-in cannot slip past the service-level guard.
type AttendanceRepository interface {
	// Create inserts a new attendance record for the user's working day.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate retrieves the attendance for a user on a calendar
	// day. Returns nil when none exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// GetOpenByUserAndDate retrieves the attendance for (user, date) with
	// no end time set.
	GetOpenByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// SetEndTime closes an attendance record.
	SetEndTime(ctx context.Context, id string, endTime time.Time) error

	// ListByUser returns a user's attendance history, newest first.
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)

	// ListAll returns every attendance record, newest first. Admin use.
	ListAll(ctx context.Context) ([]Attendance, error)

	// ListLateArrivals returns records whose start time is after the given
	// instant. Used for the admin late-arrivals view.
	ListLateArrivals(ctx context.Context, after time.Time) ([]Attendance, error)
}
