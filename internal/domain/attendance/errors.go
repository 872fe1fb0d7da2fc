package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrWeekendCheckIn      = errors.New("today is a weekend")
	ErrBeforeWorkingHours  = errors.New("working hours have not started yet")
	ErrOutsideWorkingHours = errors.New("cannot check in outside working hours")
	ErrAlreadyCheckedIn    = errors.New("you have already checked in today")

	// Check-out errors
	ErrNotCheckedIn = errors.New("you have not checked in today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
