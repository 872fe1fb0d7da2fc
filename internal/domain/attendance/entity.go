package attendance

import (
	"time"
)

// Working window boundaries, evaluated in the company's local time.
const (
	WorkdayStartHour = 8
	WorkdayEndHour   = 18

	// NominalWorkdayMinutes converts lateness into fractional leave days:
	// a full nominal workday of lateness costs one leave day.
	NominalWorkdayMinutes = 10 * 60
)

type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	StartTime time.Time
	EndTime   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	Username *string
}

// WorkdayStart returns 08:00 on the attendance date, in the given location.
func WorkdayStart(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), WorkdayStartHour, 0, 0, 0, loc)
}

// WorkdayEnd returns 18:00 on the attendance date, in the given location.
func WorkdayEnd(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), WorkdayEndHour, 0, 0, 0, loc)
}

// IsWeekend reports whether the day falls on one of the two rest days.
func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// LateMinutes returns whole minutes elapsed since the scheduled workday
// start, or zero for an on-time arrival.
func LateMinutes(startTime time.Time, loc *time.Location) int {
	local := startTime.In(loc)
	scheduled := WorkdayStart(local, loc)
	if !local.After(scheduled) {
		return 0
	}
	return int(local.Sub(scheduled).Minutes())
}

// LatePenaltyDays converts lateness minutes into the fractional leave-day
// penalty charged against the ledger.
func LatePenaltyDays(lateMinutes int) float64 {
	return float64(lateMinutes) / float64(NominalWorkdayMinutes)
}
