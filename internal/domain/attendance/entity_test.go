package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLateMinutes(t *testing.T) {
	loc := time.UTC
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, loc) // Monday

	onTime := time.Date(day.Year(), day.Month(), day.Day(), 7, 59, 0, 0, loc)
	assert.Equal(t, 0, LateMinutes(onTime, loc))

	exact := WorkdayStart(day, loc)
	assert.Equal(t, 0, LateMinutes(exact, loc))

	late := time.Date(day.Year(), day.Month(), day.Day(), 8, 25, 0, 0, loc)
	assert.Equal(t, 25, LateMinutes(late, loc))
}

func TestLatePenaltyDays(t *testing.T) {
	assert.InDelta(t, 25.0/600.0, LatePenaltyDays(25), 1e-9)
	assert.Equal(t, 1.0, LatePenaltyDays(600))
	assert.Equal(t, 0.0, LatePenaltyDays(0))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Date(2024, 6, 8, 12, 0, 0, 0, time.UTC)))  // Saturday
	assert.True(t, IsWeekend(time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)))  // Sunday
	assert.False(t, IsWeekend(time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC))) // Monday
}

func TestWorkdayWindow(t *testing.T) {
	loc := time.UTC
	day := time.Date(2024, 6, 10, 14, 30, 0, 0, loc)

	assert.Equal(t, 8, WorkdayStart(day, loc).Hour())
	assert.Equal(t, 18, WorkdayEnd(day, loc).Hour())
	assert.Equal(t, day.Day(), WorkdayStart(day, loc).Day())
}
