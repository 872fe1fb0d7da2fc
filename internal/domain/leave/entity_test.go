package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2024, 6, 3), date(2024, 6, 3), 1},
		{"two days", date(2024, 6, 3), date(2024, 6, 4), 2},
		{"full week", date(2024, 6, 3), date(2024, 6, 9), 7},
		{"across month boundary", date(2024, 6, 28), date(2024, 7, 2), 5},
		{"across year boundary", date(2024, 12, 30), date(2025, 1, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalDays(tt.start, tt.end))
		})
	}
}

func TestLeaveRequest_IsProcessed(t *testing.T) {
	assert.False(t, (&LeaveRequest{Status: StatusPending}).IsProcessed())
	assert.True(t, (&LeaveRequest{Status: StatusApproved}).IsProcessed())
	assert.True(t, (&LeaveRequest{Status: StatusRejected}).IsProcessed())
}

func TestCreateLeaveRequestRequest_Validate(t *testing.T) {
	valid := CreateLeaveRequestRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-05",
		Reason:    "family visit",
	}
	assert.NoError(t, valid.Validate())

	reversed := CreateLeaveRequestRequest{
		StartDate: "2024-06-05",
		EndDate:   "2024-06-03",
		Reason:    "family visit",
	}
	assert.Error(t, reversed.Validate())

	missingReason := CreateLeaveRequestRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-05",
		Reason:    "   ",
	}
	assert.Error(t, missingReason.Validate())

	badDate := CreateLeaveRequestRequest{
		StartDate: "03/06/2024",
		EndDate:   "2024-06-05",
		Reason:    "family visit",
	}
	assert.Error(t, badDate.Validate())
}
