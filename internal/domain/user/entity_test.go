package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_DeductLeaveDays_ClampsAtZero(t *testing.T) {
	u := User{AnnualLeaveDays: 1.5}

	change := u.DeductLeaveDays(4)

	assert.Equal(t, 1.5, change.Previous)
	assert.Equal(t, 0.0, change.Current)
	assert.Equal(t, 0.0, u.AnnualLeaveDays)
}

func TestUser_DeductLeaveDays_NeverNegativeAcrossSequence(t *testing.T) {
	u := User{AnnualLeaveDays: 5}

	for _, d := range []float64{2, 2, 2, 0.5, 10} {
		u.DeductLeaveDays(d)
		assert.GreaterOrEqual(t, u.AnnualLeaveDays, 0.0)
	}
}

func TestUser_DeductLeaveDays_LowBalanceAlertFiresOnce(t *testing.T) {
	u := User{AnnualLeaveDays: 3.5}

	first := u.DeductLeaveDays(0.7) // 3.5 -> 2.8
	assert.True(t, first.LowBalanceAlert)
	assert.True(t, u.LowLeaveNotified)

	second := u.DeductLeaveDays(0.8) // 2.8 -> 2.0, still below threshold
	assert.False(t, second.LowBalanceAlert)
	assert.True(t, u.LowLeaveNotified)
}

func TestUser_SetLeaveDays_RecoveryRearmsLatch(t *testing.T) {
	u := User{AnnualLeaveDays: 3.5}

	u.DeductLeaveDays(1) // 2.5, latch set
	assert.True(t, u.LowLeaveNotified)

	// Administrative top-up back above the threshold resets the latch.
	change := u.SetLeaveDays(10)
	assert.False(t, change.LowBalanceAlert)
	assert.False(t, u.LowLeaveNotified)

	// The next drop below the threshold alerts again.
	change = u.DeductLeaveDays(8) // 10 -> 2
	assert.True(t, change.LowBalanceAlert)
}

func TestUser_DeductLeaveDays_NoAlertWhenStartingBelowThreshold(t *testing.T) {
	u := User{AnnualLeaveDays: 2.0, LowLeaveNotified: true}

	change := u.DeductLeaveDays(0.5)

	assert.False(t, change.LowBalanceAlert)
}

func TestUser_IsAdmin(t *testing.T) {
	assert.False(t, (&User{}).IsAdmin())
	assert.True(t, (&User{IsStaff: true}).IsAdmin())
	assert.True(t, (&User{IsSuperuser: true}).IsAdmin())
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "jdoe", (&User{Username: "jdoe"}).FullName())
	assert.Equal(t, "Jane", (&User{Username: "jdoe", FirstName: "Jane"}).FullName())
	assert.Equal(t, "Jane Doe", (&User{FirstName: "Jane", LastName: "Doe"}).FullName())
}
