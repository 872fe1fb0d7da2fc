package user

import "time"

// LowBalanceThreshold is the remaining-days floor below which administrators
// are alerted once per depletion cycle.
const LowBalanceThreshold = 3.0

// DefaultAnnualLeaveDays is granted to every newly registered employee.
const DefaultAnnualLeaveDays = 15.0

type User struct {
	ID               string
	Username         string
	Email            string
	PasswordHash     *string
	FirstName        string
	LastName         string
	IsEmployee       bool
	IsStaff          bool
	IsSuperuser      bool
	AnnualLeaveDays  float64
	LowLeaveNotified bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsAdmin reports whether the user may approve requests and manage employees.
func (u *User) IsAdmin() bool {
	return u.IsStaff || u.IsSuperuser
}

// BalanceChange describes the outcome of a leave-balance mutation.
type BalanceChange struct {
	Previous float64
	Current  float64

	// LowBalanceAlert is set when the balance crossed below
	// LowBalanceThreshold and no alert has fired since the balance was last
	// at or above it.
	LowBalanceAlert bool
}

// DeductLeaveDays removes days from the annual leave balance, clamped at
// zero, and runs the low-balance latch check. Every code path that debits
// the ledger must go through here so the latch is evaluated consistently.
func (u *User) DeductLeaveDays(days float64) BalanceChange {
	return u.SetLeaveDays(u.AnnualLeaveDays - days)
}

// SetLeaveDays replaces the balance (clamped at zero) and evaluates the
// low-balance latch: dropping below the threshold fires exactly one alert
// until the balance recovers to the threshold or above, which re-arms it.
func (u *User) SetLeaveDays(days float64) BalanceChange {
	change := BalanceChange{Previous: u.AnnualLeaveDays}

	if days < 0 {
		days = 0
	}
	u.AnnualLeaveDays = days
	change.Current = days

	switch {
	case days < LowBalanceThreshold && change.Previous >= LowBalanceThreshold:
		if !u.LowLeaveNotified {
			u.LowLeaveNotified = true
			change.LowBalanceAlert = true
		}
	case days >= LowBalanceThreshold && change.Previous < LowBalanceThreshold:
		u.LowLeaveNotified = false
	}

	return change
}

// FullName joins first and last name, falling back to the username.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Username
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
