package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrInsufficientBalance   = errors.New("not enough annual leave days")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrDuplicateLeaveRequest = errors.New("a leave request for this date range already exists")
	ErrNotEmployee           = errors.New("only employees can create leave requests")
)
