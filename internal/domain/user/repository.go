package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetByIDForUpdate locks the user row for the remainder of the
	// surrounding transaction. Used by every ledger mutation so concurrent
	// debits serialize on the row.
	GetByIDForUpdate(ctx context.Context, id string) (User, error)

	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, req UpdateUserRequest) error

	// UpdateLeaveBalance persists the balance and latch flag together.
	UpdateLeaveBalance(ctx context.Context, id string, annualLeaveDays float64, lowLeaveNotified bool) error

	ListEmployees(ctx context.Context) ([]User, error)
	ListSuperusers(ctx context.Context) ([]User, error)
}
